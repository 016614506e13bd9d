// Package model defines the core memory record type.
package model

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// DefaultImportance is the neutral importance weight. It makes the
// ranking multiplier exactly 1.0 for unflagged records.
const DefaultImportance = 3

// ErrInvalidRecord is returned when a record fails construction-time
// validation, e.g. empty text.
var ErrInvalidRecord = errors.New("invalid record")

// MemoryRecord is the unit of storage: one line in the memories log.
// ID, Timestamp, and Text are immutable after creation; edits model as
// delete+add. Metadata is opaque to the storage and ranking layers.
type MemoryRecord struct {
	ID         string         `json:"id"`
	Timestamp  time.Time      `json:"timestamp"`
	Text       string         `json:"text"`
	Tags       []string       `json:"tags"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	Importance int            `json:"importance"`
}

var entropy = rand.New(rand.NewSource(time.Now().UnixNano()))

func newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// New builds a record with a fresh ULID and the current UTC time.
// Importance is clamped to [1,5]; tags are normalized. Empty text is
// ErrInvalidRecord.
func New(text string, tags []string, metadata map[string]any, importance int) (*MemoryRecord, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidRecord)
	}
	return &MemoryRecord{
		ID:         newID(),
		Timestamp:  time.Now().UTC(),
		Text:       text,
		Tags:       NormalizeTags(tags),
		Metadata:   metadata,
		Importance: ClampImportance(importance),
	}, nil
}

// Validate checks the required field set. Used both before a write and
// when parsing log lines.
func (r *MemoryRecord) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	}
	if strings.TrimSpace(r.Text) == "" {
		return fmt.Errorf("%w: empty text", ErrInvalidRecord)
	}
	if r.Timestamp.IsZero() {
		return fmt.Errorf("%w: missing timestamp", ErrInvalidRecord)
	}
	return nil
}

// HasTag reports whether the record carries the tag. Matching is
// case-sensitive and exact.
func (r *MemoryRecord) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ClampImportance forces n into [1,5].
func ClampImportance(n int) int {
	if n < 1 {
		return 1
	}
	if n > 5 {
		return 5
	}
	return n
}

// NormalizeTags drops empty strings, collapses duplicates, and sorts.
// The result is never nil so tag sets marshal as [] rather than null.
func NormalizeTags(tags []string) []string {
	set := map[string]bool{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" {
			set[t] = true
		}
	}
	out := make([]string, 0, len(set))
	for t := range set {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
