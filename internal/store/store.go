// Package store owns the append-only JSONL memory log.
//
// One record per line, each line independently parseable. Appends go
// straight to the end of the log; every other mutation rewrites the
// whole log through a temp-file-then-rename replace, so the log is a
// complete, self-consistent snapshot after every operation and a crash
// mid-write leaves the previous snapshot intact.
package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mleone/memoir/internal/model"
)

// LogName is the memories log file inside the store directory.
const LogName = "memories.jsonl"

// maxLine bounds a single log line; memories are short text.
const maxLine = 1 << 20

// Store reads and writes one memories log.
type Store struct {
	path string
}

// New returns a Store backed by the memories log inside dir.
func New(dir string) *Store {
	return &Store{path: filepath.Join(dir, LogName)}
}

// Path returns the backing log path.
func (s *Store) Path() string { return s.path }

// Init creates the store directory and an empty log if missing.
func (s *Store) Init() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("create log: %w", err)
	}
	return f.Close()
}

// Load parses the full log into memory, in insertion order. A missing
// log is an empty store; blank lines are tolerated. A malformed line
// or a duplicate id is a *CorruptError. Any other read failure is
// surfaced as-is, never treated as an empty store.
func (s *Store) Load() ([]model.MemoryRecord, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer f.Close()

	var records []model.MemoryRecord
	seen := map[string]bool{}
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	line := 0
	for sc.Scan() {
		line++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" {
			continue
		}
		var rec model.MemoryRecord
		if err := json.Unmarshal([]byte(raw), &rec); err != nil {
			return nil, &CorruptError{Path: s.path, Line: line, Content: truncateLine(raw), Err: err}
		}
		if rec.Importance == 0 {
			// Field absent in logs written by older tooling.
			rec.Importance = model.DefaultImportance
		}
		rec.Importance = model.ClampImportance(rec.Importance)
		if err := rec.Validate(); err != nil {
			return nil, &CorruptError{Path: s.path, Line: line, Content: truncateLine(raw), Err: err}
		}
		if seen[rec.ID] {
			return nil, &CorruptError{Path: s.path, Line: line, Content: truncateLine(raw), Err: fmt.Errorf("duplicate id %s", rec.ID)}
		}
		seen[rec.ID] = true
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return records, nil
}

// Get returns the record with the given id, or ErrNotFound.
func (s *Store) Get(id string) (*model.MemoryRecord, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].ID == id {
			return &records[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Append validates rec and writes it as one new log line. Nothing is
// written when validation fails or the id already exists.
func (s *Store) Append(rec *model.MemoryRecord) error {
	rec.Importance = model.ClampImportance(rec.Importance)
	rec.Tags = model.NormalizeTags(rec.Tags)
	if err := rec.Validate(); err != nil {
		return err
	}

	records, err := s.Load()
	if err != nil {
		return err
	}
	for _, r := range records {
		if r.ID == rec.ID {
			return fmt.Errorf("%w: %s", ErrDuplicateID, rec.ID)
		}
	}

	b, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	if _, err := f.Write(append(b, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("append record: %w", err)
	}
	return f.Close()
}

// Delete removes the record if present and rewrites the log. Returns
// whether anything was removed; a missing id is not an error.
func (s *Store) Delete(id string) (bool, error) {
	records, err := s.Load()
	if err != nil {
		return false, err
	}
	kept := make([]model.MemoryRecord, 0, len(records))
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return false, nil
	}
	if err := s.rewrite(kept); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateTags unions add into the record's tag set, then subtracts
// remove, and rewrites the log. ErrNotFound if the id is absent.
func (s *Store) UpdateTags(id string, add, remove []string) (*model.MemoryRecord, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range records {
		if records[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	tags := append([]string{}, records[idx].Tags...)
	tags = append(tags, add...)
	tags = model.NormalizeTags(tags)
	removeSet := map[string]bool{}
	for _, t := range remove {
		removeSet[strings.TrimSpace(t)] = true
	}
	kept := tags[:0]
	for _, t := range tags {
		if !removeSet[t] {
			kept = append(kept, t)
		}
	}
	records[idx].Tags = kept

	if err := s.rewrite(records); err != nil {
		return nil, err
	}
	rec := records[idx]
	return &rec, nil
}

// Clear truncates the store to empty.
func (s *Store) Clear() error {
	return s.rewrite(nil)
}

// Count returns the number of records in the log.
func (s *Store) Count() (int, error) {
	records, err := s.Load()
	if err != nil {
		return 0, err
	}
	return len(records), nil
}

// rewrite replaces the log atomically: content lands in a temp file in
// the same directory first, then renames over the old log.
func (s *Store) rewrite(records []model.MemoryRecord) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, LogName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp log: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := bufio.NewWriter(tmp)
	for _, r := range records {
		b, err := json.Marshal(r)
		if err != nil {
			tmp.Close()
			return fmt.Errorf("encode record %s: %w", r.ID, err)
		}
		w.Write(b)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp log: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp log: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp log: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace log: %w", err)
	}
	return nil
}
