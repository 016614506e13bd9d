package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound means the operation targeted an id that is not in
	// the store.
	ErrNotFound = errors.New("memory not found")

	// ErrDuplicateID means an append collided with an existing id.
	ErrDuplicateID = errors.New("duplicate memory id")
)

// corruptContentMax caps how much of a bad line the error carries.
const corruptContentMax = 200

// CorruptError reports a memories log that failed to parse. It carries
// the offending line's number and content (truncated) so the bad line
// is debuggable without reopening the file. Bad lines are never
// skipped because skipping could silently lose memories.
type CorruptError struct {
	Path    string
	Line    int
	Content string
	Err     error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("store corrupt: %s line %d: %v: %q", e.Path, e.Line, e.Err, e.Content)
}

func (e *CorruptError) Unwrap() error { return e.Err }

func truncateLine(s string) string {
	if len(s) <= corruptContentMax {
		return s
	}
	return s[:corruptContentMax] + "..."
}
