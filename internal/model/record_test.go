package model

import (
	"errors"
	"testing"
)

func TestNewRecord(t *testing.T) {
	rec, err := New("remember the milk", []string{"errand", "errand", " "}, nil, 4)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if len(rec.ID) != 26 {
		t.Errorf("expected 26-char ULID, got %q", rec.ID)
	}
	if rec.Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
	if rec.Importance != 4 {
		t.Errorf("expected importance 4, got %d", rec.Importance)
	}
	if len(rec.Tags) != 1 || rec.Tags[0] != "errand" {
		t.Errorf("expected normalized tags [errand], got %v", rec.Tags)
	}
}

func TestNewRejectsEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		if _, err := New(text, nil, nil, 3); !errors.Is(err, ErrInvalidRecord) {
			t.Errorf("text %q: expected ErrInvalidRecord, got %v", text, err)
		}
	}
}

func TestClampImportance(t *testing.T) {
	cases := []struct{ in, want int }{
		{-1, 1}, {0, 1}, {1, 1}, {3, 3}, {5, 5}, {6, 5}, {99, 5},
	}
	for _, c := range cases {
		if got := ClampImportance(c.in); got != c.want {
			t.Errorf("clamp(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{"b", "a", "b", "", "  ", "a "})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("expected [a b], got %v", got)
	}
	if NormalizeTags(nil) == nil {
		t.Error("expected non-nil slice for nil input")
	}
}

func TestHasTagCaseSensitive(t *testing.T) {
	rec := MemoryRecord{Tags: []string{"Work"}}
	if !rec.HasTag("Work") {
		t.Error("expected exact match to pass")
	}
	if rec.HasTag("work") {
		t.Error("expected case-sensitive match to fail")
	}
}
