package search

import (
	"math"
	"testing"

	"github.com/mleone/memoir/internal/model"
)

func docs(texts ...string) []model.MemoryRecord {
	records := make([]model.MemoryRecord, len(texts))
	for i, text := range texts {
		records[i] = model.MemoryRecord{Text: text}
	}
	return records
}

func TestIndexDocumentFrequency(t *testing.T) {
	idx := buildIndex(docs(
		"dark mode settings",
		"dark roast coffee",
		"deploy workflow",
	))

	if idx.n != 3 {
		t.Errorf("expected n=3, got %d", idx.n)
	}
	if idx.df["dark"] != 2 {
		t.Errorf("expected df(dark)=2, got %d", idx.df["dark"])
	}
	if idx.df["deploy"] != 1 {
		t.Errorf("expected df(deploy)=1, got %d", idx.df["deploy"])
	}
}

func TestRelevanceWeight(t *testing.T) {
	idx := buildIndex(docs(
		"dark mode dark theme",
		"deploy workflow",
	))

	// tf(dark)=2, df(dark)=1, N=2: 2 * ln(3/2)
	want := 2 * math.Log(3.0/2.0)
	got := idx.relevance(0, []string{"dark"})
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	if idx.relevance(1, []string{"dark"}) != 0 {
		t.Error("expected zero relevance for record lacking the term")
	}
}

func TestRelevanceSmoothing(t *testing.T) {
	// A term present in every record is fully dampened by the +1
	// smoothing: ln((N+1)/(N+1)) = 0, never a division by zero.
	idx := buildIndex(docs("shared term", "shared idea"))
	got := idx.relevance(0, []string{"shared"})
	if got != 0 {
		t.Errorf("expected saturated term weight 0, got %v", got)
	}
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Error("smoothing must never divide by zero")
	}
}

func TestRelevanceEmptyQuery(t *testing.T) {
	idx := buildIndex(docs("anything at all"))
	if idx.relevance(0, nil) != 0 {
		t.Error("expected empty query to score 0")
	}
}
