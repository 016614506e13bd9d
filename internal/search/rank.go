package search

import (
	"math"
	"sort"
	"time"

	"github.com/mleone/memoir/internal/model"
)

const hoursPerDay = 24

// Options control one ranking call. Values come from configuration or
// caller flags; the ranker itself holds no ambient state.
type Options struct {
	// Limit caps the result count when positive. Zero or negative
	// returns every candidate.
	Limit int
	// Tag restricts candidates to records carrying the tag,
	// case-sensitive. Empty disables the filter.
	Tag string
	// DecayLambda is the per-day exponential decay rate. Zero (or
	// negative) disables decay exactly.
	DecayLambda float64
	// Now is the clock used for age computation. Zero means
	// time.Now().
	Now time.Time
}

// Result pairs a record with its final score.
type Result struct {
	model.MemoryRecord
	Score float64 `json:"score"`
}

// Rank scores the snapshot against the query, descending by score:
//
//	final = relevance * exp(-lambda*age_days) * (importance / 3.0)
//
// Term statistics always come from the full snapshot; the tag filter
// narrows which records are returned, never the corpus a term's
// document frequency is measured against. Filtering happens before
// scoring, never after truncation. Ties go to the more recent
// timestamp, then to the later-inserted record. Zero-relevance records
// stay in the candidate set, so an empty query degrades to a recency
// and importance ordering rather than an error.
func Rank(records []model.MemoryRecord, query string, opts Options) []Result {
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	type scored struct {
		rec   model.MemoryRecord
		score float64
		pos   int
	}
	var candidates []scored
	for i, r := range records {
		if opts.Tag != "" && !r.HasTag(opts.Tag) {
			continue
		}
		candidates = append(candidates, scored{rec: r, pos: i})
	}
	if len(candidates) == 0 {
		return nil
	}

	idx := buildIndex(records)
	terms := queryTerms(query)

	for i := range candidates {
		c := &candidates[i]
		age := now.Sub(c.rec.Timestamp).Hours() / hoursPerDay
		c.score = idx.relevance(c.pos, terms) *
			TimeFactor(opts.DecayLambda, age) *
			(float64(c.rec.Importance) / float64(model.DefaultImportance))
	}

	sort.SliceStable(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.score != cb.score {
			return ca.score > cb.score
		}
		if !ca.rec.Timestamp.Equal(cb.rec.Timestamp) {
			return ca.rec.Timestamp.After(cb.rec.Timestamp)
		}
		return ca.pos > cb.pos
	})

	if opts.Limit > 0 && len(candidates) > opts.Limit {
		candidates = candidates[:opts.Limit]
	}
	results := make([]Result, len(candidates))
	for i, c := range candidates {
		results[i] = Result{MemoryRecord: c.rec, Score: c.score}
	}
	return results
}

// TimeFactor returns exp(-lambda * ageDays). A non-positive lambda is
// an exact identity (1.0), not a near-1 approximation, so decay can be
// disabled without floating-point drift. Ages floor at zero for
// timestamps in the future.
func TimeFactor(lambda, ageDays float64) float64 {
	if lambda <= 0 {
		return 1.0
	}
	if ageDays < 0 {
		ageDays = 0
	}
	return math.Exp(-lambda * ageDays)
}
