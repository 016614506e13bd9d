package search

import (
	"math"

	"github.com/mleone/memoir/internal/model"
)

// index holds term statistics over one snapshot: document frequency
// per term and term frequency per record. Rebuilt for every ranking
// call, never persisted.
type index struct {
	docs []map[string]int
	df   map[string]int
	n    int
}

func buildIndex(records []model.MemoryRecord) *index {
	idx := &index{df: map[string]int{}, n: len(records)}
	for _, r := range records {
		tf := map[string]int{}
		for _, t := range Tokenize(r.Text) {
			tf[t]++
		}
		for t := range tf {
			idx.df[t]++
		}
		idx.docs = append(idx.docs, tf)
	}
	return idx
}

// relevance sums tf-idf weights of the query terms for record i:
// tf * ln((N+1)/(df+1)). The +1 smoothing means df can never divide by
// zero and terms present in every record are dampened, not negative.
// An empty term list scores 0 for every record.
func (idx *index) relevance(i int, terms []string) float64 {
	tf := idx.docs[i]
	score := 0.0
	for _, t := range terms {
		if n := tf[t]; n > 0 {
			score += float64(n) * math.Log(float64(idx.n+1)/float64(idx.df[t]+1))
		}
	}
	return score
}
