package store

import (
	"time"
)

// Stats holds aggregate store statistics.
type Stats struct {
	Records int            `json:"records"`
	Tags    map[string]int `json:"tags,omitempty"`
	Oldest  *time.Time     `json:"oldest,omitempty"`
	Newest  *time.Time     `json:"newest,omitempty"`
	LogPath string         `json:"log_path"`
}

// Stats scans the log and aggregates record count, tag usage, and the
// timestamp range.
func (s *Store) Stats() (*Stats, error) {
	records, err := s.Load()
	if err != nil {
		return nil, err
	}

	st := &Stats{Records: len(records), LogPath: s.path}
	if len(records) == 0 {
		return st, nil
	}

	st.Tags = map[string]int{}
	oldest := records[0].Timestamp
	newest := records[0].Timestamp
	for _, r := range records {
		for _, t := range r.Tags {
			st.Tags[t]++
		}
		if r.Timestamp.Before(oldest) {
			oldest = r.Timestamp
		}
		if r.Timestamp.After(newest) {
			newest = r.Timestamp
		}
	}
	st.Oldest = &oldest
	st.Newest = &newest
	return st, nil
}
