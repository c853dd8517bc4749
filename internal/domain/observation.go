package domain

import (
	"sort"
	"time"
)

// Observation is a single point of a named economic time series.
type Observation struct {
	SeriesID string
	Date     time.Time
	Value    float64
}

// Series is an ordered (ascending by date) view over one economic series.
// All classification reads go through Through so nothing dated after the
// as-of date can leak into a historical computation.
type Series struct {
	ID           string
	Observations []Observation
}

func NewSeries(id string, observations []Observation) Series {
	sorted := make([]Observation, len(observations))
	copy(sorted, observations)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})
	return Series{
		ID:           id,
		Observations: sorted,
	}
}

func (s Series) Empty() bool {
	return len(s.Observations) == 0
}

// Through returns every observation dated on or before asOf.
func (s Series) Through(asOf time.Time) []Observation {
	// observations are sorted, so find the first one after asOf
	i := sort.Search(len(s.Observations), func(i int) bool {
		return s.Observations[i].Date.After(asOf)
	})
	return s.Observations[:i]
}

// Window returns the trailing n observations of the given slice. If fewer
// than n exist, it returns all of them.
func Window(observations []Observation, n int) []Observation {
	if len(observations) <= n {
		return observations
	}
	return observations[len(observations)-n:]
}
