package model

import (
	"fmt"
	"sort"
)

// Response is one raw survey answer, a numeric rating or a non-applicable marker.
type Response struct {
	Value         float64
	NotApplicable bool
}

func Rating(value float64) Response {
	return Response{Value: value}
}

func NotApplicable() Response {
	return Response{NotApplicable: true}
}

func (r Response) String() string {
	if r.NotApplicable {
		return "NA"
	}
	return fmt.Sprintf("%v", r.Value)
}

// RatingSample holds the ratings left after removing non-applicable responses.
type RatingSample struct {
	Values []float64
	// Dropped is how many non-applicable responses were removed
	Dropped int
}

func (s *RatingSample) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Values)
}

func (s *RatingSample) IsEmpty() bool {
	return s.Len() == 0
}

// Sorted returns a sorted copy, the sample itself is never reordered.
func (s *RatingSample) Sorted() []float64 {
	res := make([]float64, s.Len())
	if s == nil {
		return res
	}
	copy(res, s.Values)
	sort.Float64s(res)
	return res
}

func (s *RatingSample) DebugString() string {
	return fmt.Sprintf("count: %v, dropped: %v", s.Len(), s.Dropped)
}

type SummaryStatistics struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"` // population standard deviation, divisor N
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

type FrequencyEntry struct {
	Rating  float64 `json:"rating"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

// FrequencyTable keeps its entries in ascending rating order.
type FrequencyTable struct {
	Total   int
	Entries []FrequencyEntry
}

func (t *FrequencyTable) Count(rating float64) int {
	if t == nil {
		return 0
	}
	for _, entry := range t.Entries {
		if entry.Rating == rating {
			return entry.Count
		}
	}
	return 0
}

func (t *FrequencyTable) MaxCount() int {
	res := 0
	if t == nil {
		return res
	}
	for _, entry := range t.Entries {
		res = max(res, entry.Count)
	}
	return res
}

type HistogramBin struct {
	Lower   float64
	Upper   float64
	Count   int
	Density float64
}

func (b HistogramBin) Center() float64 {
	return (b.Lower + b.Upper) / 2
}

func (b HistogramBin) Width() float64 {
	return b.Upper - b.Lower
}

// Density is one point of a curve.
type Density struct {
	X     float64
	Value float64
}

// RatingReport is what one run produces.
type RatingReport struct {
	OutputPath string
	Sample     *RatingSample
	Statistics *SummaryStatistics
	Frequency  *FrequencyTable
}
