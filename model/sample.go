package model

import (
	"fmt"
	"math"

	"github.com/uyouii/series-approximation/common"
	"gonum.org/v1/gonum/floats"
)

// Interval is a closed domain [Lower, Upper].
type Interval struct {
	Lower float64 `json:"lower"`
	Upper float64 `json:"upper"`
}

func (i Interval) Valid() bool {
	if math.IsNaN(i.Lower) || math.IsNaN(i.Upper) || math.IsInf(i.Lower, 0) || math.IsInf(i.Upper, 0) {
		return false
	}
	return i.Lower <= i.Upper
}

// SampleSet is the ordered set of abscissas a run is evaluated on.
// It is fixed at construction, every accessor hands out copies.
type SampleSet struct {
	values []float64
}

func NewSampleSet(values []float64) *SampleSet {
	copied := make([]float64, len(values))
	copy(copied, values)
	return &SampleSet{values: copied}
}

// NewUniformSampleSet partitions the interval into n points, both endpoints included.
func NewUniformSampleSet(interval Interval, n int) (*SampleSet, error) {
	if !interval.Valid() {
		return nil, fmt.Errorf("interval %+v: %w", interval, common.ErrorInvalidArgument)
	}
	if n < 1 {
		return nil, fmt.Errorf("point count %v: %w", n, common.ErrorInvalidArgument)
	}
	if n == 1 {
		return &SampleSet{values: []float64{interval.Lower}}, nil
	}
	return &SampleSet{values: floats.Span(make([]float64, n), interval.Lower, interval.Upper)}, nil
}

func (s *SampleSet) IsEmpty() bool {
	if s == nil {
		return true
	}
	return len(s.values) == 0
}

func (s *SampleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.values)
}

func (s *SampleSet) At(i int) float64 {
	return s.values[i]
}

func (s *SampleSet) Values() []float64 {
	if s == nil {
		return nil
	}
	res := make([]float64, len(s.values))
	copy(res, s.values)
	return res
}

func (s *SampleSet) DebugString() string {
	if s.IsEmpty() {
		return "samples: empty"
	}
	return fmt.Sprintf("samples: count: %v, first: %v, last: %v",
		len(s.values), s.values[0], s.values[len(s.values)-1])
}
