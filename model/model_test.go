package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/uyouii/series-approximation/common"
)

func TestNewUniformSampleSet(t *testing.T) {
	s, err := NewUniformSampleSet(Interval{Lower: -2, Upper: 2}, 5)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -1, 0, 1, 2}, s.Values())

	s, err = NewUniformSampleSet(Interval{Lower: -math.Pi, Upper: math.Pi}, 1000)
	require.NoError(t, err)
	require.Equal(t, 1000, s.Len())
	require.Equal(t, -math.Pi, s.At(0))
	require.InDelta(t, math.Pi, s.At(999), 1e-12)

	s, err = NewUniformSampleSet(Interval{Lower: 3, Upper: 4}, 1)
	require.NoError(t, err)
	require.Equal(t, []float64{3}, s.Values())

	_, err = NewUniformSampleSet(Interval{Lower: 1, Upper: 0}, 10)
	require.ErrorIs(t, err, common.ErrorInvalidArgument)
	_, err = NewUniformSampleSet(Interval{Lower: math.NaN(), Upper: 0}, 10)
	require.ErrorIs(t, err, common.ErrorInvalidArgument)
	_, err = NewUniformSampleSet(Interval{Lower: 0, Upper: 1}, 0)
	require.ErrorIs(t, err, common.ErrorInvalidArgument)
}

func TestSampleSetIsImmutable(t *testing.T) {
	values := []float64{1, 2, 3}
	s := NewSampleSet(values)
	values[0] = 100
	require.Equal(t, 1.0, s.At(0))

	out := s.Values()
	out[1] = 100
	require.Equal(t, 2.0, s.At(1))

	var empty *SampleSet
	require.True(t, empty.IsEmpty())
	require.Zero(t, empty.Len())
	require.Nil(t, empty.Values())
	require.True(t, NewSampleSet(nil).IsEmpty())
}

func TestTruncationOrderDegree(t *testing.T) {
	require.Equal(t, 1, TruncationOrder(1).Degree())
	require.Equal(t, 29, TruncationOrder(15).Degree())
}

func TestApproximationResultOrders(t *testing.T) {
	r := ApproximationResult{9: nil, 1: nil, 5: nil}
	require.Equal(t, []TruncationOrder{1, 5, 9}, r.Orders())
	require.Empty(t, ApproximationResult{}.Orders())
}

func TestErrorResultFloor(t *testing.T) {
	e := ErrorResult{0, 1e-20, 1e-3, 2}
	require.Equal(t, ErrorResult{1e-15, 1e-15, 1e-3, 2}, e.Floor(1e-15))
	require.Equal(t, ErrorResult{0, 1e-20, 1e-3, 2}, e)

	logs := e.Log10(1e-15)
	require.InDelta(t, -15, logs[0], 1e-12)
	require.InDelta(t, -15, logs[1], 1e-12)
	require.InDelta(t, -3, logs[2], 1e-12)
	require.InDelta(t, math.Log10(2), logs[3], 1e-12)
}

func TestComparisonSummary(t *testing.T) {
	var c *Comparison
	_, ok := c.Summary(1)
	require.False(t, ok)

	c = NewComparison(NewSampleSet([]float64{0}), []float64{0})
	c.Summaries[3] = &ErrorSummary{Order: 3}
	summary, ok := c.Summary(3)
	require.True(t, ok)
	require.Equal(t, TruncationOrder(3), summary.Order)
}
