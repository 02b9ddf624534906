package model

import (
	"fmt"
	"math"
	"sort"
)

// TruncationOrder is the number of non-zero series terms kept, not the polynomial degree.
type TruncationOrder int

func (n TruncationOrder) Degree() int {
	return 2*int(n) - 1
}

// ApproximationResult maps an order to one value per sample.
type ApproximationResult map[TruncationOrder][]float64

func (r ApproximationResult) Orders() []TruncationOrder {
	orders := make([]TruncationOrder, 0, len(r))
	for order := range r {
		orders = append(orders, order)
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i] < orders[j]
	})
	return orders
}

// ErrorResult holds pointwise absolute errors, same length as the samples.
type ErrorResult []float64

// Floor returns a copy where every value below eps is raised to eps.
// Only meant to keep a logarithmic view finite.
func (e ErrorResult) Floor(eps float64) ErrorResult {
	res := make(ErrorResult, len(e))
	for i, v := range e {
		res[i] = math.Max(v, eps)
	}
	return res
}

func (e ErrorResult) Log10(eps float64) []float64 {
	floored := e.Floor(eps)
	res := make([]float64, len(floored))
	for i, v := range floored {
		res[i] = math.Log10(v)
	}
	return res
}

type ErrorSummary struct {
	Order         TruncationOrder `json:"order"`
	MaxError      float64         `json:"max_error"`
	ArgMaxX       float64         `json:"arg_max_x"`
	MeanError     float64         `json:"mean_error"`
	Log10MaxError float64         `json:"log10_max_error"`
}

// Comparison is everything one run produces: exact values, approximations and their errors.
type Comparison struct {
	Samples        *SampleSet
	Exact          []float64
	Approximations ApproximationResult
	Errors         map[TruncationOrder]ErrorResult
	Summaries      map[TruncationOrder]*ErrorSummary
}

func NewComparison(samples *SampleSet, exact []float64) *Comparison {
	return &Comparison{
		Samples:        samples,
		Exact:          exact,
		Approximations: ApproximationResult{},
		Errors:         map[TruncationOrder]ErrorResult{},
		Summaries:      map[TruncationOrder]*ErrorSummary{},
	}
}

func (c *Comparison) Summary(order TruncationOrder) (*ErrorSummary, bool) {
	if c == nil || c.Summaries == nil {
		return nil, false
	}
	summary, ok := c.Summaries[order]
	return summary, ok
}

func (c *Comparison) DebugString() string {
	return fmt.Sprintf("%v, orders: %+v", c.Samples.DebugString(), c.Approximations.Orders())
}
