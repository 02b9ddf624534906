package taylor

import (
	"fmt"
	"math"

	"github.com/uyouii/series-approximation/common"
	"github.com/uyouii/series-approximation/model"
	"github.com/uyouii/series-approximation/utils"
	"gonum.org/v1/gonum/floats"
)

// SeriesApproximator evaluates truncated Maclaurin series of sin(x) on a fixed sample set.
// It holds no mutable state and is safe for concurrent use.
type SeriesApproximator struct {
	samples *model.SampleSet
}

func NewSeriesApproximator(samples *model.SampleSet) (*SeriesApproximator, error) {
	if samples.IsEmpty() {
		return nil, fmt.Errorf("empty sample set: %w", common.ErrorInvalidArgument)
	}
	return &SeriesApproximator{samples: samples}, nil
}

func (a *SeriesApproximator) Samples() *model.SampleSet {
	return a.samples
}

// Evaluate returns the sum of the first order non-zero terms at every sample.
// Order 0 keeps no term and yields zeros. Non-finite terms are not rejected,
// they show up as NaN or Inf in the result, see CheckFinite.
func (a *SeriesApproximator) Evaluate(order model.TruncationOrder) ([]float64, error) {
	if a == nil || a.samples.IsEmpty() {
		return nil, fmt.Errorf("empty sample set: %w", common.ErrorInvalidArgument)
	}
	if order < 0 {
		return nil, fmt.Errorf("truncation order %v: %w", order, common.ErrorInvalidArgument)
	}

	res := make([]float64, a.samples.Len())
	for i := range res {
		res[i] = SinSeries(a.samples.At(i), int(order))
	}
	return res, nil
}

func (a *SeriesApproximator) EvaluateOrders(orders []model.TruncationOrder) (model.ApproximationResult, error) {
	res := model.ApproximationResult{}
	for _, order := range orders {
		if _, ok := res[order]; ok {
			continue
		}
		values, err := a.Evaluate(order)
		if err != nil {
			return nil, err
		}
		res[order] = values
	}
	return res, nil
}

// Exact evaluates math.Sin on the samples.
func (a *SeriesApproximator) Exact() ([]float64, error) {
	if a == nil || a.samples.IsEmpty() {
		return nil, fmt.Errorf("empty sample set: %w", common.ErrorInvalidArgument)
	}
	res := make([]float64, a.samples.Len())
	for i := range res {
		res[i] = math.Sin(a.samples.At(i))
	}
	return res, nil
}

// SinSeries computes sum_{k<order} (-1)^k x^(2k+1) / (2k+1)!.
// Each term is the previous one times -x^2 / ((2k)(2k+1)), so the factorial is
// accumulated as a float product and never overflows on its own.
func SinSeries(x float64, order int) float64 {
	if order <= 0 {
		return 0
	}
	term := x
	result := term
	x2 := x * x
	for k := 1; k < order; k++ {
		term *= -x2 / (float64(2*k) * float64(2*k+1))
		result += term
	}
	return result
}

// AbsoluteError returns |exact[i] - approx[i]| for every i.
func AbsoluteError(exact, approx []float64) (model.ErrorResult, error) {
	if len(exact) != len(approx) {
		return nil, fmt.Errorf("exact len %v, approx len %v: %w",
			len(exact), len(approx), common.ErrorInvalidArgument)
	}
	res := make(model.ErrorResult, len(exact))
	if len(res) == 0 {
		return res, nil
	}
	floats.SubTo(res, exact, approx)
	for i := range res {
		res[i] = math.Abs(res[i])
	}
	return res, nil
}

func CheckFinite(values []float64) error {
	if index, ok := utils.AllFinite(values); !ok {
		return fmt.Errorf("value %v at index %v: %w", values[index], index, common.ErrorNumericAnomaly)
	}
	return nil
}
