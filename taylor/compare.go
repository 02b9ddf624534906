package taylor

import (
	"context"
	"fmt"
	"math"

	"github.com/uyouii/series-approximation/common"
	"github.com/uyouii/series-approximation/model"
	"github.com/uyouii/series-approximation/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Compare evaluates every order on the samples and measures it against math.Sin.
// A bad order is skipped and reported in the returned error, the other orders are still computed.
func Compare(ctx context.Context, samples *model.SampleSet,
	orders []model.TruncationOrder) (comparison *model.Comparison, err error) {
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Compare recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()))
			comparison, err = nil, fmt.Errorf("compare panic: %v: %w", r, common.ErrorInvalidValue)
		}
	}()

	if len(orders) == 0 {
		return nil, fmt.Errorf("no truncation order: %w", common.ErrorInvalidArgument)
	}

	approximator, err := NewSeriesApproximator(samples)
	if err != nil {
		logger.Error("NewSeriesApproximator failed", zap.Error(err))
		return nil, err
	}

	exact, err := approximator.Exact()
	if err != nil {
		return nil, err
	}

	comparison = model.NewComparison(samples, exact)

	var errs error
	for _, order := range orders {
		if _, ok := comparison.Approximations[order]; ok {
			continue
		}

		approx, err := approximator.Evaluate(order)
		if err != nil {
			logger.Error("Evaluate failed", zap.Error(err), zap.Int("order", int(order)))
			errs = multierr.Append(errs, err)
			continue
		}

		absErr, err := AbsoluteError(exact, approx)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if err := CheckFinite(absErr); err != nil {
			// kept, non-finite values are a valid result for huge samples
			logger.Warn("approximation error not finite", zap.Error(err), zap.Int("order", int(order)))
		}

		comparison.Approximations[order] = approx
		comparison.Errors[order] = absErr
		comparison.Summaries[order] = summarize(order, samples, absErr)
	}

	for _, order := range comparison.Approximations.Orders() {
		summary := comparison.Summaries[order]
		logger.Info("order summary", zap.Int("order", int(order)),
			zap.Float64("log10MaxError", utils.FormatFloat(summary.Log10MaxError, 3)),
			zap.Float64("argMaxX", utils.FormatFloat(summary.ArgMaxX, 3)))
	}

	logger.Info("compare finished", zap.String("comparison", comparison.DebugString()),
		zap.Int("failedOrderCnt", len(multierr.Errors(errs))))
	return comparison, errs
}

func PresetComparison(ctx context.Context, preset Preset) (*model.Comparison, error) {
	logger := utils.GetLogger(ctx)

	samples, err := model.NewUniformSampleSet(preset.Interval, preset.PointCount)
	if err != nil {
		logger.Error("NewUniformSampleSet failed", zap.Error(err), zap.String("preset", preset.Name))
		return nil, err
	}
	return Compare(ctx, samples, preset.Orders)
}

// summarize reports the first non-finite error as the max when there is one,
// floats.MaxIdx skips NaN.
func summarize(order model.TruncationOrder, samples *model.SampleSet, absErr model.ErrorResult) *model.ErrorSummary {
	maxIdx, finite := utils.AllFinite(absErr)
	if finite {
		maxIdx = floats.MaxIdx(absErr)
	}
	maxErr := absErr[maxIdx]
	return &model.ErrorSummary{
		Order:         order,
		MaxError:      maxErr,
		ArgMaxX:       samples.At(maxIdx),
		MeanError:     stat.Mean(absErr, nil),
		Log10MaxError: math.Log10(math.Max(maxErr, ErrorFloorEpsilon)),
	}
}
