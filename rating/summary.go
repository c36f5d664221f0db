package rating

import (
	"context"

	"github.com/uyouii/ninebox-rating/common"
	"github.com/uyouii/ninebox-rating/model"
	"github.com/uyouii/ninebox-rating/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summarize computes the descriptive statistics of sample.
// The standard deviation is the population one (divide by N).
func Summarize(ctx context.Context, sample *model.RatingSample) (*model.SummaryStatistics, error) {
	logger := utils.GetLogger(ctx)

	if sample.IsEmpty() {
		return nil, common.ErrorEmptySample
	}

	sorted := sample.Sorted()
	mean, stddev := stat.PopMeanStdDev(sorted, nil)

	res := &model.SummaryStatistics{
		Count:  len(sorted),
		Mean:   mean,
		StdDev: stddev,
		Median: Median(sorted),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
	}

	logger.Info("summarize sample success", zap.Int("count", res.Count),
		zap.Float64("mean", utils.FormatFloat(res.Mean, 3)),
		zap.Float64("stddev", utils.FormatFloat(res.StdDev, 3)),
		zap.Float64("median", res.Median))
	return res, nil
}

// Median expects sorted values, the two central values are averaged when the length is even.
func Median(sorted []float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
