package rating

import (
	"context"
	"math"

	"github.com/uyouii/ninebox-rating/model"
	"github.com/uyouii/ninebox-rating/utils"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// DensityHistogram bins the sample into unit bins between HistogramLowerEdge and HistogramUpperEdge.
// Values outside the edges are left out and the densities are normalized over the binned values,
// so the bar areas sum to 1. The upper edge itself falls into the last bin.
func DensityHistogram(ctx context.Context, sample *model.RatingSample) []model.HistogramBin {
	logger := utils.GetLogger(ctx)

	binCnt := int(math.Round((HistogramUpperEdge - HistogramLowerEdge) / HistogramBinWidth))
	dividers := floats.Span(make([]float64, binCnt+1), HistogramLowerEdge, HistogramUpperEdge)

	inRange, onUpperEdge, outside := []float64{}, 0, 0
	for _, value := range sample.Sorted() {
		switch {
		case value >= HistogramLowerEdge && value < HistogramUpperEdge:
			inRange = append(inRange, value)
		case value == HistogramUpperEdge:
			onUpperEdge++
		default:
			outside++
		}
	}
	if outside > 0 {
		logger.Warn("ratings outside histogram range", zap.Int("cnt", outside))
	}

	counts := make([]float64, binCnt)
	if len(inRange) > 0 {
		counts = stat.Histogram(nil, dividers, inRange, nil)
	}
	counts[binCnt-1] += float64(onUpperEdge)

	total := floats.Sum(counts)

	res := make([]model.HistogramBin, 0, binCnt)
	for i := 0; i < binCnt; i++ {
		bin := model.HistogramBin{
			Lower: dividers[i],
			Upper: dividers[i+1],
			Count: int(counts[i]),
		}
		if total > 0 {
			bin.Density = counts[i] / (total * bin.Width())
		}
		res = append(res, bin)
	}
	return res
}

func normalDist(stats *model.SummaryStatistics) (distuv.Normal, bool) {
	if stats == nil || stats.StdDev <= 0 || math.IsNaN(stats.StdDev) {
		return distuv.Normal{}, false
	}
	return distuv.Normal{Mu: stats.Mean, Sigma: stats.StdDev}, true
}

// NormalCurve evaluates the normal pdf fitted to stats over [CurveLower, CurveUpper].
// A zero standard deviation has no density, the result is then empty.
func NormalCurve(stats *model.SummaryStatistics) []model.Density {
	dist, ok := normalDist(stats)
	if !ok {
		return []model.Density{}
	}

	grid := utils.Linspace(CurveLower, CurveUpper, getCurvePointCnt())
	res := make([]model.Density, 0, len(grid))
	for _, x := range grid {
		res = append(res, model.Density{X: x, Value: dist.Prob(x)})
	}
	return res
}

// ScaledNormalCounts evaluates the fitted pdf on every integer rating and multiplies it by the
// sample size, which puts the curve on the scale of raw counts.
func ScaledNormalCounts(stats *model.SummaryStatistics) []model.Density {
	dist, ok := normalDist(stats)
	if !ok {
		return []model.Density{}
	}

	res := []model.Density{}
	for _, x := range utils.IntRange(MinScaledRating, MaxScaledRating) {
		res = append(res, model.Density{X: x, Value: dist.Prob(x) * float64(stats.Count)})
	}
	return res
}
