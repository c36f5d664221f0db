package render

import (
	"fmt"
	"math"

	"github.com/uyouii/ninebox-rating/utils"
	chart "github.com/wcharczuk/go-chart/v2"
)

// niceTicks picks about n ticks from 0 to at least top using 1, 2, 2.5, 5 steps scaled by a
// power of ten, never below minStep. It returns the ticks and the value of the last one.
func niceTicks(top float64, n int, minStep float64, format string) ([]chart.Tick, float64) {
	if n < 2 {
		n = 2
	}
	if math.IsNaN(top) || top <= 0 {
		top = 1
	}

	mag := math.Pow(10, math.Floor(math.Log10(top/float64(n-1))))
	bestStep, bestScore := mag, math.MaxFloat64
	for _, c := range []float64{1, 2, 2.5, 5, 10} {
		step := c * mag
		if step < minStep {
			continue
		}
		count := math.Max(math.Ceil(top/step), 2)
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore, bestStep = score, step
		}
	}
	bestStep = math.Max(bestStep, minStep)

	end := math.Ceil(top/bestStep) * bestStep
	ticks := []chart.Tick{}
	for i := 0; float64(i)*bestStep <= end+bestStep/2; i++ {
		v := float64(i) * bestStep
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf(format, v)})
	}
	return ticks, end
}

// ratingTicks labels the ratings only, the unlabeled axis ends keep the tick span equal to the
// axis range.
func ratingTicks() []chart.Tick {
	ticks := []chart.Tick{{Value: AxisLower}}
	for _, v := range utils.IntRange(MinTickRating, MaxTickRating) {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.0f", v)})
	}
	return append(ticks, chart.Tick{Value: AxisUpper})
}

// axisTicks labels every integer of the axis range.
func axisTicks() []chart.Tick {
	ticks := []chart.Tick{}
	for _, v := range utils.IntRange(int(AxisLower), int(AxisUpper)) {
		ticks = append(ticks, chart.Tick{Value: v, Label: fmt.Sprintf("%.0f", v)})
	}
	return ticks
}
