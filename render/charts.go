package render

import (
	"fmt"
	"strconv"

	"github.com/uyouii/ninebox-rating/model"
	chart "github.com/wcharczuk/go-chart/v2"
)

const axisName = "9 Box Rating"

func baseChart(title string) chart.Chart {
	return chart.Chart{
		Title:      title,
		TitleStyle: chart.Style{FontSize: TitleFontSize, FontColor: ColorText},
		Width:      getPanelWidth(),
		Height:     getPanelHeight(),
		DPI:        DPI,
		Background: chart.Style{
			FillColor: ColorBackground,
			Padding: chart.Box{
				Top:    pixels(40),
				Left:   pixels(20),
				Right:  pixels(20),
				Bottom: pixels(20),
			},
		},
	}
}

func axisStyle() chart.Style {
	return chart.Style{
		StrokeColor: ColorEdge,
		StrokeWidth: points(EdgeLineWidth),
		FontSize:    TickFontSize,
		FontColor:   ColorText,
	}
}

func gridStyle() chart.Style {
	return chart.Style{
		StrokeColor: ColorGrid,
		StrokeWidth: points(GridLineWidth),
	}
}

func curveLabel(prefix string, stats *model.SummaryStatistics) string {
	return fmt.Sprintf("%s (μ=%.2f, σ=%.2f)", prefix, stats.Mean, stats.StdDev)
}

func markerSeries(name string, x, top float64, base chart.Style) chart.ContinuousSeries {
	style := base
	style.StrokeWidth = points(MarkerLineWidth)
	style.StrokeDashArray = []float64{points(4), points(2)}
	return chart.ContinuousSeries{
		Name:    name,
		Style:   style,
		XValues: []float64{x, x},
		YValues: []float64{0, top},
	}
}

func densityValues(curve []model.Density) ([]float64, []float64) {
	xs, ys := make([]float64, 0, len(curve)), make([]float64, 0, len(curve))
	for _, point := range curve {
		xs = append(xs, point.X)
		ys = append(ys, point.Value)
	}
	return xs, ys
}

func legend(c *chart.Chart) chart.Renderable {
	return chart.Legend(c, chart.Style{
		FontSize:    LabelFontSize,
		FillColor:   ColorBackground,
		StrokeColor: ColorGrid,
		StrokeWidth: points(EdgeLineWidth),
	})
}

// histogramChart is the density histogram with the fitted normal curve and the mean and
// median markers.
func histogramChart(data *FigureData) chart.Chart {
	stats := data.Statistics

	top := 0.0
	bars := make([]bar, 0, len(data.Bins))
	width := 1.0
	for _, bin := range data.Bins {
		bars = append(bars, bar{X: bin.Center(), Height: bin.Density})
		top = max(top, bin.Density)
		width = bin.Width()
	}
	for _, point := range data.Curve {
		top = max(top, point.Value)
	}
	yTicks, yTop := niceTicks(top*YHeadroom, 6, 0, "%.2f")

	series := []chart.Series{
		barSeries{
			Name: "Actual Distribution",
			Style: chart.Style{
				FillColor:   ColorSteelBlue,
				StrokeColor: ColorEdge,
				StrokeWidth: points(EdgeLineWidth),
			},
			Width: width,
			Bars:  bars,
		},
	}
	if len(data.Curve) > 0 {
		xs, ys := densityValues(data.Curve)
		series = append(series, chart.ContinuousSeries{
			Name:    curveLabel("Normal Distribution", stats),
			Style:   chart.Style{StrokeColor: ColorCurve, StrokeWidth: points(CurveLineWidth)},
			XValues: xs,
			YValues: ys,
		})
	}
	series = append(series,
		markerSeries(fmt.Sprintf("Mean: %.2f", stats.Mean), stats.Mean, yTop,
			chart.Style{StrokeColor: ColorCurve}),
		markerSeries(fmt.Sprintf("Median: %.2f", stats.Median), stats.Median, yTop,
			chart.Style{StrokeColor: ColorMedian}),
	)

	c := baseChart("Distribution of 9 Box Ratings with Normal Curve Overlay")
	c.XAxis = chart.XAxis{
		Name:           axisName,
		NameStyle:      chart.Style{FontSize: AxisFontSize, FontColor: ColorText},
		Style:          axisStyle(),
		Range:          &chart.ContinuousRange{Min: AxisLower, Max: AxisUpper},
		Ticks:          axisTicks(),
		GridMajorStyle: gridStyle(),
	}
	c.YAxis = chart.YAxis{
		Name:           "Density",
		NameStyle:      chart.Style{FontSize: AxisFontSize, FontColor: ColorText},
		Style:          axisStyle(),
		Range:          &chart.ContinuousRange{Min: 0, Max: yTop},
		Ticks:          yTicks,
		GridMajorStyle: gridStyle(),
	}
	c.Series = series
	c.Elements = []chart.Renderable{legend(&c)}
	return c
}

// frequencyChart is the count bar chart with the normal curve scaled to counts and the
// statistics box.
func frequencyChart(data *FigureData) chart.Chart {
	stats := data.Statistics

	top := float64(data.Frequency.MaxCount())
	bars := []bar{}
	for _, entry := range data.Frequency.Entries {
		if entry.Rating-FrequencyBarWidth/2 < AxisLower || entry.Rating+FrequencyBarWidth/2 > AxisUpper {
			continue
		}
		bars = append(bars, bar{
			X:      entry.Rating,
			Height: float64(entry.Count),
			Label:  strconv.Itoa(entry.Count),
		})
	}
	for _, point := range data.ScaledCounts {
		top = max(top, point.Value)
	}
	yTicks, yTop := niceTicks(top*YHeadroom, 6, 1, "%.0f")

	series := []chart.Series{
		barSeries{
			Style: chart.Style{
				FillColor:   ColorSteelBlue,
				StrokeColor: ColorEdge,
				StrokeWidth: points(EdgeLineWidth),
			},
			LabelStyle: chart.Style{FontSize: LabelFontSize, FontColor: ColorText},
			Width:      FrequencyBarWidth,
			Bars:       bars,
		},
	}
	if len(data.ScaledCounts) > 0 {
		xs, ys := densityValues(data.ScaledCounts)
		series = append(series, chart.ContinuousSeries{
			Name: curveLabel("Theoretical Normal", stats),
			Style: chart.Style{
				StrokeColor: ColorCurve,
				StrokeWidth: points(CurveLineWidth),
				DotColor:    ColorCurve,
				DotWidth:    points(DotSize),
			},
			XValues: xs,
			YValues: ys,
		})
	}

	c := baseChart("Frequency Distribution of 9 Box Ratings")
	c.XAxis = chart.XAxis{
		Name:      axisName,
		NameStyle: chart.Style{FontSize: AxisFontSize, FontColor: ColorText},
		Style:     axisStyle(),
		Range:     &chart.ContinuousRange{Min: AxisLower, Max: AxisUpper},
		Ticks:     ratingTicks(),
	}
	c.YAxis = chart.YAxis{
		Name:           "Frequency Count",
		NameStyle:      chart.Style{FontSize: AxisFontSize, FontColor: ColorText},
		Style:          axisStyle(),
		Range:          &chart.ContinuousRange{Min: 0, Max: yTop},
		Ticks:          yTicks,
		GridMajorStyle: gridStyle(),
	}
	c.Series = series
	c.Elements = []chart.Renderable{
		legend(&c),
		textBox(StatisticsLines(stats), chart.Style{
			FontSize:    BoxFontSize,
			FontColor:   ColorText,
			FillColor:   ColorWheat,
			StrokeColor: ColorEdge,
			StrokeWidth: points(EdgeLineWidth),
		}),
	}
	return c
}

// StatisticsLines is the content of the statistics box.
func StatisticsLines(stats *model.SummaryStatistics) []string {
	return []string{
		"Statistics:",
		fmt.Sprintf("Sample Size: %d", stats.Count),
		fmt.Sprintf("Mean: %.2f", stats.Mean),
		fmt.Sprintf("Median: %.2f", stats.Median),
		fmt.Sprintf("Std Dev: %.2f", stats.StdDev),
		fmt.Sprintf("Min: %s", strconv.FormatFloat(stats.Min, 'f', -1, 64)),
		fmt.Sprintf("Max: %s", strconv.FormatFloat(stats.Max, 'f', -1, 64)),
	}
}
