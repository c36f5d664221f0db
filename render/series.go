package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

type bar struct {
	X      float64
	Height float64
	Label  string
}

// barSeries draws bars of a fixed width in data units centered on X.
// chart.BarChart cannot share axes with line series, this series can.
type barSeries struct {
	Name  string
	Style chart.Style
	Width float64
	Bars  []bar

	// LabelStyle is used for the text printed above each bar with a non empty Label
	LabelStyle chart.Style
}

func (bs barSeries) GetName() string {
	return bs.Name
}

func (bs barSeries) GetStyle() chart.Style {
	return bs.Style
}

func (bs barSeries) GetYAxis() chart.YAxisType {
	return chart.YAxisPrimary
}

func (bs barSeries) Validate() error {
	if bs.Width <= 0 || math.IsNaN(bs.Width) {
		return fmt.Errorf("bar series %q: width must be positive", bs.Name)
	}
	return nil
}

func (bs barSeries) Render(r chart.Renderer, canvasBox chart.Box, xrange, yrange chart.Range, defaults chart.Style) {
	style := bs.Style.InheritFrom(defaults)
	half := bs.Width / 2

	for _, b := range bs.Bars {
		box := chart.Box{
			Left:   canvasBox.Left + xrange.Translate(b.X-half),
			Right:  canvasBox.Left + xrange.Translate(b.X+half),
			Top:    canvasBox.Bottom - yrange.Translate(b.Height),
			Bottom: canvasBox.Bottom - yrange.Translate(0),
		}
		if b.Height > 0 {
			chart.Draw.Box(r, box, style)
		}
		if b.Label == "" {
			continue
		}

		labelStyle := bs.LabelStyle.InheritFrom(defaults)
		labelStyle.GetTextOptions().WriteToRenderer(r)
		tb := r.MeasureText(b.Label)
		center := (box.Left + box.Right) / 2
		r.Text(b.Label, center-tb.Width()/2, box.Top-pixels(2))
		r.ResetStyle()
	}
}
