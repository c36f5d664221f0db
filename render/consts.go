package render

import "github.com/wcharczuk/go-chart/v2/drawing"

const (
	DPI = 300.0

	FigureWidthInch  = 12.0
	FigureHeightInch = 10.0
	PanelCnt         = 2

	// matplotlib keeps 0.1 inch around a tight bounding box
	TrimPadInch = 0.1

	AxisLower = 0.0
	AxisUpper = 10.0

	MinTickRating = 1
	MaxTickRating = 9

	FrequencyBarWidth = 0.6

	// room above the tallest bar for the legend and the statistics box
	YHeadroom = 1.5

	TitleFontSize = 14.0
	AxisFontSize  = 12.0
	TickFontSize  = 10.0
	LabelFontSize = 10.0
	BoxFontSize   = 10.0

	CurveLineWidth  = 2.0
	MarkerLineWidth = 2.0
	EdgeLineWidth   = 1.0
	GridLineWidth   = 0.8
	DotSize         = 4.0
)

var (
	ColorSteelBlue  = drawing.ColorFromHex("4682b4").WithAlpha(178)
	ColorCurve      = drawing.ColorFromHex("ff0000")
	ColorMedian     = drawing.ColorFromHex("008000")
	ColorEdge       = drawing.ColorBlack
	ColorGrid       = drawing.ColorFromHex("b0b0b0").WithAlpha(77)
	ColorWheat      = drawing.ColorFromHex("f5deb3").WithAlpha(128)
	ColorText       = drawing.ColorBlack
	ColorBackground = drawing.ColorWhite
)

func getPanelWidth() int {
	return int(FigureWidthInch * DPI)
}

func getPanelHeight() int {
	return int(FigureHeightInch * DPI / PanelCnt)
}

// points converts typographic points into pixels at DPI.
func points(pt float64) float64 {
	return pt * DPI / 72
}

func pixels(pt float64) int {
	return int(points(pt) + 0.5)
}
