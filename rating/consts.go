package rating

const (
	NotApplicableToken = "NA"

	OutputPath = "9_box_rating_bell_curve.png"

	// histogram edges sit on half-integers so every bin is centered on a rating
	HistogramLowerEdge = 0.5
	HistogramUpperEdge = 9.5
	HistogramBinWidth  = 1.0

	CurveLower    = 0.0
	CurveUpper    = 10.0
	CurvePointCnt = 1000

	MinScaledRating = 1
	MaxScaledRating = 9
)

func getOutputPath() string {
	return OutputPath
}

func getCurvePointCnt() int {
	return CurvePointCnt
}
