package utils

import "math"

// FormatFloat rounds f to round decimal places.
func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow10(int(round))
	return math.Round(f*scale) / scale
}

// Linspace returns num evenly spaced values over [start, stop].
func Linspace(start, stop float64, num int) []float64 {
	if num < 1 {
		return []float64{}
	}
	if num == 1 {
		return []float64{start}
	}
	step := (stop - start) / float64(num-1)
	grid := make([]float64, num)
	for i := 0; i < num; i++ {
		grid[i] = start + float64(i)*step
	}
	grid[num-1] = stop
	return grid
}

// IntRange returns the integers from..to inclusive as floats.
func IntRange(from, to int) []float64 {
	res := []float64{}
	for i := from; i <= to; i++ {
		res = append(res, float64(i))
	}
	return res
}
