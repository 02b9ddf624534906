package utils

import "math"

// FormatFloat rounds f to the given number of decimals, NaN and Inf are kept as is.
func FormatFloat(f float64, round int32) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	scale := math.Pow(10, float64(round))
	return math.Round(f*scale) / scale
}

func AllFinite(data []float64) (int, bool) {
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i, false
		}
	}
	return -1, true
}
