package util

import "math"

// RoundTo rounds a value to the given number of decimal places.
func RoundTo(value float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(value*shift) / shift
}
