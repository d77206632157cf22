package util

import (
	"math"
)

// Coerce returns the given value, limited to the range [min..max].
// NaN is not a member of any range and propagates through.
func Coerce(value float64, min float64, max float64) float64 {
	return math.Max(min, math.Min(max, value))
}

// Ratio calculates the ratio that target has in comparison to rangeMin and rangeMax
// Make sure that:
// rangeMin <= target <= rangeMax
// rangeMax - rangeMin != 0
func Ratio(target float64, rangeMin float64, rangeMax float64) float64 {
	return (target - rangeMin) / (rangeMax - rangeMin)
}
