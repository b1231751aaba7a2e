package utils

import "math"

// RoundDecimal rounds value half away from zero to the given number of
// decimal places, e.g. RoundDecimal(1.23456, 3) is 1.235.
func RoundDecimal(value float64, decimals int) float64 {
	pow := math.Pow10(max(decimals, 0))
	return math.Round(value*pow) / pow
}
