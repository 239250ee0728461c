package utils

import "github.com/shopspring/decimal"

// Round rounds v to the given number of decimal places using decimal
// arithmetic so repeated rounding stays stable across platforms.
func Round(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}

// Round2 rounds to cents, the precision option prices are quoted at.
func Round2(v float64) float64 {
	return Round(v, 2)
}

// Round4 rounds to four decimal places, used for parity residuals.
func Round4(v float64) float64 {
	return Round(v, 4)
}
