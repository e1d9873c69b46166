package core

import (
	"math"
	"strconv"
)

// Precision is the number of decimal digits kept in every TF, IDF and TF-IDF value.
const Precision = 3

// Round rounds x to Precision decimal digits.
//
// Rounding goes through the correctly rounded decimal form of x, so a tie is
// judged on the exact binary value and broken to even. This matches the
// values produced by Python's round(x, 3).
func Round(x float64) float64 {
	return RoundTo(x, Precision)
}

// RoundTo rounds x to the given number of decimal digits.
func RoundTo(x float64, digits int) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', digits, 64), 64)
	if err != nil {
		return x
	}
	return r
}
