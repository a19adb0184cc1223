package points

import (
	"math"
	"math/bits"
)

// Bounds that keep computed values inside the order tables' numeric columns.
const (
	// maxAmount is the largest absolute currency amount (reais) read from an invoice.
	maxAmount = 1e8
	// maxQuantity is the largest absolute quantity read from an invoice line.
	maxQuantity = 1e8
	// maxTotalCents is the largest order total persisted, numeric(12,2).
	maxTotalCents = 999_999_999_999
	// maxPoints caps the points of a single invoice, INTEGER column.
	maxPoints = math.MaxInt32
)

// toCents converts a currency amount to integer cents, rounding half away from zero.
// Non-finite and out-of-range amounts are unreadable and yield 0.
func toCents(v float64) int64 {
	if !withinBound(v, maxAmount) {
		return 0
	}

	return int64(math.Round(v * 100))
}

func fromCents(c int64) float64 {
	return float64(c) / 100
}

func withinBound(v, limit float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) <= limit
}

// boundedOr returns *v when it is set, finite and within limit, fallback otherwise.
func boundedOr(v *float64, limit, fallback float64) float64 {
	if v == nil || !withinBound(*v, limit) {
		return fallback
	}

	return *v
}

// pointsFor applies floor(total * rate) using cents and tenths.
func pointsFor(totalCents int64, category Category) int {
	if totalCents <= 0 || category.RateTenths <= 0 {
		return 0
	}

	hi, lo := bits.Mul64(uint64(totalCents), uint64(category.RateTenths))
	if hi >= 1000 {
		return maxPoints
	}
	quotient, _ := bits.Div64(hi, lo, 1000)
	if quotient > maxPoints {
		return maxPoints
	}

	return int(quotient)
}

// addCapped adds b to a and clamps the sum to [-limit, limit].
func addCapped(a, b, limit int64) int64 {
	switch {
	case b > 0 && a > limit-b:
		return limit
	case b < 0 && a < -limit-b:
		return -limit
	}

	return a + b
}
