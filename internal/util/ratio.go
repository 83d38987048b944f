// Package util holds small numeric helpers shared by the report builders.
package util

import "math"

// Percentage returns part/whole*100 rounded to two decimals, or 0 when whole is 0.
func Percentage(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}

	return Round2(float64(part) / float64(whole) * 100)
}

// GrowthRate returns the percentage change from previous to current, or 0 when previous is 0.
func GrowthRate(current, previous int64) float64 {
	if previous == 0 {
		return 0
	}

	return Round2(float64(current-previous) / float64(previous) * 100)
}

// Average returns total/count rounded to two decimals, or 0 when count is 0.
func Average(total, count int64) float64 {
	if count == 0 {
		return 0
	}

	return Round2(float64(total) / float64(count))
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
