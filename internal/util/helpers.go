package util

import "math"

// Clamp constrains a value to a range.
func Clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FloorZero returns v, or 0 when v is negative.
func FloorZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

// Percent returns part/total as a whole percentage rounded half away from
// zero. A zero total yields 0.
func Percent(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
