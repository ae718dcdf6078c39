package vmath

import "math"

// Approach moves value toward target by at most delta, landing exactly on target
func Approach(value, target, delta float64) float64 {
	if value < target {
		return math.Min(value+delta, target)
	}
	return math.Max(value-delta, target)
}

// Clamp restricts v to [lo, hi]; lo wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Sign returns -1, 0 or 1
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Decay counts a timer down by dt, flooring at zero
func Decay(timer, dt float64) float64 {
	return math.Max(timer-dt, 0)
}
