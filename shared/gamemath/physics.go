package gamemath

import "math"

// Lerp interpolates between from and to. t is clamped to [0, 1].
func Lerp(from, to, t float64) float64 {
	t = Clamp(t, 0, 1)
	return math.FMA(from, 1-t, to*t)
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// DecayFactor returns the multiplier applied to a velocity with the given
// per-second retention after dt seconds.
func DecayFactor(retention, dt float64) float64 {
	return math.Pow(retention, dt)
}

// NearlyEqual reports whether a and b differ by at most eps.
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
