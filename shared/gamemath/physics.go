package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	return MoveToward(speed, 0, friction)
}

// MoveToward steps current toward target by at most maxDelta.
func MoveToward(current, target, maxDelta float64) float64 {
	if maxDelta <= 0 {
		return current
	}
	if target-current > maxDelta {
		return current + maxDelta
	}
	if current-target > maxDelta {
		return current - maxDelta
	}
	return target
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	return Clamp(speed, -max, max)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp blends a toward b by t. t is not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// IsFinite reports whether v is neither NaN nor infinite.
func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// NormalizeInput scales a planar stick vector so its magnitude never exceeds 1.
// Non-finite components collapse to zero.
func NormalizeInput(x, z float64) (float64, float64) {
	if !IsFinite(x) || !IsFinite(z) {
		return 0, 0
	}
	l := math.Hypot(x, z)
	if l > 1 {
		return x / l, z / l
	}
	return x, z
}
