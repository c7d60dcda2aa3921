package gamemath

import "math"

// WrapAngle maps a in radians into [-Pi, Pi].
func WrapAngle(a float64) float64 {
	if !IsFinite(a) {
		return 0
	}
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}

// LerpAngle interpolates from a to b along the shortest arc.
func LerpAngle(a, b, t float64) float64 {
	return WrapAngle(a + WrapAngle(b-a)*t)
}

// HeadingOf returns the yaw that faces along (x, z). Zero yaw faces +Z.
func HeadingOf(x, z float64) float64 {
	return math.Atan2(x, z)
}
