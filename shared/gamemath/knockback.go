package gamemath

import "math"

// KnockbackMagnitude grows linearly with the damage a defender has taken in the
// current combo.
func KnockbackMagnitude(base, growth, comboDamage float64) float64 {
	return base + growth*comboDamage/100
}

// KnockbackVector launches along facing (yaw, radians) tilted up by angle
// (radians above the horizontal).
func KnockbackVector(facing, angle, magnitude float64) Vec3 {
	horizontal := math.Cos(angle) * magnitude
	return Vec3{
		X: math.Sin(facing) * horizontal,
		Y: math.Sin(angle) * magnitude,
		Z: math.Cos(facing) * horizontal,
	}
}

// PlanarDirection returns the unit vector from (fromX, fromZ) toward (toX, toZ),
// or zero when the points coincide.
func PlanarDirection(fromX, fromZ, toX, toZ float64) (dirX, dirZ float64) {
	dx := toX - fromX
	dz := toZ - fromZ
	dist := math.Sqrt(dx*dx + dz*dz)
	if dist > 0 {
		dirX = dx / dist
		dirZ = dz / dist
	}
	return dirX, dirZ
}
