// Package ik solves two-segment limbs with the law of cosines.
package ik

import (
	"math"

	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// reachEpsilon keeps the solver away from the fully extended and fully folded
// singularities.
const reachEpsilon = 1e-4

// Chain is a two-joint limb rooted at the origin.
type Chain struct {
	Upper float64
	Lower float64
}

// Angles are joint rotations in radians. Upper is measured from +X, Lower is
// relative to the upper segment.
type Angles struct {
	Upper float64
	Lower float64
}

// Reach returns the clamped distance range the chain can solve for.
func (c Chain) Reach() (min, max float64) {
	return math.Abs(c.Upper-c.Lower) + reachEpsilon, c.Upper + c.Lower - reachEpsilon
}

// Solve returns joint angles that place the chain end as close to (x, y) as
// the limb allows. bend picks the elbow/knee side: positive bends
// counter-clockwise, negative clockwise. Non-finite input yields zero angles.
func (c Chain) Solve(x, y, bend float64) Angles {
	if !gamemath.IsFinite(x) || !gamemath.IsFinite(y) || c.Upper <= 0 || c.Lower <= 0 {
		return Angles{}
	}
	sign := 1.0
	if bend < 0 {
		sign = -1
	}

	base := 0.0
	dist := math.Hypot(x, y)
	if dist > 0 {
		base = math.Atan2(y, x)
	}

	minReach, maxReach := c.Reach()
	if maxReach < minReach {
		maxReach = minReach
	}
	dist = gamemath.Clamp(dist, minReach, maxReach)

	a, b := c.Upper, c.Lower
	cosKnee := gamemath.Clamp((a*a+b*b-dist*dist)/(2*a*b), -1, 1)
	cosRoot := gamemath.Clamp((a*a+dist*dist-b*b)/(2*a*dist), -1, 1)

	return Angles{
		Upper: base - sign*math.Acos(cosRoot),
		Lower: sign * (math.Pi - math.Acos(cosKnee)),
	}
}

// Forward returns the chain end position for the given angles.
func (c Chain) Forward(ang Angles) (x, y float64) {
	x = c.Upper*math.Cos(ang.Upper) + c.Lower*math.Cos(ang.Upper+ang.Lower)
	y = c.Upper*math.Sin(ang.Upper) + c.Lower*math.Sin(ang.Upper+ang.Lower)
	return x, y
}

// Joint returns the position of the middle joint for the given angles.
func (c Chain) Joint(ang Angles) (x, y float64) {
	return c.Upper * math.Cos(ang.Upper), c.Upper * math.Sin(ang.Upper)
}
