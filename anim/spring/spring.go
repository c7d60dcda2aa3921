// Package spring integrates second-order springs used for procedural offsets.
package spring

import (
	"math"

	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// Spring pulls Value toward Target with acceleration k*(target-value) - c*velocity.
type Spring struct {
	Stiffness float64
	Damping   float64

	value    float64
	velocity float64
	target   float64
}

// New returns a spring at rest at value.
func New(stiffness, damping, value float64) *Spring {
	return &Spring{Stiffness: stiffness, Damping: damping, value: value, target: value}
}

// CriticalDamping returns the damping that makes a unit-mass spring of the given
// stiffness critically damped.
func CriticalDamping(stiffness float64) float64 {
	if stiffness <= 0 {
		return 0
	}
	return 2 * math.Sqrt(stiffness)
}

// Critical returns a critically damped spring at rest at value.
func Critical(stiffness, value float64) *Spring {
	return New(stiffness, CriticalDamping(stiffness), value)
}

// SetTarget moves the rest point. Non-finite targets are ignored.
func (s *Spring) SetTarget(target float64) {
	if !gamemath.IsFinite(target) {
		return
	}
	s.target = target
}

// Snap places the spring at rest on v.
func (s *Spring) Snap(v float64) {
	if !gamemath.IsFinite(v) {
		return
	}
	s.value = v
	s.target = v
	s.velocity = 0
}

// Update advances the spring by dt with semi-implicit Euler and returns the new value.
func (s *Spring) Update(dt float64) float64 {
	if dt <= 0 || !gamemath.IsFinite(dt) {
		return s.value
	}
	accel := s.Stiffness*(s.target-s.value) - s.Damping*s.velocity
	s.velocity += accel * dt
	s.value += s.velocity * dt
	return s.value
}

// IsAtRest reports whether both position error and velocity are below eps.
func (s *Spring) IsAtRest(eps float64) bool {
	return math.Abs(s.target-s.value) < eps && math.Abs(s.velocity) < eps
}

func (s *Spring) Value() float64    { return s.value }
func (s *Spring) Velocity() float64 { return s.velocity }
func (s *Spring) Target() float64   { return s.target }

// Spring3 drives a vector offset with three independent springs.
type Spring3 struct {
	X, Y, Z *Spring
}

// NewCritical3 returns three critically damped springs at rest at v.
func NewCritical3(stiffness float64, v gamemath.Vec3) Spring3 {
	return Spring3{
		X: Critical(stiffness, v.X),
		Y: Critical(stiffness, v.Y),
		Z: Critical(stiffness, v.Z),
	}
}

// SetTarget sets all three targets; non-finite components are ignored individually.
func (s Spring3) SetTarget(v gamemath.Vec3) {
	s.X.SetTarget(v.X)
	s.Y.SetTarget(v.Y)
	s.Z.SetTarget(v.Z)
}

func (s Spring3) Update(dt float64) gamemath.Vec3 {
	return gamemath.Vec3{X: s.X.Update(dt), Y: s.Y.Update(dt), Z: s.Z.Update(dt)}
}

func (s Spring3) Value() gamemath.Vec3 {
	return gamemath.Vec3{X: s.X.Value(), Y: s.Y.Value(), Z: s.Z.Value()}
}

func (s Spring3) IsAtRest(eps float64) bool {
	return s.X.IsAtRest(eps) && s.Y.IsAtRest(eps) && s.Z.IsAtRest(eps)
}
