package fighter

import (
	"math"

	"github.com/automoto/doomerang-brawl/moves"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// SetMoveInput records the planar stick direction. Magnitude is capped at 1.
func (f *Fighter) SetMoveInput(x, z float64) {
	f.inputX, f.inputZ = gamemath.NormalizeInput(x, z)
}

// SetRunning toggles run speed.
func (f *Fighter) SetRunning(running bool) {
	f.running = running
}

// MovePlayer integrates velocity and position for one tick.
func (f *Fighter) MovePlayer(dt float64) {
	if dt <= 0 || f.hitlag > 0 {
		return
	}
	p := f.profile()

	f.dashCooldown = math.Max(0, f.dashCooldown-dt)
	f.landing = math.Max(0, f.landing-dt)

	inputX, inputZ := f.inputX, f.inputZ
	if f.hitstun > 0 {
		inputX, inputZ = 0, 0
	}

	if f.dashTimer > 0 {
		// Dash velocity is held until the dash ends.
		f.dashTimer = math.Max(0, f.dashTimer-dt)
	} else {
		speed := p.WalkSpeed
		if f.running {
			speed = p.RunSpeed
		}
		accel := p.Acceleration * dt
		if !f.grounded {
			accel *= f.physics.AirControl
		}
		f.vel.X = gamemath.MoveToward(f.vel.X, inputX*speed, accel)
		f.vel.Z = gamemath.MoveToward(f.vel.Z, inputZ*speed, accel)
	}

	if !f.grounded {
		f.vel.Y = math.Max(f.vel.Y+f.physics.Gravity*dt, -f.physics.MaxFallSpeed)
	}

	f.moveHorizontal(f.vel.X*dt, f.vel.Z*dt)
	f.moveVertical(f.vel.Y * dt)

	if (inputX != 0 || inputZ != 0) && f.attack == moves.MoveNone {
		want := gamemath.HeadingOf(inputX, inputZ)
		f.facing = gamemath.LerpAngle(f.facing, want, math.Min(1, f.physics.TurnRate*dt))
	}
}

func (f *Fighter) moveHorizontal(dx, dz float64) {
	if dx == 0 && dz == 0 {
		return
	}
	if f.body != nil {
		mx, mz := f.body.Move(dx, dz)
		if mx != dx {
			f.vel.X = 0
		}
		if mz != dz {
			f.vel.Z = 0
		}
		dx, dz = mx, mz
	}
	x, z := f.bounds.Clamp(f.pos.X+dx, f.pos.Z+dz, f.radius)
	if x != f.pos.X+dx {
		f.vel.X = 0
	}
	if z != f.pos.Z+dz {
		f.vel.Z = 0
	}
	f.pos.X, f.pos.Z = x, z
	if f.body != nil {
		f.body.Place(x, z)
	}
}

func (f *Fighter) moveVertical(dy float64) {
	f.pos.Y += dy
	if f.pos.Y > f.physics.GroundY {
		f.grounded = false
		return
	}
	f.pos.Y = f.physics.GroundY
	if f.vel.Y < 0 {
		f.vel.Y = 0
	}
	if !f.grounded {
		f.grounded = true
		f.landing = f.combat.LandingTime
	}
}

// Jump launches the fighter when grounded. Returns false if it had no effect.
func (f *Fighter) Jump() bool {
	if !f.grounded || f.hitstun > 0 || f.hitlag > 0 {
		return false
	}
	f.vel.Y = f.profile().JumpImpulse
	f.grounded = false
	return true
}

// Dash bursts along the input direction, or facing when there is no input, and
// grants a short invulnerability window. Returns false while on cooldown.
func (f *Fighter) Dash() bool {
	if f.dashCooldown > 0 || f.hitstun > 0 || f.hitlag > 0 {
		return false
	}
	p := f.profile()
	dirX, dirZ := f.inputX, f.inputZ
	if l := math.Hypot(dirX, dirZ); l > 0 {
		dirX, dirZ = dirX/l, dirZ/l
	} else {
		dirX, dirZ = math.Sin(f.facing), math.Cos(f.facing)
	}
	f.vel.X = dirX * p.DashSpeed
	f.vel.Z = dirZ * p.DashSpeed
	f.invuln = math.Max(f.invuln, f.dash.Invulnerability)
	f.dashCooldown = p.DashCooldown
	f.dashTimer = p.DashDuration()
	return true
}
