package fighter

import (
	"math"

	"github.com/google/uuid"

	"github.com/automoto/doomerang-brawl/archetypes"
	"github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/moves"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// Snapshot is a read-only copy of everything the view layer needs for a frame.
type Snapshot struct {
	ID       uuid.UUID
	Role     archetypes.Role
	State    config.StateID
	Position gamemath.Vec3
	Velocity gamemath.Vec3
	Facing   float64
	Grounded bool
	Speed    float64 // planar speed

	Attack         moves.MoveID
	Phase          Phase
	AttackElapsed  float64
	AttackDuration float64
	AttackSerial   uint64
	CancelEligible bool

	Combo       int
	ComboDamage float64
	Special     float64
	Ultimate    float64

	Invulnerable bool
	Hitstun      float64
	InHitlag     bool
	DamageTaken  float64

	HasTarget bool
	TargetDir gamemath.Vec3 // from fighter to target, unnormalized
}

// Snapshot captures the fighter's current state.
func (f *Fighter) Snapshot() Snapshot {
	s := Snapshot{
		ID:             f.id,
		Role:           f.role,
		State:          f.State(),
		Position:       f.pos,
		Velocity:       f.vel,
		Facing:         f.facing,
		Grounded:       f.grounded,
		Speed:          math.Hypot(f.vel.X, f.vel.Z),
		Attack:         f.attack,
		Phase:          f.phase,
		AttackElapsed:  f.attackElapsed,
		AttackSerial:   f.attackSerial,
		CancelEligible: f.cancelEligible,
		Combo:          f.combo,
		ComboDamage:    f.comboDamage,
		Special:        f.special,
		Ultimate:       f.ultimate,
		Invulnerable:   f.invuln > 0,
		Hitstun:        f.hitstun,
		InHitlag:       f.hitlag > 0,
		DamageTaken:    f.damageTaken,
	}
	if m, ok := f.set.Get(f.attack); ok {
		s.AttackDuration = m.Duration
	}
	if f.target != nil {
		s.HasTarget = true
		s.TargetDir = f.target.TargetPosition().Sub(f.pos)
	}
	return s
}

// State derives the presentation state.
func (f *Fighter) State() config.StateID {
	speed := math.Hypot(f.vel.X, f.vel.Z)
	p := f.profile()
	switch {
	case f.hitstun > 0:
		return config.Hitstun
	case f.attack != moves.MoveNone:
		return config.Attack
	case f.dashTimer > 0:
		return config.Dash
	case !f.grounded && f.vel.Y > 0:
		return config.Jump
	case !f.grounded:
		return config.Fall
	case f.landing > 0:
		return config.Landing
	case speed > (p.WalkSpeed+p.RunSpeed)/2:
		return config.Running
	case speed > 0.1:
		return config.Walk
	}
	return config.Idle
}
