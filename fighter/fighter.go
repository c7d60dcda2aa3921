// Package fighter is the authoritative per-combatant simulation: movement
// integration, attack phases, combo chaining, input buffering and the meter
// economy. All time comes from dt; nothing here reads a clock.
package fighter

import (
	"github.com/google/uuid"

	"github.com/automoto/doomerang-brawl/archetypes"
	"github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/moves"
	"github.com/automoto/doomerang-brawl/observability"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// Phase is the stage of the active attack.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseWindup
	PhaseActive
	PhaseRecovery
)

func (p Phase) String() string {
	switch p {
	case PhaseWindup:
		return "windup"
	case PhaseActive:
		return "active"
	case PhaseRecovery:
		return "recovery"
	}
	return "none"
}

// Target is anything a fighter can aim at.
type Target interface {
	TargetPosition() gamemath.Vec3
}

// PointTarget is a fixed position target, used for training dummies and tests.
type PointTarget gamemath.Vec3

func (p PointTarget) TargetPosition() gamemath.Vec3 { return gamemath.Vec3(p) }

type invulnerable interface {
	Invulnerable() bool
}

// Body resolves planar movement against arena geometry.
type Body interface {
	// Move attempts a planar displacement and returns what was actually applied.
	Move(dx, dz float64) (mx, mz float64)
	// Place teleports the body to (x, z).
	Place(x, z float64)
}

// Bounds is the playable rectangle on the XZ plane.
type Bounds struct {
	MinX, MaxX float64
	MinZ, MaxZ float64
}

// BoundsFor centres an arena of the given size on the origin.
func BoundsFor(a config.ArenaConfig) Bounds {
	return Bounds{MinX: -a.Width / 2, MaxX: a.Width / 2, MinZ: -a.Depth / 2, MaxZ: a.Depth / 2}
}

// Clamp keeps a footprint of radius r inside the bounds.
func (b Bounds) Clamp(x, z, r float64) (float64, float64) {
	return clampAxis(x, b.MinX+r, b.MaxX-r), clampAxis(z, b.MinZ+r, b.MaxZ-r)
}

func clampAxis(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return gamemath.Clamp(v, lo, hi)
}

// Options configure a new fighter.
type Options struct {
	ID       uuid.UUID // zero means generate one
	Role     archetypes.Role
	Moves    *moves.Set
	Settings config.Settings
	Position gamemath.Vec3
	Facing   float64
	Body     Body
	Bounds   *Bounds // nil means derive from Settings.Arena
	Notifier *observability.Notifier
}

// Fighter is one combatant. It is not safe for concurrent use.
type Fighter struct {
	id       uuid.UUID
	role     archetypes.Role
	set      *moves.Set
	physics  config.PhysicsConfig
	combat   config.CombatConfig
	meter    config.MeterConfig
	dash     config.DashConfig
	radius   float64
	bounds   Bounds
	body     Body
	notifier *observability.Notifier

	pos      gamemath.Vec3
	vel      gamemath.Vec3
	facing   float64
	grounded bool
	inputX   float64
	inputZ   float64
	running  bool

	attack         moves.MoveID
	attackElapsed  float64
	phase          Phase
	cancelEligible bool
	hitResolved    bool
	attackSerial   uint64

	combo       int
	comboTimer  float64
	comboDamage float64
	lastHitAt   float64
	bufLight    bool
	bufHeavy    bool

	special  float64
	ultimate float64

	invuln       float64
	dashCooldown float64
	dashTimer    float64
	hitstun      float64
	hitlag       float64
	landing      float64
	damageTaken  float64

	clock  float64
	target Target
	outbox []HitEvent
}

// New creates a fighter standing at opts.Position with empty meters.
func New(opts Options) *Fighter {
	id := opts.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	bounds := BoundsFor(opts.Settings.Arena)
	if opts.Bounds != nil {
		bounds = *opts.Bounds
	}
	f := &Fighter{
		id:       id,
		role:     opts.Role,
		set:      opts.Moves,
		physics:  opts.Settings.Physics,
		combat:   opts.Settings.Combat,
		meter:    opts.Settings.Meter,
		dash:     opts.Settings.Dash,
		radius:   opts.Settings.Arena.FighterRadius,
		bounds:   bounds,
		body:     opts.Body,
		notifier: opts.Notifier,
	}
	f.Reset(opts.Position, opts.Facing)
	return f
}

// Reset puts the fighter back to its match-start state at pos.
func (f *Fighter) Reset(pos gamemath.Vec3, facing float64) {
	x, z := f.bounds.Clamp(pos.X, pos.Z, f.radius)
	f.pos = gamemath.Vec3{X: x, Y: pos.Y, Z: z}
	if f.pos.Y <= f.physics.GroundY {
		f.pos.Y = f.physics.GroundY
	}
	f.grounded = f.pos.Y <= f.physics.GroundY
	if f.body != nil {
		f.body.Place(x, z)
	}
	f.vel = gamemath.Vec3{}
	f.facing = gamemath.WrapAngle(facing)
	f.inputX, f.inputZ, f.running = 0, 0, false
	f.clearAttack()
	f.bufLight, f.bufHeavy = false, false
	f.combo, f.comboTimer, f.comboDamage = 0, 0, 0
	f.special, f.ultimate = 0, 0
	f.invuln, f.dashCooldown, f.dashTimer = 0, 0, 0
	f.hitstun, f.hitlag, f.landing = 0, 0, 0
	f.damageTaken = 0
	f.outbox = f.outbox[:0]
}

func (f *Fighter) ID() uuid.UUID { return f.id }
func (f *Fighter) Role() archetypes.Role { return f.role }
func (f *Fighter) Moves() *moves.Set { return f.set }
func (f *Fighter) Position() gamemath.Vec3 { return f.pos }
func (f *Fighter) Velocity() gamemath.Vec3 { return f.vel }
func (f *Fighter) Facing() float64 { return f.facing }
func (f *Fighter) Grounded() bool { return f.grounded }
func (f *Fighter) Attack() moves.MoveID { return f.attack }
func (f *Fighter) Phase() Phase { return f.phase }
func (f *Fighter) CancelEligible() bool { return f.cancelEligible }
func (f *Fighter) Combo() int { return f.combo }
func (f *Fighter) ComboDamage() float64 { return f.comboDamage }
func (f *Fighter) SpecialMeter() float64 { return f.special }
func (f *Fighter) UltimateMeter() float64 { return f.ultimate }
func (f *Fighter) DashCooldown() float64 { return f.dashCooldown }
func (f *Fighter) InHitstun() bool { return f.hitstun > 0 }
func (f *Fighter) DamageTaken() float64 { return f.damageTaken }
func (f *Fighter) Elapsed() float64 { return f.clock }
func (f *Fighter) Target() Target { return f.target }
func (f *Fighter) TargetPosition() gamemath.Vec3 { return f.pos }

// Invulnerable reports whether the fighter is inside an i-frame window.
func (f *Fighter) Invulnerable() bool { return f.invuln > 0 }

// SetTarget tracks t for range checks and hits. nil clears it.
func (f *Fighter) SetTarget(t Target) {
	if t == Target(f) {
		return
	}
	f.target = t
}

// SetTargetPosition tracks a fixed point.
func (f *Fighter) SetTargetPosition(p gamemath.Vec3) {
	f.target = PointTarget(p)
}

// SetSpecialMeter and SetUltimateMeter write the meters through the usual clamp.
func (f *Fighter) SetSpecialMeter(v float64) { f.special = f.clampMeter(v) }
func (f *Fighter) SetUltimateMeter(v float64) { f.ultimate = f.clampMeter(v) }

func (f *Fighter) profile() archetypes.MovementProfile {
	return archetypes.ProfileFor(f.role)
}
