// Package rig turns fighter snapshots into body-part transforms: a base pose
// from the blend controller with procedural layers and leg IK on top.
package rig

import (
	"fmt"
	"math"

	"github.com/automoto/doomerang-brawl/anim/ik"
	"github.com/automoto/doomerang-brawl/anim/motion"
	"github.com/automoto/doomerang-brawl/anim/pose"
	"github.com/automoto/doomerang-brawl/anim/spring"
	"github.com/automoto/doomerang-brawl/archetypes"
	"github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/fighter"
	"github.com/automoto/doomerang-brawl/moves"
	"github.com/automoto/doomerang-brawl/observability"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// leanPerSpeed is torso lean in radians per unit of planar speed before the
// archetype's BodyLean multiplier.
const leanPerSpeed = 0.04

// Layers are the procedural offsets computed by the last Update.
type Layers struct {
	ChestScale float64
	ChestRise  float64
	HeadYaw    float64
	HeadPitch  float64
	HipSway    float64
	Lean       float64
	Bounce     float64
	FootL      motion.FootOffset
	FootR      motion.FootOffset
	Attack     motion.Stage
	Swing      float64
	Intensity  float64
	Secondary  []float64
}

// Animator animates one fighter. It only reads snapshots and never writes
// simulation state.
type Animator struct {
	profile archetypes.MovementProfile
	cfg     config.AnimationConfig
	combat  config.CombatConfig

	blend     *pose.BlendController
	breathing *motion.Breathing
	headLook  *motion.HeadLook
	weight    *motion.WeightShift
	feet      *motion.FootPlacement
	secondary *motion.SecondaryCascade
	attack    motion.AttackTiming
	intensity *spring.Spring
	legs      ik.Chain

	state          config.StateID
	attackSerial   uint64
	layers         Layers
	secondaryParts []string
}

// New builds an animator with the default pose states for a fighter of the
// given profile.
func New(profile archetypes.MovementProfile, settings config.Settings, notifier *observability.Notifier) (*Animator, error) {
	cfg := settings.Animation
	k := cfg.SpringStiffness
	a := &Animator{
		profile:   profile,
		cfg:       cfg,
		combat:    settings.Combat,
		blend:     pose.NewBlendController(notifier),
		breathing: motion.NewBreathing(cfg.BreathRate, cfg.BreathDepth, k),
		headLook:  motion.NewHeadLook(cfg.NeckYawLimit, cfg.NeckPitchLimit, k),
		weight:    motion.NewWeightShift(leanPerSpeed*profile.Cadence.BodyLean, k),
		feet:      motion.NewFootPlacement(cfg.StrideLength, cfg.StepHeight, profile.Cadence.LegSwing, k),
		secondary: motion.NewSecondaryCascade(cfg.SecondaryLinks, k, 0.6),
		intensity: spring.Critical(k*0.25, 0),
		legs:      ik.Chain{Upper: cfg.UpperLeg, Lower: cfg.LowerLeg},
	}
	for i := 0; i < cfg.SecondaryLinks; i++ {
		a.secondaryParts = append(a.secondaryParts, fmt.Sprintf("cloth%d", i))
	}
	for _, st := range DefaultStates() {
		if err := a.blend.AddState(st); err != nil {
			return nil, fmt.Errorf("rig: %w", err)
		}
	}
	a.blend.Play(config.Idle.String(), 0)
	a.state = config.Idle
	return a, nil
}

// Parts lists every part name Transforms fills in.
func (a *Animator) Parts() []string {
	out := make([]string, 0, len(bodyParts)+len(a.secondaryParts))
	out = append(out, bodyParts...)
	return append(out, a.secondaryParts...)
}

// State is the presentation state being played.
func (a *Animator) State() config.StateID { return a.state }

// Blend exposes the underlying controller for inspection.
func (a *Animator) Blend() *pose.BlendController { return a.blend }

// Layers returns the offsets computed by the last Update.
func (a *Animator) Layers() Layers { return a.layers }

// Settled reports whether the hit intensity and secondary motion have come to
// rest within the configured epsilon.
func (a *Animator) Settled() bool {
	return a.intensity.IsAtRest(a.cfg.RestEpsilon) && a.secondary.IsAtRest(a.cfg.RestEpsilon)
}

// Update advances the rig by dt using the fighter's state this tick.
func (a *Animator) Update(snap fighter.Snapshot, dt float64) {
	if dt < 0 || !gamemath.IsFinite(dt) {
		dt = 0
	}
	a.selectState(snap)
	a.blend.SetSpeed(a.playbackSpeed(snap))
	a.blend.Update(dt)

	if snap.Attack == moves.MoveNone {
		a.attack.Stop()
	} else if snap.AttackSerial != a.attackSerial {
		a.attack.Start(snap.AttackDuration, a.combat.WindupFraction, a.combat.ActiveFraction)
	}
	a.attackSerial = snap.AttackSerial
	// Attack motion follows the fighter's own clock so hitlag freezes it too.
	stage, swing := a.attack.Sample(snap.AttackElapsed)

	hit := 0.0
	if snap.Hitstun > 0 {
		hit = 1
	}
	a.intensity.SetTarget(hit)
	intensity := gamemath.Clamp(a.intensity.Update(dt), 0, 1)
	if a.intensity.IsAtRest(a.cfg.RestEpsilon) {
		a.intensity.Snap(hit)
		intensity = hit
	}

	l := &a.layers
	l.Attack, l.Swing, l.Intensity = stage, swing, intensity
	l.ChestScale, l.ChestRise = a.breathing.Update(dt, math.Max(intensity, math.Min(1, snap.Speed/10)))

	if snap.HasTarget {
		a.headLook.SetTarget(snap.TargetDir, snap.Facing)
	} else {
		a.headLook.SetTarget(gamemath.Vec3{}, snap.Facing)
	}
	l.HeadYaw, l.HeadPitch = a.headLook.Update(dt)

	l.HipSway, l.Lean = a.weight.Update(dt, snap.Speed)

	gait := snap.Speed
	if !snap.Grounded {
		gait = 0
	}
	l.FootL, l.FootR = a.feet.Update(dt, gait, a.profile.Cadence.Speed)
	l.Bounce = -a.profile.Cadence.VerticalBounce * math.Max(l.FootL.Lift, l.FootR.Lift) * 0.5

	driver := l.Lean + 0.3*swing - 0.02*snap.Velocity.Y
	l.Secondary = a.secondary.Update(dt, driver)
}

func (a *Animator) selectState(snap fighter.Snapshot) {
	next := snap.State
	if _, ok := config.StateAnimations[next]; !ok {
		next = config.Idle
	}
	if next == a.state {
		// A chained attack replays the attack pose from the top.
		if next == config.Attack && snap.AttackSerial != a.attackSerial {
			a.blend.Restart()
		}
		return
	}
	blend := config.StateAnimations[next].Blend
	if next == config.Attack {
		blend = a.cfg.AttackBlendTime
	} else if blend <= 0 {
		blend = a.cfg.BlendTime
	}
	if a.blend.Play(next.String(), blend) {
		a.state = next
	}
}

// playbackSpeed stretches the attack state over the move's duration and
// plays locomotion at the archetype's cadence.
func (a *Animator) playbackSpeed(snap fighter.Snapshot) float64 {
	switch a.state {
	case config.Walk, config.Running, config.Idle:
		return a.profile.Cadence.Speed
	case config.Attack:
		if snap.AttackDuration > 0 {
			return config.StateAnimations[config.Attack].Duration / snap.AttackDuration
		}
	}
	return 1
}

// Transforms returns the final transform of each requested part: base pose
// plus procedural layers. Unknown parts come back as identity.
func (a *Animator) Transforms(parts []string) map[string]pose.Transform {
	out := a.blend.GetCurrentTransforms(parts)
	l := a.layers
	c := a.profile.Cadence
	for name, tr := range out {
		switch name {
		case Hips:
			tr.Position.X += l.HipSway
			tr.Position.Y += l.Bounce
		case Torso:
			tr.Rotation.X += l.Lean
		case Chest:
			tr.Scale.Y *= l.ChestScale
			tr.Position.Y += l.ChestRise
		case Head:
			tr.Rotation.Y += l.HeadYaw
			tr.Rotation.X += l.HeadPitch
		case ArmR:
			tr.Rotation.X -= l.Swing * c.ArmSwing
		case ArmL:
			tr.Rotation.X += l.FootR.Forward * c.ArmSwing
		case ThighL, ShinL:
			tr.Rotation.X += a.leg(l.FootL, name == ShinL)
		case ThighR, ShinR:
			tr.Rotation.X += a.leg(l.FootR, name == ShinR)
		default:
			if i := a.secondaryIndex(name); i >= 0 && i < len(l.Secondary) {
				tr.Rotation.X += l.Secondary[i]
			}
		}
		out[name] = tr
	}
	return out
}

// leg solves the leg chain for a foot offset and returns the thigh angle
// relative to hanging straight down, or the knee angle when knee is set.
func (a *Animator) leg(foot motion.FootOffset, knee bool) float64 {
	hip := a.cfg.HipHeight + a.layers.Bounce
	ang := a.legs.Solve(foot.Forward, foot.Lift-hip, 1)
	if knee {
		return ang.Lower
	}
	return gamemath.WrapAngle(ang.Upper + math.Pi/2)
}

func (a *Animator) secondaryIndex(name string) int {
	for i, p := range a.secondaryParts {
		if p == name {
			return i
		}
	}
	return -1
}
