package rig_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/automoto/doomerang-brawl/anim/motion"
	"github.com/automoto/doomerang-brawl/anim/pose"
	"github.com/automoto/doomerang-brawl/anim/rig"
	"github.com/automoto/doomerang-brawl/archetypes"
	"github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/fighter"
	"github.com/automoto/doomerang-brawl/moves"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

const dt = 1.0 / 60

func newAnimator(t *testing.T) *rig.Animator {
	t.Helper()
	a, err := rig.New(archetypes.ProfileFor(archetypes.Balanced), config.Default(), nil)
	require.NoError(t, err)
	return a
}

func newFighter(t *testing.T) *fighter.Fighter {
	t.Helper()
	reg, err := moves.DefaultRegistry()
	require.NoError(t, err)
	set, _ := reg.Get(moves.DefaultSet)
	// Room to run for several seconds without reaching an edge.
	wide := fighter.Bounds{MinX: -100, MaxX: 100, MinZ: -100, MaxZ: 100}
	return fighter.New(fighter.Options{Role: archetypes.Balanced, Moves: set, Settings: config.Default(), Bounds: &wide})
}

func step(f *fighter.Fighter, a *rig.Animator) {
	f.MovePlayer(dt)
	f.UpdateCombat(dt)
	a.Update(f.Snapshot(), dt)
}

func finite(tr pose.Transform) bool {
	return tr.Position.IsFinite() && tr.Rotation.IsFinite() && tr.Scale.IsFinite()
}

func TestDefaultStates_CoverEveryAnimatedState(t *testing.T) {
	states := rig.DefaultStates()
	names := map[string]bool{}
	for _, st := range states {
		names[st.Name] = true
		def := config.StateAnimations[stateByName(t, st.Name)]
		assert.Equal(t, def.Duration, st.Duration, st.Name)
		assert.Equal(t, def.Loop, st.Loop, st.Name)
	}
	for id := range config.StateAnimations {
		assert.True(t, names[id.String()], id.String())
	}
}

func stateByName(t *testing.T, name string) config.StateID {
	for id, n := range config.StateNames {
		if n == name {
			return id
		}
	}
	t.Fatalf("no state named %q", name)
	return config.StateNone
}

func TestNew_StartsIdle(t *testing.T) {
	a := newAnimator(t)
	assert.Equal(t, config.Idle, a.State())
	assert.Equal(t, "idle", a.Blend().Current())
	assert.Len(t, a.Parts(), 10+config.Default().Animation.SecondaryLinks)
	assert.Contains(t, a.Parts(), "cloth0")
}

func TestAnimator_FollowsLocomotion(t *testing.T) {
	f, a := newFighter(t), newAnimator(t)
	f.SetMoveInput(0, 1)
	f.SetRunning(true)
	for i := 0; i < 60; i++ {
		step(f, a)
	}
	require.Less(t, f.Position().Z, 100.0)
	assert.Equal(t, config.Running, a.State())
	assert.Equal(t, "run", a.Blend().Current())
	assert.Empty(t, a.Blend().Next())

	l := a.Layers()
	assert.Greater(t, l.Lean, 0.0)
	assert.NotEqual(t, l.FootL.Forward, l.FootR.Forward)
}

func TestAnimator_AttackBlendsIn(t *testing.T) {
	f, a := newFighter(t), newAnimator(t)
	step(f, a)
	require.True(t, f.HeavyAttack())
	a.Update(f.Snapshot(), dt)

	assert.Equal(t, config.Attack, a.State())
	assert.Equal(t, "attack", a.Blend().Next())
	assert.Equal(t, motion.StageAnticipation, a.Layers().Attack)

	for f.Attack() != moves.MoveNone {
		step(f, a)
	}
	step(f, a)
	assert.Equal(t, motion.StageNone, a.Layers().Attack)
	assert.Zero(t, a.Layers().Swing)
}

func TestAnimator_ChainedAttackRestartsPose(t *testing.T) {
	f, a := newFighter(t), newAnimator(t)
	require.True(t, f.LightAttack())
	for !f.CancelEligible() {
		step(f, a)
	}
	for a.Blend().Next() != "" {
		a.Update(f.Snapshot(), dt)
	}
	require.Equal(t, "attack", a.Blend().Current())
	require.Greater(t, a.Blend().Time(), 0.0)

	require.True(t, f.LightAttack())
	a.Update(f.Snapshot(), 0)
	assert.Zero(t, a.Blend().Time())
	assert.Equal(t, motion.StageAnticipation, a.Layers().Attack)
}

func TestAnimator_AttackPoseSpansMoveDuration(t *testing.T) {
	clip := config.StateAnimations[config.Attack].Duration
	for _, move := range []float64{1.0, 0.25} {
		a := newAnimator(t)
		snap := fighter.Snapshot{State: config.Attack, Attack: moves.Heavy1, AttackSerial: 1, AttackDuration: move}
		for a.Blend().Next() != "" || a.Blend().Current() != "attack" {
			a.Update(snap, dt)
		}
		start := a.Blend().Time()
		a.Update(snap, 0.05)
		a.Update(snap, 0.05)
		assert.InDelta(t, start+0.1*clip/move, a.Blend().Time(), 1e-9, "move %v", move)
	}
}

func TestAnimator_SettlesAfterHit(t *testing.T) {
	a := newAnimator(t)
	idle := fighter.Snapshot{State: config.Idle, Grounded: true}
	for i := 0; i < 10; i++ {
		a.Update(idle, dt)
	}
	assert.True(t, a.Settled())

	a.Update(fighter.Snapshot{State: config.Hitstun, Hitstun: 0.5}, dt)
	assert.False(t, a.Settled())

	for i := 0; i < 600; i++ {
		a.Update(idle, dt)
	}
	assert.True(t, a.Settled())
	assert.Zero(t, a.Layers().Intensity)
}

func TestAnimator_HeadTracksTargetWithinLimit(t *testing.T) {
	f, a := newFighter(t), newAnimator(t)
	f.SetTargetPosition(gamemath.Vec3{X: 5})
	for i := 0; i < 300; i++ {
		step(f, a)
	}
	assert.InDelta(t, config.Default().Animation.NeckYawLimit, a.Layers().HeadYaw, 1e-3)
}

func TestAnimator_HitIntensityRises(t *testing.T) {
	f, a := newFighter(t), newAnimator(t)
	require.True(t, f.ReceiveHit(fighter.HitEvent{Hitstun: 1, Knockback: gamemath.Vec3{Z: -2}}))
	for i := 0; i < 30; i++ {
		step(f, a)
	}
	assert.Equal(t, config.Hitstun, a.State())
	assert.Greater(t, a.Layers().Intensity, 0.5)
}

func TestTransforms_LayersOnBasePose(t *testing.T) {
	f, a := newFighter(t), newAnimator(t)
	for i := 0; i < 10; i++ {
		step(f, a)
	}
	parts := append(a.Parts(), "tail")
	base := a.Blend().GetCurrentTransforms(parts)
	out := a.Transforms(parts)
	require.Len(t, out, len(parts))
	for _, p := range parts {
		assert.True(t, finite(out[p]), p)
	}
	assert.Equal(t, pose.Identity(), out["tail"])
	assert.InDelta(t, base[rig.Chest].Scale.Y*a.Layers().ChestScale, out[rig.Chest].Scale.Y, 1e-12)
	assert.InDelta(t, base[rig.Hips].Position.X+a.Layers().HipSway, out[rig.Hips].Position.X, 1e-12)
}

func TestPropertyAnimator_TransformsFinite(t *testing.T) {
	states := []config.StateID{config.StateNone, config.Idle, config.Walk, config.Running, config.Jump,
		config.Fall, config.Landing, config.Dash, config.Attack, config.Hitstun, config.StateID(99)}
	a := newAnimator(t)
	parts := a.Parts()

	rapid.Check(t, func(t *rapid.T) {
		snap := fighter.Snapshot{
			State:          rapid.SampledFrom(states).Draw(t, "state"),
			Speed:          rapid.Float64Range(0, 30).Draw(t, "speed"),
			Grounded:       rapid.Bool().Draw(t, "grounded"),
			Facing:         rapid.Float64Range(-10, 10).Draw(t, "facing"),
			Hitstun:        rapid.Float64Range(0, 1).Draw(t, "hitstun"),
			HasTarget:      rapid.Bool().Draw(t, "target"),
			AttackSerial:   rapid.Uint64Range(0, 3).Draw(t, "serial"),
			AttackDuration: rapid.Float64Range(0.1, 2).Draw(t, "duration"),
		}
		if snap.State == config.Attack {
			snap.Attack = moves.Light1
			snap.AttackElapsed = rapid.Float64Range(0, snap.AttackDuration).Draw(t, "elapsed")
		}
		snap.Velocity = gamemath.Vec3{Y: rapid.Float64Range(-30, 30).Draw(t, "vy")}
		snap.TargetDir = gamemath.Vec3{
			X: rapid.Float64Range(-5, 5).Draw(t, "tx"),
			Y: rapid.Float64Range(-5, 5).Draw(t, "ty"),
			Z: rapid.Float64Range(-5, 5).Draw(t, "tz"),
		}
		a.Update(snap, rapid.Float64Range(0, 0.1).Draw(t, "dt"))
		for name, tr := range a.Transforms(parts) {
			if !finite(tr) {
				t.Fatalf("%s not finite: %+v", name, tr)
			}
		}
		assert.False(t, math.IsNaN(a.Layers().HeadYaw))
	})
}
