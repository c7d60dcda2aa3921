package motion_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/automoto/doomerang-brawl/anim/motion"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

const dt = 1.0 / 60

func TestBreathing_IntensityDeepensBreath(t *testing.T) {
	calm := motion.NewBreathing(0.3, 0.02, 120)
	hard := motion.NewBreathing(0.3, 0.02, 120)
	var calmPeak, hardPeak float64
	for i := 0; i < 60*10; i++ {
		c, _ := calm.Update(dt, 0)
		h, _ := hard.Update(dt, 1)
		calmPeak = math.Max(calmPeak, c-1)
		hardPeak = math.Max(hardPeak, h-1)
	}
	assert.Greater(t, hardPeak, calmPeak)
	assert.LessOrEqual(t, calmPeak, 0.02+1e-3)
}

func TestHeadLook_ClampsToNeckLimits(t *testing.T) {
	h := motion.NewHeadLook(1.0, 0.5, 200)
	// Directly behind and above.
	h.SetTarget(gamemath.Vec3{X: 0, Y: 5, Z: -1}, 0)
	var yaw, pitch float64
	for i := 0; i < 600; i++ {
		yaw, pitch = h.Update(dt)
	}
	assert.InDelta(t, 1.0, math.Abs(yaw), 1e-3)
	assert.InDelta(t, 0.5, pitch, 1e-3)
}

func TestHeadLook_RelativeToBody(t *testing.T) {
	h := motion.NewHeadLook(1.5, 0.5, 200)
	h.SetTarget(gamemath.Vec3{X: 1, Z: 0}, math.Pi/2)
	var yaw float64
	for i := 0; i < 600; i++ {
		yaw, _ = h.Update(dt)
	}
	assert.InDelta(t, 0, yaw, 1e-3)

	h.SetTarget(gamemath.Vec3{X: math.NaN()}, 0)
	for i := 0; i < 600; i++ {
		yaw, _ = h.Update(dt)
	}
	assert.InDelta(t, 0, yaw, 1e-3)
}

func TestWeightShift_LeansIntoSpeed(t *testing.T) {
	w := motion.NewWeightShift(0.05, 120)
	var lean float64
	for i := 0; i < 600; i++ {
		_, lean = w.Update(dt, 4)
	}
	assert.InDelta(t, 0.2, lean, 1e-3)

	for i := 0; i < 600; i++ {
		_, lean = w.Update(dt, 100)
	}
	assert.InDelta(t, w.MaxLean, lean, 1e-3)
}

func TestFootPlacement_FeetAlternate(t *testing.T) {
	f := motion.NewFootPlacement(0.6, 0.1, 1, 200)
	var left, right motion.FootOffset
	for i := 0; i < 120; i++ {
		left, right = f.Update(dt, 4, 1)
	}
	assert.InDelta(t, -left.Forward, right.Forward, 1e-9)
	assert.False(t, left.Lift > 0 && right.Lift > 0)
}

func TestFootPlacement_StillFeetSettle(t *testing.T) {
	f := motion.NewFootPlacement(0.6, 0.1, 1, 200)
	for i := 0; i < 60; i++ {
		f.Update(dt, 4, 1)
	}
	var left, right motion.FootOffset
	for i := 0; i < 600; i++ {
		left, right = f.Update(dt, 0, 1)
	}
	assert.InDelta(t, 0, left.Forward, 1e-3)
	assert.InDelta(t, 0, right.Lift, 1e-3)
}

func TestSecondaryCascade_TailLagsDriver(t *testing.T) {
	c := motion.NewSecondaryCascade(4, 200, 0.7)
	require.Equal(t, 4, c.Len())

	vals := c.Update(dt, 1)
	for i := 1; i < len(vals); i++ {
		assert.LessOrEqual(t, vals[i], vals[i-1])
	}
	for i := 0; i < 60*10; i++ {
		vals = c.Update(dt, 1)
	}
	assert.InDelta(t, 1, vals[len(vals)-1], 1e-2)
}

func TestAttackTiming_Stages(t *testing.T) {
	var a motion.AttackTiming
	a.Start(1.0, 0.2, 0.4)
	require.True(t, a.Active())

	tests := []struct {
		at    float64
		stage motion.Stage
	}{
		{0.1, motion.StageAnticipation},
		{0.3, motion.StageAction},
		{0.5, motion.StageFollowThrough},
		{0.8, motion.StageRecovery},
	}
	for _, tt := range tests {
		stage, _ := a.Sample(tt.at)
		assert.Equal(t, tt.stage, stage, "at %v", tt.at)
	}

	_, v := a.Sample(0.2 - 1e-9)
	assert.InDelta(t, -1, v, 1e-3)
	_, v = a.Sample(0.4 - 1e-9)
	assert.InDelta(t, 1, v, 1e-3)

	stage, v := a.Sample(1.01)
	assert.Equal(t, motion.StageNone, stage)
	assert.Zero(t, v)
	assert.False(t, a.Active())
}

func TestAttackTiming_UpdateAdvances(t *testing.T) {
	var a motion.AttackTiming
	stage, _ := a.Update(dt)
	assert.Equal(t, motion.StageNone, stage)

	a.Start(0.5, 0.2, 0.4)
	seen := map[motion.Stage]bool{}
	for i := 0; i < 40; i++ {
		s, _ := a.Update(dt)
		seen[s] = true
	}
	assert.True(t, seen[motion.StageAnticipation])
	assert.True(t, seen[motion.StageRecovery])
	assert.False(t, a.Active())
}

func TestPropertyGenerators_Finite(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		speed := rapid.Float64Range(-20, 20).Draw(t, "speed")
		intensity := rapid.Float64Range(-1, 2).Draw(t, "intensity")
		b := motion.NewBreathing(0.3, 0.02, 120)
		w := motion.NewWeightShift(0.05, 120)
		f := motion.NewFootPlacement(0.6, 0.1, 1.2, 120)
		for i := 0; i < 120; i++ {
			s, r := b.Update(dt, intensity)
			sway, lean := w.Update(dt, speed)
			l, rt := f.Update(dt, speed, 1.1)
			for _, v := range []float64{s, r, sway, lean, l.Forward, l.Lift, rt.Forward, rt.Lift} {
				assert.True(t, gamemath.IsFinite(v))
			}
		}
	})
}
