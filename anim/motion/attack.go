package motion

import (
	"github.com/tanema/gween"

	"github.com/automoto/doomerang-brawl/anim/ease"
)

// Stage is a segment of an attack's body motion.
type Stage int

const (
	StageNone Stage = iota
	StageAnticipation
	StageAction
	StageFollowThrough
	StageRecovery
)

func (s Stage) String() string {
	switch s {
	case StageAnticipation:
		return "anticipation"
	case StageAction:
		return "action"
	case StageFollowThrough:
		return "follow_through"
	case StageRecovery:
		return "recovery"
	}
	return "none"
}

type attackStage struct {
	stage Stage
	start float64
	end   float64
	tween *gween.Tween
}

// AttackTiming maps elapsed attack time onto a swing weight: it pulls back to
// -1 during anticipation, snaps to 1 on action, drifts during follow-through,
// and returns to 0 in recovery. Anticipation spans the windup and action plus
// follow-through split the active window.
type AttackTiming struct {
	stages  []attackStage
	elapsed float64
	length  float64
}

// Start arms the timer for an attack of duration seconds.
func (a *AttackTiming) Start(duration, windupFraction, activeFraction float64) {
	if duration <= 0 {
		a.Stop()
		return
	}
	windup := duration * windupFraction
	active := duration * activeFraction
	half := windup + active/2
	end := windup + active
	a.stages = []attackStage{
		a.stage(StageAnticipation, 0, windup, 0, -1, ease.OutQuad),
		a.stage(StageAction, windup, half, -1, 1, ease.OutCubic),
		a.stage(StageFollowThrough, half, end, 1, 0.6, ease.OutBack),
		a.stage(StageRecovery, end, duration, 0.6, 0, ease.InOutQuad),
	}
	a.elapsed = 0
	a.length = duration
}

func (a *AttackTiming) stage(s Stage, start, end, from, to float64, curve ease.Func) attackStage {
	length := end - start
	if length <= 0 {
		length = 1e-6
	}
	return attackStage{
		stage: s,
		start: start,
		end:   end,
		tween: gween.New(float32(from), float32(to), float32(length), curve.Tween()),
	}
}

// Stop clears the timer.
func (a *AttackTiming) Stop() {
	a.stages = nil
	a.elapsed = 0
	a.length = 0
}

// Active reports whether an attack is being timed.
func (a *AttackTiming) Active() bool { return a.stages != nil }

// Update advances by dt and returns the current stage and swing weight.
func (a *AttackTiming) Update(dt float64) (Stage, float64) {
	if a.stages == nil {
		return StageNone, 0
	}
	if dt > 0 {
		a.elapsed += dt
	}
	return a.Sample(a.elapsed)
}

// Sample evaluates the timer at elapsed without advancing it. Past the end the
// timer stops and reports StageNone.
func (a *AttackTiming) Sample(elapsed float64) (Stage, float64) {
	if a.stages == nil {
		return StageNone, 0
	}
	if elapsed > a.length {
		a.Stop()
		return StageNone, 0
	}
	a.elapsed = elapsed
	for i := range a.stages {
		st := &a.stages[i]
		if elapsed < st.end || i == len(a.stages)-1 {
			v, _ := st.tween.Set(float32(elapsed - st.start))
			return st.stage, float64(v)
		}
	}
	return StageNone, 0
}
