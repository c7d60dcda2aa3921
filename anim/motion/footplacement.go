package motion

import (
	"math"

	"github.com/automoto/doomerang-brawl/anim/spring"
)

// FootOffset is a foot target relative to its rest position under the hip.
type FootOffset struct {
	Forward float64
	Lift    float64
}

// FootPlacement runs a gait phase oscillator: the feet alternate half a cycle
// apart and the step amplitude follows speed through a spring.
type FootPlacement struct {
	Stride     float64 // world units per full cycle at cadence 1
	StepHeight float64
	LegSwing   float64 // amplitude multiplier from the archetype cadence

	phase  float64
	stride *spring.Spring
}

func NewFootPlacement(stride, stepHeight, legSwing, stiffness float64) *FootPlacement {
	return &FootPlacement{
		Stride:     stride,
		StepHeight: stepHeight,
		LegSwing:   legSwing,
		stride:     spring.Critical(stiffness*0.5, 0),
	}
}

// Phase is the gait position in [0, 1).
func (f *FootPlacement) Phase() float64 {
	return f.phase / (2 * math.Pi)
}

// Update advances the gait for a fighter moving at speed with the given
// cadence multiplier and returns both foot offsets.
func (f *FootPlacement) Update(dt, speed, cadence float64) (left, right FootOffset) {
	speed = math.Abs(speed)
	if f.Stride > 0 && dt > 0 {
		cycles := speed * cadence / f.Stride
		f.phase = math.Mod(f.phase+2*math.Pi*cycles*dt, 2*math.Pi)
	}
	amp := math.Min(1, speed/(speed+1)*2)
	f.stride.SetTarget(amp * f.LegSwing)
	a := f.stride.Update(dt)

	left = f.foot(f.phase, a)
	right = f.foot(f.phase+math.Pi, a)
	return left, right
}

func (f *FootPlacement) foot(phase, amp float64) FootOffset {
	return FootOffset{
		Forward: 0.5 * f.Stride * amp * math.Sin(phase),
		Lift:    f.StepHeight * amp * math.Max(0, math.Cos(phase)),
	}
}
