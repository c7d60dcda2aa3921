package motion

import (
	"math"

	"github.com/automoto/doomerang-brawl/anim/spring"
)

// WeightShift sways the hips while standing and leans the torso into movement.
type WeightShift struct {
	SwayAmount   float64 // hip sway at rest, world units
	SwayRate     float64 // sway cycles per second
	LeanPerSpeed float64 // radians of lean per unit of speed
	MaxLean      float64

	phase float64
	sway  *spring.Spring
	lean  *spring.Spring
}

func NewWeightShift(leanPerSpeed, stiffness float64) *WeightShift {
	return &WeightShift{
		SwayAmount:   0.02,
		SwayRate:     0.25,
		LeanPerSpeed: leanPerSpeed,
		MaxLean:      0.35,
		sway:         spring.Critical(stiffness*0.25, 0),
		lean:         spring.Critical(stiffness*0.5, 0),
	}
}

// Update returns the lateral hip offset and the forward torso lean for a
// fighter moving at speed.
func (w *WeightShift) Update(dt, speed float64) (hipSway, lean float64) {
	speed = math.Abs(speed)
	if dt > 0 {
		w.phase = math.Mod(w.phase+2*math.Pi*w.SwayRate*dt, 2*math.Pi)
	}
	// Sway fades out as the fighter starts moving.
	idle := 1 / (1 + speed)
	w.sway.SetTarget(w.SwayAmount * idle * math.Sin(w.phase))
	w.lean.SetTarget(math.Min(w.MaxLean, speed*w.LeanPerSpeed))
	return w.sway.Update(dt), w.lean.Update(dt)
}
