// Package motion holds the procedural layers that sit on top of the base pose.
// Each generator owns its springs and is driven only by dt and a few scalars.
package motion

import (
	"math"

	"github.com/automoto/doomerang-brawl/anim/spring"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// Breathing oscillates the chest. Intensity (0 calm, 1 exhausted or just hit)
// speeds up and deepens the breath.
type Breathing struct {
	Rate  float64 // breaths per second at rest
	Depth float64 // chest scale amplitude at rest

	phase     float64
	amplitude *spring.Spring
	tempo     *spring.Spring
}

func NewBreathing(rate, depth, stiffness float64) *Breathing {
	return &Breathing{
		Rate:      rate,
		Depth:     depth,
		amplitude: spring.Critical(stiffness*0.1, depth),
		tempo:     spring.Critical(stiffness*0.1, rate),
	}
}

// Update returns the chest scale multiplier and the chest rise offset.
func (b *Breathing) Update(dt, intensity float64) (chestScale, chestRise float64) {
	intensity = gamemath.Clamp(intensity, 0, 1)
	b.amplitude.SetTarget(b.Depth * (1 + intensity))
	b.tempo.SetTarget(b.Rate * (1 + 2*intensity))
	amp := b.amplitude.Update(dt)
	rate := b.tempo.Update(dt)

	if dt > 0 {
		b.phase = math.Mod(b.phase+2*math.Pi*rate*dt, 2*math.Pi)
	}
	s := math.Sin(b.phase)
	return 1 + amp*s, 0.5 * amp * s
}
