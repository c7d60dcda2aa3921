package systems

import (
	"github.com/yohamta/donburi"
)

// UpdateClock advances the match clock by the scaled dt.
func UpdateClock(world donburi.World, dt float64) {
	m := matchData(world)
	if m == nil {
		return
	}
	m.Elapsed += dt
	m.Ticks++
}
