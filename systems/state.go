package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/components"
)

// UpdateStates records each fighter's presentation state and how long it has
// been in it.
func UpdateStates(world donburi.World, dt float64) {
	for _, e := range Fighters(world) {
		if !e.HasComponent(components.State) {
			continue
		}
		state := components.State.Get(e)
		if !state.Enter(components.Fighter.Get(e).State()) {
			state.StateTimer += dt
		}
	}
}
