package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/components"
)

// UpdatePhysics integrates movement for every fighter. Footprints in the arena
// are moved by the fighter through its Body.
func UpdatePhysics(world donburi.World, dt float64) {
	for _, e := range Fighters(world) {
		components.Fighter.Get(e).MovePlayer(dt)
	}
}
