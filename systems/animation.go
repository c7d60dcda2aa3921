package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/components"
)

// UpdateAnimation feeds each animator the snapshot its fighter produced this
// tick. It runs last so hits and meter changes show up the same frame.
func UpdateAnimation(world donburi.World, dt float64) {
	for _, e := range Fighters(world) {
		if !e.HasComponent(components.Animation) {
			continue
		}
		components.Animation.Get(e).Update(components.Fighter.Get(e).Snapshot(), dt)
	}
}
