package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/components"
)

// UpdateCombat advances attack phases, timers and meters. Combos that time out
// are counted as dropped.
func UpdateCombat(world donburi.World, dt float64, hooks Hooks) {
	match := matchData(world)
	for _, e := range Fighters(world) {
		f := components.Fighter.Get(e)
		before := f.Combo()
		f.UpdateCombat(dt)
		if before > 0 && f.Combo() == 0 {
			hooks.Metrics.ComboDropped()
			if match != nil {
				match.GetScore(f.ID()).CombosDropped++
			}
		}
	}
}
