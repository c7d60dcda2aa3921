package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/fighter"
)

// UpdateInput turns held buttons into fighter intents. Must run before
// UpdatePhysics so movement input applies this tick.
func UpdateInput(world donburi.World) {
	for _, e := range Fighters(world) {
		if !e.HasComponent(components.Input) {
			continue
		}
		in := components.Input.Get(e)
		f := components.Fighter.Get(e).Fighter

		f.SetMoveInput(in.MoveX, in.MoveZ)
		f.SetRunning(in.Run)
		for a := components.Action(0); a < components.ActionCount; a++ {
			if in.JustPressed(a) {
				Perform(f, a)
			}
		}
		in.Previous = in.Current
	}
}

// Perform issues one action to f and reports whether it was accepted.
func Perform(f *fighter.Fighter, a components.Action) bool {
	switch a {
	case components.ActionJump:
		return f.Jump()
	case components.ActionDash:
		return f.Dash()
	case components.ActionLight:
		return f.LightAttack()
	case components.ActionHeavy:
		return f.HeavyAttack()
	case components.ActionLaunch:
		return f.LaunchAttack()
	case components.ActionSpecial:
		return f.SpecialAttack()
	case components.ActionUltimate:
		return f.UltimateAttack()
	}
	return false
}
