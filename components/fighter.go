package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/fighter"
)

// FighterData wraps the simulation record of one combatant.
type FighterData struct {
	*fighter.Fighter
	Slot    int    // spawn slot, also the join order
	MoveSet string // resolved move set name
}

var Fighter = donburi.NewComponentType[FighterData]()
