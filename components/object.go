package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/arena"
)

// ObjectData is a fighter's footprint in the arena's collision space.
type ObjectData struct {
	*arena.Body
}

var Object = donburi.NewComponentType[ObjectData]()
