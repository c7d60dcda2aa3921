package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/fighter"
)

// DamageEventData queues hits landed on an entity this tick. The hit system
// applies them and removes the component.
type DamageEventData struct {
	Hits []fighter.HitEvent
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
