package systems

import (
	"sort"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/fighter"
	"github.com/automoto/doomerang-brawl/metrics"
)

// Hooks are the outward notifications systems emit. Every field may be nil.
type Hooks struct {
	Metrics *metrics.Collectors
	OnHit   fighter.HitListener
}

// Fighters returns every fighter entry in slot order, so systems visit
// fighters deterministically.
func Fighters(world donburi.World) []*donburi.Entry {
	var out []*donburi.Entry
	components.Fighter.Each(world, func(e *donburi.Entry) {
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return components.Fighter.Get(out[i]).Slot < components.Fighter.Get(out[j]).Slot
	})
	return out
}

// FindFighter looks a fighter entry up by id.
func FindFighter(world donburi.World, id uuid.UUID) (*donburi.Entry, bool) {
	var found *donburi.Entry
	components.Fighter.Each(world, func(e *donburi.Entry) {
		if found == nil && components.Fighter.Get(e).ID() == id {
			found = e
		}
	})
	return found, found != nil
}

func matchData(world donburi.World) *components.MatchData {
	if e, ok := components.Match.First(world); ok {
		return components.Match.Get(e)
	}
	return nil
}
