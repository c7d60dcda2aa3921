package systems

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/fighter"
)

// UpdateTargeting points every fighter at its chosen opponent. Auto targets
// pick the nearest other fighter. Explicit targets that left the match are
// cleared.
func UpdateTargeting(world donburi.World) {
	entries := Fighters(world)
	for _, e := range entries {
		if !e.HasComponent(components.Target) {
			continue
		}
		self := components.Fighter.Get(e).Fighter
		target := components.Target.Get(e)

		switch {
		case target.Auto:
			self.SetTarget(nearest(self, entries))
			continue
		case target.HasPoint:
			self.SetTargetPosition(target.Point)
			continue
		case target.ID == uuid.Nil:
			// Only drop fighters; a point set on the fighter directly stays.
			if _, ok := self.Target().(*fighter.Fighter); ok {
				self.SetTarget(nil)
			}
			continue
		}
		other, ok := FindFighter(world, target.ID)
		if !ok || other == e {
			self.SetTarget(nil)
			continue
		}
		self.SetTarget(components.Fighter.Get(other).Fighter)
	}
}

func nearest(self *fighter.Fighter, entries []*donburi.Entry) fighter.Target {
	var best *fighter.Fighter
	bestDist := 0.0
	for _, e := range entries {
		f := components.Fighter.Get(e).Fighter
		if f == self {
			continue
		}
		d := self.Position().Dist(f.Position())
		if best == nil || d < bestDist {
			best, bestDist = f, d
		}
	}
	if best == nil {
		return nil
	}
	return best
}
