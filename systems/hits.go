package systems

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/fighter"
)

// UpdateHits delivers the hits attackers landed this tick. Each hit is queued
// on the defender as a DamageEvent, then applied once and removed.
func UpdateHits(world donburi.World, hooks Hooks) {
	entries := Fighters(world)
	byFighter := make(map[*fighter.Fighter]*donburi.Entry, len(entries))
	for _, e := range entries {
		byFighter[components.Fighter.Get(e).Fighter] = e
	}

	// 1. Queue hits on their defenders.
	var landed []fighter.HitEvent
	for _, e := range entries {
		for _, ev := range components.Fighter.Get(e).DrainHits() {
			def, ok := ev.Target.(*fighter.Fighter)
			target, isEntity := byFighter[def]
			if !ok || !isEntity {
				// Point targets have nobody to receive the hit.
				landed = append(landed, ev)
				continue
			}
			if target.HasComponent(components.DamageEvent) {
				dmg := components.DamageEvent.Get(target)
				dmg.Hits = append(dmg.Hits, ev)
				continue
			}
			donburi.Add(target, components.DamageEvent, &components.DamageEventData{Hits: []fighter.HitEvent{ev}})
		}
	}

	// 2. Apply queued hits in slot order.
	for _, e := range entries {
		if !e.HasComponent(components.DamageEvent) {
			continue
		}
		f := components.Fighter.Get(e)
		for _, ev := range components.DamageEvent.Get(e).Hits {
			if f.ReceiveHit(ev) {
				landed = append(landed, ev)
			} else {
				hooks.Metrics.HitBlocked()
			}
		}
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)
	}

	// 3. Report.
	match := matchData(world)
	for _, ev := range landed {
		hooks.Metrics.Hit(ev.Move, ev.Damage)
		if match != nil {
			match.AddHit(ev.Attacker, ev.Damage, ev.Combo)
		}
		if hooks.OnHit != nil {
			hooks.OnHit.OnHit(ev)
		}
	}
}
