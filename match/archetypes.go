package match

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/tags"
)

var (
	fighterArchetype = newArchetype(
		tags.Fighter,
		components.Fighter,
		components.Input,
		components.Object,
		components.State,
		components.Target,
		components.Animation,
	)
	clockArchetype = newArchetype(
		tags.Clock,
		components.Match,
	)
	arenaArchetype = newArchetype(
		tags.Arena,
		components.Level,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return world.Entry(world.Create(all...))
}
