package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/arena"
)

// LevelData holds the arena the match is played in.
type LevelData struct {
	Layout *arena.Layout
	Stage  *arena.Stage
}

var Level = donburi.NewComponentType[LevelData]()
