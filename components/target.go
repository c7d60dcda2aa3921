package components

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// TargetData selects what a fighter aims at. With Auto set the targeting
// system picks the nearest opponent every tick. With HasPoint set the fighter
// aims at Point, a position written by an outside controller.
type TargetData struct {
	ID       uuid.UUID
	Auto     bool
	Point    gamemath.Vec3
	HasPoint bool
}

var Target = donburi.NewComponentType[TargetData]()
