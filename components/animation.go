package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/anim/rig"
)

type AnimationData struct {
	*rig.Animator
}

var Animation = donburi.NewComponentType[AnimationData]()
