package components

import (
	"github.com/yohamta/donburi"
)

// Action is a discrete fighter command.
type Action int

const (
	ActionJump Action = iota
	ActionDash
	ActionLight
	ActionHeavy
	ActionLaunch
	ActionSpecial
	ActionUltimate
	ActionCount
)

var actionNames = [ActionCount]string{
	ActionJump:     "jump",
	ActionDash:     "dash",
	ActionLight:    "light",
	ActionHeavy:    "heavy",
	ActionLaunch:   "launch",
	ActionSpecial:  "special",
	ActionUltimate: "ultimate",
}

func (a Action) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// InputData stores the current and previous tick's held buttons for one
// fighter. Actions fire on the tick they go from released to held.
type InputData struct {
	MoveX, MoveZ float64
	Run          bool
	Current      [ActionCount]bool
	Previous     [ActionCount]bool
}

// JustPressed reports whether a went down this tick.
func (in *InputData) JustPressed(a Action) bool {
	return in.Current[a] && !in.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
