package config

// StateID is the presentation state derived from a fighter each tick. The
// animation layer selects blend states by it; the simulation never branches on it.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Walk
	Running
	Jump
	Fall
	Landing
	Dash
	Attack
	Hitstun
)

// StateNames maps each state to the animation state name it plays.
var StateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Walk:      "walk",
	Running:   "run",
	Jump:      "jump",
	Fall:      "fall",
	Landing:   "landing",
	Dash:      "dash",
	Attack:    "attack",
	Hitstun:   "hitstun",
}

func (s StateID) String() string {
	if n, ok := StateNames[s]; ok {
		return n
	}
	return "unknown"
}
