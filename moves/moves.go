// Package moves defines attack data and the combo graph that links attacks.
package moves

import "fmt"

// MoveID identifies an attack. MoveNone means no attack.
type MoveID int

const (
	MoveNone MoveID = iota
	Light1
	Light2
	Light3
	Heavy1
	Heavy2
	AirLight1
	AirLight2
	AirHeavy1
	Launcher
	Special
	Ultimate
)

var moveNames = map[MoveID]string{
	MoveNone:  "none",
	Light1:    "light1",
	Light2:    "light2",
	Light3:    "light3",
	Heavy1:    "heavy1",
	Heavy2:    "heavy2",
	AirLight1: "airLight1",
	AirLight2: "airLight2",
	AirHeavy1: "airHeavy1",
	Launcher:  "launcher",
	Special:   "special",
	Ultimate:  "ultimate",
}

var moveIDs = func() map[string]MoveID {
	m := make(map[string]MoveID, len(moveNames))
	for id, n := range moveNames {
		m[n] = id
	}
	return m
}()

func (id MoveID) String() string {
	if n, ok := moveNames[id]; ok {
		return n
	}
	return fmt.Sprintf("move(%d)", int(id))
}

// ParseMoveID resolves a move name such as "light2".
func ParseMoveID(name string) (MoveID, error) {
	id, ok := moveIDs[name]
	if !ok || id == MoveNone {
		return MoveNone, fmt.Errorf("unknown move %q", name)
	}
	return id, nil
}

// Kind groups moves by the input that triggers them.
type Kind int

const (
	KindNone Kind = iota
	KindLight
	KindHeavy
	KindAirLight
	KindAirHeavy
	KindLauncher
	KindSpecial
	KindUltimate
)

// KindOf returns the input group of id.
func KindOf(id MoveID) Kind {
	switch id {
	case Light1, Light2, Light3:
		return KindLight
	case Heavy1, Heavy2:
		return KindHeavy
	case AirLight1, AirLight2:
		return KindAirLight
	case AirHeavy1:
		return KindAirHeavy
	case Launcher:
		return KindLauncher
	case Special:
		return KindSpecial
	case Ultimate:
		return KindUltimate
	}
	return KindNone
}

// Knockback describes the launch applied to a struck fighter. Angle is in
// degrees above the horizontal.
type Knockback struct {
	Base   float64
	Growth float64
	Angle  float64
}

// Move is an immutable attack definition. Times are in seconds.
type Move struct {
	ID           MoveID
	Damage       float64
	Knockback    Knockback
	Hitstun      float64
	Hitlag       float64
	Duration     float64
	CancelWindow float64 // elapsed time after which the move may be canceled
	Lift         float64 // upward velocity given to the attacker on start
	Next         []MoveID
}

// Kind returns the input group of the move.
func (m Move) Kind() Kind { return KindOf(m.ID) }
