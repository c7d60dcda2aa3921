// Package archetypes is the read-only table of per-role movement tuning.
package archetypes

import (
	"fmt"
	"sort"
	"strings"
)

// Role is a fighter archetype.
type Role int

const (
	Balanced Role = iota
	Tank
	Blitzer
	Mystic
	Support
	Striker
)

var roleNames = map[Role]string{
	Balanced: "balanced",
	Tank:     "tank",
	Blitzer:  "blitzer",
	Mystic:   "mystic",
	Support:  "support",
	Striker:  "striker",
}

func (r Role) String() string {
	if n, ok := roleNames[r]; ok {
		return n
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// ParseRole resolves a role name case-insensitively.
func ParseRole(name string) (Role, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return Balanced, fmt.Errorf("unknown role %q", name)
}

// Roles lists every defined role in order.
func Roles() []Role {
	out := make([]Role, 0, len(roleNames))
	for r := range roleNames {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Cadence scales procedural animation for a role.
type Cadence struct {
	Speed          float64 // playback and dash-timing multiplier
	ArmSwing       float64
	LegSwing       float64
	BodyLean       float64
	VerticalBounce float64
}

// MovementProfile is immutable per-role tuning. Speeds are world units per second.
type MovementProfile struct {
	Role         Role
	WalkSpeed    float64
	RunSpeed     float64
	Acceleration float64 // units/s^2 toward the target velocity
	JumpImpulse  float64 // initial vertical velocity
	DashSpeed    float64
	DashDistance float64
	DashCooldown float64 // seconds
	Cadence      Cadence
	MoveSet      string // default move set name
}

// DashDuration is how long a dash holds its velocity.
func (p MovementProfile) DashDuration() float64 {
	if p.DashSpeed <= 0 || p.Cadence.Speed <= 0 {
		return 0
	}
	return p.DashDistance / p.DashSpeed / p.Cadence.Speed
}

var profiles = map[Role]MovementProfile{
	Balanced: {
		Role: Balanced, WalkSpeed: 4, RunSpeed: 7, Acceleration: 40, JumpImpulse: 9,
		DashSpeed: 16, DashDistance: 3.2, DashCooldown: 0.6,
		Cadence: Cadence{Speed: 1, ArmSwing: 1, LegSwing: 1, BodyLean: 1, VerticalBounce: 1},
		MoveSet: "standard",
	},
	Tank: {
		Role: Tank, WalkSpeed: 3, RunSpeed: 5.5, Acceleration: 28, JumpImpulse: 7.5,
		DashSpeed: 12, DashDistance: 2.4, DashCooldown: 0.9,
		Cadence: Cadence{Speed: 0.85, ArmSwing: 0.8, LegSwing: 0.9, BodyLean: 0.6, VerticalBounce: 0.7},
		MoveSet: "brawler",
	},
	Blitzer: {
		Role: Blitzer, WalkSpeed: 5, RunSpeed: 9, Acceleration: 60, JumpImpulse: 10,
		DashSpeed: 22, DashDistance: 4.4, DashCooldown: 0.4,
		Cadence: Cadence{Speed: 1.25, ArmSwing: 1.3, LegSwing: 1.2, BodyLean: 1.4, VerticalBounce: 1.1},
		MoveSet: "rushdown",
	},
	Mystic: {
		Role: Mystic, WalkSpeed: 3.8, RunSpeed: 6.5, Acceleration: 35, JumpImpulse: 9.5,
		DashSpeed: 18, DashDistance: 3.6, DashCooldown: 0.7,
		Cadence: Cadence{Speed: 0.95, ArmSwing: 0.7, LegSwing: 0.9, BodyLean: 0.8, VerticalBounce: 1.3},
		MoveSet: "standard",
	},
	Support: {
		Role: Support, WalkSpeed: 4, RunSpeed: 6.8, Acceleration: 38, JumpImpulse: 9,
		DashSpeed: 15, DashDistance: 3, DashCooldown: 0.5,
		Cadence: Cadence{Speed: 1, ArmSwing: 0.9, LegSwing: 1, BodyLean: 0.9, VerticalBounce: 1},
		MoveSet: "standard",
	},
	Striker: {
		Role: Striker, WalkSpeed: 4.5, RunSpeed: 8, Acceleration: 50, JumpImpulse: 9.5,
		DashSpeed: 19, DashDistance: 3.8, DashCooldown: 0.5,
		Cadence: Cadence{Speed: 1.1, ArmSwing: 1.2, LegSwing: 1.1, BodyLean: 1.2, VerticalBounce: 1},
		MoveSet: "rushdown",
	},
}

// ProfileFor returns the profile for role. Unknown roles get the Balanced profile.
func ProfileFor(role Role) MovementProfile {
	if p, ok := profiles[role]; ok {
		return p
	}
	return profiles[Balanced]
}
