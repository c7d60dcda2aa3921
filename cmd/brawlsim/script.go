package main

import (
	"github.com/google/uuid"

	"github.com/automoto/doomerang-brawl/match"
)

// script is the scripted bout: the left fighter closes in and strings
// attacks together while the right fighter dashes and jumps around it.
// Steps repeat every len ticks so long runs keep fighting.
type script struct {
	left, right uuid.UUID
	length      uint64
}

func newScript(left, right uuid.UUID) *script {
	return &script{left: left, right: right, length: 240}
}

func (s *script) step(m *match.Match, tick uint64) {
	switch tick % s.length {
	case 0:
		m.SetMoveInput(s.left, 1, 0)
		m.SetRunning(s.left, true)
		m.SetMoveInput(s.right, 0, 0)
	case 40:
		m.SetMoveInput(s.left, 0, 0)
		m.LightAttack(s.left)
	case 55:
		m.LightAttack(s.left)
	case 70:
		m.HeavyAttack(s.left)
	case 90:
		m.LaunchAttack(s.left)
	case 100:
		m.Jump(s.right)
	case 120:
		m.SpecialAttack(s.left)
	case 150:
		m.SetMoveInput(s.right, 0, 1)
		m.Dash(s.right)
	case 170:
		m.SetMoveInput(s.right, -1, 0)
		m.UltimateAttack(s.left)
	case 200:
		m.HeavyAttack(s.right)
	}
}
