package components

import (
	"github.com/google/uuid"
	"github.com/yohamta/donburi"
)

// FighterScore tracks one fighter's match statistics.
type FighterScore struct {
	ID            uuid.UUID
	Hits          int
	Damage        int
	BestCombo     int
	CombosDropped int
}

// MatchData is the singleton clock and scoreboard of a match.
type MatchData struct {
	Elapsed   float64 // scaled simulation seconds
	Ticks     uint64
	TimeScale float64
	Scores    map[uuid.UUID]*FighterScore
}

var Match = donburi.NewComponentType[MatchData]()

// GetScore returns the score for id, creating it if needed.
func (m *MatchData) GetScore(id uuid.UUID) *FighterScore {
	if m.Scores == nil {
		m.Scores = make(map[uuid.UUID]*FighterScore)
	}
	s, ok := m.Scores[id]
	if !ok {
		s = &FighterScore{ID: id}
		m.Scores[id] = s
	}
	return s
}

// AddHit credits a landed hit to the attacker.
func (m *MatchData) AddHit(id uuid.UUID, damage, combo int) {
	s := m.GetScore(id)
	s.Hits++
	s.Damage += damage
	if combo > s.BestCombo {
		s.BestCombo = combo
	}
}

// GetLeader returns the fighter with the most damage dealt. ok is false when
// nobody has scored or the top spot is tied.
func (m *MatchData) GetLeader() (uuid.UUID, bool) {
	var leader uuid.UUID
	best := 0
	tied := false
	for id, s := range m.Scores {
		switch {
		case s.Damage > best:
			best, leader, tied = s.Damage, id, false
		case s.Damage == best && best > 0:
			tied = true
		}
	}
	if best == 0 || tied {
		return uuid.Nil, false
	}
	return leader, true
}
