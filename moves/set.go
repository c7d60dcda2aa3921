package moves

import (
	"fmt"
	"sort"
	"strings"
)

// Set is one character's move list plus the combo graph between its moves.
type Set struct {
	Name  string
	moves map[MoveID]Move
}

// Get returns the move for id.
func (s *Set) Get(id MoveID) (Move, bool) {
	if s == nil {
		return Move{}, false
	}
	m, ok := s.moves[id]
	return m, ok
}

// IDs lists the defined moves in id order.
func (s *Set) IDs() []MoveID {
	ids := make([]MoveID, 0, len(s.moves))
	for id := range s.moves {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// First returns the opening move of a kind: the lowest id of that kind in the set.
func (s *Set) First(kind Kind) (MoveID, bool) {
	if s == nil {
		return MoveNone, false
	}
	best := MoveNone
	for id := range s.moves {
		if KindOf(id) == kind && (best == MoveNone || id < best) {
			best = id
		}
	}
	return best, best != MoveNone
}

// NextOfKind returns the first successor of from whose kind matches.
func (s *Set) NextOfKind(from MoveID, kind Kind) (MoveID, bool) {
	m, ok := s.Get(from)
	if !ok {
		return MoveNone, false
	}
	for _, n := range m.Next {
		if KindOf(n) == kind {
			return n, true
		}
	}
	return MoveNone, false
}

// CanChain reports whether the combo graph has an edge from -> to.
func (s *Set) CanChain(from, to MoveID) bool {
	m, ok := s.Get(from)
	if !ok {
		return false
	}
	for _, n := range m.Next {
		if n == to {
			return true
		}
	}
	return false
}

// Validate checks timings and that every combo edge points at a defined move.
func (s *Set) Validate() error {
	var errs []string
	if s.Name == "" {
		errs = append(errs, "move set has no name")
	}
	for _, id := range s.IDs() {
		m := s.moves[id]
		if m.Duration <= 0 {
			errs = append(errs, fmt.Sprintf("%s: duration must be positive", id))
		}
		if m.CancelWindow < 0 || m.CancelWindow > m.Duration {
			errs = append(errs, fmt.Sprintf("%s: cancel window %v outside [0, %v]", id, m.CancelWindow, m.Duration))
		}
		if m.Damage < 0 || m.Hitstun < 0 || m.Hitlag < 0 {
			errs = append(errs, fmt.Sprintf("%s: damage, hitstun and hitlag must not be negative", id))
		}
		for _, n := range m.Next {
			if _, ok := s.moves[n]; !ok {
				errs = append(errs, fmt.Sprintf("%s: combo edge to undefined move %s", id, n))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("move set %q invalid: %s", s.Name, strings.Join(errs, "; "))
	}
	return nil
}
