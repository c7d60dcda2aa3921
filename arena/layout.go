// Package arena provides arena layouts (built-in or TMX) and the collision
// stage fighters move through. Coordinates are world units on the XZ plane,
// centred on the origin.
package arena

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/fighter"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// Layout holds everything collision-relevant about one arena.
type Layout struct {
	Name   string
	Width  float64
	Depth  float64
	Walls  []Rect
	Spawns []Spawn
}

// Rect is an axis-aligned solid block on the XZ plane.
type Rect struct {
	MinX, MinZ float64
	MaxX, MaxZ float64
}

func (r Rect) Width() float64 { return r.MaxX - r.MinX }
func (r Rect) Depth() float64 { return r.MaxZ - r.MinZ }

// Spawn is a fighter start position.
type Spawn struct {
	Position gamemath.Vec3
	Facing   float64
	Index    int
}

// DefaultLayout is an open arena with two spawns a quarter width from centre,
// facing each other.
func DefaultLayout(cfg config.ArenaConfig) *Layout {
	x := cfg.Width / 4
	return &Layout{
		Name:  "default",
		Width: cfg.Width,
		Depth: cfg.Depth,
		Spawns: []Spawn{
			{Position: gamemath.Vec3{X: -x}, Facing: math.Pi / 2, Index: 0},
			{Position: gamemath.Vec3{X: x}, Facing: -math.Pi / 2, Index: 1},
		},
	}
}

// Bounds is the playable rectangle.
func (l *Layout) Bounds() fighter.Bounds {
	return fighter.Bounds{MinX: -l.Width / 2, MaxX: l.Width / 2, MinZ: -l.Depth / 2, MaxZ: l.Depth / 2}
}

// SpawnFor returns the spawn point for slot i, cycling when there are more
// fighters than spawns. A layout without spawns puts everyone at the origin.
func (l *Layout) SpawnFor(i int) Spawn {
	if len(l.Spawns) == 0 || i < 0 {
		return Spawn{Index: i}
	}
	return l.Spawns[i%len(l.Spawns)]
}

// Validate rejects degenerate layouts.
func (l *Layout) Validate() error {
	var errs []error
	if l.Width <= 0 || l.Depth <= 0 {
		errs = append(errs, fmt.Errorf("arena %q: size %gx%g must be positive", l.Name, l.Width, l.Depth))
	}
	b := l.Bounds()
	for i, r := range l.Walls {
		if r.Width() <= 0 || r.Depth() <= 0 {
			errs = append(errs, fmt.Errorf("arena %q: wall %d is empty", l.Name, i))
		}
	}
	for _, s := range l.Spawns {
		if s.Position.X < b.MinX || s.Position.X > b.MaxX || s.Position.Z < b.MinZ || s.Position.Z > b.MaxZ {
			errs = append(errs, fmt.Errorf("arena %q: spawn %d outside the arena", l.Name, s.Index))
		}
	}
	return errors.Join(errs...)
}
