package arena

import (
	"math"

	"github.com/solarlune/resolv"

	"github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/fighter"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
	"github.com/automoto/doomerang-brawl/tags"
)

// Stage is the collision space of one arena. The resolv space works in pixels
// (cfg.PixelsPerUnit per world unit) with its origin at the arena's -X/-Z
// corner.
type Stage struct {
	Layout *Layout
	Space  *resolv.Space
	ppu    float64
	bodies int
}

// NewStage builds a resolv space holding one solid object per wall.
func NewStage(layout *Layout, cfg config.ArenaConfig) *Stage {
	ppu := cfg.PixelsPerUnit
	if ppu <= 0 {
		ppu = 16
	}
	cell := cfg.CellSize
	if cell <= 0 {
		cell = 16
	}
	w := int(math.Ceil(layout.Width * ppu))
	h := int(math.Ceil(layout.Depth * ppu))
	s := &Stage{
		Layout: layout,
		Space:  resolv.NewSpace(w, h, cell, cell),
		ppu:    ppu,
	}
	for _, r := range layout.Walls {
		px, pz := s.toPixels(r.MinX, r.MinZ)
		pw, pd := r.Width()*ppu, r.Depth()*ppu
		obj := resolv.NewObject(px, pz, pw, pd, tags.ResolvWall)
		obj.SetShape(resolv.NewRectangle(0, 0, pw, pd))
		s.Space.Add(obj)
	}
	return s
}

// Bounds is the layout's playable rectangle.
func (s *Stage) Bounds() fighter.Bounds {
	return s.Layout.Bounds()
}

// Bodies reports how many fighter footprints are in the space.
func (s *Stage) Bodies() int { return s.bodies }

// AddBody adds a square footprint of half-extent radius centred on (x, z).
func (s *Stage) AddBody(x, z, radius float64) *Body {
	size := 2 * radius * s.ppu
	px, pz := s.toPixels(x-radius, z-radius)
	obj := resolv.NewObject(px, pz, size, size, tags.ResolvFighter)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	s.Space.Add(obj)
	s.bodies++
	return &Body{stage: s, Object: obj, radius: radius}
}

// RemoveBody takes a footprint out of the space.
func (s *Stage) RemoveBody(b *Body) {
	if b == nil || b.stage != s {
		return
	}
	s.Space.Remove(b.Object)
	b.stage = nil
	s.bodies--
}

func (s *Stage) toPixels(x, z float64) (float64, float64) {
	return (x + s.Layout.Width/2) * s.ppu, (z + s.Layout.Depth/2) * s.ppu
}

// Body is one fighter's footprint. It implements fighter.Body.
type Body struct {
	stage  *Stage
	Object *resolv.Object
	radius float64
}

var _ fighter.Body = (*Body)(nil)

// Move resolves a planar displacement against walls, X first then Z, and
// returns what was applied. Fighters do not block each other.
func (b *Body) Move(dx, dz float64) (float64, float64) {
	if b.stage == nil {
		return dx, dz
	}
	ppu := b.stage.ppu
	if dx != 0 {
		if px, blocked := b.moveAxis(dx*ppu, true); blocked {
			dx = px / ppu
		}
	}
	if dz != 0 {
		if pz, blocked := b.moveAxis(dz*ppu, false); blocked {
			dz = pz / ppu
		}
	}
	b.Object.Update()
	return dx, dz
}

// moveAxis moves in steps no longer than half the footprint so thin walls
// cannot be skipped. It returns the pixels moved and whether a wall stopped it.
func (b *Body) moveAxis(d float64, alongX bool) (float64, bool) {
	maxStep := math.Max(1, math.Min(b.Object.W, b.Object.H)/2)
	moved := 0.0
	for remaining := d; remaining != 0; {
		step := gamemath.Clamp(remaining, -maxStep, maxStep)
		step, blocked := sweep(b.Object, b.nearbyWalls(step, alongX), step, alongX)
		if alongX {
			b.Object.X += step
		} else {
			b.Object.Y += step
		}
		moved += step
		if blocked {
			return moved, true
		}
		remaining -= step
	}
	return moved, false
}

// nearbyWalls asks the space for the walls in the cells covered by the
// footprint swept d pixels along one axis, grown by a pixel on every side.
// Object.Check only looks at the destination box with its far edge pulled in a
// pixel, which misses walls until the footprint is already inside them.
func (b *Body) nearbyWalls(d float64, alongX bool) []*resolv.Object {
	obj := b.Object
	x, y, w, h := obj.X, obj.Y, obj.W, obj.H
	if alongX {
		obj.X, obj.W = math.Min(x, x+d), w+math.Abs(d)
	} else {
		obj.Y, obj.H = math.Min(y, y+d), h+math.Abs(d)
	}
	obj.X, obj.Y, obj.W, obj.H = obj.X-1, obj.Y-1, obj.W+2, obj.H+2
	check := obj.Check(0, 0, tags.ResolvWall)
	obj.X, obj.Y, obj.W, obj.H = x, y, w, h
	if check == nil {
		return nil
	}
	return check.ObjectsByTags(tags.ResolvWall)
}

// contactSlop absorbs rounding so a footprint resting flush against a wall
// still counts as touching it.
const contactSlop = 1e-6

// sweep shortens a move of d pixels along one axis so obj stops flush against
// the nearest wall in its path. Walls that only share a broadphase cell are
// ignored. A footprint already inside a wall may only move out of it.
func sweep(obj *resolv.Object, walls []*resolv.Object, d float64, alongX bool) (float64, bool) {
	pos, size := obj.Y, obj.H
	lo, hi := obj.X, obj.X+obj.W
	if !alongX {
		pos, size = obj.X, obj.W
		lo, hi = obj.Y, obj.Y+obj.H
	}
	limited := false
	for _, w := range walls {
		wpos, wsize := w.Y, w.H
		wlo, whi := w.X, w.X+w.W
		if !alongX {
			wpos, wsize = w.X, w.W
			wlo, whi = w.Y, w.Y+w.H
		}
		if wpos >= pos+size-contactSlop || wpos+wsize <= pos+contactSlop {
			continue
		}
		switch {
		case wlo < hi-contactSlop && whi > lo+contactSlop:
			// Overlapping: block moves toward the wall's centre.
			if (d > 0) == (wlo+whi > lo+hi) {
				d = 0
				limited = true
			}
		case d > 0 && wlo >= hi-contactSlop && wlo-hi < d:
			d = math.Max(0, wlo-hi)
			limited = true
		case d < 0 && whi <= lo+contactSlop && whi-lo > d:
			d = math.Min(0, whi-lo)
			limited = true
		}
	}
	return d, limited
}

// Place teleports the footprint so it is centred on (x, z).
func (b *Body) Place(x, z float64) {
	if b.stage == nil {
		return
	}
	b.Object.X, b.Object.Y = b.stage.toPixels(x-b.radius, z-b.radius)
	b.Object.Update()
}

// Centre returns the footprint centre in world units.
func (b *Body) Centre() (x, z float64) {
	if b.stage == nil {
		return 0, 0
	}
	l := b.stage.Layout
	return b.Object.X/b.stage.ppu + b.radius - l.Width/2, b.Object.Y/b.stage.ppu + b.radius - l.Depth/2
}
