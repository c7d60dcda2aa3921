// Package pose evaluates keyframed body poses and cross-fades between named
// animation states.
package pose

import (
	"fmt"
	"sort"

	"github.com/automoto/doomerang-brawl/anim/ease"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// Transform is a fully specified local transform for one body part. Rotation
// holds Euler angles in radians.
type Transform struct {
	Position gamemath.Vec3
	Rotation gamemath.Vec3
	Scale    gamemath.Vec3
}

// Identity is the neutral transform.
func Identity() Transform {
	return Transform{Scale: gamemath.Vec3{X: 1, Y: 1, Z: 1}}
}

// Lerp blends toward o by t. Rotations take the shortest arc per axis.
func (tr Transform) Lerp(o Transform, t float64) Transform {
	return Transform{
		Position: tr.Position.Lerp(o.Position, t),
		Rotation: gamemath.Vec3{
			X: gamemath.LerpAngle(tr.Rotation.X, o.Rotation.X, t),
			Y: gamemath.LerpAngle(tr.Rotation.Y, o.Rotation.Y, t),
			Z: gamemath.LerpAngle(tr.Rotation.Z, o.Rotation.Z, t),
		},
		Scale: tr.Scale.Lerp(o.Scale, t),
	}
}

// PartialTransform leaves unset channels at identity.
type PartialTransform struct {
	Position *gamemath.Vec3
	Rotation *gamemath.Vec3
	Scale    *gamemath.Vec3
}

// Resolve fills missing channels with identity values.
func (p PartialTransform) Resolve() Transform {
	tr := Identity()
	if p.Position != nil {
		tr.Position = *p.Position
	}
	if p.Rotation != nil {
		tr.Rotation = *p.Rotation
	}
	if p.Scale != nil {
		tr.Scale = *p.Scale
	}
	return tr
}

// Pose is a keyframe. Easing shapes the interpolation arriving at this pose;
// nil means linear.
type Pose struct {
	Time   float64
	Parts  map[string]PartialTransform
	Easing ease.Func
}

func (p Pose) part(name string) Transform {
	if pt, ok := p.Parts[name]; ok {
		return pt.Resolve()
	}
	return Identity()
}

func (p Pose) curve() ease.Func {
	if p.Easing == nil {
		return ease.Linear
	}
	return p.Easing
}

// State is a named, timed sequence of poses.
type State struct {
	Name     string
	Duration float64
	Loop     bool
	Poses    []Pose
}

func (s *State) validate() error {
	if s.Name == "" {
		return fmt.Errorf("animation state has no name")
	}
	if s.Duration < 0 {
		return fmt.Errorf("animation state %q: negative duration %v", s.Name, s.Duration)
	}
	for i, p := range s.Poses {
		if p.Time < 0 || p.Time > s.Duration {
			return fmt.Errorf("animation state %q: pose %d time %v outside [0, %v]", s.Name, i, p.Time, s.Duration)
		}
	}
	return nil
}

// Sample returns the transform of part at time t within the state.
func (s *State) Sample(part string, t float64) Transform {
	if len(s.Poses) == 0 {
		return Identity()
	}
	first := s.Poses[0]
	last := s.Poses[len(s.Poses)-1]
	if len(s.Poses) == 1 || t <= first.Time {
		return first.part(part)
	}
	if t >= last.Time {
		// Looping states wrap the tail back into the first pose.
		span := s.Duration - last.Time + first.Time
		if !s.Loop || span <= 0 {
			return last.part(part)
		}
		k := gamemath.Clamp((t-last.Time)/span, 0, 1)
		return last.part(part).Lerp(first.part(part), first.curve()(k))
	}

	i := sort.Search(len(s.Poses), func(i int) bool { return s.Poses[i].Time > t })
	a, b := s.Poses[i-1], s.Poses[i]
	span := b.Time - a.Time
	if span <= 0 {
		return b.part(part)
	}
	k := (t - a.Time) / span
	return a.part(part).Lerp(b.part(part), b.curve()(k))
}

// Initial returns the transform of part in the state's first pose.
func (s *State) Initial(part string) Transform {
	if len(s.Poses) == 0 {
		return Identity()
	}
	return s.Poses[0].part(part)
}
