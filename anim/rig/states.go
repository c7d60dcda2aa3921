package rig

import (
	"math"

	"github.com/automoto/doomerang-brawl/anim/ease"
	"github.com/automoto/doomerang-brawl/anim/pose"
	"github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// Body part names understood by the rig.
const (
	Hips   = "hips"
	Torso  = "torso"
	Chest  = "chest"
	Head   = "head"
	ArmL   = "armL"
	ArmR   = "armR"
	ThighL = "thighL"
	ShinL  = "shinL"
	ThighR = "thighR"
	ShinR  = "shinR"
)

var bodyParts = []string{Hips, Torso, Chest, Head, ArmL, ArmR, ThighL, ShinL, ThighR, ShinR}

func vec(x, y, z float64) *gamemath.Vec3 { return &gamemath.Vec3{X: x, Y: y, Z: z} }

type parts = map[string]pose.PartialTransform

// keyframes holds the base poses of each presentation state. Times are
// fractions of the state's duration and scaled in DefaultStates.
var keyframes = map[config.StateID][]pose.Pose{
	config.Idle: {
		{Time: 0, Parts: parts{ArmL: {Rotation: vec(0, 0, 0.15)}, ArmR: {Rotation: vec(0, 0, -0.15)}}},
		{Time: 0.5, Parts: parts{
			Hips: {Position: vec(0, -0.01, 0)},
			ArmL: {Rotation: vec(0, 0, 0.18)},
			ArmR: {Rotation: vec(0, 0, -0.18)},
		}, Easing: ease.InOutQuad},
	},
	config.Walk: {
		{Time: 0, Parts: parts{ArmL: {Rotation: vec(0.35, 0, 0)}, ArmR: {Rotation: vec(-0.35, 0, 0)}}},
		{Time: 0.5, Parts: parts{ArmL: {Rotation: vec(-0.35, 0, 0)}, ArmR: {Rotation: vec(0.35, 0, 0)}}, Easing: ease.InOutQuad},
	},
	config.Running: {
		{Time: 0, Parts: parts{
			Torso: {Rotation: vec(0.15, 0, 0)},
			ArmL:  {Rotation: vec(0.8, 0, 0)},
			ArmR:  {Rotation: vec(-0.8, 0, 0)},
		}},
		{Time: 0.5, Parts: parts{
			Torso: {Rotation: vec(0.15, 0, 0)},
			ArmL:  {Rotation: vec(-0.8, 0, 0)},
			ArmR:  {Rotation: vec(0.8, 0, 0)},
		}, Easing: ease.InOutCubic},
	},
	config.Jump: {
		{Time: 0, Parts: parts{Hips: {Position: vec(0, -0.05, 0)}}},
		{Time: 1, Parts: parts{
			ArmL:   {Rotation: vec(-1.2, 0, 0.3)},
			ArmR:   {Rotation: vec(-1.2, 0, -0.3)},
			ThighL: {Rotation: vec(-0.6, 0, 0)},
			ShinL:  {Rotation: vec(1.0, 0, 0)},
		}, Easing: ease.OutQuad},
	},
	config.Fall: {
		{Time: 0, Parts: parts{ArmL: {Rotation: vec(-0.6, 0, 0.6)}, ArmR: {Rotation: vec(-0.6, 0, -0.6)}}},
		{Time: 0.5, Parts: parts{ArmL: {Rotation: vec(-0.7, 0, 0.7)}, ArmR: {Rotation: vec(-0.7, 0, -0.7)}}, Easing: ease.InOutQuad},
	},
	config.Landing: {
		{Time: 0, Parts: parts{Hips: {Position: vec(0, -0.15, 0)}, Torso: {Rotation: vec(0.25, 0, 0)}}},
		{Time: 1, Parts: parts{}, Easing: ease.OutQuad},
	},
	config.Dash: {
		{Time: 0, Parts: parts{Torso: {Rotation: vec(0.45, 0, 0)}, ArmL: {Rotation: vec(1.0, 0, 0)}, ArmR: {Rotation: vec(1.0, 0, 0)}}},
		{Time: 1, Parts: parts{Torso: {Rotation: vec(0.2, 0, 0)}}, Easing: ease.OutCubic},
	},
	config.Attack: {
		{Time: 0, Parts: parts{Torso: {Rotation: vec(0, -0.3, 0)}, ArmR: {Rotation: vec(-0.4, 0, 0)}}},
		{Time: 0.4, Parts: parts{Torso: {Rotation: vec(0.1, 0.4, 0)}, ArmR: {Rotation: vec(-1.5, 0, 0)}}, Easing: ease.OutBack},
		{Time: 1, Parts: parts{}, Easing: ease.InOutQuad},
	},
	config.Hitstun: {
		{Time: 0, Parts: parts{Torso: {Rotation: vec(-0.4, 0, 0)}, Head: {Rotation: vec(-0.3, 0, 0)}}},
		{Time: 0.5, Parts: parts{Torso: {Rotation: vec(-0.3, 0, 0.1)}, Head: {Rotation: vec(-0.2, 0, 0)}}, Easing: ease.OutElastic},
	},
}

// DefaultStates builds the pose states for every presentation state, timed
// from config.StateAnimations.
func DefaultStates() []pose.State {
	out := make([]pose.State, 0, len(keyframes))
	for id := config.Idle; id <= config.Hitstun; id++ {
		def, ok := config.StateAnimations[id]
		if !ok {
			continue
		}
		frames := keyframes[id]
		poses := make([]pose.Pose, len(frames))
		for i, p := range frames {
			p.Time = math.Min(p.Time*def.Duration, def.Duration)
			poses[i] = p
		}
		out = append(out, pose.State{
			Name:     id.String(),
			Duration: def.Duration,
			Loop:     def.Loop,
			Poses:    poses,
		})
	}
	return out
}
