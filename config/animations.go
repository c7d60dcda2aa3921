package config

// AnimationDef describes how a presentation state plays on the pose rig.
type AnimationDef struct {
	Duration float64 // seconds per cycle; attack states stretch to the move duration
	Loop     bool
	Blend    float64 // cross-fade into this state, seconds
}

// StateAnimations holds the timing of every pose state keyed by StateID.
var StateAnimations = map[StateID]AnimationDef{
	Idle:    {Duration: 2.0, Loop: true, Blend: 0.2},
	Walk:    {Duration: 1.0, Loop: true, Blend: 0.15},
	Running: {Duration: 0.6, Loop: true, Blend: 0.1},
	Jump:    {Duration: 0.4, Loop: false, Blend: 0.05},
	Fall:    {Duration: 0.5, Loop: true, Blend: 0.1},
	Landing: {Duration: 0.1, Loop: false, Blend: 0.03},
	Dash:    {Duration: 0.25, Loop: false, Blend: 0.03},
	Attack:  {Duration: 0.5, Loop: false, Blend: 0.05},
	Hitstun: {Duration: 0.4, Loop: true, Blend: 0.02},
}
