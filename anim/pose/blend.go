package pose

import (
	"math"
	"sort"

	"github.com/tanema/gween"
	gease "github.com/tanema/gween/ease"
	"go.uber.org/zap"

	"github.com/automoto/doomerang-brawl/observability"
)

// BlendController plays one state at a time and cross-fades into the next.
// At most one blend is in flight.
type BlendController struct {
	states   map[string]*State
	notifier *observability.Notifier

	current *State
	time    float64
	speed   float64
	done    bool

	next     *State
	blend    *gween.Tween
	progress float64

	onComplete func(name string)
}

// NewBlendController returns an empty controller. notifier may be nil.
func NewBlendController(notifier *observability.Notifier) *BlendController {
	return &BlendController{
		states:   make(map[string]*State),
		notifier: notifier,
		speed:    1,
	}
}

// AddState registers st, replacing any state of the same name. Poses are
// sorted by time.
func (b *BlendController) AddState(st State) error {
	if err := st.validate(); err != nil {
		return err
	}
	poses := make([]Pose, len(st.Poses))
	copy(poses, st.Poses)
	sort.SliceStable(poses, func(i, j int) bool { return poses[i].Time < poses[j].Time })
	st.Poses = poses
	b.states[st.Name] = &st
	return nil
}

// HasState reports whether name is registered.
func (b *BlendController) HasState(name string) bool {
	_, ok := b.states[name]
	return ok
}

// OnComplete sets the callback fired once when a non-looping state reaches its end.
func (b *BlendController) OnComplete(fn func(name string)) {
	b.onComplete = fn
}

// SetSpeed scales playback of the current state. Negative values are treated as zero.
func (b *BlendController) SetSpeed(s float64) {
	b.speed = math.Max(0, s)
}

// Play starts blending into name over blendDuration seconds. Playing the state
// already current (or already being blended into) does nothing. A blend already
// in flight toward another state is completed first. Unknown names are
// reported and ignored.
func (b *BlendController) Play(name string, blendDuration float64) bool {
	st, ok := b.states[name]
	if !ok {
		b.notifier.Notice("unknown_animation_state", "unknown animation state", zap.String("state", name))
		return false
	}
	if b.next == st || (b.next == nil && b.current == st) {
		return true
	}
	if b.next != nil {
		b.finishBlend()
		if b.current == st {
			return true
		}
	}
	if b.current == nil || blendDuration <= 0 {
		b.switchTo(st)
		return true
	}
	b.next = st
	b.progress = 0
	b.blend = gween.New(0, 1, float32(blendDuration), gease.Linear)
	return true
}

// Restart rewinds the current state and re-arms its completion callback.
func (b *BlendController) Restart() {
	b.time = 0
	b.done = false
}

// Update advances playback and any in-flight blend by dt seconds.
func (b *BlendController) Update(dt float64) {
	if b.current == nil || dt <= 0 {
		return
	}
	b.time += dt * b.speed
	switch d := b.current.Duration; {
	case b.current.Loop:
		if d > 0 && b.time >= d {
			b.time = math.Mod(b.time, d)
		}
	case b.time >= d:
		// Zero-length one-shots complete on their first update.
		b.time = d
		if !b.done {
			b.done = true
			if b.onComplete != nil {
				b.onComplete(b.current.Name)
			}
		}
	}

	if b.next != nil {
		p, finished := b.blend.Update(float32(dt))
		b.progress = float64(p)
		if finished {
			b.finishBlend()
		}
	}
}

// GetCurrentTransforms returns one fully defaulted transform per part. While a
// blend is in flight the current state is cross-faded linearly against the
// next state's first pose.
func (b *BlendController) GetCurrentTransforms(parts []string) map[string]Transform {
	out := make(map[string]Transform, len(parts))
	for _, part := range parts {
		if b.current == nil {
			out[part] = Identity()
			continue
		}
		tr := b.current.Sample(part, b.time)
		if b.next != nil {
			tr = tr.Lerp(b.next.Initial(part), b.progress)
		}
		out[part] = tr
	}
	return out
}

// Current returns the playing state name, or "" before the first Play.
func (b *BlendController) Current() string {
	if b.current == nil {
		return ""
	}
	return b.current.Name
}

// Next returns the state being blended into, or "".
func (b *BlendController) Next() string {
	if b.next == nil {
		return ""
	}
	return b.next.Name
}

// BlendProgress is in [0,1]; zero when no blend is in flight.
func (b *BlendController) BlendProgress() float64 { return b.progress }

// Time is the playback position within the current state.
func (b *BlendController) Time() float64 { return b.time }

// Finished reports whether a non-looping current state has reached its end.
func (b *BlendController) Finished() bool { return b.done }

func (b *BlendController) finishBlend() {
	st := b.next
	b.next = nil
	b.blend = nil
	b.progress = 0
	b.switchTo(st)
}

func (b *BlendController) switchTo(st *State) {
	b.current = st
	b.time = 0
	b.done = false
	b.speed = 1
}
