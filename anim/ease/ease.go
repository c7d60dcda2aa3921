// Package ease exposes normalized easing curves: t in [0,1] maps to a progress
// value that starts at exactly 0 and ends at exactly 1. Back and elastic curves
// overshoot in between.
package ease

import (
	"sort"

	gease "github.com/tanema/gween/ease"
)

// Func maps normalized time to normalized progress.
type Func func(t float64) float64

// FromTween adapts a gween curve (t, begin, change, duration) to a normalized Func.
func FromTween(f gease.TweenFunc) Func {
	return func(t float64) float64 {
		switch {
		case t <= 0:
			return 0
		case t >= 1:
			return 1
		}
		return float64(f(float32(t), 0, 1, 1))
	}
}

// Tween adapts a normalized Func back into a gween curve so it can drive a gween.Tween.
func (f Func) Tween() gease.TweenFunc {
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(f(float64(t/d)))
	}
}

var (
	Linear     = FromTween(gease.Linear)
	InQuad     = FromTween(gease.InQuad)
	OutQuad    = FromTween(gease.OutQuad)
	InOutQuad  = FromTween(gease.InOutQuad)
	InCubic    = FromTween(gease.InCubic)
	OutCubic   = FromTween(gease.OutCubic)
	InOutCubic = FromTween(gease.InOutCubic)
	OutElastic = FromTween(gease.OutElastic)
	InBack     = FromTween(gease.InBack)
	OutBack    = FromTween(gease.OutBack)
	OutBounce  = FromTween(gease.OutBounce)
)

// SmoothStep is the cubic Hermite 3t^2 - 2t^3.
func SmoothStep(t float64) float64 {
	t = clamp01(t)
	return t * t * (3 - 2*t)
}

// SmootherStep is Perlin's quintic 6t^5 - 15t^4 + 10t^3.
func SmootherStep(t float64) float64 {
	t = clamp01(t)
	return t * t * t * (t*(t*6-15) + 10)
}

var byName = map[string]Func{
	"linear":       Linear,
	"inQuad":       InQuad,
	"outQuad":      OutQuad,
	"inOutQuad":    InOutQuad,
	"inCubic":      InCubic,
	"outCubic":     OutCubic,
	"inOutCubic":   InOutCubic,
	"outElastic":   OutElastic,
	"inBack":       InBack,
	"outBack":      OutBack,
	"bounceOut":    OutBounce,
	"smoothStep":   SmoothStep,
	"smootherStep": SmootherStep,
}

// ByName looks up a curve. Unknown names return Linear and false.
func ByName(name string) (Func, bool) {
	f, ok := byName[name]
	if !ok {
		return Linear, false
	}
	return f, true
}

// Names lists every registered curve name in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Overshoots reports whether the named curve leaves [0,1] between its endpoints.
func Overshoots(name string) bool {
	switch name {
	case "outElastic", "inBack", "outBack":
		return true
	}
	return false
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
