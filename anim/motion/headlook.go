package motion

import (
	"math"

	"github.com/automoto/doomerang-brawl/anim/spring"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// HeadLook turns the head toward a point of interest within neck limits.
type HeadLook struct {
	YawLimit   float64
	PitchLimit float64

	yaw   *spring.Spring
	pitch *spring.Spring
}

func NewHeadLook(yawLimit, pitchLimit, stiffness float64) *HeadLook {
	return &HeadLook{
		YawLimit:   yawLimit,
		PitchLimit: pitchLimit,
		yaw:        spring.Critical(stiffness, 0),
		pitch:      spring.Critical(stiffness, 0),
	}
}

// SetTarget aims at dir (world space, from the head) for a body facing bodyYaw.
// A zero direction relaxes the head forward.
func (h *HeadLook) SetTarget(dir gamemath.Vec3, bodyYaw float64) {
	planar := math.Hypot(dir.X, dir.Z)
	if !dir.IsFinite() || (planar == 0 && dir.Y == 0) {
		h.yaw.SetTarget(0)
		h.pitch.SetTarget(0)
		return
	}
	yaw := gamemath.WrapAngle(gamemath.HeadingOf(dir.X, dir.Z) - bodyYaw)
	pitch := math.Atan2(dir.Y, planar)
	h.yaw.SetTarget(gamemath.Clamp(yaw, -h.YawLimit, h.YawLimit))
	h.pitch.SetTarget(gamemath.Clamp(pitch, -h.PitchLimit, h.PitchLimit))
}

// Update returns neck yaw and pitch in radians.
func (h *HeadLook) Update(dt float64) (yaw, pitch float64) {
	return h.yaw.Update(dt), h.pitch.Update(dt)
}
