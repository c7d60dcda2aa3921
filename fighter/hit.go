package fighter

import (
	"github.com/google/uuid"

	"github.com/automoto/doomerang-brawl/moves"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// HitEvent is a landed hit, queued by the attacker and delivered by the match.
type HitEvent struct {
	Attacker  uuid.UUID
	Target    Target
	Move      moves.MoveID
	Damage    int
	Knockback gamemath.Vec3 // velocity given to the defender
	Hitstun   float64
	Hitlag    float64
	Position  gamemath.Vec3 // world-space contact point
	Combo     int
	Time      float64
}

// HitListener is notified once per landed hit (audio, VFX, metrics).
type HitListener interface {
	OnHit(ev HitEvent)
}

// HitListenerFunc adapts a function to HitListener.
type HitListenerFunc func(ev HitEvent)

func (fn HitListenerFunc) OnHit(ev HitEvent) { fn(ev) }

// DrainHits returns hits landed since the last call and clears the queue.
func (f *Fighter) DrainHits() []HitEvent {
	if len(f.outbox) == 0 {
		return nil
	}
	out := make([]HitEvent, len(f.outbox))
	copy(out, f.outbox)
	f.outbox = f.outbox[:0]
	return out
}

// ReceiveHit applies a landed hit to this fighter as the defender: knockback
// velocity, hitstun and hitlag. Any attack in progress is interrupted and the
// input buffer dropped. Returns false if the fighter was invulnerable.
func (f *Fighter) ReceiveHit(ev HitEvent) bool {
	if f.invuln > 0 {
		return false
	}
	if ev.Knockback.IsFinite() {
		f.vel = ev.Knockback
		if ev.Knockback.Y > 0 {
			f.grounded = false
		}
	}
	if ev.Hitstun > f.hitstun {
		f.hitstun = ev.Hitstun
	}
	if ev.Hitlag > f.hitlag {
		f.hitlag = ev.Hitlag
	}
	f.clearAttack()
	f.bufLight, f.bufHeavy = false, false
	f.dashTimer = 0
	if ev.Damage > 0 {
		f.damageTaken += float64(ev.Damage)
	}
	return true
}
