package fighter

import (
	"math"

	"go.uber.org/zap"

	"github.com/automoto/doomerang-brawl/moves"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// LightAttack starts or chains a light attack. While an attack is running and
// not yet cancel-eligible the request is buffered instead.
func (f *Fighter) LightAttack() bool {
	return f.basicAttack(moves.KindLight)
}

// HeavyAttack is LightAttack for the heavy chain.
func (f *Fighter) HeavyAttack() bool {
	return f.basicAttack(moves.KindHeavy)
}

func (f *Fighter) basicAttack(kind moves.Kind) bool {
	if f.hitstun > 0 || f.hitlag > 0 {
		return false
	}
	if f.attack != moves.MoveNone && !f.cancelEligible {
		if kind == moves.KindLight {
			f.bufLight = true
		} else {
			f.bufHeavy = true
		}
		return false
	}
	if !f.grounded {
		if id, ok := f.resolve(aerial(kind)); ok {
			return f.startAttack(id)
		}
	}
	id, ok := f.resolve(kind)
	if !ok {
		f.notifier.Notice("unknown_move", "no move for attack input",
			zap.String("fighter", f.id.String()), zap.Int("kind", int(kind)))
		return false
	}
	return f.startAttack(id)
}

func aerial(kind moves.Kind) moves.Kind {
	switch kind {
	case moves.KindLight:
		return moves.KindAirLight
	case moves.KindHeavy:
		return moves.KindAirHeavy
	}
	return kind
}

// resolve picks the move of kind that follows the current attack, falling back
// to the chain opener.
func (f *Fighter) resolve(kind moves.Kind) (moves.MoveID, bool) {
	if f.attack != moves.MoveNone {
		if id, ok := f.set.NextOfKind(f.attack, kind); ok {
			return id, true
		}
	}
	return f.set.First(kind)
}

// LaunchAttack starts the launcher from the ground and hops the fighter upward.
func (f *Fighter) LaunchAttack() bool {
	if !f.grounded || !f.canAct() {
		return false
	}
	id, ok := f.set.First(moves.KindLauncher)
	if !ok || !f.startAttack(id) {
		return false
	}
	m, _ := f.set.Get(id)
	lift := m.Lift
	if lift <= 0 {
		lift = f.combat.LaunchImpulse
	}
	f.vel.Y = lift
	f.grounded = false
	return true
}

// SpecialAttack spends SpecialCost meter on the special move.
func (f *Fighter) SpecialAttack() bool {
	if f.special < f.meter.SpecialCost || !f.canAct() {
		return false
	}
	id, ok := f.set.First(moves.KindSpecial)
	if !ok || !f.startAttack(id) {
		return false
	}
	f.special = f.clampMeter(f.special - f.meter.SpecialCost)
	return true
}

// UltimateAttack needs a full ultimate meter and empties it.
func (f *Fighter) UltimateAttack() bool {
	if f.ultimate < f.meter.UltimateCost || !f.canAct() {
		return false
	}
	id, ok := f.set.First(moves.KindUltimate)
	if !ok || !f.startAttack(id) {
		return false
	}
	f.ultimate = 0
	return true
}

func (f *Fighter) canAct() bool {
	if f.hitstun > 0 || f.hitlag > 0 {
		return false
	}
	return f.attack == moves.MoveNone || f.cancelEligible
}

func (f *Fighter) startAttack(id moves.MoveID) bool {
	if _, ok := f.set.Get(id); !ok {
		f.notifier.Notice("unknown_move", "unknown move id",
			zap.String("fighter", f.id.String()), zap.Stringer("move", id))
		return false
	}
	f.attack = id
	f.attackElapsed = 0
	f.phase = PhaseWindup
	f.cancelEligible = false
	f.hitResolved = false
	f.attackSerial++
	f.dashTimer = 0
	// A press buffered during the previous move is spent by this one.
	f.bufLight, f.bufHeavy = false, false

	f.combo++
	f.comboTimer = f.combat.ComboDropTimeout
	return true
}

func (f *Fighter) clearAttack() {
	f.attack = moves.MoveNone
	f.attackElapsed = 0
	f.phase = PhaseNone
	f.cancelEligible = false
	f.hitResolved = false
}

// UpdateCombat advances attack phases and every combat timer by dt.
func (f *Fighter) UpdateCombat(dt float64) {
	if dt <= 0 {
		return
	}
	f.clock += dt
	if f.hitlag > 0 {
		f.hitlag = math.Max(0, f.hitlag-dt)
		return
	}

	f.invuln = math.Max(0, f.invuln-dt)
	f.hitstun = math.Max(0, f.hitstun-dt)
	f.special = f.clampMeter(f.special + f.meter.SpecialRegen*dt)
	f.ultimate = f.clampMeter(f.ultimate + f.meter.UltimateRegen*dt)

	if f.combo > 0 {
		f.comboTimer -= dt
		if f.comboTimer <= 0 {
			f.combo = 0
			f.comboTimer = 0
			f.comboDamage = 0
		}
	}

	if f.attack == moves.MoveNone {
		return
	}
	m, ok := f.set.Get(f.attack)
	if !ok {
		f.clearAttack()
		return
	}

	prev := f.attackElapsed
	f.attackElapsed += dt
	if f.attackElapsed > m.Duration {
		f.clearAttack()
		f.replayBuffer()
		return
	}

	activeStart := m.Duration * f.combat.WindupFraction
	activeEnd := activeStart + m.Duration*f.combat.ActiveFraction
	switch {
	case f.attackElapsed < activeStart:
		f.phase = PhaseWindup
	case f.attackElapsed < activeEnd:
		f.phase = PhaseActive
	default:
		f.phase = PhaseRecovery
	}
	if f.attackElapsed >= m.CancelWindow {
		f.cancelEligible = true
	}
	if !f.hitResolved && f.attackElapsed >= activeStart {
		f.hitResolved = true
		if prev < activeEnd {
			f.resolveHit(m)
		}
	}
}

// replayBuffer retries the single buffered input, light before heavy.
func (f *Fighter) replayBuffer() {
	light, heavy := f.bufLight, f.bufHeavy
	f.bufLight, f.bufHeavy = false, false
	switch {
	case light:
		f.basicAttack(moves.KindLight)
	case heavy:
		f.basicAttack(moves.KindHeavy)
	}
}

// Buffered reports the pending light and heavy inputs.
func (f *Fighter) Buffered() (light, heavy bool) {
	return f.bufLight, f.bufHeavy
}

// IsInAttackRange reports whether the tracked target is within attack range.
func (f *Fighter) IsInAttackRange() bool {
	if f.target == nil {
		return false
	}
	return f.pos.Dist(f.target.TargetPosition()) <= f.combat.AttackRange
}

func (f *Fighter) resolveHit(m moves.Move) {
	if !f.IsInAttackRange() {
		return
	}
	if inv, ok := f.target.(invulnerable); ok && inv.Invulnerable() {
		return
	}
	tp := f.target.TargetPosition()
	dmg := f.DealDamage(m.Damage)

	yaw := f.facing
	if dx, dz := tp.X-f.pos.X, tp.Z-f.pos.Z; dx != 0 || dz != 0 {
		yaw = gamemath.HeadingOf(dx, dz)
	}
	mag := gamemath.KnockbackMagnitude(m.Knockback.Base, m.Knockback.Growth, f.comboDamage)
	kb := gamemath.KnockbackVector(yaw, m.Knockback.Angle*math.Pi/180, mag)

	f.hitlag = m.Hitlag
	f.outbox = append(f.outbox, HitEvent{
		Attacker:  f.id,
		Target:    f.target,
		Move:      m.ID,
		Damage:    dmg,
		Knockback: kb,
		Hitstun:   m.Hitstun,
		Hitlag:    m.Hitlag,
		Position:  f.pos.Lerp(tp, 0.5),
		Combo:     f.combo,
		Time:      f.clock,
	})
}
