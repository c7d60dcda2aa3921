package fighter

import (
	"math"

	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

// DamageScale is the combo falloff multiplier: max(floor, 1 - combo*falloff).
func DamageScale(combo int, falloff, floor float64) float64 {
	if combo < 0 {
		combo = 0
	}
	return math.Max(floor, 1-float64(combo)*falloff)
}

// DealDamage applies combo falloff to raw, records the hit and feeds both
// meters. It returns the effective damage.
func (f *Fighter) DealDamage(raw float64) int {
	if raw <= 0 || !gamemath.IsFinite(raw) {
		return 0
	}
	scale := DamageScale(f.combo, f.combat.DamageFalloff, f.combat.MinDamageScale)
	dmg := int(math.Floor(raw * scale))

	f.comboDamage += float64(dmg)
	f.lastHitAt = f.clock
	f.comboTimer = f.combat.ComboDropTimeout

	f.special = f.clampMeter(f.special + float64(dmg)*f.meter.SpecialPerDamage)
	f.ultimate = f.clampMeter(f.ultimate + float64(dmg)*f.meter.UltimatePerDamage)
	return dmg
}

// LastHitAt is the simulation time of the most recent landed hit.
func (f *Fighter) LastHitAt() float64 { return f.lastHitAt }

func (f *Fighter) clampMeter(v float64) float64 {
	if !gamemath.IsFinite(v) {
		return 0
	}
	return gamemath.Clamp(v, 0, f.meter.Max)
}
