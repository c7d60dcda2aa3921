package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load layers an optional YAML file and BRAWL_* environment variables over the
// built-in defaults, then validates the result. An empty path skips the file.
func Load(path string) (Settings, error) {
	v := viper.New()

	// Environment variable overrides with BRAWL_ prefix
	v.SetEnvPrefix("BRAWL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v, Default())

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	return LoadFromViper(v)
}

// LoadFromViper builds Settings from an already-configured Viper instance.
func LoadFromViper(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func setDefaults(v *viper.Viper, d Settings) {
	v.SetDefault("physics.gravity", d.Physics.Gravity)
	v.SetDefault("physics.max_fall_speed", d.Physics.MaxFallSpeed)
	v.SetDefault("physics.ground_y", d.Physics.GroundY)
	v.SetDefault("physics.air_control", d.Physics.AirControl)
	v.SetDefault("physics.max_frame_delta", d.Physics.MaxFrameDelta)
	v.SetDefault("physics.max_time_scale", d.Physics.MaxTimeScale)
	v.SetDefault("physics.turn_rate", d.Physics.TurnRate)

	v.SetDefault("combat.attack_range", d.Combat.AttackRange)
	v.SetDefault("combat.combo_drop_timeout", d.Combat.ComboDropTimeout)
	v.SetDefault("combat.damage_falloff", d.Combat.DamageFalloff)
	v.SetDefault("combat.min_damage_scale", d.Combat.MinDamageScale)
	v.SetDefault("combat.windup_fraction", d.Combat.WindupFraction)
	v.SetDefault("combat.active_fraction", d.Combat.ActiveFraction)
	v.SetDefault("combat.launch_impulse", d.Combat.LaunchImpulse)
	v.SetDefault("combat.landing_time", d.Combat.LandingTime)
	v.SetDefault("combat.move_set", d.Combat.MoveSet)

	v.SetDefault("meter.max", d.Meter.Max)
	v.SetDefault("meter.special_cost", d.Meter.SpecialCost)
	v.SetDefault("meter.ultimate_cost", d.Meter.UltimateCost)
	v.SetDefault("meter.special_regen", d.Meter.SpecialRegen)
	v.SetDefault("meter.ultimate_regen", d.Meter.UltimateRegen)
	v.SetDefault("meter.special_per_damage", d.Meter.SpecialPerDamage)
	v.SetDefault("meter.ultimate_per_damage", d.Meter.UltimatePerDamage)

	v.SetDefault("dash.invulnerability", d.Dash.Invulnerability)

	v.SetDefault("animation.blend_time", d.Animation.BlendTime)
	v.SetDefault("animation.attack_blend_time", d.Animation.AttackBlendTime)
	v.SetDefault("animation.spring_stiffness", d.Animation.SpringStiffness)
	v.SetDefault("animation.rest_epsilon", d.Animation.RestEpsilon)
	v.SetDefault("animation.neck_yaw_limit", d.Animation.NeckYawLimit)
	v.SetDefault("animation.neck_pitch_limit", d.Animation.NeckPitchLimit)
	v.SetDefault("animation.breath_rate", d.Animation.BreathRate)
	v.SetDefault("animation.breath_depth", d.Animation.BreathDepth)
	v.SetDefault("animation.upper_leg", d.Animation.UpperLeg)
	v.SetDefault("animation.lower_leg", d.Animation.LowerLeg)
	v.SetDefault("animation.hip_height", d.Animation.HipHeight)
	v.SetDefault("animation.stride_length", d.Animation.StrideLength)
	v.SetDefault("animation.step_height", d.Animation.StepHeight)
	v.SetDefault("animation.secondary_links", d.Animation.SecondaryLinks)

	v.SetDefault("arena.width", d.Arena.Width)
	v.SetDefault("arena.depth", d.Arena.Depth)
	v.SetDefault("arena.tile_units", d.Arena.TileUnits)
	v.SetDefault("arena.fighter_radius", d.Arena.FighterRadius)
	v.SetDefault("arena.pixels_per_unit", d.Arena.PixelsPerUnit)
	v.SetDefault("arena.cell_size", d.Arena.CellSize)
	v.SetDefault("arena.layout_path", d.Arena.LayoutPath)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.notices_per_second", d.Logging.NoticesPerSecond)
}

// Validate checks every configuration invariant.
//
// Postcondition: Returns nil if the settings are usable, or an error describing all violations.
func (s Settings) Validate() error {
	var errs []string
	for _, err := range []error{
		validatePhysics(s.Physics),
		validateCombat(s.Combat),
		validateMeter(s.Meter),
		validateAnimation(s.Animation),
		validateArena(s.Arena),
		validateLogging(s.Logging),
	} {
		if err != nil {
			errs = append(errs, err.Error())
		}
	}
	if s.Dash.Invulnerability < 0 {
		errs = append(errs, "dash.invulnerability must not be negative")
	}
	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validatePhysics(p PhysicsConfig) error {
	var errs []string
	if p.Gravity >= 0 {
		errs = append(errs, fmt.Sprintf("physics.gravity must be negative, got %v", p.Gravity))
	}
	if p.MaxFallSpeed <= 0 {
		errs = append(errs, "physics.max_fall_speed must be positive")
	}
	if p.AirControl < 0 || p.AirControl > 1 {
		errs = append(errs, fmt.Sprintf("physics.air_control must be 0-1, got %v", p.AirControl))
	}
	if p.MaxFrameDelta <= 0 {
		errs = append(errs, "physics.max_frame_delta must be positive")
	}
	if p.MaxTimeScale <= 0 {
		errs = append(errs, "physics.max_time_scale must be positive")
	}
	return joinErrs(errs)
}

func validateCombat(c CombatConfig) error {
	var errs []string
	if c.AttackRange <= 0 {
		errs = append(errs, "combat.attack_range must be positive")
	}
	if c.ComboDropTimeout <= 0 {
		errs = append(errs, "combat.combo_drop_timeout must be positive")
	}
	if c.DamageFalloff < 0 {
		errs = append(errs, "combat.damage_falloff must not be negative")
	}
	if c.MinDamageScale < 0 || c.MinDamageScale > 1 {
		errs = append(errs, fmt.Sprintf("combat.min_damage_scale must be 0-1, got %v", c.MinDamageScale))
	}
	if c.WindupFraction <= 0 || c.ActiveFraction <= 0 || c.WindupFraction+c.ActiveFraction >= 1 {
		errs = append(errs, "combat.windup_fraction and combat.active_fraction must be positive and sum below 1")
	}
	if c.MoveSet == "" {
		errs = append(errs, "combat.move_set must not be empty")
	}
	return joinErrs(errs)
}

func validateMeter(m MeterConfig) error {
	var errs []string
	if m.Max <= 0 {
		errs = append(errs, "meter.max must be positive")
	}
	if m.SpecialCost <= 0 || m.SpecialCost > m.Max {
		errs = append(errs, fmt.Sprintf("meter.special_cost must be in (0, %v], got %v", m.Max, m.SpecialCost))
	}
	if m.UltimateCost <= 0 || m.UltimateCost > m.Max {
		errs = append(errs, fmt.Sprintf("meter.ultimate_cost must be in (0, %v], got %v", m.Max, m.UltimateCost))
	}
	if m.SpecialRegen < 0 || m.UltimateRegen < 0 {
		errs = append(errs, "meter regen rates must not be negative")
	}
	return joinErrs(errs)
}

func validateAnimation(a AnimationConfig) error {
	var errs []string
	if a.UpperLeg <= 0 || a.LowerLeg <= 0 {
		errs = append(errs, "animation leg lengths must be positive")
	}
	if a.SpringStiffness <= 0 {
		errs = append(errs, "animation.spring_stiffness must be positive")
	}
	if a.SecondaryLinks < 0 {
		errs = append(errs, "animation.secondary_links must not be negative")
	}
	return joinErrs(errs)
}

func validateArena(a ArenaConfig) error {
	var errs []string
	if a.Width <= 0 || a.Depth <= 0 {
		errs = append(errs, "arena width and depth must be positive")
	}
	if a.FighterRadius <= 0 {
		errs = append(errs, "arena.fighter_radius must be positive")
	}
	if a.PixelsPerUnit <= 0 || a.CellSize <= 0 {
		errs = append(errs, "arena.pixels_per_unit and arena.cell_size must be positive")
	}
	if a.TileUnits <= 0 {
		errs = append(errs, "arena.tile_units must be positive")
	}
	return joinErrs(errs)
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	if l.NoticesPerSecond <= 0 {
		return errors.New("logging.notices_per_second must be positive")
	}
	return nil
}

func joinErrs(errs []string) error {
	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
