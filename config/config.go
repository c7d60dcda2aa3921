package config

// PhysicsConfig contains world-level physics values shared by every fighter.
type PhysicsConfig struct {
	Gravity       float64 `mapstructure:"gravity"`         // units/s^2, negative is down
	MaxFallSpeed  float64 `mapstructure:"max_fall_speed"`  // units/s
	GroundY       float64 `mapstructure:"ground_y"`        // height of the arena floor
	AirControl    float64 `mapstructure:"air_control"`     // fraction of ground acceleration while airborne
	MaxFrameDelta float64 `mapstructure:"max_frame_delta"` // seconds; larger frame deltas are clamped
	MaxTimeScale  float64 `mapstructure:"max_time_scale"`
	TurnRate      float64 `mapstructure:"turn_rate"` // facing interpolation factor per second
}

// CombatConfig contains attack resolution values.
type CombatConfig struct {
	AttackRange      float64 `mapstructure:"attack_range"`       // world units
	ComboDropTimeout float64 `mapstructure:"combo_drop_timeout"` // seconds without a hit before the combo resets
	DamageFalloff    float64 `mapstructure:"damage_falloff"`     // multiplier lost per combo hit
	MinDamageScale   float64 `mapstructure:"min_damage_scale"`

	// Attack phases as fractions of a move's duration. Recovery is the rest.
	WindupFraction float64 `mapstructure:"windup_fraction"`
	ActiveFraction float64 `mapstructure:"active_fraction"`

	LaunchImpulse float64 `mapstructure:"launch_impulse"` // upward velocity added by the launcher
	LandingTime   float64 `mapstructure:"landing_time"`   // seconds of landing pose after touchdown
	MoveSet       string  `mapstructure:"move_set"`       // default move set name
}

// MeterConfig contains the resource meter economy.
type MeterConfig struct {
	Max               float64 `mapstructure:"max"`
	SpecialCost       float64 `mapstructure:"special_cost"`
	UltimateCost      float64 `mapstructure:"ultimate_cost"`
	SpecialRegen      float64 `mapstructure:"special_regen"`  // per second
	UltimateRegen     float64 `mapstructure:"ultimate_regen"` // per second
	SpecialPerDamage  float64 `mapstructure:"special_per_damage"`
	UltimatePerDamage float64 `mapstructure:"ultimate_per_damage"`
}

// DashConfig contains dash values that do not vary by archetype.
type DashConfig struct {
	Invulnerability float64 `mapstructure:"invulnerability"` // seconds of i-frames granted by a dash
}

// AnimationConfig contains procedural animation tuning.
type AnimationConfig struct {
	BlendTime       float64 `mapstructure:"blend_time"`        // default cross-fade between states
	AttackBlendTime float64 `mapstructure:"attack_blend_time"` // cross-fade into attack states
	SpringStiffness float64 `mapstructure:"spring_stiffness"`
	RestEpsilon     float64 `mapstructure:"rest_epsilon"`

	// Neck limits in radians
	NeckYawLimit   float64 `mapstructure:"neck_yaw_limit"`
	NeckPitchLimit float64 `mapstructure:"neck_pitch_limit"`

	BreathRate  float64 `mapstructure:"breath_rate"` // breaths per second at rest
	BreathDepth float64 `mapstructure:"breath_depth"`

	// Leg chain
	UpperLeg     float64 `mapstructure:"upper_leg"`
	LowerLeg     float64 `mapstructure:"lower_leg"`
	HipHeight    float64 `mapstructure:"hip_height"`
	StrideLength float64 `mapstructure:"stride_length"`
	StepHeight   float64 `mapstructure:"step_height"`

	SecondaryLinks int `mapstructure:"secondary_links"` // springs in the hair/cloth cascade
}

// ArenaConfig describes the default arena when no layout file is given.
type ArenaConfig struct {
	Width         float64 `mapstructure:"width"`
	Depth         float64 `mapstructure:"depth"`
	TileUnits     float64 `mapstructure:"tile_units"`      // world units per TMX tile
	FighterRadius float64 `mapstructure:"fighter_radius"`  // footprint half-extent
	PixelsPerUnit float64 `mapstructure:"pixels_per_unit"` // collision space resolution
	CellSize      int     `mapstructure:"cell_size"`       // collision space cell in pixels
	LayoutPath    string  `mapstructure:"layout_path"`     // optional TMX file
}

// LoggingConfig holds structured logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// Format is the log output format: "json" or "console".
	Format string `mapstructure:"format"`
	// NoticesPerSecond throttles repeated diagnostics from the simulation.
	NoticesPerSecond float64 `mapstructure:"notices_per_second"`
}

// Settings bundles every tuning block a match needs.
type Settings struct {
	Physics   PhysicsConfig   `mapstructure:"physics"`
	Combat    CombatConfig    `mapstructure:"combat"`
	Meter     MeterConfig     `mapstructure:"meter"`
	Dash      DashConfig      `mapstructure:"dash"`
	Animation AnimationConfig `mapstructure:"animation"`
	Arena     ArenaConfig     `mapstructure:"arena"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

var Physics PhysicsConfig
var Combat CombatConfig
var Meter MeterConfig
var DashTuning DashConfig
var Animation AnimationConfig
var Arena ArenaConfig
var Logging LoggingConfig

// Default returns a copy of the built-in tuning values.
func Default() Settings {
	return Settings{
		Physics:   Physics,
		Combat:    Combat,
		Meter:     Meter,
		Dash:      DashTuning,
		Animation: Animation,
		Arena:     Arena,
		Logging:   Logging,
	}
}

func init() {
	Physics = PhysicsConfig{
		Gravity:       -25.0,
		MaxFallSpeed:  30.0,
		GroundY:       0,
		AirControl:    0.5,
		MaxFrameDelta: 0.1,
		MaxTimeScale:  4.0,
		TurnRate:      12.0,
	}

	Combat = CombatConfig{
		AttackRange:      2.0,
		ComboDropTimeout: 2.0,
		DamageFalloff:    0.05,
		MinDamageScale:   0.3,

		WindupFraction: 0.2,
		ActiveFraction: 0.4,

		LaunchImpulse: 6.0,
		LandingTime:   0.1,
		MoveSet:       "standard",
	}

	Meter = MeterConfig{
		Max:               100,
		SpecialCost:       50,
		UltimateCost:      100,
		SpecialRegen:      5,
		UltimateRegen:     2,
		SpecialPerDamage:  0.5,
		UltimatePerDamage: 0.25,
	}

	DashTuning = DashConfig{
		Invulnerability: 0.2,
	}

	Animation = AnimationConfig{
		BlendTime:       0.15,
		AttackBlendTime: 0.05,
		SpringStiffness: 120,
		RestEpsilon:     0.001,

		NeckYawLimit:   1.2,
		NeckPitchLimit: 0.6,

		BreathRate:  0.3,
		BreathDepth: 0.02,

		UpperLeg:     0.45,
		LowerLeg:     0.45,
		HipHeight:    0.85,
		StrideLength: 0.6,
		StepHeight:   0.12,

		SecondaryLinks: 4,
	}

	Arena = ArenaConfig{
		Width:         24,
		Depth:         12,
		TileUnits:     1,
		FighterRadius: 0.4,
		PixelsPerUnit: 16,
		CellSize:      16,
	}

	Logging = LoggingConfig{
		Level:            "info",
		Format:           "json",
		NoticesPerSecond: 2,
	}
}
