package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/automoto/doomerang-brawl/config"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, config.Default().Validate())
}

func TestDefault_ReturnsCopy(t *testing.T) {
	s := config.Default()
	s.Combat.AttackRange = 99
	assert.NotEqual(t, 99.0, config.Default().Combat.AttackRange)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	s, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), s)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "brawl.yaml")
	content := []byte("combat:\n  attack_range: 3.5\nmeter:\n  special_regen: 10\nlogging:\n  format: console\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	s, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3.5, s.Combat.AttackRange)
	assert.Equal(t, 10.0, s.Meter.SpecialRegen)
	assert.Equal(t, "console", s.Logging.Format)
	assert.Equal(t, config.Default().Physics, s.Physics)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BRAWL_COMBAT_COMBO_DROP_TIMEOUT", "4.5")
	s, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 4.5, s.Combat.ComboDropTimeout)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	content := []byte("physics:\n  gravity: 5\nlogging:\n  level: loud\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "physics.gravity")
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidate_PhaseFractions(t *testing.T) {
	s := config.Default()
	s.Combat.WindupFraction = 0.6
	s.Combat.ActiveFraction = 0.5
	assert.Error(t, s.Validate())
}

func TestPropertyValidate_NonPositiveAttackRangeRejected(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := config.Default()
		s.Combat.AttackRange = rapid.Float64Range(-100, 0).Draw(t, "range")
		assert.Error(t, s.Validate())
	})
}

func TestPropertyValidate_SpecialCostWithinMeter(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := config.Default()
		s.Meter.SpecialCost = rapid.Float64Range(0.1, s.Meter.Max).Draw(t, "cost")
		assert.NoError(t, s.Validate())
	})
}

func TestStateID_String(t *testing.T) {
	assert.Equal(t, "run", config.Running.String())
	assert.Equal(t, "unknown", config.StateID(999).String())
	for id := range config.StateAnimations {
		assert.NotEqual(t, "unknown", id.String())
	}
}
