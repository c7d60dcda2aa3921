package archetypes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/doomerang-brawl/archetypes"
)

func TestProfileFor_UnknownFallsBackToBalanced(t *testing.T) {
	p := archetypes.ProfileFor(archetypes.Role(42))
	assert.Equal(t, archetypes.Balanced, p.Role)
	assert.Equal(t, archetypes.ProfileFor(archetypes.Balanced), p)
}

func TestProfileFor_ReturnsCopy(t *testing.T) {
	p := archetypes.ProfileFor(archetypes.Tank)
	p.RunSpeed = 100
	assert.NotEqual(t, 100.0, archetypes.ProfileFor(archetypes.Tank).RunSpeed)
}

func TestProfiles_Sane(t *testing.T) {
	for _, r := range archetypes.Roles() {
		t.Run(r.String(), func(t *testing.T) {
			p := archetypes.ProfileFor(r)
			assert.Equal(t, r, p.Role)
			assert.Greater(t, p.RunSpeed, p.WalkSpeed)
			assert.Greater(t, p.DashSpeed, p.RunSpeed)
			assert.Greater(t, p.JumpImpulse, 0.0)
			assert.Greater(t, p.DashCooldown, 0.0)
			assert.Greater(t, p.DashDuration(), 0.0)
			assert.NotEmpty(t, p.MoveSet)
		})
	}
}

func TestDashDuration_InverseToCadence(t *testing.T) {
	b := archetypes.ProfileFor(archetypes.Balanced)
	assert.InDelta(t, 0.2, b.DashDuration(), 1e-9)

	fast := b
	fast.Cadence.Speed = 2
	assert.InDelta(t, 0.1, fast.DashDuration(), 1e-9)
}

func TestParseRole(t *testing.T) {
	r, err := archetypes.ParseRole(" Blitzer ")
	require.NoError(t, err)
	assert.Equal(t, archetypes.Blitzer, r)

	_, err = archetypes.ParseRole("wizard")
	assert.Error(t, err)
}
