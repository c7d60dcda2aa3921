package match_test

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/doomerang-brawl/archetypes"
	"github.com/automoto/doomerang-brawl/arena"
	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/fighter"
	"github.com/automoto/doomerang-brawl/match"
	"github.com/automoto/doomerang-brawl/metrics"
	"github.com/automoto/doomerang-brawl/moves"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
)

const step = 1.0 / 60

var (
	idA = uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	idB = uuid.MustParse("00000000-0000-0000-0000-00000000000b")
)

// closeLayout puts two spawns within attack range of each other.
func closeLayout() *arena.Layout {
	return &arena.Layout{
		Name:  "close",
		Width: 24,
		Depth: 12,
		Spawns: []arena.Spawn{
			{Position: gamemath.Vec3{X: -0.75}, Facing: math.Pi / 2, Index: 0},
			{Position: gamemath.Vec3{X: 0.75}, Facing: -math.Pi / 2, Index: 1},
		},
	}
}

func newMatch(t *testing.T, opts ...match.Option) *match.Match {
	t.Helper()
	m, err := match.New(config.Default(), opts...)
	require.NoError(t, err)
	return m
}

// pair adds two auto-targeting brawlers with fixed ids.
func pair(t *testing.T, m *match.Match) {
	t.Helper()
	for _, id := range []uuid.UUID{idA, idB} {
		_, err := m.AddFighter(match.FighterSpec{ID: id, Role: archetypes.Balanced, AutoTarget: true})
		require.NoError(t, err)
	}
}

func run(m *match.Match, ticks int) {
	for i := 0; i < ticks; i++ {
		m.Tick(step)
	}
}

func TestNew_Defaults(t *testing.T) {
	m := newMatch(t)
	assert.Equal(t, "default", m.Layout().Name)
	assert.Equal(t, 0, m.FighterCount())
	assert.Equal(t, 1.0, m.TimeScale())
	assert.Zero(t, m.Elapsed())
	assert.NotNil(t, m.World())
}

func TestNew_RejectsInvalidSettings(t *testing.T) {
	s := config.Default()
	s.Physics.Gravity = 1
	_, err := match.New(s)
	assert.Error(t, err)
}

func TestNew_LoadsLayoutPath(t *testing.T) {
	s := config.Default()
	s.Arena.LayoutPath = "../arena/testdata/pillar.tmx"
	m, err := match.New(s)
	require.NoError(t, err)
	assert.Len(t, m.Layout().Walls, 4)

	s.Arena.LayoutPath = "../arena/testdata/missing.tmx"
	_, err = match.New(s)
	assert.Error(t, err)
}

func TestAddFighter_JoinOrderSpawns(t *testing.T) {
	m := newMatch(t)
	pair(t, m)
	require.Equal(t, 2, m.FighterCount())

	snaps := m.Snapshots()
	require.Len(t, snaps, 2)
	assert.Equal(t, idA, snaps[0].ID)
	assert.Equal(t, idB, snaps[1].ID)
	assert.InDelta(t, -6, snaps[0].Position.X, 1e-9)
	assert.InDelta(t, 6, snaps[1].Position.X, 1e-9)
}

func TestAddFighter_GeneratesID(t *testing.T) {
	m := newMatch(t)
	id, err := m.AddFighter(match.FighterSpec{Role: archetypes.Blitzer})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)

	f, ok := m.Fighter(id)
	require.True(t, ok)
	assert.Equal(t, archetypes.Blitzer, f.Role())
	assert.Equal(t, "rushdown", f.Moves().Name)
}

func TestAddFighter_DuplicateID(t *testing.T) {
	m := newMatch(t)
	pair(t, m)
	_, err := m.AddFighter(match.FighterSpec{ID: idA})
	assert.ErrorIs(t, err, match.ErrFighterExists)
	assert.Equal(t, 2, m.FighterCount())
}

func TestAddFighter_UnknownMoveSetFallsBack(t *testing.T) {
	m := newMatch(t)
	id, err := m.AddFighter(match.FighterSpec{MoveSet: "capoeira"})
	require.NoError(t, err)
	f, _ := m.Fighter(id)
	assert.Equal(t, moves.DefaultSet, f.Moves().Name)
}

func TestAddFighter_PinnedSpawn(t *testing.T) {
	m := newMatch(t)
	a, err := m.AddFighter(match.FighterSpec{Spawn: match.SpawnAt(1)})
	require.NoError(t, err)
	b, err := m.AddFighter(match.FighterSpec{})
	require.NoError(t, err)

	fa, _ := m.Fighter(a)
	fb, _ := m.Fighter(b)
	assert.InDelta(t, 6, fa.Position().X, 1e-9)
	assert.InDelta(t, 6, fb.Position().X, 1e-9, "second joiner takes join-order slot 1")
}

func TestAddFighter_ConfiguredFallbackMoveSet(t *testing.T) {
	s := config.Default()
	s.Combat.MoveSet = "rushdown"
	m, err := match.New(s)
	require.NoError(t, err)

	id, err := m.AddFighter(match.FighterSpec{MoveSet: "capoeira"})
	require.NoError(t, err)
	f, _ := m.Fighter(id)
	assert.Equal(t, "rushdown", f.Moves().Name)

	s.Combat.MoveSet = "missing"
	m, err = match.New(s)
	require.NoError(t, err)
	id, err = m.AddFighter(match.FighterSpec{MoveSet: "capoeira"})
	require.NoError(t, err)
	f, _ = m.Fighter(id)
	assert.Equal(t, moves.DefaultSet, f.Moves().Name)
}

func TestTick_DeliversHits(t *testing.T) {
	var hits []fighter.HitEvent
	reg := prometheus.NewRegistry()
	c := metrics.New(reg)
	m := newMatch(t,
		match.WithLayout(closeLayout()),
		match.WithMetrics(c),
		match.WithHitListener(fighter.HitListenerFunc(func(ev fighter.HitEvent) {
			hits = append(hits, ev)
		})),
	)
	pair(t, m)

	require.True(t, m.Perform(idA, components.ActionLight))
	run(m, 60)

	require.Len(t, hits, 1)
	assert.Equal(t, idA, hits[0].Attacker)
	assert.Equal(t, moves.Light1, hits[0].Move)
	assert.Equal(t, 4, hits[0].Damage)

	def, _ := m.Snapshot(idB)
	assert.Equal(t, 4.0, def.DamageTaken)

	score := m.Score(idA)
	assert.Equal(t, 1, score.Hits)
	assert.Equal(t, 4, score.Damage)
	assert.Equal(t, 1, score.BestCombo)
	leader, ok := m.Leader()
	require.True(t, ok)
	assert.Equal(t, idA, leader)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Hits.WithLabelValues("light1")))
	assert.Equal(t, 4.0, testutil.ToFloat64(c.Damage))
	assert.Equal(t, 60.0, testutil.ToFloat64(c.Ticks))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.Fighters))
}

func TestSetTargetPosition_LandsHit(t *testing.T) {
	var hits []fighter.HitEvent
	m := newMatch(t, match.WithHitListener(fighter.HitListenerFunc(func(ev fighter.HitEvent) {
		hits = append(hits, ev)
	})))
	id, err := m.AddFighter(match.FighterSpec{ID: idA, Role: archetypes.Balanced})
	require.NoError(t, err)
	a, _ := m.Snapshot(id)
	point := a.Position.Add(gamemath.Vec3{X: 1})

	require.True(t, m.SetTargetPosition(id, point))
	m.Tick(step)
	s, _ := m.Snapshot(id)
	require.True(t, s.HasTarget)
	assert.InDelta(t, 1, s.TargetDir.X, 1e-9)

	require.True(t, m.LightAttack(id))
	run(m, 40)
	require.Len(t, hits, 1)
	assert.Equal(t, fighter.Target(fighter.PointTarget(point)), hits[0].Target)
	assert.Equal(t, 1, m.Score(id).Hits)

	assert.False(t, m.SetTargetPosition(uuid.New(), point))
	assert.False(t, m.SetTargetPosition(id, gamemath.Vec3{X: math.NaN()}))
}

func TestTick_OutOfRangeNoHit(t *testing.T) {
	var hits int
	m := newMatch(t, match.WithHitListener(fighter.HitListenerFunc(func(fighter.HitEvent) { hits++ })))
	pair(t, m)
	require.True(t, m.Perform(idA, components.ActionLight))
	run(m, 60)
	assert.Zero(t, hits)
	_, ok := m.Leader()
	assert.False(t, ok)
}

func TestTick_ClampsAndScalesDelta(t *testing.T) {
	m := newMatch(t)
	m.Tick(1)
	assert.InDelta(t, 0.1, m.Elapsed(), 1e-12)

	m.SetTimeScale(2)
	m.Tick(0.05)
	assert.InDelta(t, 0.2, m.Elapsed(), 1e-12)
	assert.Equal(t, uint64(2), m.Ticks())
}

func TestTick_IgnoresBadDelta(t *testing.T) {
	m := newMatch(t)
	for _, dt := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		m.Tick(dt)
	}
	assert.Zero(t, m.Elapsed())
	assert.Zero(t, m.Ticks())
}

func TestSetTimeScale(t *testing.T) {
	m := newMatch(t)
	m.SetTimeScale(100)
	assert.Equal(t, 4.0, m.TimeScale())
	m.SetTimeScale(math.NaN())
	assert.Equal(t, 4.0, m.TimeScale())
	m.SetTimeScale(-1)
	assert.Equal(t, 0.0, m.TimeScale())

	// A paused match does not advance.
	pair(t, m)
	require.True(t, m.SetMoveInput(idA, 1, 0))
	before, _ := m.Snapshot(idA)
	run(m, 10)
	after, _ := m.Snapshot(idA)
	assert.Equal(t, before.Position, after.Position)
	assert.Zero(t, m.Elapsed())
}

func TestSetInput_FiresOnPress(t *testing.T) {
	m := newMatch(t)
	pair(t, m)

	var in components.InputData
	in.Current[components.ActionLight] = true
	require.True(t, m.SetInput(idA, in))
	m.Tick(step)
	s, _ := m.Snapshot(idA)
	assert.Equal(t, moves.Light1, s.Attack)
	serial := s.AttackSerial

	// Holding the button does not repeat the attack.
	run(m, 60)
	s, _ = m.Snapshot(idA)
	assert.Equal(t, serial, s.AttackSerial)
	assert.Equal(t, moves.MoveNone, s.Attack)

	require.True(t, m.SetInput(idA, components.InputData{}))
	m.Tick(step)
	require.True(t, m.SetInput(idA, in))
	m.Tick(step)
	s, _ = m.Snapshot(idA)
	assert.Equal(t, serial+1, s.AttackSerial)
}

func TestMove_WalksFighter(t *testing.T) {
	m := newMatch(t)
	pair(t, m)
	require.True(t, m.SetMoveInput(idA, 1, 0))
	run(m, 30)
	s, _ := m.Snapshot(idA)
	assert.Greater(t, s.Position.X, -6.0)
	assert.Equal(t, config.Walk, s.State)
}

func TestSetTarget(t *testing.T) {
	m := newMatch(t)
	pair(t, m)

	assert.False(t, m.SetTarget(idA, idA))
	assert.False(t, m.SetTarget(idA, uuid.New()))
	assert.False(t, m.SetTarget(uuid.New(), idB))
	require.True(t, m.SetTarget(idA, idB))
	m.Tick(step)
	s, _ := m.Snapshot(idA)
	assert.True(t, s.HasTarget)

	require.True(t, m.ClearTarget(idA))
	m.Tick(step)
	s, _ = m.Snapshot(idA)
	assert.False(t, s.HasTarget)

	require.True(t, m.AutoTarget(idA))
	m.Tick(step)
	s, _ = m.Snapshot(idA)
	assert.True(t, s.HasTarget)
}

func TestRemoveFighter(t *testing.T) {
	m := newMatch(t)
	pair(t, m)
	require.True(t, m.SetTarget(idA, idB))

	require.True(t, m.RemoveFighter(idB))
	assert.False(t, m.RemoveFighter(idB))
	assert.Equal(t, 1, m.FighterCount())

	a, _ := m.Fighter(idA)
	assert.Nil(t, a.Target())
	m.Tick(step)
	s, _ := m.Snapshot(idA)
	assert.False(t, s.HasTarget)
}

func TestUnknownFighter(t *testing.T) {
	m := newMatch(t)
	id := uuid.New()
	_, ok := m.Fighter(id)
	assert.False(t, ok)
	_, ok = m.Snapshot(id)
	assert.False(t, ok)
	_, ok = m.Transforms(id, nil)
	assert.False(t, ok)
	assert.False(t, m.Perform(id, components.ActionJump))
	assert.False(t, m.SetMoveInput(id, 1, 0))
	assert.False(t, m.SetRunning(id, true))
	assert.False(t, m.LightAttack(id))
	assert.False(t, m.UltimateAttack(id))
	assert.False(t, m.SetInput(id, components.InputData{}))
	assert.False(t, m.AutoTarget(id))
	assert.False(t, m.ClearTarget(id))
}

func TestTransforms(t *testing.T) {
	m := newMatch(t)
	pair(t, m)
	run(m, 5)

	all, ok := m.Transforms(idA, nil)
	require.True(t, ok)
	assert.Len(t, all, 14)

	some, ok := m.Transforms(idA, []string{"head"})
	require.True(t, ok)
	assert.Len(t, some, 1)
	assert.Contains(t, some, "head")
}

// script drives the same inputs through a fresh match.
func script(t *testing.T) []fighter.Snapshot {
	m := newMatch(t, match.WithLayout(closeLayout()))
	pair(t, m)
	for i := 0; i < 240; i++ {
		switch i {
		case 0:
			m.SetMoveInput(idB, 0, 1)
			m.SetRunning(idB, true)
		case 5:
			m.LightAttack(idA)
		case 20:
			m.Perform(idA, components.ActionLight)
		case 40:
			m.Dash(idB)
		case 60:
			m.LaunchAttack(idA)
		case 90:
			m.Jump(idB)
		}
		m.Tick(step)
	}
	return m.Snapshots()
}

func TestTick_Deterministic(t *testing.T) {
	assert.Equal(t, script(t), script(t))
}
