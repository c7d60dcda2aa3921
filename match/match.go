// Package match owns one fight: a donburi world holding the fighters, the
// arena and the clock, advanced one tick at a time. Everything a match needs
// is held by the Match value; there is no package-level state. A Match is not
// safe for concurrent use.
package match

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"

	"github.com/automoto/doomerang-brawl/anim/pose"
	"github.com/automoto/doomerang-brawl/anim/rig"
	"github.com/automoto/doomerang-brawl/archetypes"
	"github.com/automoto/doomerang-brawl/arena"
	"github.com/automoto/doomerang-brawl/components"
	"github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/fighter"
	"github.com/automoto/doomerang-brawl/moves"
	"github.com/automoto/doomerang-brawl/observability"
	"github.com/automoto/doomerang-brawl/shared/gamemath"
	"github.com/automoto/doomerang-brawl/systems"
)

// ErrFighterExists is returned when a fighter id is already in the match.
var ErrFighterExists = errors.New("fighter already in match")

// FighterSpec describes a fighter joining the match.
type FighterSpec struct {
	ID      uuid.UUID // zero means generate one
	Role    archetypes.Role
	MoveSet string // empty means the role's default set
	// Spawn is the layout spawn index; nil uses join order. See SpawnAt.
	Spawn *int
	// AutoTarget aims the fighter at the nearest opponent every tick.
	AutoTarget bool
}

// SpawnAt pins a FighterSpec to layout spawn i.
func SpawnAt(i int) *int { return &i }

// Match is one running fight.
type Match struct {
	world    donburi.World
	settings config.Settings
	logger   *zap.Logger
	notifier *observability.Notifier
	registry *moves.Registry
	layout   *arena.Layout
	stage    *arena.Stage
	hooks    systems.Hooks
	clock    donburi.Entity

	timeScale float64
	joined    int
}

// New builds an empty match. The arena comes from WithLayout, then
// settings.Arena.LayoutPath, then the built-in open arena.
func New(settings config.Settings, opts ...Option) (*Match, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	m := &Match{
		world:     donburi.NewWorld(),
		settings:  settings,
		logger:    zap.NewNop(),
		timeScale: 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.notifier = observability.NewNotifier(m.logger, settings.Logging.NoticesPerSecond)

	if m.registry == nil {
		reg, err := moves.DefaultRegistry()
		if err != nil {
			return nil, fmt.Errorf("load move sets: %w", err)
		}
		m.registry = reg
	}

	if m.layout == nil {
		layout, err := loadLayout(settings.Arena)
		if err != nil {
			return nil, err
		}
		m.layout = layout
	}
	if err := m.layout.Validate(); err != nil {
		return nil, err
	}
	m.stage = arena.NewStage(m.layout, settings.Arena)

	level := arenaArchetype.Spawn(m.world)
	components.Level.SetValue(level, components.LevelData{Layout: m.layout, Stage: m.stage})

	clock := clockArchetype.Spawn(m.world)
	m.clock = clock.Entity()
	components.Match.SetValue(clock, components.MatchData{
		TimeScale: 1,
		Scores:    make(map[uuid.UUID]*components.FighterScore),
	})

	m.logger.Debug("match created",
		zap.String("arena", m.layout.Name),
		zap.Int("walls", len(m.layout.Walls)),
		zap.Int("spawns", len(m.layout.Spawns)),
		zap.Strings("move_sets", m.registry.Names()))
	return m, nil
}

func loadLayout(cfg config.ArenaConfig) (*arena.Layout, error) {
	if cfg.LayoutPath == "" {
		return arena.DefaultLayout(cfg), nil
	}
	dir, file := filepath.Split(cfg.LayoutPath)
	if dir == "" {
		dir = "."
	}
	return arena.LoadLayout(os.DirFS(dir), file, cfg)
}

func (m *Match) matchData() *components.MatchData {
	return components.Match.Get(m.world.Entry(m.clock))
}

// World exposes the underlying entity store.
func (m *Match) World() donburi.World { return m.world }

// Settings returns the tuning the match runs with.
func (m *Match) Settings() config.Settings { return m.settings }

// Layout returns the arena.
func (m *Match) Layout() *arena.Layout { return m.layout }

// Logger returns the match logger.
func (m *Match) Logger() *zap.Logger { return m.logger }

// AddFighter spawns a fighter and returns its id.
func (m *Match) AddFighter(spec FighterSpec) (uuid.UUID, error) {
	id := spec.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	if _, ok := systems.FindFighter(m.world, id); ok {
		return uuid.Nil, fmt.Errorf("add fighter %s: %w", id, ErrFighterExists)
	}

	profile := archetypes.ProfileFor(spec.Role)
	setName := spec.MoveSet
	if setName == "" {
		setName = profile.MoveSet
	}
	set, ok := m.registry.Get(setName)
	if !ok {
		fallback := m.settings.Combat.MoveSet
		if set, ok = m.registry.Get(fallback); !ok {
			set, _ = m.registry.Resolve(fallback)
		}
		if set == nil {
			return uuid.Nil, fmt.Errorf("add fighter %s: no move set %q and no %q fallback", id, setName, moves.DefaultSet)
		}
		m.notifier.Notice("unknown_move_set", "unknown move set, using fallback",
			zap.String("fighter", id.String()), zap.String("move_set", setName), zap.String("fallback", set.Name))
	}

	slot := m.joined
	spawnIndex := slot
	if spec.Spawn != nil {
		spawnIndex = *spec.Spawn
	}
	spawn := m.layout.SpawnFor(spawnIndex)

	animator, err := rig.New(profile, m.settings, m.notifier)
	if err != nil {
		return uuid.Nil, fmt.Errorf("add fighter %s: %w", id, err)
	}

	bounds := m.layout.Bounds()
	body := m.stage.AddBody(spawn.Position.X, spawn.Position.Z, m.settings.Arena.FighterRadius)
	f := fighter.New(fighter.Options{
		ID:       id,
		Role:     spec.Role,
		Moves:    set,
		Settings: m.settings,
		Position: spawn.Position,
		Facing:   spawn.Facing,
		Body:     body,
		Bounds:   &bounds,
		Notifier: m.notifier,
	})

	e := fighterArchetype.Spawn(m.world)
	components.Fighter.SetValue(e, components.FighterData{Fighter: f, Slot: slot, MoveSet: set.Name})
	components.Object.SetValue(e, components.ObjectData{Body: body})
	components.State.SetValue(e, components.StateData{CurrentState: f.State(), PreviousState: config.StateNone})
	components.Target.SetValue(e, components.TargetData{Auto: spec.AutoTarget})
	components.Animation.SetValue(e, components.AnimationData{Animator: animator})
	m.joined++

	m.hooks.Metrics.SetFighters(m.FighterCount())
	m.logger.Debug("fighter joined",
		zap.String("fighter", id.String()),
		zap.Stringer("role", spec.Role),
		zap.String("move_set", set.Name),
		zap.Int("spawn", spawn.Index))
	return id, nil
}

// RemoveFighter takes a fighter out of the match. Anyone targeting it loses
// their target.
func (m *Match) RemoveFighter(id uuid.UUID) bool {
	e, ok := systems.FindFighter(m.world, id)
	if !ok {
		return false
	}
	removed := components.Fighter.Get(e).Fighter
	m.stage.RemoveBody(components.Object.Get(e).Body)
	m.world.Remove(e.Entity())

	for _, other := range systems.Fighters(m.world) {
		f := components.Fighter.Get(other).Fighter
		if f.Target() == fighter.Target(removed) {
			f.SetTarget(nil)
		}
	}
	m.hooks.Metrics.SetFighters(m.FighterCount())
	m.logger.Debug("fighter left", zap.String("fighter", id.String()))
	return true
}

// FighterCount is the number of fighters in the match.
func (m *Match) FighterCount() int {
	return len(systems.Fighters(m.world))
}

// Fighter returns the simulation record for id.
func (m *Match) Fighter(id uuid.UUID) (*fighter.Fighter, bool) {
	e, ok := systems.FindFighter(m.world, id)
	if !ok {
		return nil, false
	}
	return components.Fighter.Get(e).Fighter, true
}

// SetTarget aims attacker at defender until changed. It fails for unknown ids
// and for self-targeting.
func (m *Match) SetTarget(attacker, defender uuid.UUID) bool {
	a, ok := systems.FindFighter(m.world, attacker)
	if !ok || attacker == defender {
		return false
	}
	d, ok := systems.FindFighter(m.world, defender)
	if !ok {
		return false
	}
	components.Target.SetValue(a, components.TargetData{ID: defender})
	components.Fighter.Get(a).SetTarget(components.Fighter.Get(d).Fighter)
	return true
}

// AutoTarget makes id track the nearest opponent every tick.
func (m *Match) AutoTarget(id uuid.UUID) bool {
	e, ok := systems.FindFighter(m.world, id)
	if !ok {
		return false
	}
	components.Target.SetValue(e, components.TargetData{Auto: true})
	return true
}

// SetTargetPosition aims id at a fixed point until changed. Range checks and
// hits use the point as if an opponent stood there.
func (m *Match) SetTargetPosition(id uuid.UUID, p gamemath.Vec3) bool {
	e, ok := systems.FindFighter(m.world, id)
	if !ok || !p.IsFinite() {
		return false
	}
	components.Target.SetValue(e, components.TargetData{Point: p, HasPoint: true})
	components.Fighter.Get(e).SetTargetPosition(p)
	return true
}

// ClearTarget stops id from aiming at anyone.
func (m *Match) ClearTarget(id uuid.UUID) bool {
	e, ok := systems.FindFighter(m.world, id)
	if !ok {
		return false
	}
	components.Target.SetValue(e, components.TargetData{})
	components.Fighter.Get(e).SetTarget(nil)
	return true
}

// SetInput stores the buttons held by id. Actions fire on the next tick in
// which they go from released to held.
func (m *Match) SetInput(id uuid.UUID, in components.InputData) bool {
	e, ok := systems.FindFighter(m.world, id)
	if !ok {
		return false
	}
	cur := components.Input.Get(e)
	cur.MoveX, cur.MoveZ, cur.Run = in.MoveX, in.MoveZ, in.Run
	cur.Current = in.Current
	return true
}

// Perform issues a single action immediately and reports whether the
// fighter accepted it. Unknown ids are rejected.
func (m *Match) Perform(id uuid.UUID, a components.Action) bool {
	f, ok := m.Fighter(id)
	if !ok {
		return false
	}
	return systems.Perform(f, a)
}

// SetMoveInput sets the planar movement input of id.
func (m *Match) SetMoveInput(id uuid.UUID, x, z float64) bool {
	return m.withInput(id, func(in *components.InputData) { in.MoveX, in.MoveZ = x, z })
}

// SetRunning toggles the run modifier of id.
func (m *Match) SetRunning(id uuid.UUID, running bool) bool {
	return m.withInput(id, func(in *components.InputData) { in.Run = running })
}

func (m *Match) withInput(id uuid.UUID, fn func(*components.InputData)) bool {
	e, ok := systems.FindFighter(m.world, id)
	if !ok {
		return false
	}
	fn(components.Input.Get(e))
	return true
}

func (m *Match) Jump(id uuid.UUID) bool           { return m.Perform(id, components.ActionJump) }
func (m *Match) Dash(id uuid.UUID) bool           { return m.Perform(id, components.ActionDash) }
func (m *Match) LightAttack(id uuid.UUID) bool    { return m.Perform(id, components.ActionLight) }
func (m *Match) HeavyAttack(id uuid.UUID) bool    { return m.Perform(id, components.ActionHeavy) }
func (m *Match) LaunchAttack(id uuid.UUID) bool   { return m.Perform(id, components.ActionLaunch) }
func (m *Match) SpecialAttack(id uuid.UUID) bool  { return m.Perform(id, components.ActionSpecial) }
func (m *Match) UltimateAttack(id uuid.UUID) bool { return m.Perform(id, components.ActionUltimate) }

// TimeScale is the current dt multiplier.
func (m *Match) TimeScale() float64 { return m.timeScale }

// SetTimeScale sets the dt multiplier, clamped to [0, Physics.MaxTimeScale].
// Non-finite values are ignored.
func (m *Match) SetTimeScale(s float64) {
	if !gamemath.IsFinite(s) {
		return
	}
	m.timeScale = gamemath.Clamp(s, 0, m.settings.Physics.MaxTimeScale)
	m.matchData().TimeScale = m.timeScale
}

// Elapsed is the simulation time: the sum of every scaled dt.
func (m *Match) Elapsed() float64 {
	return m.matchData().Elapsed
}

// Ticks counts calls to Tick that advanced the simulation.
func (m *Match) Ticks() uint64 {
	return m.matchData().Ticks
}

// Tick advances the match by dt seconds of wall time. dt is clamped to
// Physics.MaxFrameDelta and then scaled. Within a tick input is applied and
// fighters are targeted and moved before their attacks advance. Landed hits
// are delivered before the animation layer reads the result.
func (m *Match) Tick(dt float64) {
	if !gamemath.IsFinite(dt) || dt <= 0 {
		return
	}
	dt = gamemath.Clamp(dt, 0, m.settings.Physics.MaxFrameDelta) * m.timeScale
	if dt <= 0 {
		return
	}
	start := time.Now()
	systems.UpdateInput(m.world)
	systems.UpdateTargeting(m.world)
	systems.UpdatePhysics(m.world, dt)
	systems.UpdateCombat(m.world, dt, m.hooks)
	systems.UpdateHits(m.world, m.hooks)
	systems.UpdateStates(m.world, dt)
	systems.UpdateAnimation(m.world, dt)
	systems.UpdateClock(m.world, dt)
	m.hooks.Metrics.Tick()
	m.hooks.Metrics.ObserveTick(time.Since(start))
}

// Snapshot returns the current state of one fighter.
func (m *Match) Snapshot(id uuid.UUID) (fighter.Snapshot, bool) {
	f, ok := m.Fighter(id)
	if !ok {
		return fighter.Snapshot{}, false
	}
	return f.Snapshot(), true
}

// Snapshots returns every fighter's state in join order.
func (m *Match) Snapshots() []fighter.Snapshot {
	entries := systems.Fighters(m.world)
	out := make([]fighter.Snapshot, 0, len(entries))
	for _, e := range entries {
		out = append(out, components.Fighter.Get(e).Snapshot())
	}
	return out
}

// Transforms returns the posed body parts of a fighter. A nil parts list
// means every part the rig knows.
func (m *Match) Transforms(id uuid.UUID, parts []string) (map[string]pose.Transform, bool) {
	e, ok := systems.FindFighter(m.world, id)
	if !ok {
		return nil, false
	}
	a := components.Animation.Get(e)
	if parts == nil {
		parts = a.Parts()
	}
	return a.Transforms(parts), true
}

// Score returns the statistics of a fighter.
func (m *Match) Score(id uuid.UUID) components.FighterScore {
	return *m.matchData().GetScore(id)
}

// Leader returns the fighter with the most damage dealt, if there is a single one.
func (m *Match) Leader() (uuid.UUID, bool) {
	return m.matchData().GetLeader()
}
