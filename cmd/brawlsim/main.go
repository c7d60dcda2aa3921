// Command brawlsim runs a headless scripted match between two fighters. With
// -metrics-addr it also serves Prometheus metrics and live snapshots.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/automoto/doomerang-brawl/archetypes"
	"github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/fighter"
	"github.com/automoto/doomerang-brawl/match"
	"github.com/automoto/doomerang-brawl/metrics"
	"github.com/automoto/doomerang-brawl/observability"
)

func main() {
	configPath := flag.String("config", "", "YAML settings file (empty = built-in defaults)")
	ticks := flag.Uint64("ticks", 600, "Ticks to simulate (0 = until interrupted)")
	fps := flag.Int("fps", 60, "Simulation rate (ticks per second)")
	timeScale := flag.Float64("timescale", 1, "Simulation speed multiplier")
	metricsAddr := flag.String("metrics-addr", "", "Serve /metrics and /snapshot on this address")
	realtime := flag.Bool("realtime", false, "Pace ticks to wall time")
	left := flag.String("left", "balanced", "Left fighter role")
	right := flag.String("right", "tank", "Right fighter role")
	flag.Parse()

	if err := run(options{
		configPath:  *configPath,
		ticks:       *ticks,
		fps:         *fps,
		timeScale:   *timeScale,
		metricsAddr: *metricsAddr,
		realtime:    *realtime,
		left:        *left,
		right:       *right,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "brawlsim: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	configPath  string
	ticks       uint64
	fps         int
	timeScale   float64
	metricsAddr string
	realtime    bool
	left, right string
}

func run(opts options) error {
	if opts.fps <= 0 {
		return fmt.Errorf("fps must be positive, got %d", opts.fps)
	}
	settings, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	logger, err := observability.NewLogger(settings.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	leftRole, err := archetypes.ParseRole(opts.left)
	if err != nil {
		return err
	}
	rightRole, err := archetypes.ParseRole(opts.right)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m, err := match.New(settings,
		match.WithLogger(logger),
		match.WithMetrics(metrics.New(reg)),
		match.WithHitListener(fighter.HitListenerFunc(func(ev fighter.HitEvent) {
			logger.Debug("hit",
				zap.String("attacker", ev.Attacker.String()),
				zap.Stringer("move", ev.Move),
				zap.Int("damage", ev.Damage),
				zap.Int("combo", ev.Combo))
		})),
	)
	if err != nil {
		return err
	}
	m.SetTimeScale(opts.timeScale)

	leftID, err := m.AddFighter(match.FighterSpec{Role: leftRole, Spawn: match.SpawnAt(0), AutoTarget: true})
	if err != nil {
		return err
	}
	rightID, err := m.AddFighter(match.FighterSpec{Role: rightRole, Spawn: match.SpawnAt(1), AutoTarget: true})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var mu sync.Mutex
	if opts.metricsAddr != "" {
		srv := &http.Server{
			Addr:              opts.metricsAddr,
			Handler:           newRouter(m, &mu, reg),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server failed", zap.Error(err))
				stop()
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
		logger.Info("serving debug endpoints", zap.String("addr", opts.metricsAddr))
		// Without pacing the match would finish before anyone could look.
		opts.realtime = true
	}

	logger.Info("match starting",
		zap.String("arena", m.Layout().Name),
		zap.Stringer("left", leftRole),
		zap.Stringer("right", rightRole),
		zap.Int("fps", opts.fps),
		zap.Float64("time_scale", m.TimeScale()))

	loop := &gameLoop{
		match:    m,
		mu:       &mu,
		script:   newScript(leftID, rightID),
		dt:       1 / float64(opts.fps),
		limit:    opts.ticks,
		realtime: opts.realtime,
	}
	loop.Run(ctx)

	summarize(logger, m, leftID, rightID)
	return nil
}

func summarize(logger *zap.Logger, m *match.Match, ids ...uuid.UUID) {
	for _, id := range ids {
		s := m.Score(id)
		snap, _ := m.Snapshot(id)
		logger.Info("fighter result",
			zap.String("fighter", id.String()),
			zap.Stringer("role", snap.Role),
			zap.Int("hits", s.Hits),
			zap.Int("damage", s.Damage),
			zap.Int("best_combo", s.BestCombo),
			zap.Int("combos_dropped", s.CombosDropped),
			zap.Float64("damage_taken", snap.DamageTaken))
	}
	if leader, ok := m.Leader(); ok {
		logger.Info("match leader", zap.String("fighter", leader.String()))
	} else {
		logger.Info("match even")
	}
	logger.Info("match finished", zap.Float64("elapsed", m.Elapsed()), zap.Uint64("ticks", m.Ticks()))
}
