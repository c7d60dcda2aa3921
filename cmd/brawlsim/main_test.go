package main

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/doomerang-brawl/archetypes"
	"github.com/automoto/doomerang-brawl/config"
	"github.com/automoto/doomerang-brawl/match"
	"github.com/automoto/doomerang-brawl/metrics"
)

func newTestLoop(t *testing.T, reg prometheus.Registerer, limit uint64) *gameLoop {
	t.Helper()
	m, err := match.New(config.Default(), match.WithMetrics(metrics.New(reg)))
	require.NoError(t, err)
	left, err := m.AddFighter(match.FighterSpec{Role: archetypes.Balanced, Spawn: match.SpawnAt(0), AutoTarget: true})
	require.NoError(t, err)
	right, err := m.AddFighter(match.FighterSpec{Role: archetypes.Tank, Spawn: match.SpawnAt(1), AutoTarget: true})
	require.NoError(t, err)
	return &gameLoop{
		match:  m,
		mu:     &sync.Mutex{},
		script: newScript(left, right),
		dt:     1.0 / 60,
		limit:  limit,
	}
}

func TestGameLoop_RunsToLimit(t *testing.T) {
	g := newTestLoop(t, prometheus.NewRegistry(), 300)
	g.Run(context.Background())
	assert.Equal(t, uint64(300), g.match.Ticks())
	assert.InDelta(t, 5.0, g.match.Elapsed(), 1e-9)
}

func TestGameLoop_StopsOnCancel(t *testing.T) {
	g := newTestLoop(t, prometheus.NewRegistry(), 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g.Run(ctx)
	assert.Zero(t, g.match.Ticks())
}

func TestRouter_Snapshot(t *testing.T) {
	reg := prometheus.NewRegistry()
	g := newTestLoop(t, reg, 10)
	g.Run(context.Background())

	srv := httptest.NewServer(newRouter(g.match, g.mu, reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/snapshot")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view snapshotView
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&view))
	assert.Equal(t, uint64(10), view.Ticks)
	require.Len(t, view.Fighters, 2)
	assert.Equal(t, "balanced", view.Fighters[0].Role)
	assert.Equal(t, "tank", view.Fighters[1].Role)
}

func TestRouter_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	g := newTestLoop(t, reg, 5)
	g.Run(context.Background())

	srv := httptest.NewServer(newRouter(g.match, g.mu, reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "brawl_ticks_total 5")
	assert.Contains(t, string(body), "brawl_fighters 2")
}

func TestRun_RejectsBadFlags(t *testing.T) {
	assert.Error(t, run(options{fps: 0}))
	assert.Error(t, run(options{fps: 60, left: "wizard", right: "tank"}))
}
