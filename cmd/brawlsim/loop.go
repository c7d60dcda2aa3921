package main

import (
	"context"
	"sync"
	"time"

	"github.com/automoto/doomerang-brawl/match"
)

// gameLoop drives a match with a fixed dt, either as fast as possible or
// paced by a ticker.
type gameLoop struct {
	match    *match.Match
	mu       *sync.Mutex
	script   *script
	dt       float64
	limit    uint64 // 0 runs until ctx is done
	realtime bool

	count uint64
}

func (g *gameLoop) Run(ctx context.Context) {
	if !g.realtime {
		for !g.done() && ctx.Err() == nil {
			g.tick()
		}
		return
	}

	ticker := time.NewTicker(time.Duration(g.dt * float64(time.Second)))
	defer ticker.Stop()
	for !g.done() {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *gameLoop) done() bool {
	return g.limit > 0 && g.count >= g.limit
}

func (g *gameLoop) tick() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.script.step(g.match, g.count)
	g.match.Tick(g.dt)
	g.count++
}
