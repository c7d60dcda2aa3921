package match

import (
	"go.uber.org/zap"

	"github.com/automoto/doomerang-brawl/arena"
	"github.com/automoto/doomerang-brawl/fighter"
	"github.com/automoto/doomerang-brawl/metrics"
	"github.com/automoto/doomerang-brawl/moves"
)

// Option configures a Match.
type Option func(*Match)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(m *Match) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithMetrics records match activity on c.
func WithMetrics(c *metrics.Collectors) Option {
	return func(m *Match) { m.hooks.Metrics = c }
}

// WithMoveRegistry replaces the embedded move sets.
func WithMoveRegistry(r *moves.Registry) Option {
	return func(m *Match) { m.registry = r }
}

// WithLayout plays the match in l instead of the configured arena.
func WithLayout(l *arena.Layout) Option {
	return func(m *Match) { m.layout = l }
}

// WithHitListener is notified once per landed hit.
func WithHitListener(h fighter.HitListener) Option {
	return func(m *Match) { m.hooks.OnHit = h }
}
