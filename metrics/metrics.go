// Package metrics exposes match counters to Prometheus. Labels are bounded:
// move names come from a fixed enum and there are no per-fighter labels.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/automoto/doomerang-brawl/moves"
)

// Collectors groups every match metric. A nil *Collectors is a valid no-op.
type Collectors struct {
	Ticks         prometheus.Counter
	TickDuration  prometheus.Histogram
	Fighters      prometheus.Gauge
	Hits          *prometheus.CounterVec
	Damage        prometheus.Counter
	CombosDropped prometheus.Counter
	BlockedHits   prometheus.Counter
}

// New registers the collectors on reg. Passing prometheus.DefaultRegisterer
// exposes them on promhttp.Handler.
func New(reg prometheus.Registerer) *Collectors {
	f := promauto.With(reg)
	return &Collectors{
		Ticks: f.NewCounter(prometheus.CounterOpts{
			Name: "brawl_ticks_total",
			Help: "Simulation ticks run",
		}),
		TickDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "brawl_tick_duration_seconds",
			Help:    "Wall time spent in a simulation tick",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025},
		}),
		Fighters: f.NewGauge(prometheus.GaugeOpts{
			Name: "brawl_fighters",
			Help: "Fighters in the match",
		}),
		Hits: f.NewCounterVec(prometheus.CounterOpts{
			Name: "brawl_hits_total",
			Help: "Landed hits by move",
		}, []string{"move"}),
		Damage: f.NewCounter(prometheus.CounterOpts{
			Name: "brawl_damage_total",
			Help: "Effective damage dealt after combo falloff",
		}),
		CombosDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "brawl_combos_dropped_total",
			Help: "Combos that ended by timing out",
		}),
		BlockedHits: f.NewCounter(prometheus.CounterOpts{
			Name: "brawl_hits_blocked_total",
			Help: "Hits that reached an invulnerable defender",
		}),
	}
}

func (c *Collectors) Tick() {
	if c == nil {
		return
	}
	c.Ticks.Inc()
}

// ObserveTick records how long one tick took to compute.
func (c *Collectors) ObserveTick(d time.Duration) {
	if c == nil {
		return
	}
	c.TickDuration.Observe(d.Seconds())
}

func (c *Collectors) SetFighters(n int) {
	if c == nil {
		return
	}
	c.Fighters.Set(float64(n))
}

// Hit records a landed hit.
func (c *Collectors) Hit(move moves.MoveID, damage int) {
	if c == nil {
		return
	}
	c.Hits.WithLabelValues(move.String()).Inc()
	c.Damage.Add(float64(damage))
}

func (c *Collectors) ComboDropped() {
	if c == nil {
		return
	}
	c.CombosDropped.Inc()
}

func (c *Collectors) HitBlocked() {
	if c == nil {
		return
	}
	c.BlockedHits.Inc()
}
