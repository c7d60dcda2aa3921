package main

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/automoto/doomerang-brawl/fighter"
	"github.com/automoto/doomerang-brawl/match"
)

// fighterView is the JSON shape of one fighter on /snapshot.
type fighterView struct {
	ID          string     `json:"id"`
	Role        string     `json:"role"`
	State       string     `json:"state"`
	Position    [3]float64 `json:"position"`
	Facing      float64    `json:"facing"`
	Attack      string     `json:"attack"`
	Phase       string     `json:"phase"`
	Combo       int        `json:"combo"`
	Special     float64    `json:"special"`
	Ultimate    float64    `json:"ultimate"`
	DamageTaken float64    `json:"damage_taken"`
}

type snapshotView struct {
	Elapsed  float64       `json:"elapsed"`
	Ticks    uint64        `json:"ticks"`
	Fighters []fighterView `json:"fighters"`
}

func viewOf(s fighter.Snapshot) fighterView {
	return fighterView{
		ID:          s.ID.String(),
		Role:        s.Role.String(),
		State:       s.State.String(),
		Position:    [3]float64{s.Position.X, s.Position.Y, s.Position.Z},
		Facing:      s.Facing,
		Attack:      s.Attack.String(),
		Phase:       s.Phase.String(),
		Combo:       s.Combo,
		Special:     s.Special,
		Ultimate:    s.Ultimate,
		DamageTaken: s.DamageTaken,
	}
}

// newRouter serves metrics and match snapshots. mu guards m against the tick
// loop.
func newRouter(m *match.Match, mu *sync.Mutex, gatherer prometheus.Gatherer) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/snapshot", func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		view := snapshotView{Elapsed: m.Elapsed(), Ticks: m.Ticks()}
		for _, s := range m.Snapshots() {
			view.Fighters = append(view.Fighters, viewOf(s))
		}
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(view); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	return r
}
