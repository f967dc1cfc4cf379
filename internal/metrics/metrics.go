// Package metrics exposes Prometheus instrumentation for the room and
// match core: room lifecycle counters, swipe throughput, and the time
// from room activation to match.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RoomsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kinoduet_rooms_created_total",
		Help: "Total number of rooms created",
	})

	RoomsMatched = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kinoduet_rooms_matched_total",
		Help: "Total number of rooms that reached a match",
	})

	RoomsExpired = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "kinoduet_rooms_expired_total",
		Help: "Total number of rooms expired by the sweeper or lazily",
	})

	// SwipesTotal is labeled by action: "like" or "skip".
	SwipesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kinoduet_swipes_total",
		Help: "Total number of swipes recorded",
	}, []string{"action"})

	ConnectedClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "kinoduet_ws_clients",
		Help: "Current number of connected websocket clients",
	})

	MatchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "kinoduet_match_duration_seconds",
		Help:    "Time from room activation to match",
		Buckets: []float64{5, 15, 30, 60, 120, 300, 600, 1200},
	})
)

func Register() {
	prometheus.MustRegister(
		RoomsCreated,
		RoomsMatched,
		RoomsExpired,
		SwipesTotal,
		ConnectedClients,
		MatchDuration,
	)
}
