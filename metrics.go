package listcrdt

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics backs spec §4.1's "a hit avoids the O(n) scan and is recorded
// for metrics". Callers that want these exposed register Collectors() with
// their own registry; the library never creates an HTTP listener itself
// (no I/O per spec §1/§5).
var (
	hintHits = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "listcrdt_hint_hits_total",
		Help: "findById calls resolved by the one-slot hint cache without scanning.",
	})
	hintMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "listcrdt_hint_misses_total",
		Help: "findById calls that fell back to a linear scan after a hint miss.",
	})
)

// Collectors exposes the package's prometheus counters for registration
// into a caller-owned registry, e.g. prometheus.MustRegister(listcrdt.Collectors()...).
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{hintHits, hintMisses}
}
