// Package metrics registers the Prometheus collectors for the gallery
// service. Collectors are package-level and registered on the default
// registry; the /metrics endpoint exposes them via promhttp.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gallery"

var (
	generationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "generations_total",
		Help:      "Completed generation cycles by outcome.",
	}, []string{"outcome"})

	generationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "generation_duration_seconds",
		Help:      "Wall time of a full generation cycle.",
		Buckets:   []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 90},
	})

	rotationDeletes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rotation_deletes_total",
		Help:      "Records evicted by the rotation policy.",
	})

	rotationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "rotation_failures_total",
		Help:      "Eviction attempts that failed and were left for the next cycle.",
	})

	gallerySize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "size",
		Help:      "Number of records seen by the last rotation pass.",
	})
)

// Generation outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeError    = "error"
	OutcomeRejected = "rejected"
)

// ObserveGeneration records one finished generation cycle.
func ObserveGeneration(outcome string, d time.Duration) {
	generationsTotal.WithLabelValues(outcome).Inc()
	if outcome != OutcomeRejected {
		generationDuration.Observe(d.Seconds())
	}
}

// ObserveRotation records the result of one rotation pass.
func ObserveRotation(size, deleted, failed int) {
	gallerySize.Set(float64(size))
	rotationDeletes.Add(float64(deleted))
	rotationFailures.Add(float64(failed))
}
