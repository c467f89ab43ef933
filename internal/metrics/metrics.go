// Package metrics exposes Prometheus instruments for chart generation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var generationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "chartgen_generations_total",
		Help: "Total number of chart generations by outcome",
	},
	[]string{"outcome"},
)

var generationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "chartgen_generation_duration_seconds",
		Help:    "Duration of chart generations, including the model round trip",
		Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60, 120},
	},
	[]string{"outcome"},
)

var validationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "chartgen_validations_total",
		Help: "Total number of standalone chart option validations by result",
	},
	[]string{"valid"},
)

// ObserveGeneration records one finished generation.
func ObserveGeneration(outcome string, elapsed time.Duration) {
	generationsTotal.WithLabelValues(outcome).Inc()
	generationDuration.WithLabelValues(outcome).Observe(elapsed.Seconds())
}

// ObserveValidation records one standalone validation.
func ObserveValidation(valid bool) {
	label := "false"
	if valid {
		label = "true"
	}
	validationsTotal.WithLabelValues(label).Inc()
}
