package reading

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeSuccess         = "success"
	outcomeInvalid         = "invalid"
	outcomeGenerationError = "generation_error"
	outcomeError           = "error"
)

var (
	generationDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "cosmicmatch_generation_duration_seconds",
		Help:    "Latency of text generation calls in seconds",
		Buckets: prometheus.ExponentialBuckets(0.5, 2, 8),
	})

	readingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "cosmicmatch_readings_total",
		Help: "Readings requested, by mode and outcome",
	}, []string{"mode", "outcome"})
)
