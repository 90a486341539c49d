// Package metrics records build statistics for the node-exporter textfile
// collector. seedforge is a batch job, so metrics are written to a file after
// each run rather than scraped.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// Metrics holds the Prometheus collectors for seed builds
type Metrics struct {
	registry *prometheus.Registry

	buildsTotal          *prometheus.CounterVec
	buildDuration        prometheus.Histogram
	validationErrorTotal *prometheus.CounterVec

	seedStudies     prometheus.Gauge
	seedExperiments prometheus.Gauge
	seedSizeBytes   prometheus.Gauge
	lastSuccess     prometheus.Gauge
}

// New creates the collectors on a private registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		buildsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seedforge_builds_total",
				Help: "Total number of seed builds",
			},
			[]string{"status"},
		),

		buildDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "seedforge_build_duration_seconds",
				Help:    "Seed build duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),

		validationErrorTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "seedforge_validation_errors_total",
				Help: "Total number of validation errors by kind",
			},
			[]string{"kind"},
		),

		seedStudies: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "seedforge_seed_studies",
				Help: "Number of studies in the last published seed",
			},
		),

		seedExperiments: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "seedforge_seed_experiments",
				Help: "Number of experiments in the last published seed",
			},
		),

		seedSizeBytes: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "seedforge_seed_size_bytes",
				Help: "Encoded size of the last published seed in bytes",
			},
		),

		lastSuccess: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "seedforge_last_success_timestamp_seconds",
				Help: "Unix time of the last successful build",
			},
		),
	}
}

// RecordBuild records the outcome of one build
func (m *Metrics) RecordBuild(success bool, duration time.Duration) {
	status := statusSuccess
	if !success {
		status = statusError
	}
	m.buildsTotal.WithLabelValues(status).Inc()
	m.buildDuration.Observe(duration.Seconds())
}

// RecordValidationError counts one validation failure of the given kind
func (m *Metrics) RecordValidationError(kind string) {
	m.validationErrorTotal.WithLabelValues(kind).Inc()
}

// UpdateSeedStats records the shape of a published seed
func (m *Metrics) UpdateSeedStats(studies, experiments, sizeBytes int, publishedAt time.Time) {
	m.seedStudies.Set(float64(studies))
	m.seedExperiments.Set(float64(experiments))
	m.seedSizeBytes.Set(float64(sizeBytes))
	m.lastSuccess.Set(float64(publishedAt.Unix()))
}

// Gatherer exposes the registry
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// WriteTextfile writes all metrics to path in the text exposition format
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
