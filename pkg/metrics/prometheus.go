package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	advisories   *prometheus.CounterVec
	errorsTotal  *prometheus.CounterVec
	confidence   *prometheus.GaugeVec
	stageLatency *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		advisories: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agrichain_advisories_total",
				Help: "Total number of advisories generated",
			},
			[]string{"crop", "state"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agrichain_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		confidence: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "agrichain_advisory_confidence",
				Help: "Confidence score of the last advisory for a crop",
			},
			[]string{"crop"},
		),
		stageLatency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "agrichain_pipeline_stage_duration_seconds",
				Help:    "Duration of pipeline stages in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"stage"},
		),
	}
}

// RecordAdvisory records a generated advisory.
func (r *Recorder) RecordAdvisory(crop, state string) {
	r.advisories.WithLabelValues(crop, state).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordConfidence records the confidence score of the last advisory for a crop.
func (r *Recorder) RecordConfidence(crop string, score float64) {
	r.confidence.WithLabelValues(crop).Set(score)
}

// RecordStageLatency records pipeline stage latency in seconds.
func (r *Recorder) RecordStageLatency(stage string, seconds float64) {
	r.stageLatency.WithLabelValues(stage).Observe(seconds)
}
