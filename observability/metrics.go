// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "heartrisk"

// Submission channels
const (
	ChannelAPI  = "api"
	ChannelForm = "form"
)

// Submission outcomes
const (
	OutcomeLow         = "low"
	OutcomeHigh        = "high"
	OutcomeError       = "error"
	OutcomeIncomplete  = "incomplete"
	OutcomeInvalid     = "invalid"
	OutcomeRateLimited = "rate_limited"
)

// Metrics holds the Prometheus collectors for submissions and the outbound
// prediction call. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// SubmissionsTotal counts submissions.
	// Labels: channel (api, form), outcome (low, high, error, incomplete, invalid, rate_limited)
	SubmissionsTotal *prometheus.CounterVec

	// PredictDurationSeconds measures calls to the prediction service.
	// Labels: status (success, error)
	PredictDurationSeconds *prometheus.HistogramVec

	// PredictInFlight is the number of outstanding prediction calls
	PredictInFlight prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// Registering twice on the same registry panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SubmissionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "submissions_total",
				Help:      "Questionnaire submissions by channel and outcome",
			},
			[]string{"channel", "outcome"},
		),
		PredictDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: "predict",
				Name:      "duration_seconds",
				Help:      "Latency of prediction service calls in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"status"},
		),
		PredictInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: "predict",
				Name:      "in_flight",
				Help:      "Prediction service calls currently outstanding",
			},
		),
	}
}

// ObserveSubmission counts one submission
func (m *Metrics) ObserveSubmission(channel, outcome string) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(channel, outcome).Inc()
}

// PredictStarted marks a prediction call as outstanding and returns a
// function that records its duration and status when called.
func (m *Metrics) PredictStarted() func(err error) {
	if m == nil {
		return func(error) {}
	}
	start := time.Now()
	m.PredictInFlight.Inc()
	return func(err error) {
		m.PredictInFlight.Dec()
		status := "success"
		if err != nil {
			status = "error"
		}
		m.PredictDurationSeconds.WithLabelValues(status).Observe(time.Since(start).Seconds())
	}
}
