// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/danielhkuo/heart-risk/assessment"
	"github.com/danielhkuo/heart-risk/cliparse"
	"github.com/danielhkuo/heart-risk/handlers"
	"github.com/danielhkuo/heart-risk/middleware"
	"github.com/danielhkuo/heart-risk/observability"
)

// NewRouter registers every endpoint. metrics and gatherer may be nil, in
// which case nothing is recorded and /metrics is not served.
func NewRouter(cfg cliparse.Config, p assessment.Predictor, metrics *observability.Metrics, gatherer prometheus.Gatherer) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	assessmentHandler := handlers.NewAssessmentHandler(p, metrics)

	// Submissions share one per-client budget
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	limiter.OnReject = func(r *http.Request) {
		channel := observability.ChannelAPI
		if r.URL.Path == "/assess" {
			channel = observability.ChannelForm
		}
		metrics.ObserveSubmission(channel, observability.OutcomeRateLimited)
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	if gatherer != nil {
		mux.Handle("GET /metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	// Questionnaire page
	mux.HandleFunc("GET /", middleware.WithLogging(assessmentHandler.Index))
	mux.HandleFunc("POST /assess", middleware.WithLogging(limiter.Wrap(assessmentHandler.AssessForm)))

	// JSON API
	mux.HandleFunc("POST /api/heart", middleware.WithLogging(limiter.Wrap(assessmentHandler.AssessJSON)))
	mux.HandleFunc("GET /api/fields", middleware.WithLogging(assessmentHandler.ListFields))

	return mux
}
