// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the heart risk service.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	client := predictor.NewClient(cfg.PredictURL, cfg.PredictTimeout, predictor.WithMetrics(metrics))
	mux := router.NewRouter(cfg, client, metrics, reg)

# Endpoints

Operational:

	GET /health  - Liveness, always "OK"
	GET /metrics - Prometheus exposition (when a gatherer is given)

Questionnaire page:

	GET  /       - Empty form
	POST /assess - Submit the form, page re-rendered with the result

JSON API:

	POST /api/heart  - Submit answers, returns a risk view
	GET  /api/fields - Field catalogue

# Rate Limiting

POST /assess and POST /api/heart share a per-client token bucket sized by
cfg.RateLimit and cfg.RateBurst. Refusals are counted as rate_limited
submissions.
*/
package router
