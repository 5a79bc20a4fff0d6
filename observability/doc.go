// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package observability provides Prometheus metrics and OpenTelemetry tracing
setup.

# Metrics

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	mux.Handle("GET /metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

Exposed series:

  - heartrisk_submissions_total{channel, outcome}
  - heartrisk_predict_duration_seconds{status}
  - heartrisk_predict_in_flight

# Tracing

	shutdown, err := observability.InitTracing("heartrisk", os.Stdout)
	defer shutdown(ctx)

Spans are printed as JSON to the given writer. The prediction client and the
HTTP server create spans through the global provider either way.
*/
package observability
