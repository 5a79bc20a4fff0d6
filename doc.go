// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the heartrisk tool.

heartrisk collects the answers of a seventeen question heart disease
questionnaire, encodes them as the numeric row the prediction model was
trained on, and shows the returned risk as a low or high risk panel.

# Starting the Server

The prediction service URL is required, from the environment or a flag:

	PREDICT_URL=https://models.example.com/predict go run . serve

Or with flags:

	go run . serve -p 8088 -u https://models.example.com/predict

# Terminal Use

	go run . assess -u https://models.example.com/predict
	go run . assess -u https://models.example.com/predict --file answers.yaml --json
	go run . fields

# Configuration

Required settings:

  - PREDICT_URL (-u): prediction endpoint

Optional settings:

  - PORT (-p): Server port (default: 8088)
  - PREDICT_TIMEOUT (--timeout): per-request timeout (default: 10s)
  - RATE_LIMIT (--rate), RATE_BURST (--burst): submissions per client
  - LOG_LEVEL (--log-level): debug, info, warn, error
  - TRACE_STDOUT (--trace): print trace spans
  - ENV_FILE (--env-file): dotenv file to load first (default: .env)

# Architecture

  - cmd: cobra commands (serve, assess, fields)
  - assessment: field catalogue, encoding, result rendering, submission controller
  - predictor: HTTP client for the prediction service
  - handlers: HTML page and JSON API
  - router: Route definitions using Go 1.22+ routing
  - middleware: request logging, rate limiting, CORS, JSON helpers
  - models: Request/response types
  - observability: Prometheus metrics and OpenTelemetry tracing
  - logging: slog setup
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
