// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms). Each request gets an ID, taken from X-Request-ID when
the caller sends one, echoed back in the response and available to handlers:

	id := middleware.RequestID(r.Context())

# Rate Limiting

Per-client token buckets for submission endpoints:

	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	mux.HandleFunc("POST /api/heart", middleware.WithLogging(limiter.Wrap(h.AssessJSON)))

Refused requests get 429 with Retry-After. A zero rate disables limiting.

# CORS Middleware

Enable cross-origin requests for a separately hosted frontend:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")
	middleware.FieldErrorResponse(w, http.StatusBadRequest, "message", fields)

Parse JSON request bodies (capped at 64KB):

	var form models.FormState
	if err := middleware.ParseJSONBody(w, r, &form); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)

Used as the rate limiting key.
*/
package middleware
