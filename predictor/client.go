// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/danielhkuo/heart-risk/models"
	"github.com/danielhkuo/heart-risk/observability"
)

var tracer = otel.Tracer("heartrisk.predictor")

// maxResponseBytes caps how much of a response body is read
const maxResponseBytes = 1 << 20

// ErrUnexpectedStatus is returned for any non-2xx response
var ErrUnexpectedStatus = errors.New("unexpected status from prediction service")

// Client calls the external prediction endpoint. One call is one attempt.
type Client struct {
	httpClient *http.Client
	url        string
	timeout    time.Duration
	metrics    *observability.Metrics
}

type Option func(*Client)

// WithHTTPClient replaces the default instrumented client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics records call latency and in-flight count
func WithMetrics(m *observability.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a client for url, bounding each call by timeout
func NewClient(url string, timeout time.Duration, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		url:        url,
		timeout:    timeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Predict posts req as JSON and decodes the service's answer.
//
// Network errors, timeouts, non-2xx statuses and undecodable bodies are
// returned as errors. A 2xx body of the form {"error": "..."} is a valid
// result, not an error.
func (c *Client) Predict(ctx context.Context, req models.PredictionRequest) (result models.PredictionResult, err error) {
	ctx, span := tracer.Start(ctx, "predictor.Predict", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	done := c.metrics.PredictStarted()
	defer func() {
		done(err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("failed to build prediction request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return models.PredictionResult{}, fmt.Errorf("prediction request failed: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	slog.Debug("prediction service responded",
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain a little so the connection can be reused
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return models.PredictionResult{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return models.PredictionResult{}, fmt.Errorf("failed to decode prediction response: %w", err)
	}

	if result.Failed() {
		span.SetAttributes(attribute.Bool("prediction.service_error", true))
	} else if result.Prediction != nil {
		span.SetAttributes(attribute.Float64("prediction.value", *result.Prediction))
	}
	return result, nil
}
