// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package predictor is the HTTP client for the external heart-disease
prediction service.

	client := predictor.NewClient(cfg.PredictURL, cfg.PredictTimeout,
		predictor.WithMetrics(metrics))
	result, err := client.Predict(ctx, req)

Each call is a single POST with a JSON body and Content-Type
application/json. There is no retry: the caller decides how a failure is
shown. Client satisfies assessment.Predictor.
*/
package predictor
