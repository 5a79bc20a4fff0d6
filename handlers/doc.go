// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the heart risk service.

# Handler Types

AssessmentHandler serves the questionnaire and forwards complete answers to
the prediction service. It is created with a predictor and optional metrics:

	client := predictor.NewClient(cfg.PredictURL, cfg.PredictTimeout)
	h := handlers.NewAssessmentHandler(client, metrics)

Each request runs through its own assessment.Controller, so submissions
from different visitors never share state.

# Routes

	GET  /           → Index (empty questionnaire page)
	POST /assess     → AssessForm (form-encoded, re-renders the page)
	POST /api/heart  → AssessJSON (JSON answers in, risk view out)
	GET  /api/fields → ListFields (field catalogue with option codes)

# Status Codes

AssessJSON answers:

  - 200 with a risk view, including when the prediction service failed
    (the view then carries the generic error message)
  - 400 when the body is not JSON or answers are missing (fields lists them)
  - 422 when an answer is outside its allowed values (fields lists them)

AssessForm uses the same codes but always responds with the HTML page, with
rejected fields highlighted.

# Privacy

Answers are never logged. Only the request ID, channel and resulting risk
level are recorded.
*/
package handlers
