// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assessment

import (
	"strconv"

	"github.com/danielhkuo/heart-risk/models"
)

const (
	titleLow  = "Low Risk"
	titleHigh = "High Risk"
)

// RenderResult maps a prediction to the two-state result panel.
// Only an explicit prediction of 0 is low risk; errors and anything else
// are shown with high-risk styling, even when a prediction of 0 came with
// the error.
func RenderResult(r models.PredictionResult) models.RiskView {
	if r.Failed() {
		return models.RiskView{
			Risk:   models.RiskHigh,
			Title:  titleHigh,
			Result: r.Error,
			Failed: true,
		}
	}

	view := models.RiskView{Risk: models.RiskHigh, Title: titleHigh}
	if r.Prediction != nil && *r.Prediction == 0 {
		view.Risk = models.RiskLow
		view.Title = titleLow
	}
	if r.Probability != nil {
		view.Result = "Probability: " + strconv.FormatFloat(*r.Probability, 'f', -1, 64)
	}
	return view
}
