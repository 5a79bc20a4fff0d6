// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assessment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/danielhkuo/heart-risk/models"
	"github.com/danielhkuo/heart-risk/testutil"
)

func TestRenderResult(t *testing.T) {
	testCases := []struct {
		name   string
		result models.PredictionResult
		want   models.RiskView
	}{
		{
			name:   "low risk with probability",
			result: testutil.Prediction(0, 0.12),
			want:   models.RiskView{Risk: models.RiskLow, Title: "Low Risk", Result: "Probability: 0.12"},
		},
		{
			name:   "high risk without probability",
			result: testutil.Prediction(1, -1),
			want:   models.RiskView{Risk: models.RiskHigh, Title: "High Risk"},
		},
		{
			name:   "high risk with probability",
			result: testutil.Prediction(1, 0.87),
			want:   models.RiskView{Risk: models.RiskHigh, Title: "High Risk", Result: "Probability: 0.87"},
		},
		{
			name:   "service error",
			result: models.PredictionResult{Error: "x"},
			want:   models.RiskView{Risk: models.RiskHigh, Title: "High Risk", Result: "x", Failed: true},
		},
		{
			name:   "generic error",
			result: models.PredictionResult{Error: models.GenericErrorMessage},
			want:   models.RiskView{Risk: models.RiskHigh, Title: "High Risk", Result: models.GenericErrorMessage, Failed: true},
		},
		{
			name:   "missing prediction is not low",
			result: models.PredictionResult{},
			want:   models.RiskView{Risk: models.RiskHigh, Title: "High Risk"},
		},
		{
			name:   "error wins over a low prediction",
			result: models.PredictionResult{Prediction: testutil.Prediction(0, -1).Prediction, Error: "model degraded"},
			want:   models.RiskView{Risk: models.RiskHigh, Title: "High Risk", Result: "model degraded", Failed: true},
		},
		{
			name:   "probability keeps every digit",
			result: testutil.Prediction(0, 0.123456789),
			want:   models.RiskView{Risk: models.RiskLow, Title: "Low Risk", Result: "Probability: 0.123456789"},
		},
		{
			name:   "tiny probability is not rounded to zero",
			result: testutil.Prediction(0, 1e-7),
			want:   models.RiskView{Risk: models.RiskLow, Title: "Low Risk", Result: "Probability: 0.0000001"},
		},
		{
			name:   "near-certain probability is not rounded to one",
			result: testutil.Prediction(1, 0.9999999),
			want:   models.RiskView{Risk: models.RiskHigh, Title: "High Risk", Result: "Probability: 0.9999999"},
		},
		{
			name:   "zero probability is still shown",
			result: testutil.Prediction(0, 0),
			want:   models.RiskView{Risk: models.RiskLow, Title: "Low Risk", Result: "Probability: 0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RenderResult(tc.result))
		})
	}
}
