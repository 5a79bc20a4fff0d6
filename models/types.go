// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Risk levels shown in the result panel
const (
	RiskLow  = "low"
	RiskHigh = "high"
)

// GenericErrorMessage replaces every transport or decoding failure.
const GenericErrorMessage = "An error occurred. Please try again."

// Request types

// PredictionRequest is the row sent to the prediction service.
// Categorical answers are already transcoded to their numeric codes.
type PredictionRequest struct {
	Index             int     `json:"index"` // always 0, row index expected by the service
	BMI               float64 `json:"bmi" validate:"gt=0"`
	Smoker            int     `json:"smoker" validate:"oneof=0 1"`
	AlcoholDrinker    int     `json:"alcoholDrinker" validate:"oneof=0 1"`
	Stroke            int     `json:"stroke" validate:"oneof=0 1"`
	PhysicalHealth    int     `json:"physicalHealth" validate:"gte=1,lte=10"`
	MentalHealth      int     `json:"mentalHealth" validate:"gte=1,lte=10"`
	DifficultyWalking int     `json:"difficultyWalking" validate:"oneof=0 1"`
	Sex               int     `json:"sex" validate:"oneof=0 1"`
	AgeCategory       int     `json:"ageCategory" validate:"gte=0,lte=5"`
	Race              int     `json:"race" validate:"gte=0,lte=2"`
	Diabetic          int     `json:"diabetic" validate:"oneof=0 1"`
	PhysicalActivity  int     `json:"physicalActivity" validate:"oneof=0 1"`
	GeneralHealth     int     `json:"generalHealth" validate:"gte=0,lte=3"`
	SleepTime         float64 `json:"sleepTime" validate:"gte=0,lte=24"`
	Asthma            int     `json:"asthma" validate:"oneof=0 1"`
	KidneyDisease     int     `json:"kidneyDisease" validate:"oneof=0 1"`
	SkinCancer        int     `json:"skinCancer" validate:"oneof=0 1"`
}

// Response types

// PredictionResult is the body returned by the prediction service.
// Either Prediction (with optional Probability) or Error is set.
type PredictionResult struct {
	Prediction  *float64 `json:"prediction,omitempty"`
	Probability *float64 `json:"probability,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// Failed reports whether the result is the error variant
func (r PredictionResult) Failed() bool {
	return r.Error != ""
}

// RiskView is the rendered outcome of one submission.
// Result holds the detail line ("Probability: 0.12" or an error message).
type RiskView struct {
	Risk   string `json:"risk"`
	Title  string `json:"title"`
	Result string `json:"result"`
	Failed bool   `json:"failed,omitempty"`
}

// Low reports whether the view should be styled as low risk
func (v RiskView) Low() bool {
	return v.Risk == RiskLow
}

// Error response

type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Fields  []string `json:"fields,omitempty"`
}
