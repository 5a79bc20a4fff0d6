// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the questionnaire, wire and view types.

# Form Types

  - Field: answer name (bmi, smoker, ageCategory, ...)
  - FormState: the 17 raw string answers, "" meaning unanswered

FormState is addressed by field name:

	var form models.FormState
	form.Set(models.FieldSmoker, "yes")
	v, ok := form.Get(models.FieldSmoker)

# Wire Types

Types exchanged with the prediction service:

  - PredictionRequest: 17 encoded answers plus the constant index column
  - PredictionResult: prediction/probability, or error

# View Types

  - RiskView: risk ("low" or "high"), title, result detail line
  - ErrorResponse: error, message, fields

# Constants

Risk values:

	RiskLow  = "low"
	RiskHigh = "high"

Every transport failure is shown as GenericErrorMessage.
*/
package models
