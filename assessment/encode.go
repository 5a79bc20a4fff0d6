// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assessment

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/danielhkuo/heart-risk/models"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so errors line up with form inputs
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// Problem is one rejected answer
type Problem struct {
	Field  models.Field `json:"field"`
	Reason string       `json:"reason"`
}

// ValidationError lists every answer that could not be encoded
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = string(p.Field) + ": " + p.Reason
	}
	return "invalid answers: " + strings.Join(parts, "; ")
}

// Fields returns the names of the rejected answers
func (e *ValidationError) Fields() []string {
	names := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		names[i] = string(p.Field)
	}
	return names
}

// IsSubmittable reports whether every field has a non-empty answer
func IsSubmittable(form models.FormState) bool {
	return validate.Struct(form) == nil
}

// Missing returns the unanswered fields in display order
func Missing(form models.FormState) []models.Field {
	var missing []models.Field
	for _, f := range Fields {
		if v, _ := form.Get(f.Name); v == "" {
			missing = append(missing, f.Name)
		}
	}
	return missing
}

// encoder collects problems while transcoding so that all bad answers are
// reported at once
type encoder struct {
	form     models.FormState
	problems []Problem
}

func (e *encoder) fail(f models.Field, err error) {
	e.problems = append(e.problems, Problem{Field: f, Reason: err.Error()})
}

func (e *encoder) spec(name models.Field) (FieldSpec, string) {
	spec, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("assessment: no spec for field %q", name))
	}
	v, _ := e.form.Get(name)
	return spec, v
}

func (e *encoder) number(name models.Field) float64 {
	spec, v := e.spec(name)
	n, err := spec.Number(v)
	if err != nil {
		e.fail(name, err)
	}
	return n
}

func (e *encoder) integer(name models.Field) int {
	return int(e.number(name))
}

func (e *encoder) code(name models.Field) int {
	spec, v := e.spec(name)
	c, err := spec.Code(v)
	if err != nil {
		e.fail(name, err)
	}
	return c
}

// EncodeRequest transcodes a complete form into the prediction service's
// row schema. Answers outside their declared domain are rejected with a
// *ValidationError instead of being sent as garbage.
func EncodeRequest(form models.FormState) (models.PredictionRequest, error) {
	e := &encoder{form: form}

	req := models.PredictionRequest{
		Index:             0,
		BMI:               e.number(models.FieldBMI),
		Smoker:            e.code(models.FieldSmoker),
		AlcoholDrinker:    e.code(models.FieldAlcoholDrinker),
		Stroke:            e.code(models.FieldStroke),
		PhysicalHealth:    e.integer(models.FieldPhysicalHealth),
		MentalHealth:      e.integer(models.FieldMentalHealth),
		DifficultyWalking: e.code(models.FieldDifficultyWalking),
		Sex:               e.code(models.FieldSex),
		AgeCategory:       e.code(models.FieldAgeCategory),
		Race:              e.code(models.FieldRace),
		Diabetic:          e.code(models.FieldDiabetic),
		PhysicalActivity:  e.code(models.FieldPhysicalActivity),
		GeneralHealth:     e.code(models.FieldGeneralHealth),
		SleepTime:         e.number(models.FieldSleepTime),
		Asthma:            e.code(models.FieldAsthma),
		KidneyDisease:     e.code(models.FieldKidneyDisease),
		SkinCancer:        e.code(models.FieldSkinCancer),
	}
	if len(e.problems) > 0 {
		return models.PredictionRequest{}, &ValidationError{Problems: e.problems}
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return models.PredictionRequest{}, fmt.Errorf("validate request: %w", err)
		}
		for _, fe := range verrs {
			e.problems = append(e.problems, Problem{
				Field:  models.Field(fe.Field()),
				Reason: fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param()),
			})
		}
		return models.PredictionRequest{}, &ValidationError{Problems: e.problems}
	}

	return req, nil
}
