// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package assessment

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/danielhkuo/heart-risk/models"
)

// Kind describes how an answer is entered and encoded
type Kind string

const (
	KindDecimal Kind = "decimal"
	KindInteger Kind = "integer"
	KindChoice  Kind = "choice"
)

// Option is one allowed answer of a choice field.
// Code is the number sent to the prediction service.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Code  int    `json:"code"`
}

// FieldSpec describes one questionnaire field
type FieldSpec struct {
	Name        models.Field `json:"name"`
	Label       string       `json:"label"`
	Kind        Kind         `json:"kind"`
	Placeholder string       `json:"placeholder,omitempty"`
	Step        string       `json:"step,omitempty"`
	Min         *float64     `json:"min,omitempty"`
	Max         *float64     `json:"max,omitempty"`
	Options     []Option     `json:"options,omitempty"`
}

var (
	errNotNumber  = errors.New("must be a number")
	errNotInteger = errors.New("must be a whole number")
	errNotOption  = errors.New("not one of the allowed answers")
)

func bound(v float64) *float64 { return &v }

var yesNo = []Option{
	{Value: "yes", Label: "Yes", Code: 1},
	{Value: "no", Label: "No", Code: 0},
}

// Fields lists the questionnaire in display order.
//
// Binary answers use fixed codes (yes=1, no=0, male=1, female=0); ordinal
// answers are coded by their position in the option list. These must match
// the encoding the prediction model was trained with.
var Fields = []FieldSpec{
	{Name: models.FieldBMI, Label: "BMI", Kind: KindDecimal, Placeholder: "e.g., 25.5", Step: "0.1"},
	{Name: models.FieldSmoker, Label: "Smoker", Kind: KindChoice, Options: yesNo},
	{Name: models.FieldAlcoholDrinker, Label: "Alcohol Drinker", Kind: KindChoice, Options: yesNo},
	{Name: models.FieldStroke, Label: "History of Stroke", Kind: KindChoice, Options: yesNo},
	{Name: models.FieldPhysicalHealth, Label: "Physical Health (1-10 days)", Kind: KindInteger, Step: "1", Min: bound(1), Max: bound(10)},
	{Name: models.FieldMentalHealth, Label: "Mental Health (1-10 days)", Kind: KindInteger, Step: "1", Min: bound(1), Max: bound(10)},
	{Name: models.FieldDifficultyWalking, Label: "Difficulty Walking/Climbing", Kind: KindChoice, Options: yesNo},
	{Name: models.FieldSex, Label: "Sex", Kind: KindChoice, Options: []Option{
		{Value: "male", Label: "Male", Code: 1},
		{Value: "female", Label: "Female", Code: 0},
	}},
	{Name: models.FieldAgeCategory, Label: "Age Category", Kind: KindChoice, Options: []Option{
		{Value: "18-24", Label: "18-24", Code: 0},
		{Value: "25-34", Label: "25-34", Code: 1},
		{Value: "35-44", Label: "35-44", Code: 2},
		{Value: "45-54", Label: "45-54", Code: 3},
		{Value: "55-64", Label: "55-64", Code: 4},
		{Value: "65+", Label: "65+", Code: 5},
	}},
	{Name: models.FieldRace, Label: "Race", Kind: KindChoice, Options: []Option{
		{Value: "white", Label: "White", Code: 0},
		{Value: "black", Label: "Black", Code: 1},
		{Value: "other", Label: "Other", Code: 2},
	}},
	{Name: models.FieldDiabetic, Label: "Diabetic", Kind: KindChoice, Options: yesNo},
	{Name: models.FieldPhysicalActivity, Label: "Physical Activity", Kind: KindChoice, Options: yesNo},
	{Name: models.FieldGeneralHealth, Label: "General Health", Kind: KindChoice, Options: []Option{
		{Value: "very-good", Label: "Very Good", Code: 0},
		{Value: "good", Label: "Good", Code: 1},
		{Value: "fair", Label: "Fair", Code: 2},
		{Value: "poor", Label: "Poor", Code: 3},
	}},
	{Name: models.FieldSleepTime, Label: "Sleep Time (hours)", Kind: KindDecimal, Step: "0.5", Min: bound(0), Max: bound(24)},
	{Name: models.FieldAsthma, Label: "Asthma", Kind: KindChoice, Options: yesNo},
	{Name: models.FieldKidneyDisease, Label: "Kidney Disease", Kind: KindChoice, Options: yesNo},
	{Name: models.FieldSkinCancer, Label: "Skin Cancer", Kind: KindChoice, Options: yesNo},
}

// Lookup returns the spec for name
func Lookup(name models.Field) (FieldSpec, bool) {
	for _, f := range Fields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}

// IsChoice reports whether the field is answered from a fixed option list
func (f FieldSpec) IsChoice() bool {
	return f.Kind == KindChoice
}

// MinAttr and MaxAttr format the bounds for HTML inputs ("" when unbounded)
func (f FieldSpec) MinAttr() string { return formatBound(f.Min) }
func (f FieldSpec) MaxAttr() string { return formatBound(f.Max) }

func formatBound(b *float64) string {
	if b == nil {
		return ""
	}
	return strconv.FormatFloat(*b, 'f', -1, 64)
}

// Number parses a decimal or integer answer and checks its bounds
func (f FieldSpec) Number(value string) (float64, error) {
	value = strings.TrimSpace(value)
	var n float64
	switch f.Kind {
	case KindInteger:
		i, err := strconv.Atoi(value)
		if err != nil {
			return 0, errNotInteger
		}
		n = float64(i)
	case KindDecimal:
		d, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, errNotNumber
		}
		n = d
	default:
		return 0, fmt.Errorf("%s is not numeric", f.Name)
	}

	if f.Min != nil && n < *f.Min {
		return 0, fmt.Errorf("must be at least %s", f.MinAttr())
	}
	if f.Max != nil && n > *f.Max {
		return 0, fmt.Errorf("must be at most %s", f.MaxAttr())
	}
	return n, nil
}

// Code transcodes a choice answer. Matching ignores case and surrounding space.
func (f FieldSpec) Code(value string) (int, error) {
	if f.Kind != KindChoice {
		return 0, fmt.Errorf("%s is not a choice field", f.Name)
	}
	value = strings.ToLower(strings.TrimSpace(value))
	for _, o := range f.Options {
		if o.Value == value {
			return o.Code, nil
		}
	}
	return 0, errNotOption
}

// Check validates a single non-empty answer against the field's domain
func (f FieldSpec) Check(value string) error {
	if f.IsChoice() {
		_, err := f.Code(value)
		return err
	}
	_, err := f.Number(value)
	return err
}
