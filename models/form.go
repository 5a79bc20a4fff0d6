// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Field names a questionnaire answer. The value doubles as the JSON key,
// the HTML input name and the key in answers files.
type Field string

const (
	FieldBMI               Field = "bmi"
	FieldSmoker            Field = "smoker"
	FieldAlcoholDrinker    Field = "alcoholDrinker"
	FieldStroke            Field = "stroke"
	FieldPhysicalHealth    Field = "physicalHealth"
	FieldMentalHealth      Field = "mentalHealth"
	FieldDifficultyWalking Field = "difficultyWalking"
	FieldSex               Field = "sex"
	FieldAgeCategory       Field = "ageCategory"
	FieldRace              Field = "race"
	FieldDiabetic          Field = "diabetic"
	FieldPhysicalActivity  Field = "physicalActivity"
	FieldGeneralHealth     Field = "generalHealth"
	FieldSleepTime         Field = "sleepTime"
	FieldAsthma            Field = "asthma"
	FieldKidneyDisease     Field = "kidneyDisease"
	FieldSkinCancer        Field = "skinCancer"
)

// FormState holds the raw answers. An empty string means unanswered.
type FormState struct {
	BMI               string `json:"bmi" yaml:"bmi" validate:"required"`
	Smoker            string `json:"smoker" yaml:"smoker" validate:"required"`
	AlcoholDrinker    string `json:"alcoholDrinker" yaml:"alcoholDrinker" validate:"required"`
	Stroke            string `json:"stroke" yaml:"stroke" validate:"required"`
	PhysicalHealth    string `json:"physicalHealth" yaml:"physicalHealth" validate:"required"`
	MentalHealth      string `json:"mentalHealth" yaml:"mentalHealth" validate:"required"`
	DifficultyWalking string `json:"difficultyWalking" yaml:"difficultyWalking" validate:"required"`
	Sex               string `json:"sex" yaml:"sex" validate:"required"`
	AgeCategory       string `json:"ageCategory" yaml:"ageCategory" validate:"required"`
	Race              string `json:"race" yaml:"race" validate:"required"`
	Diabetic          string `json:"diabetic" yaml:"diabetic" validate:"required"`
	PhysicalActivity  string `json:"physicalActivity" yaml:"physicalActivity" validate:"required"`
	GeneralHealth     string `json:"generalHealth" yaml:"generalHealth" validate:"required"`
	SleepTime         string `json:"sleepTime" yaml:"sleepTime" validate:"required"`
	Asthma            string `json:"asthma" yaml:"asthma" validate:"required"`
	KidneyDisease     string `json:"kidneyDisease" yaml:"kidneyDisease" validate:"required"`
	SkinCancer        string `json:"skinCancer" yaml:"skinCancer" validate:"required"`
}

// ref returns a pointer to the answer for f, or nil for an unknown field
func (s *FormState) ref(f Field) *string {
	switch f {
	case FieldBMI:
		return &s.BMI
	case FieldSmoker:
		return &s.Smoker
	case FieldAlcoholDrinker:
		return &s.AlcoholDrinker
	case FieldStroke:
		return &s.Stroke
	case FieldPhysicalHealth:
		return &s.PhysicalHealth
	case FieldMentalHealth:
		return &s.MentalHealth
	case FieldDifficultyWalking:
		return &s.DifficultyWalking
	case FieldSex:
		return &s.Sex
	case FieldAgeCategory:
		return &s.AgeCategory
	case FieldRace:
		return &s.Race
	case FieldDiabetic:
		return &s.Diabetic
	case FieldPhysicalActivity:
		return &s.PhysicalActivity
	case FieldGeneralHealth:
		return &s.GeneralHealth
	case FieldSleepTime:
		return &s.SleepTime
	case FieldAsthma:
		return &s.Asthma
	case FieldKidneyDisease:
		return &s.KidneyDisease
	case FieldSkinCancer:
		return &s.SkinCancer
	}
	return nil
}

// Get returns the answer for f. ok is false for an unknown field.
func (s FormState) Get(f Field) (value string, ok bool) {
	p := s.ref(f)
	if p == nil {
		return "", false
	}
	return *p, true
}

// Set replaces the answer for f. It reports false for an unknown field
// and leaves the state untouched.
func (s *FormState) Set(f Field, value string) bool {
	p := s.ref(f)
	if p == nil {
		return false
	}
	*p = value
	return true
}
