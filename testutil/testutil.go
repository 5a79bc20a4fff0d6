// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/heart-risk/cliparse"
	"github.com/danielhkuo/heart-risk/models"
)

// CompleteForm returns a fully answered questionnaire.
// Its encoding is CompleteFormRequest.
func CompleteForm() models.FormState {
	return models.FormState{
		BMI:               "27.3",
		Smoker:            "yes",
		AlcoholDrinker:    "no",
		Stroke:            "no",
		PhysicalHealth:    "3",
		MentalHealth:      "7",
		DifficultyWalking: "no",
		Sex:               "female",
		AgeCategory:       "45-54",
		Race:              "other",
		Diabetic:          "no",
		PhysicalActivity:  "yes",
		GeneralHealth:     "fair",
		SleepTime:         "7.5",
		Asthma:            "yes",
		KidneyDisease:     "no",
		SkinCancer:        "no",
	}
}

// CompleteFormRequest is the wire encoding of CompleteForm
func CompleteFormRequest() models.PredictionRequest {
	return models.PredictionRequest{
		Index:             0,
		BMI:               27.3,
		Smoker:            1,
		AlcoholDrinker:    0,
		Stroke:            0,
		PhysicalHealth:    3,
		MentalHealth:      7,
		DifficultyWalking: 0,
		Sex:               0,
		AgeCategory:       3,
		Race:              2,
		Diabetic:          0,
		PhysicalActivity:  1,
		GeneralHealth:     2,
		SleepTime:         7.5,
		Asthma:            1,
		KidneyDisease:     0,
		SkinCancer:        0,
	}
}

// FormValues encodes a form the way a browser posts it
func FormValues(form models.FormState) url.Values {
	var raw map[string]string
	b, _ := json.Marshal(form)
	json.Unmarshal(b, &raw)

	values := url.Values{}
	for k, v := range raw {
		values.Set(k, v)
	}
	return values
}

// Prediction builds a successful result. A negative probability is omitted.
func Prediction(prediction, probability float64) models.PredictionResult {
	r := models.PredictionResult{Prediction: &prediction}
	if probability >= 0 {
		r.Probability = &probability
	}
	return r
}

// FakePredictService is an httptest server standing in for the external
// prediction endpoint. It records every request body it receives.
type FakePredictService struct {
	*httptest.Server

	mu       sync.Mutex
	requests []map[string]any
	headers  []http.Header
}

// NewFakePredictService serves respond for every POST /predict.
// The server is closed when the test ends.
func NewFakePredictService(t *testing.T, respond http.HandlerFunc) *FakePredictService {
	t.Helper()

	f := &FakePredictService{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /predict", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("fake predict service: bad request body: %v", err)
		}
		f.mu.Lock()
		f.requests = append(f.requests, body)
		f.headers = append(f.headers, r.Header.Clone())
		f.mu.Unlock()

		respond(w, r)
	})

	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

// PredictURL is the full endpoint URL
func (f *FakePredictService) PredictURL() string {
	return f.URL + "/predict"
}

// Requests returns the decoded bodies received so far
func (f *FakePredictService) Requests() []map[string]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]map[string]any(nil), f.requests...)
}

// Headers returns the request headers received so far
func (f *FakePredictService) Headers() []http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]http.Header(nil), f.headers...)
}

// RespondJSON returns a handler writing v with the given status
func RespondJSON(status int, v any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(v)
	}
}

// RespondRaw returns a handler writing body verbatim
func RespondRaw(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

// GetTestConfig returns a standard test configuration pointing at predictURL
func GetTestConfig(predictURL string) cliparse.Config {
	return cliparse.Config{
		Port:           8088,
		PredictURL:     predictURL,
		PredictTimeout: 2 * time.Second,
		RateLimit:      0,
		RateBurst:      1,
		LogLevel:       "info",
	}
}

// MakeRequest creates an HTTP test request with a JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a form-encoded HTTP test request
func MakeFormRequest(method, path string, values url.Values) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
