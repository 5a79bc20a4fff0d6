// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package predictor

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/heart-risk/observability"
	"github.com/danielhkuo/heart-risk/testutil"
)

func TestPredict_PostsJSONRow(t *testing.T) {
	svc := testutil.NewFakePredictService(t, testutil.RespondJSON(http.StatusOK, map[string]any{
		"prediction":  0,
		"probability": 0.12,
	}))
	client := NewClient(svc.PredictURL(), time.Second)

	result, err := client.Predict(context.Background(), testutil.CompleteFormRequest())
	require.NoError(t, err)
	assert.Equal(t, testutil.Prediction(0, 0.12), result)

	requests := svc.Requests()
	require.Len(t, requests, 1)
	body := requests[0]
	assert.Len(t, body, 18)
	assert.Equal(t, 0.0, body["index"])
	assert.Equal(t, 27.3, body["bmi"])
	assert.Equal(t, 1.0, body["smoker"])
	assert.Equal(t, 3.0, body["ageCategory"])

	assert.Equal(t, "application/json", svc.Headers()[0].Get("Content-Type"))
}

func TestPredict_ServiceErrorIsResult(t *testing.T) {
	svc := testutil.NewFakePredictService(t, testutil.RespondJSON(http.StatusOK, map[string]string{
		"error": "feature mismatch",
	}))
	client := NewClient(svc.PredictURL(), time.Second)

	result, err := client.Predict(context.Background(), testutil.CompleteFormRequest())
	require.NoError(t, err)
	assert.True(t, result.Failed())
	assert.Equal(t, "feature mismatch", result.Error)
}

func TestPredict_PredictionWithoutProbability(t *testing.T) {
	svc := testutil.NewFakePredictService(t, testutil.RespondRaw(http.StatusOK, `{"prediction": 1}`))
	client := NewClient(svc.PredictURL(), time.Second)

	result, err := client.Predict(context.Background(), testutil.CompleteFormRequest())
	require.NoError(t, err)
	require.NotNil(t, result.Prediction)
	assert.Equal(t, 1.0, *result.Prediction)
	assert.Nil(t, result.Probability)
}

func TestPredict_Failures(t *testing.T) {
	testCases := []struct {
		name    string
		respond http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name:    "server error",
			respond: testutil.RespondJSON(http.StatusInternalServerError, map[string]string{"error": "boom"}),
			check: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, ErrUnexpectedStatus)
				assert.Contains(t, err.Error(), "500")
			},
		},
		{
			name:    "bad request",
			respond: testutil.RespondRaw(http.StatusBadRequest, `{"error":"bad row"}`),
			check:   func(t *testing.T, err error) { assert.ErrorIs(t, err, ErrUnexpectedStatus) },
		},
		{
			name:    "malformed json",
			respond: testutil.RespondRaw(http.StatusOK, `{"prediction": `),
			check:   func(t *testing.T, err error) { assert.Contains(t, err.Error(), "decode") },
		},
		{
			name:    "html body",
			respond: testutil.RespondRaw(http.StatusOK, `<html>gateway</html>`),
			check:   func(t *testing.T, err error) { assert.Contains(t, err.Error(), "decode") },
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := testutil.NewFakePredictService(t, tc.respond)
			client := NewClient(svc.PredictURL(), time.Second)

			_, err := client.Predict(context.Background(), testutil.CompleteFormRequest())
			require.Error(t, err)
			tc.check(t, err)
		})
	}
}

func TestPredict_Timeout(t *testing.T) {
	svc := testutil.NewFakePredictService(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	client := NewClient(svc.PredictURL(), 50*time.Millisecond)

	start := time.Now()
	_, err := client.Predict(context.Background(), testutil.CompleteFormRequest())
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded), "expected deadline error, got %v", err)
	assert.Less(t, time.Since(start), time.Second)
}

func TestPredict_Unreachable(t *testing.T) {
	svc := testutil.NewFakePredictService(t, testutil.RespondRaw(http.StatusOK, `{}`))
	url := svc.PredictURL()
	svc.Close()

	client := NewClient(url, time.Second)
	_, err := client.Predict(context.Background(), testutil.CompleteFormRequest())
	assert.Error(t, err)
}

func TestPredict_RecordsMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	ok := testutil.NewFakePredictService(t, testutil.RespondRaw(http.StatusOK, `{"prediction":0}`))
	bad := testutil.NewFakePredictService(t, testutil.RespondRaw(http.StatusBadGateway, ``))

	_, err := NewClient(ok.PredictURL(), time.Second, WithMetrics(metrics)).
		Predict(context.Background(), testutil.CompleteFormRequest())
	require.NoError(t, err)
	_, err = NewClient(bad.PredictURL(), time.Second, WithMetrics(metrics)).
		Predict(context.Background(), testutil.CompleteFormRequest())
	require.Error(t, err)

	assert.Equal(t, 0.0, promtest.ToFloat64(metrics.PredictInFlight))
	count, err := promtest.GatherAndCount(reg, "heartrisk_predict_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPredict_CustomHTTPClient(t *testing.T) {
	svc := testutil.NewFakePredictService(t, testutil.RespondRaw(http.StatusOK, `{"prediction":1,"probability":0.9}`))

	var used bool
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		used = true
		return http.DefaultTransport.RoundTrip(r)
	})}

	result, err := NewClient(svc.PredictURL(), time.Second, WithHTTPClient(hc)).
		Predict(context.Background(), testutil.CompleteFormRequest())
	require.NoError(t, err)
	assert.True(t, used)
	assert.Equal(t, testutil.Prediction(1, 0.9), result)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }
