// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/heart-risk/models"
)

func TestWithLogging(t *testing.T) {
	// Create a simple handler that returns OK
	handlerCalled := false
	var seenID string
	testHandler := func(w http.ResponseWriter, r *http.Request) {
		handlerCalled = true
		seenID = RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("success"))
	}

	// Wrap with logging middleware
	wrappedHandler := WithLogging(testHandler)

	req := httptest.NewRequest("GET", "/test-path", nil)
	w := httptest.NewRecorder()

	wrappedHandler(w, req)

	if !handlerCalled {
		t.Error("Expected handler to be called")
	}
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "success" {
		t.Errorf("Expected body 'success', got '%s'", w.Body.String())
	}

	// A fresh request ID is generated and echoed
	header := w.Header().Get(RequestIDHeader)
	if len(header) != 36 {
		t.Errorf("Expected a UUID request ID, got '%s'", header)
	}
	if seenID != header {
		t.Errorf("Expected handler to see request ID '%s', got '%s'", header, seenID)
	}
}

func TestWithLogging_KeepsIncomingRequestID(t *testing.T) {
	var seenID string
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestID(r.Context())
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w := httptest.NewRecorder()

	handler(w, req)

	if seenID != "abc-123" {
		t.Errorf("Expected request ID 'abc-123', got '%s'", seenID)
	}
	if w.Header().Get(RequestIDHeader) != "abc-123" {
		t.Errorf("Expected echoed request ID 'abc-123', got '%s'", w.Header().Get(RequestIDHeader))
	}
}

func TestWithLogging_PreservesResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		body       string
	}{
		{"OK", http.StatusOK, "ok"},
		{"BadRequest", http.StatusBadRequest, `{"error":"bad request"}`},
		{"Unprocessable", http.StatusUnprocessableEntity, `{"error":"invalid"}`},
		{"TooMany", http.StatusTooManyRequests, "slow down"},
		{"InternalError", http.StatusInternalServerError, "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				w.Write([]byte(tc.body))
			})

			req := httptest.NewRequest("POST", "/api/heart", nil)
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Body.String() != tc.body {
				t.Errorf("Expected body '%s', got '%s'", tc.body, w.Body.String())
			}
		})
	}
}

func TestRequestID_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if id := RequestID(req.Context()); id != "" {
		t.Errorf("Expected empty request ID, got '%s'", id)
	}
}

func TestJSONResponse(t *testing.T) {
	testCases := []struct {
		name       string
		statusCode int
		data       interface{}
		expected   string
	}{
		{
			name:       "simple struct",
			statusCode: http.StatusOK,
			data:       map[string]string{"message": "hello"},
			expected:   `{"message":"hello"}`,
		},
		{
			name:       "risk view",
			statusCode: http.StatusOK,
			data:       models.RiskView{Risk: models.RiskLow, Title: "Low Risk", Result: "Probability: 0.12"},
			expected:   `{"risk":"low","title":"Low Risk","result":"Probability: 0.12"}`,
		},
		{
			name:       "error response",
			statusCode: http.StatusBadRequest,
			data:       models.ErrorResponse{Error: "Bad Request", Message: "missing field"},
			expected:   `{"error":"Bad Request","message":"missing field"}`,
		},
		{
			name:       "array data",
			statusCode: http.StatusOK,
			data:       []string{"a", "b", "c"},
			expected:   `["a","b","c"]`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			JSONResponse(w, tc.statusCode, tc.data)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}

			contentType := w.Header().Get("Content-Type")
			if contentType != "application/json" {
				t.Errorf("Expected Content-Type 'application/json', got '%s'", contentType)
			}

			// Check body (trim newline added by Encode)
			body := strings.TrimSpace(w.Body.String())
			if body != tc.expected {
				t.Errorf("Expected body '%s', got '%s'", tc.expected, body)
			}
		})
	}
}

func TestErrorResponse(t *testing.T) {
	testCases := []struct {
		name          string
		statusCode    int
		message       string
		expectedError string
	}{
		{
			name:          "bad request",
			statusCode:    http.StatusBadRequest,
			message:       "Invalid JSON",
			expectedError: "Bad Request",
		},
		{
			name:          "unprocessable",
			statusCode:    http.StatusUnprocessableEntity,
			message:       "race: unknown option",
			expectedError: "Unprocessable Entity",
		},
		{
			name:          "too many requests",
			statusCode:    http.StatusTooManyRequests,
			message:       "slow down",
			expectedError: "Too Many Requests",
		},
		{
			name:          "internal error",
			statusCode:    http.StatusInternalServerError,
			message:       "render failed",
			expectedError: "Internal Server Error",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			ErrorResponse(w, tc.statusCode, tc.message)

			if w.Code != tc.statusCode {
				t.Errorf("Expected status %d, got %d", tc.statusCode, w.Code)
			}
			if w.Header().Get("Content-Type") != "application/json" {
				t.Error("Expected Content-Type 'application/json'")
			}

			var resp models.ErrorResponse
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("Failed to decode error response: %v", err)
			}

			if resp.Error != tc.expectedError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectedError, resp.Error)
			}
			if resp.Message != tc.message {
				t.Errorf("Expected message '%s', got '%s'", tc.message, resp.Message)
			}
			if len(resp.Fields) != 0 {
				t.Errorf("Expected no fields, got %v", resp.Fields)
			}
		})
	}
}

func TestFieldErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	FieldErrorResponse(w, http.StatusBadRequest, "answer every question", []string{"bmi", "sleepTime"})

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}

	var resp models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if len(resp.Fields) != 2 || resp.Fields[0] != "bmi" || resp.Fields[1] != "sleepTime" {
		t.Errorf("Expected fields [bmi sleepTime], got %v", resp.Fields)
	}
}

func TestParseJSONBody(t *testing.T) {
	t.Run("valid JSON", func(t *testing.T) {
		body := `{"bmi":"27.3","smoker":"yes"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.FormState
		err := ParseJSONBody(httptest.NewRecorder(), req, &parsed)

		if err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.BMI != "27.3" {
			t.Errorf("Expected bmi '27.3', got '%s'", parsed.BMI)
		}
		if parsed.Smoker != "yes" {
			t.Errorf("Expected smoker 'yes', got '%s'", parsed.Smoker)
		}
	})

	t.Run("invalid JSON", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(`{invalid json}`))

		var parsed models.FormState
		if err := ParseJSONBody(httptest.NewRecorder(), req, &parsed); err == nil {
			t.Error("Expected error for invalid JSON")
		}
	})

	t.Run("oversized body rejected", func(t *testing.T) {
		body := `{"bmi":"` + strings.Repeat("9", maxBodyBytes) + `"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.FormState
		err := ParseJSONBody(httptest.NewRecorder(), req, &parsed)

		var tooLarge *http.MaxBytesError
		if !errors.As(err, &tooLarge) {
			t.Fatalf("Expected *http.MaxBytesError, got %v", err)
		}
		if !strings.Contains(err.Error(), "64 KiB") {
			t.Errorf("Expected readable size limit in error, got '%s'", err.Error())
		}
	})

	t.Run("empty body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/", strings.NewReader(""))

		var parsed models.FormState
		if err := ParseJSONBody(httptest.NewRecorder(), req, &parsed); err == nil {
			t.Error("Expected error for empty body")
		}
	})

	t.Run("extra fields ignored", func(t *testing.T) {
		body := `{"bmi":"30","cholesterol":"high"}`
		req := httptest.NewRequest("POST", "/", strings.NewReader(body))

		var parsed models.FormState
		if err := ParseJSONBody(httptest.NewRecorder(), req, &parsed); err != nil {
			t.Fatalf("Expected no error, got: %v", err)
		}
		if parsed.BMI != "30" {
			t.Errorf("Expected bmi '30', got '%s'", parsed.BMI)
		}
	})

	t.Run("body is closed after parsing", func(t *testing.T) {
		bodyReader := io.NopCloser(bytes.NewReader([]byte(`{"bmi":"22"}`)))
		req := httptest.NewRequest("POST", "/", bodyReader)

		var parsed models.FormState
		_ = ParseJSONBody(httptest.NewRecorder(), req, &parsed)

		remaining, _ := io.ReadAll(req.Body)
		if len(remaining) > 0 {
			t.Error("Expected body to be consumed/closed")
		}
	})
}

func TestCORS(t *testing.T) {
	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("handled"))
	})

	corsHandler := CORS(nextHandler)

	t.Run("preflight OPTIONS request", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/heart", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
		if w.Body.String() != "" {
			t.Errorf("Expected empty body for preflight, got '%s'", w.Body.String())
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:5173" {
			t.Error("Expected Access-Control-Allow-Origin to match request origin")
		}
	})

	t.Run("regular request with origin", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/fields", nil)
		req.Header.Set("Origin", "https://example.com")
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Body.String() != "handled" {
			t.Error("Expected next handler to be called")
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "https://example.com" {
			t.Error("Expected Access-Control-Allow-Origin to reflect request origin")
		}
	})

	t.Run("request without origin defaults to wildcard", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/fields", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Error("Expected Access-Control-Allow-Origin to default to '*'")
		}
	})

	t.Run("allows request ID header", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/api/heart", nil)
		w := httptest.NewRecorder()

		corsHandler.ServeHTTP(w, req)

		allowed := w.Header().Get("Access-Control-Allow-Headers")
		if !strings.Contains(allowed, "Content-Type") {
			t.Error("Expected Content-Type in allowed headers")
		}
		if !strings.Contains(allowed, RequestIDHeader) {
			t.Error("Expected X-Request-ID in allowed headers")
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "POST") {
			t.Error("Expected POST in allowed methods")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:       "X-Forwarded-For single",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5"},
			remoteAddr: "10.0.0.1:1234",
			expected:   "203.0.113.5",
		},
		{
			name:       "X-Forwarded-For chain",
			headers:    map[string]string{"X-Forwarded-For": "203.0.113.5, 10.0.0.2"},
			remoteAddr: "10.0.0.1:1234",
			expected:   "203.0.113.5",
		},
		{
			name:       "X-Real-IP",
			headers:    map[string]string{"X-Real-IP": "198.51.100.7"},
			remoteAddr: "10.0.0.1:1234",
			expected:   "198.51.100.7",
		},
		{
			name:       "RemoteAddr with port",
			remoteAddr: "192.0.2.10:5555",
			expected:   "192.0.2.10",
		},
		{
			name:       "RemoteAddr without port",
			remoteAddr: "192.0.2.10",
			expected:   "192.0.2.10",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tc.expected {
				t.Errorf("Expected IP '%s', got '%s'", tc.expected, got)
			}
		})
	}
}
