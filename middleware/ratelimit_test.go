// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRateLimiter_Allow(t *testing.T) {
	limiter := NewRateLimiter(0.001, 2)

	if !limiter.Allow("a") || !limiter.Allow("a") {
		t.Fatal("Expected burst of 2 to be allowed")
	}
	if limiter.Allow("a") {
		t.Error("Expected third request to be refused")
	}

	// Buckets are per client
	if !limiter.Allow("b") {
		t.Error("Expected other client to be allowed")
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	limiter := NewRateLimiter(0, 1)
	for i := 0; i < 100; i++ {
		if !limiter.Allow("a") {
			t.Fatalf("Expected disabled limiter to allow request %d", i)
		}
	}

	var nilLimiter *RateLimiter
	if !nilLimiter.Allow("a") {
		t.Error("Expected nil limiter to allow")
	}
}

func TestRateLimiter_Wrap(t *testing.T) {
	limiter := NewRateLimiter(0.001, 1)
	rejected := 0
	limiter.OnReject = func(r *http.Request) { rejected++ }

	calls := 0
	handler := limiter.Wrap(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/heart", nil)
		req.RemoteAddr = "192.0.2.1:4000"
		w := httptest.NewRecorder()
		handler(w, req)
		return w
	}

	if w := send(); w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	w := send()
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected status 429, got %d", w.Code)
	}
	if w.Header().Get("Retry-After") == "" {
		t.Error("Expected Retry-After header")
	}
	if calls != 1 {
		t.Errorf("Expected handler called once, got %d", calls)
	}
	if rejected != 1 {
		t.Errorf("Expected one rejection callback, got %d", rejected)
	}
}

func TestRateLimiter_TableIsBounded(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	for i := 0; i < maxTrackedClients+10; i++ {
		limiter.Allow(string(rune('a'+i%26)) + string(rune(i)))
	}

	limiter.mu.Lock()
	size := len(limiter.limiters)
	limiter.mu.Unlock()

	if size > maxTrackedClients {
		t.Errorf("Expected at most %d tracked clients, got %d", maxTrackedClients, size)
	}
}
