// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/evm-adypu/election-server/models"
)

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()

	JSONResponse(w, http.StatusCreated, map[string]string{"status": "ok"})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json content type, got %s", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status 'ok' in body, got %s", body["status"])
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()

	ErrorResponse(w, http.StatusConflict, "you have already voted")

	if w.Code != http.StatusConflict {
		t.Errorf("Expected status 409, got %d", w.Code)
	}

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Error != "Conflict" {
		t.Errorf("Expected error 'Conflict', got %s", body.Error)
	}
	if body.Message != "you have already voted" {
		t.Errorf("Expected message to round-trip, got %s", body.Message)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", strings.NewReader(`{"candidate":"Isha Singh"}`))

	var body models.SelectCandidateRequest
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("ParseJSONBody failed: %v", err)
	}
	if body.Candidate != "Isha Singh" {
		t.Errorf("Expected candidate 'Isha Singh', got %s", body.Candidate)
	}
}

func TestParseJSONBodyInvalid(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", strings.NewReader("not json"))

	var body models.SelectCandidateRequest
	if err := ParseJSONBody(req, &body); err == nil {
		t.Error("Expected error for malformed JSON body")
	}
}

func TestWithLoggingPreservesStatus(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != http.StatusTeapot {
		t.Errorf("Expected wrapped status 418, got %d", w.Code)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded chain", map[string]string{"X-Forwarded-For": "10.0.0.1, 172.16.0.1"}, "127.0.0.1:9999", "10.0.0.1"},
		{"real ip", map[string]string{"X-Real-IP": "10.0.0.2"}, "127.0.0.1:9999", "10.0.0.2"},
		{"remote addr fallback", nil, "192.168.1.5:41234", "192.168.1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/test", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := GetClientIP(req); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCORSEchoesOrigin(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/test", nil)
	req.Header.Set("Origin", "https://vote.adypu.edu.in")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://vote.adypu.edu.in" {
		t.Errorf("Expected origin echoed back, got %s", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Expected credentials allowed, got %s", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	called := false
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))

	req := httptest.NewRequest("OPTIONS", "/test", nil)
	req.Header.Set("Origin", "https://vote.adypu.edu.in")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200 for preflight, got %d", w.Code)
	}
	if called {
		t.Error("Preflight request should not reach the wrapped handler")
	}
}
