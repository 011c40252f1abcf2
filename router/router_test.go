// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/evm-adypu/election-server/testutil"
)

func newTestRouter(t *testing.T) (*http.ServeMux, func()) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	cfg := testutil.GetTestConfig()
	provider := &testutil.FakeProvider{Emails: map[string]string{}}
	return NewRouter(db, cfg, provider), func() { db.Close() }
}

func TestHealthEndpoint(t *testing.T) {
	mux, cleanup := newTestRouter(t)
	defer cleanup()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, cleanup := newTestRouter(t)
	defer cleanup()

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	expected := "hostel-election API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestProtectedRoutesRequireSession(t *testing.T) {
	mux, cleanup := newTestRouter(t)
	defer cleanup()

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/api/me"},
		{"GET", "/api/houses"},
		{"GET", "/api/houses/1/draft"},
		{"POST", "/api/houses/1/draft/select"},
		{"POST", "/api/houses/1/draft/move"},
		{"DELETE", "/api/houses/1/draft"},
		{"POST", "/api/houses/1/vote"},
		{"GET", "/api/admin/votes"},
		{"GET", "/api/admin/votes/export"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusUnauthorized {
				t.Errorf("Expected 401 without session, got %d", w.Code)
			}
		})
	}
}

func TestVotingRoutesRejectOutsideDomain(t *testing.T) {
	mux, cleanup := newTestRouter(t)
	defer cleanup()

	cfg := testutil.GetTestConfig()
	cookie := testutil.SessionCookie(t, cfg, "x@gmail.com")

	// Voting surface is members-only...
	req := testutil.MakeRequest("GET", "/api/houses", nil, cookie)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("Expected 403 for outside domain on voting route, got %d", w.Code)
	}

	// ...but the admin surface takes any valid session.
	req = testutil.MakeRequest("GET", "/api/admin/votes", nil, cookie)
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200 for outside domain on admin route, got %d", w.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, cleanup := newTestRouter(t)
	defer cleanup()

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},         // Only GET is defined
		{"DELETE", "/api/me"},       // Only GET is defined
		{"DELETE", "/auth/logout"},  // Only POST is defined
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	mux, cleanup := newTestRouter(t)
	defer cleanup()

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
}
