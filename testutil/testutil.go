// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/evm-adypu/election-server/auth"
	"github.com/evm-adypu/election-server/cliparse"
	"github.com/evm-adypu/election-server/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. A single connection keeps the in-memory database alive for the
// whole test.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          4000,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		SessionSecret: "test-session-secret",
		AllowedDomain: "adypu.edu.in",
	}
}

// SessionCookie mints a valid session for the given email and wraps it in
// the cookie the middleware looks for.
func SessionCookie(t *testing.T, cfg cliparse.Config, email string) *http.Cookie {
	t.Helper()

	token, err := auth.MintSession(email, cfg.SessionSecret, auth.DefaultSessionTTL)
	if err != nil {
		t.Fatalf("Failed to mint session: %v", err)
	}
	return &http.Cookie{Name: auth.SessionCookie, Value: token}
}

// SeedVote inserts a ballot directly and returns its ID.
func SeedVote(t *testing.T, conn *sql.DB, email string, house int, prefs []string, at time.Time) string {
	t.Helper()

	id := uuid.NewString()
	encoded, err := json.Marshal(prefs)
	if err != nil {
		t.Fatalf("Failed to encode preferences: %v", err)
	}
	_, err = conn.Exec(`
		INSERT INTO vote (id, user_email, house_number, preferences, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, id, email, house, string(encoded), at)
	if err != nil {
		t.Fatalf("Failed to seed vote: %v", err)
	}
	return id
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, cookies ...*http.Cookie) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}

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

// FakeProvider satisfies the handlers.IdentityProvider interface. Each
// authorization code maps to the email Authenticate will return; unknown
// codes fail the handshake.
type FakeProvider struct {
	Emails map[string]string
}

func (f *FakeProvider) AuthURL(ctx context.Context, state, nonce string) (string, error) {
	return "https://accounts.example.com/authorize?state=" + state + "&nonce=" + nonce, nil
}

func (f *FakeProvider) Authenticate(ctx context.Context, code, nonce string) (string, error) {
	if email, ok := f.Emails[code]; ok {
		return email, nil
	}
	return "", errors.New("unknown authorization code")
}
