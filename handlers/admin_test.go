// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/evm-adypu/election-server/auth"
	"github.com/evm-adypu/election-server/models"
	"github.com/evm-adypu/election-server/testutil"
)

func TestAdminListVotes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(db, cfg)

	base := time.Date(2025, 9, 14, 9, 0, 0, 0, time.UTC)
	testutil.SeedVote(t, db, "a@adypu.edu.in", 1, []string{"Ayush Shukla", "Sanket Jha"}, base)
	testutil.SeedVote(t, db, "b@adypu.edu.in", 1, []string{"Sanket Jha"}, base.Add(time.Hour))
	testutil.SeedVote(t, db, "c@adypu.edu.in", 3, []string{"Devansh Saini"}, base.Add(2*time.Hour))

	req := testutil.MakeRequest("GET", "/api/admin/votes", nil, testutil.SessionCookie(t, cfg, "anyone@gmail.com"))
	w := httptest.NewRecorder()
	auth.RequireSession(cfg, handler.ListVotes)(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.AdminVotesResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Total != 3 {
		t.Errorf("Expected total 3, got %d", resp.Total)
	}
	if resp.ByHouse[1] != 2 || resp.ByHouse[3] != 1 || resp.ByHouse[2] != 0 {
		t.Errorf("Unexpected per-house counts: %v", resp.ByHouse)
	}
	if len(resp.Votes) != 3 || resp.Votes[0].UserEmail != "c@adypu.edu.in" {
		t.Errorf("Votes should be newest first, got %+v", resp.Votes)
	}
}

func TestAdminListRequiresSessionOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(db, cfg)
	gated := auth.RequireSession(cfg, handler.ListVotes)

	// No session at all: rejected.
	w := httptest.NewRecorder()
	gated(w, httptest.NewRequest("GET", "/api/admin/votes", nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Any signed-in account passes, domain match or not.
	req := testutil.MakeRequest("GET", "/api/admin/votes", nil, testutil.SessionCookie(t, cfg, "outside@gmail.com"))
	w = httptest.NewRecorder()
	gated(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestAdminExportCSV(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewAdminHandler(db, cfg)

	base := time.Date(2025, 9, 14, 9, 0, 0, 0, time.UTC)
	testutil.SeedVote(t, db, "full@adypu.edu.in", 1,
		[]string{"Ayush Shukla", "Sanket Jha", "Abhijeet", "Atharv Paharia", "Gopi Raman Thakur", "Shubh Arya"}, base)
	testutil.SeedVote(t, db, "short@adypu.edu.in", 2, []string{"Ankit Singh"}, base.Add(time.Hour))

	req := testutil.MakeRequest("GET", "/api/admin/votes/export", nil, testutil.SessionCookie(t, cfg, "admin@adypu.edu.in"))
	w := httptest.NewRecorder()
	auth.RequireSession(cfg, handler.ExportCSV)(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Expected text/csv content type, got %q", ct)
	}
	cd := w.Header().Get("Content-Disposition")
	if !strings.Contains(cd, "hostel_election_votes_") || !strings.Contains(cd, ".csv") {
		t.Errorf("Expected dated CSV filename, got %q", cd)
	}

	lines := strings.Split(w.Body.String(), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header + 2 rows, got %d lines", len(lines))
	}
	for i, line := range lines {
		if got := len(strings.Split(line, ",")); got != 9 {
			t.Errorf("Line %d: expected 9 fields, got %d: %s", i, got, line)
		}
	}
}
