// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/evm-adypu/election-server/auth"
	"github.com/evm-adypu/election-server/cliparse"
	"github.com/evm-adypu/election-server/handlers"
	"github.com/evm-adypu/election-server/metrics"
	"github.com/evm-adypu/election-server/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, provider handlers.IdentityProvider) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(cfg, provider)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

	// Gates: member = valid session + organization domain, session = any
	// signed-in account. The admin surface deliberately takes the weaker
	// gate so committee accounts outside the student domain can read it.
	member := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(auth.RequireMember(cfg, h))
	}
	session := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(auth.RequireSession(cfg, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus exposition
	mux.Handle("GET /metrics", metrics.Handler())

	// Sign-in flow (public)
	mux.HandleFunc("GET /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /auth/callback", middleware.WithLogging(authHandler.Callback))
	mux.HandleFunc("POST /auth/logout", middleware.WithLogging(authHandler.Logout))
	mux.HandleFunc("GET /auth/session", middleware.WithLogging(authHandler.Session))

	// Voter status (any valid session; the payload says whether the account
	// is domain-authorized)
	mux.HandleFunc("GET /api/me", session(votingHandler.Me))

	// House selection and draft editing (members only)
	mux.HandleFunc("GET /api/houses", member(votingHandler.ListHouses))
	mux.HandleFunc("GET /api/houses/{house}/draft", member(votingHandler.GetDraft))
	mux.HandleFunc("POST /api/houses/{house}/draft/select", member(votingHandler.SelectCandidate))
	mux.HandleFunc("POST /api/houses/{house}/draft/move", member(votingHandler.MoveSlot))
	mux.HandleFunc("DELETE /api/houses/{house}/draft", member(votingHandler.DiscardDraft))

	// Vote submission (members only)
	mux.HandleFunc("POST /api/houses/{house}/vote", member(votingHandler.SubmitVote))

	// Admin surface (any valid session)
	mux.HandleFunc("GET /api/admin/votes", session(adminHandler.ListVotes))
	mux.HandleFunc("GET /api/admin/votes/export", session(adminHandler.ExportCSV))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("hostel-election API v1"))
	})

	return mux
}
