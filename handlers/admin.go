// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/evm-adypu/election-server/cliparse"
	"github.com/evm-adypu/election-server/export"
	"github.com/evm-adypu/election-server/middleware"
	"github.com/evm-adypu/election-server/models"
	"github.com/evm-adypu/election-server/store"
)

type AdminHandler struct {
	cfg   cliparse.Config
	votes *store.VoteStore
}

func NewAdminHandler(db *sql.DB, cfg cliparse.Config) *AdminHandler {
	return &AdminHandler{cfg: cfg, votes: store.NewVoteStore(db)}
}

// ListVotes handles GET /api/admin/votes
// Every ballot, newest first, with total and per-house counts.
func (h *AdminHandler) ListVotes(w http.ResponseWriter, r *http.Request) {
	votes, err := h.votes.ListVotes()
	if err != nil {
		slog.Error("failed to list votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	total, byHouse, err := h.votes.CountByHouse()
	if err != nil {
		slog.Error("failed to count votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AdminVotesResponse{
		Total:   total,
		ByHouse: byHouse,
		Votes:   votes,
	})
}

// ExportCSV handles GET /api/admin/votes/export
// Streams the dated CSV attachment the election committee archives.
func (h *AdminHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	votes, err := h.votes.ListVotes()
	if err != nil {
		slog.Error("failed to list votes for export", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename(time.Now())+`"`)

	if err := export.Write(w, votes); err != nil {
		// Headers are gone already; nothing left to do but log.
		slog.Error("failed to write CSV export", "error", err)
	}
}
