// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/evm-adypu/election-server/auth"
	"github.com/evm-adypu/election-server/ballot"
	"github.com/evm-adypu/election-server/cliparse"
	"github.com/evm-adypu/election-server/metrics"
	"github.com/evm-adypu/election-server/middleware"
	"github.com/evm-adypu/election-server/models"
	"github.com/evm-adypu/election-server/roster"
	"github.com/evm-adypu/election-server/store"
)

type VotingHandler struct {
	cfg    cliparse.Config
	votes  *store.VoteStore
	drafts *ballot.Drafts
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{
		cfg:    cfg,
		votes:  store.NewVoteStore(db),
		drafts: ballot.NewDrafts(ballot.DefaultDraftTTL),
	}
}

// ListHouses handles GET /api/houses
func (h *VotingHandler) ListHouses(w http.ResponseWriter, r *http.Request) {
	houses := []models.HouseResponse{}
	for _, n := range roster.Houses() {
		houses = append(houses, models.HouseResponse{
			Number:     n,
			Candidates: roster.Candidates(n),
		})
	}
	middleware.JSONResponse(w, http.StatusOK, houses)
}

// Me handles GET /api/me
// Tells the client which view applies: house selection if unvoted, the
// status view once a ballot exists.
func (h *VotingHandler) Me(w http.ResponseWriter, r *http.Request) {
	email := auth.Identity(r)

	resp := models.MeResponse{
		Email:      email,
		Authorized: auth.IsAuthorized(email, h.cfg.AllowedDomain),
	}

	v, err := h.votes.FindVote(email)
	switch {
	case err == nil:
		resp.HasVoted = true
		house := v.HouseNumber
		resp.HouseNumber = &house
	case errors.Is(err, sql.ErrNoRows):
		// no ballot yet
	default:
		slog.Error("failed to look up vote", "error", err, "email", email)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetDraft handles GET /api/houses/{house}/draft
// Creates an empty draft on first access.
func (h *VotingHandler) GetDraft(w http.ResponseWriter, r *http.Request) {
	house, ok := housePath(w, r)
	if !ok {
		return
	}
	d := h.draftFor(r, house)
	middleware.JSONResponse(w, http.StatusOK, draftResponse(house, d))
}

// SelectCandidate handles POST /api/houses/{house}/draft/select
// Toggles a candidate in the draft: ranked candidates are cleared, unranked
// ones take the first empty slot.
func (h *VotingHandler) SelectCandidate(w http.ResponseWriter, r *http.Request) {
	house, ok := housePath(w, r)
	if !ok {
		return
	}

	var req models.SelectCandidateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if req.Candidate == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "candidate is required")
		return
	}
	if !roster.HasCandidate(house, req.Candidate) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Unknown candidate for this house")
		return
	}

	d := h.draftFor(r, house)
	d.Select(req.Candidate)
	middleware.JSONResponse(w, http.StatusOK, draftResponse(house, d))
}

// MoveSlot handles POST /api/houses/{house}/draft/move
// Repositions a ranked entry. Out-of-range indexes leave the draft as is.
func (h *VotingHandler) MoveSlot(w http.ResponseWriter, r *http.Request) {
	house, ok := housePath(w, r)
	if !ok {
		return
	}

	var req models.MoveSlotRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	d := h.draftFor(r, house)
	d.Move(req.From, req.To)
	middleware.JSONResponse(w, http.StatusOK, draftResponse(house, d))
}

// DiscardDraft handles DELETE /api/houses/{house}/draft
func (h *VotingHandler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	house, ok := housePath(w, r)
	if !ok {
		return
	}
	h.drafts.Discard(auth.Identity(r), house)
	w.WriteHeader(http.StatusNoContent)
}

// SubmitVote handles POST /api/houses/{house}/vote
// The steps run in a fixed order on every attempt: existence check,
// non-empty validation, insert. A store failure leaves the draft intact so
// the voter can simply retry.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
	house, ok := housePath(w, r)
	if !ok {
		return
	}
	email := auth.Identity(r)
	if email == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Sign in required")
		return
	}

	voted, err := h.votes.HasVote(email)
	if err != nil {
		slog.Error("failed to check existing vote", "error", err, "email", email)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote. Please try again.")
		return
	}
	if voted {
		h.drafts.Discard(email, house)
		middleware.ErrorResponse(w, http.StatusConflict, "You have already submitted your vote")
		return
	}

	prefs := h.draftFor(r, house).OrderedPreferences()
	if len(prefs) == 0 {
		middleware.ErrorResponse(w, http.StatusUnprocessableEntity, "Rank at least one candidate before submitting")
		return
	}

	vote := models.Vote{
		ID:          uuid.NewString(),
		UserEmail:   email,
		HouseNumber: house,
		Preferences: prefs,
		CreatedAt:   time.Now(),
	}

	err = h.votes.InsertVote(vote)
	if errors.Is(err, store.ErrDuplicateVote) {
		// Lost the race against another session for the same identity; the
		// UNIQUE constraint keeps exactly one ballot either way.
		h.drafts.Discard(email, house)
		middleware.ErrorResponse(w, http.StatusConflict, "You have already submitted your vote")
		return
	}
	if err != nil {
		slog.Error("failed to insert vote", "error", err, "email", email)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to submit vote. Please try again.")
		return
	}

	h.drafts.Discard(email, house)
	metrics.VotesSubmitted.Inc()
	slog.Info("vote submitted", "vote_id", vote.ID, "house", house, "ranks", len(prefs))

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		VoteID:  vote.ID,
		Message: "Vote submitted successfully",
	})
}

func (h *VotingHandler) draftFor(r *http.Request, house int) *ballot.Draft {
	return h.drafts.Get(auth.Identity(r), house, len(roster.Candidates(house)))
}

// housePath parses and validates the {house} path segment, writing the error
// response itself when the house is unknown.
func housePath(w http.ResponseWriter, r *http.Request) (int, bool) {
	house, err := strconv.Atoi(r.PathValue("house"))
	if err != nil || !roster.IsValidHouse(house) {
		middleware.ErrorResponse(w, http.StatusNotFound, "House not found")
		return 0, false
	}
	return house, true
}

func draftResponse(house int, d *ballot.Draft) models.DraftResponse {
	return models.DraftResponse{
		HouseNumber: house,
		Slots:       d.Slots(),
		Preferences: d.OrderedPreferences(),
	}
}
