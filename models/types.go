// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Request types

type SelectCandidateRequest struct {
	Candidate string `json:"candidate"`
}

type MoveSlotRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Response types

type HouseResponse struct {
	Number     int      `json:"number"`
	Candidates []string `json:"candidates"`
}

type DraftResponse struct {
	HouseNumber int      `json:"house_number"`
	Slots       []string `json:"slots"`
	Preferences []string `json:"preferences"`
}

type SubmitVoteResponse struct {
	VoteID  string `json:"vote_id"`
	Message string `json:"message"`
}

type SessionResponse struct {
	Email      string `json:"email"`
	Authorized bool   `json:"authorized"`
}

type MeResponse struct {
	Email       string `json:"email"`
	Authorized  bool   `json:"authorized"`
	HasVoted    bool   `json:"has_voted"`
	HouseNumber *int   `json:"house_number,omitempty"`
}

type AdminVotesResponse struct {
	Total   int         `json:"total"`
	ByHouse map[int]int `json:"by_house"`
	Votes   []Vote      `json:"votes"`
}

// Domain types

type Vote struct {
	ID          string    `json:"id"`
	UserEmail   string    `json:"user_email"`
	HouseNumber int       `json:"house_number"`
	Preferences []string  `json:"preferences"`
	CreatedAt   time.Time `json:"created_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
