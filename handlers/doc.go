// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the election API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - AuthHandler: Google sign-in flow and session management
  - VotingHandler: House listing, draft editing, vote submission
  - AdminHandler: Ballot listing and CSV export

	authHandler := handlers.NewAuthHandler(cfg, provider)
	votingHandler := handlers.NewVotingHandler(db, cfg)
	adminHandler := handlers.NewAdminHandler(db, cfg)

AuthHandler talks to the identity provider through the IdentityProvider
interface, so tests substitute a fake instead of calling Google.

# Sign-In Flow

	GET  /auth/login    → Login (redirect to Google with state + nonce)
	GET  /auth/callback → Callback (verify, mint session cookie)
	POST /auth/logout   → Logout (clear session cookie)
	GET  /auth/session  → Session (who am I, am I authorized)

A verified email outside the allowed domain gets no session; the browser is
sent to the frontend's unauthorized page instead.

# Voting Flow

	GET    /api/houses                     → ListHouses
	GET    /api/houses/{house}/draft       → GetDraft
	POST   /api/houses/{house}/draft/select → SelectCandidate (toggle)
	POST   /api/houses/{house}/draft/move  → MoveSlot (reorder)
	DELETE /api/houses/{house}/draft       → DiscardDraft
	POST   /api/houses/{house}/vote        → SubmitVote

Drafts live server-side per (voter, house) and expire after 30 minutes of
inactivity. Submission checks run in a fixed order: prior vote (409), empty
ballot (422), then insert. On success the draft is discarded and 201 returns
the new vote ID; on a storage error the draft is kept so nothing typed is
lost.

# Admin Surface

	GET /api/admin/votes        → ListVotes (totals, per-house counts, ballots)
	GET /api/admin/votes/export → ExportCSV (dated attachment)

Admin routes require a valid session but not domain membership.
*/
package handlers
