// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the election API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, provider)

# Endpoints

Health and metrics (public):

	GET /health
	GET /metrics

Sign-in flow (public):

	GET  /auth/login    - Redirect to Google
	GET  /auth/callback - OAuth return leg
	POST /auth/logout   - Clear session
	GET  /auth/session  - Current session info

Voter status (any valid session):

	GET /api/me - Email, authorization, whether a vote exists

Voting (domain members only):

	GET    /api/houses                      - Houses and candidates
	GET    /api/houses/{house}/draft        - Current draft ranking
	POST   /api/houses/{house}/draft/select - Toggle a candidate
	POST   /api/houses/{house}/draft/move   - Reorder slots
	DELETE /api/houses/{house}/draft        - Discard draft
	POST   /api/houses/{house}/vote         - Submit ballot

Admin (any valid session):

	GET /api/admin/votes        - All ballots with counts
	GET /api/admin/votes/export - CSV download

# Gates

Voting routes pass through auth.RequireMember; /api/me and the admin routes
through auth.RequireSession. All logged routes are wrapped in
middleware.WithLogging.
*/
package router
