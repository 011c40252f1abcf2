// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/evm-adypu/election-server/cliparse"
	"github.com/evm-adypu/election-server/middleware"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity returns the authenticated email for a request that passed
// RequireSession, or "" if there is none.
func Identity(r *http.Request) string {
	email, _ := r.Context().Value(identityKey).(string)
	return email
}

// TokenFromRequest pulls the session token from the cookie or, for
// non-browser clients, a bearer Authorization header.
func TokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		return c.Value
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

// RequireSession gates a handler behind a valid session. The identity is
// stored on the request context. This is the only gate on the admin surface:
// any signed-in account may reach it, domain match or not.
func RequireSession(cfg cliparse.Config, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := TokenFromRequest(r)
		if token == "" {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Sign in required")
			return
		}
		email, err := ParseSession(token, cfg.SessionSecret)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusUnauthorized, "Session expired or invalid")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), identityKey, email)))
	}
}

// RequireMember gates a handler behind a valid session AND the organization
// domain. Voting routes use this; a signed-in outside account gets 403.
func RequireMember(cfg cliparse.Config, next http.HandlerFunc) http.HandlerFunc {
	return RequireSession(cfg, func(w http.ResponseWriter, r *http.Request) {
		if !IsAuthorized(Identity(r), cfg.AllowedDomain) {
			middleware.ErrorResponse(w, http.StatusForbidden, "Only "+cfg.AllowedDomain+" accounts may vote")
			return
		}
		next(w, r)
	})
}
