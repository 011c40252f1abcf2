// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/evm-adypu/election-server/auth"
	"github.com/evm-adypu/election-server/cliparse"
	"github.com/evm-adypu/election-server/middleware"
	"github.com/evm-adypu/election-server/models"
)

// IdentityProvider is the external sign-in collaborator. The production
// implementation is google.Provider; tests substitute a fake.
type IdentityProvider interface {
	AuthURL(ctx context.Context, state, nonce string) (string, error)
	Authenticate(ctx context.Context, code, nonce string) (string, error)
}

const (
	stateCookie = "oauth_state"
	nonceCookie = "oauth_nonce"
)

type AuthHandler struct {
	cfg      cliparse.Config
	provider IdentityProvider
}

func NewAuthHandler(cfg cliparse.Config, provider IdentityProvider) *AuthHandler {
	return &AuthHandler{cfg: cfg, provider: provider}
}

// Login handles GET /auth/login
// Starts the provider handshake: random state and nonce go into short-lived
// cookies, the browser goes to Google.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	state, err := auth.GenerateState()
	if err != nil {
		slog.Error("failed to generate oauth state", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start sign-in")
		return
	}
	nonce, err := auth.GenerateState()
	if err != nil {
		slog.Error("failed to generate oauth nonce", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start sign-in")
		return
	}

	setTempCookie(w, stateCookie, state)
	setTempCookie(w, nonceCookie, nonce)

	authURL, err := h.provider.AuthURL(r.Context(), state, nonce)
	if err != nil {
		slog.Error("failed to build provider auth URL", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to start sign-in")
		return
	}

	http.Redirect(w, r, authURL, http.StatusFound)
}

// Callback handles GET /auth/callback
// Completes the handshake. A domain-matched email gets a session cookie and
// lands on the frontend root; any other email gets no session at all and
// lands on /unauthorized. That is the forced sign-out for outside accounts.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	stc, err := r.Cookie(stateCookie)
	if err != nil || stc.Value == "" || stc.Value != q.Get("state") {
		middleware.ErrorResponse(w, http.StatusBadRequest, "State mismatch")
		return
	}
	nonce := ""
	if nc, err := r.Cookie(nonceCookie); err == nil {
		nonce = nc.Value
	}
	clearCookie(w, stateCookie)
	clearCookie(w, nonceCookie)

	code := q.Get("code")
	if code == "" || q.Get("error") != "" {
		slog.Warn("provider returned sign-in error", "error", q.Get("error"))
		http.Redirect(w, r, h.cfg.PublicURL+"/login?error=auth_failed", http.StatusFound)
		return
	}

	email, err := h.provider.Authenticate(r.Context(), code, nonce)
	if err != nil {
		slog.Error("sign-in handshake failed", "error", err)
		http.Redirect(w, r, h.cfg.PublicURL+"/login?error=auth_failed", http.StatusFound)
		return
	}

	if !auth.IsAuthorized(email, h.cfg.AllowedDomain) {
		slog.Warn("sign-in from outside domain rejected", "email", email)
		http.Redirect(w, r, h.cfg.PublicURL+"/unauthorized", http.StatusFound)
		return
	}

	token, err := auth.MintSession(email, h.cfg.SessionSecret, auth.DefaultSessionTTL)
	if err != nil {
		slog.Error("failed to mint session", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to establish session")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.DefaultSessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	slog.Info("session established", "email", email)
	http.Redirect(w, r, h.cfg.PublicURL+"/", http.StatusFound)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, auth.SessionCookie)
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

// Session handles GET /auth/session
// Reports the current identity, or 401 when there is no valid session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	token := auth.TokenFromRequest(r)
	if token == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "No session")
		return
	}
	email, err := auth.ParseSession(token, h.cfg.SessionSecret)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Session expired or invalid")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.SessionResponse{
		Email:      email,
		Authorized: auth.IsAuthorized(email, h.cfg.AllowedDomain),
	})
}

func setTempCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
