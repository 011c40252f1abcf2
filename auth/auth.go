// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidSession = errors.New("invalid session token")
	ErrNoSession      = errors.New("no session")
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "election_session"

// DefaultSessionTTL covers the whole election day.
const DefaultSessionTTL = 24 * time.Hour

const issuer = "election-server"

// IsAuthorized reports whether an email belongs to the organization domain
// that is allowed to vote.
func IsAuthorized(email, domain string) bool {
	return email != "" && strings.HasSuffix(email, "@"+domain)
}

// MintSession creates a signed HS256 session token for the given identity.
func MintSession(email, secret string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   email,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ParseSession validates a session token and returns the identity it was
// minted for.
func ParseSession(token, secret string) (string, error) {
	var claims jwt.RegisteredClaims
	tok, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return []byte(secret), nil },
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithIssuer(issuer),
	)
	if err != nil || !tok.Valid || claims.Subject == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}

// GenerateState creates a random URL-safe value for OAuth state and nonce
// parameters.
func GenerateState() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate state: %w", err)
	}
	return strings.TrimRight(base64.URLEncoding.EncodeToString(b), "="), nil
}
