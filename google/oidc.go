// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package google is the identity-provider collaborator: it builds the
// authorization URL, exchanges the callback code, and verifies the returned
// ID token against Google's published keys. The rest of the server only sees
// the verified email address.
package google

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const discoveryURL = "https://accounts.google.com/.well-known/openid-configuration"

var ErrUnverifiedEmail = errors.New("google account has no verified email")

type discoveryDoc struct {
	Issuer        string `json:"issuer"`
	AuthEndpoint  string `json:"authorization_endpoint"`
	TokenEndpoint string `json:"token_endpoint"`
	JWKSURI       string `json:"jwks_uri"`
}

type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	N   string `json:"n"`
	E   string `json:"e"`
}

type jwks struct {
	Keys []jwk `json:"keys"`
}

// Provider talks to Google's OIDC endpoints. Discovery and JWKS responses
// are cached; both change rarely.
type Provider struct {
	clientID     string
	clientSecret string
	redirectURL  string

	http *http.Client

	mu     sync.RWMutex
	disc   *discoveryDoc
	discAt time.Time
	keys   *jwks
	keysAt time.Time
}

func New(clientID, clientSecret, redirectURL string) *Provider {
	return &Provider{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURL:  redirectURL,
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthURL builds the provider sign-in URL for a browser redirect.
func (p *Provider) AuthURL(ctx context.Context, state, nonce string) (string, error) {
	disc, err := p.discovery(ctx)
	if err != nil {
		return "", err
	}
	u, err := url.Parse(disc.AuthEndpoint)
	if err != nil {
		return "", fmt.Errorf("bad authorization endpoint: %w", err)
	}
	q := u.Query()
	q.Set("response_type", "code")
	q.Set("client_id", p.clientID)
	q.Set("redirect_uri", p.redirectURL)
	q.Set("scope", "openid email profile")
	q.Set("state", state)
	q.Set("nonce", nonce)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Authenticate completes the sign-in handshake: code exchange, ID token
// verification, email extraction.
func (p *Provider) Authenticate(ctx context.Context, code, nonce string) (string, error) {
	idToken, err := p.exchangeCode(ctx, code)
	if err != nil {
		return "", err
	}
	return p.verifyIDToken(ctx, idToken, nonce)
}

func (p *Provider) discovery(ctx context.Context) (*discoveryDoc, error) {
	p.mu.RLock()
	disc, at := p.disc, p.discAt
	p.mu.RUnlock()
	if disc != nil && time.Since(at) < 24*time.Hour {
		return disc, nil
	}

	var dd discoveryDoc
	if err := p.getJSON(ctx, discoveryURL, &dd); err != nil {
		return nil, fmt.Errorf("oidc discovery failed: %w", err)
	}

	p.mu.Lock()
	p.disc = &dd
	p.discAt = time.Now()
	p.mu.Unlock()
	return &dd, nil
}

func (p *Provider) jwks(ctx context.Context) (*jwks, error) {
	p.mu.RLock()
	keys, at := p.keys, p.keysAt
	p.mu.RUnlock()
	if keys != nil && time.Since(at) < time.Hour {
		return keys, nil
	}

	disc, err := p.discovery(ctx)
	if err != nil {
		return nil, err
	}
	var jj jwks
	if err := p.getJSON(ctx, disc.JWKSURI, &jj); err != nil {
		return nil, fmt.Errorf("jwks fetch failed: %w", err)
	}

	p.mu.Lock()
	p.keys = &jj
	p.keysAt = time.Now()
	p.mu.Unlock()
	return &jj, nil
}

func (p *Provider) getJSON(ctx context.Context, u string, v any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return err
	}
	resp, err := p.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("http %d from %s", resp.StatusCode, u)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

func (p *Provider) exchangeCode(ctx context.Context, code string) (string, error) {
	disc, err := p.discovery(ctx)
	if err != nil {
		return "", err
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)
	form.Set("redirect_uri", p.redirectURL)

	req, err := http.NewRequestWithContext(ctx, "POST", disc.TokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var body struct {
			Error            string `json:"error"`
			ErrorDescription string `json:"error_description"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return "", fmt.Errorf("token exchange http %d: %s %s", resp.StatusCode, body.Error, body.ErrorDescription)
	}

	var tr struct {
		IDToken string `json:"id_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}
	if tr.IDToken == "" {
		return "", errors.New("token response missing id_token")
	}
	return tr.IDToken, nil
}

// idClaims are the ID-token claims this server cares about. Audience, issuer
// and expiry are checked by the jwt parser.
type idClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Nonce         string `json:"nonce"`
}

func (p *Provider) verifyIDToken(ctx context.Context, idToken, nonce string) (string, error) {
	keyfunc := func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		return p.rsaKeyForKid(ctx, kid)
	}

	var claims idClaims
	tok, err := jwt.ParseWithClaims(idToken, &claims, keyfunc,
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithAudience(p.clientID),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return "", fmt.Errorf("invalid id_token: %w", err)
	}

	if iss := claims.Issuer; iss != "https://accounts.google.com" && iss != "accounts.google.com" {
		return "", fmt.Errorf("unexpected issuer %q", iss)
	}
	if nonce != "" && claims.Nonce != nonce {
		return "", errors.New("nonce mismatch")
	}
	if claims.Email == "" || !claims.EmailVerified {
		return "", ErrUnverifiedEmail
	}
	return claims.Email, nil
}

func (p *Provider) rsaKeyForKid(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	keys, err := p.jwks(ctx)
	if err != nil {
		return nil, err
	}
	for _, k := range keys.Keys {
		if k.Kid != kid || !strings.EqualFold(k.Kty, "RSA") {
			continue
		}
		nb, err := base64.RawURLEncoding.DecodeString(k.N)
		if err != nil {
			return nil, err
		}
		eb, err := base64.RawURLEncoding.DecodeString(k.E)
		if err != nil {
			return nil, err
		}
		e := 0
		for _, b := range eb {
			e = e<<8 | int(b)
		}
		if e == 0 {
			e = 65537
		}
		return &rsa.PublicKey{N: new(big.Int).SetBytes(nb), E: e}, nil
	}
	return nil, fmt.Errorf("no RSA key with kid %q", kid)
}
