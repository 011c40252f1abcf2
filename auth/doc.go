// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides session tokens and request access gates.

# Sessions

A session is an HMAC-SHA256 signed JWT carrying the verified email address:

	token, err := auth.MintSession(email, secret, auth.DefaultSessionTTL)
	email, err := auth.ParseSession(token, secret)

The token travels in the election_session cookie, or in an Authorization
bearer header for non-browser clients. Sessions expire after 24 hours;
expired or tampered tokens fail ParseSession with ErrInvalidSession.

# Access Gates

Two middleware gates wrap protected handlers:

	mux.HandleFunc("GET /api/me", auth.RequireSession(cfg, handler))
	mux.HandleFunc("POST /api/houses/{house}/vote", auth.RequireMember(cfg, handler))

RequireSession admits any valid session and rejects everything else with 401.
RequireMember additionally requires the email to belong to the allowed domain,
rejecting outsiders with 403. The verified email is placed in the request
context and read back with auth.Identity(r).

# Domain Check

IsAuthorized performs the exact-suffix domain check:

	auth.IsAuthorized("s@adypu.edu.in", "adypu.edu.in")      // true
	auth.IsAuthorized("s@adypu.edu.in.evil.com", "adypu.edu.in") // false

# OAuth State

GenerateState produces the random value used to bind an OAuth round trip
to the browser that started it:

	state, err := auth.GenerateState()

24 random bytes, URL-safe base64 encoded without padding.
*/
package auth
