// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

A .env file in the working directory is loaded first if present.

# Config Fields

  - Port: Server listen port (default: 4000)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - DatabaseURL: Connection string (default: file:election.db)
  - SessionSecret: Secret for session token signing (required)
  - AllowedDomain: Email domain allowed to vote (default: adypu.edu.in)
  - GoogleClientID / GoogleClientSecret: OAuth credentials
  - GoogleRedirectURL: OAuth callback URL
  - PublicURL: Frontend base URL for post-auth redirects

# CLI Flags

	-p               Server port
	-t               Database type
	-d               Database URL
	-domain          Allowed email domain
	-public-url      Frontend base URL
	-session-secret  Session signing secret
	-google-client-id, -google-client-secret, -google-redirect-url

# Environment Variables

Flags fall back to environment variables:

	PORT                 → -p
	DATABASE_TYPE        → -t
	DATABASE_URL         → -d
	ALLOWED_DOMAIN       → -domain
	PUBLIC_URL           → -public-url
	SESSION_SECRET       → -session-secret
	GOOGLE_CLIENT_ID     → -google-client-id
	GOOGLE_CLIENT_SECRET → -google-client-secret
	GOOGLE_REDIRECT_URL  → -google-redirect-url

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if:

  - SESSION_SECRET is missing
  - DATABASE_TYPE is neither sqlite nor postgres
  - DATABASE_TYPE is postgres and no DATABASE_URL is given
  - PORT is not a number

If GOOGLE_REDIRECT_URL is unset it is derived from PUBLIC_URL by appending
/auth/callback.
*/
package cliparse
