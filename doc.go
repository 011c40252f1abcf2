// Copyright (c) 2025 EVM ADYPU.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the hostel election API server.

The server runs a single ranked-choice election for the ADYPU hostel houses.
Students sign in with their university Google account, rank the candidates of
a house into ordered slots, and submit exactly one ballot. Administrators can
list all ballots and download them as CSV.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	SESSION_SECRET=... GOOGLE_CLIENT_ID=... GOOGLE_CLIENT_SECRET=... go run main.go

Or with flags:

	go run main.go -p 4000 -t sqlite -d "file:election.db"

# Configuration

Required settings:

  - SESSION_SECRET (-session-secret): Secret for session token signing
  - GOOGLE_CLIENT_ID (-google-client-id): Google OAuth client ID
  - GOOGLE_CLIENT_SECRET (-google-client-secret): Google OAuth client secret

Optional settings:

  - PORT (-p): Server port (default: 4000)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - DATABASE_URL (-d): Connection string (default: file:election.db)
  - ALLOWED_DOMAIN (-domain): Voting email domain (default: adypu.edu.in)
  - PUBLIC_URL (-public-url): Frontend base URL for post-auth redirects

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth flow, voting, admin)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, metrics, JSON helpers
  - models: Request/response types
  - auth: Session tokens and access gates
  - google: OpenID Connect identity provider
  - ballot: In-progress draft rankings
  - roster: The fixed house and candidate lists
  - store: Vote persistence
  - export: CSV snapshot of all ballots
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
