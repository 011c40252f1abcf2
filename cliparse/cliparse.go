package cliparse

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         int
	DatabaseURL  string
	DatabaseType string

	// Session and access control
	SessionSecret string
	AllowedDomain string

	// Google OAuth (identity provider)
	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	// PublicURL is where the frontend lives; post-auth redirects land there.
	PublicURL string
}

// ParseFlags validates flags, falling back to environment variables.
// A .env file in the working directory is loaded first if present.
func ParseFlags(args []string) (Config, error) {
	// Missing .env is fine; real deployments set env directly.
	_ = godotenv.Load()

	var cfg Config

	fs := flag.NewFlagSet("election-server", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.PublicURL, "public-url", "", "Frontend base URL for redirects")
	fs.StringVar(&cfg.AllowedDomain, "domain", "", "Email domain allowed to vote")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session signing secret (prefer env)")
	fs.StringVar(&cfg.GoogleClientID, "google-client-id", "", "Google OAuth client ID (prefer env)")
	fs.StringVar(&cfg.GoogleClientSecret, "google-client-secret", "", "Google OAuth client secret (prefer env)")
	fs.StringVar(&cfg.GoogleRedirectURL, "google-redirect-url", "", "Google OAuth redirect URL")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 4000 // default
		}
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = "sqlite"
		}
	}
	if cfg.DatabaseType != "sqlite" && cfg.DatabaseType != "postgres" {
		return Config{}, errors.New("database type must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseType == "postgres" {
			return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "file:election.db"
	}

	if cfg.PublicURL == "" {
		cfg.PublicURL = os.Getenv("PUBLIC_URL")
	}
	cfg.PublicURL = strings.TrimRight(cfg.PublicURL, "/")

	if cfg.AllowedDomain == "" {
		cfg.AllowedDomain = os.Getenv("ALLOWED_DOMAIN")
		if cfg.AllowedDomain == "" {
			cfg.AllowedDomain = "adypu.edu.in"
		}
	}

	// Secrets - MUST be provided
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if cfg.GoogleClientID == "" {
		cfg.GoogleClientID = os.Getenv("GOOGLE_CLIENT_ID")
	}
	if cfg.GoogleClientSecret == "" {
		cfg.GoogleClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")
	}
	if cfg.GoogleRedirectURL == "" {
		cfg.GoogleRedirectURL = os.Getenv("GOOGLE_REDIRECT_URL")
	}
	if cfg.GoogleRedirectURL == "" && cfg.PublicURL != "" {
		cfg.GoogleRedirectURL = cfg.PublicURL + "/auth/callback"
	}

	return cfg, nil
}
