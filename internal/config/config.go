package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"genefit/internal/platform/logger"

	"github.com/joho/godotenv"
)

type AuthMode string

const (
	AuthDev    AuthMode = "dev"    // X-Debug-User-ID is trusted
	AuthJWT    AuthMode = "jwt"    // HS256 tokens signed with JWT_SECRET
	AuthRemote AuthMode = "remote" // tokens checked by AUTH_BASE_URL
)

type Config struct {
	Port  string
	DBDSN string // empty: in-memory store

	Log logger.Options

	Auth      AuthConfig
	RateLimit RateLimitConfig
}

type AuthConfig struct {
	Mode      AuthMode
	JWTSecret string
	JWTIssuer string
	BaseURL   string
	APIKey    string
}

type RateLimitConfig struct {
	RedisURL string // empty: no rate limiting
	Limit    int
	Window   time.Duration
}

// Load reads the optional env files (default .env) and then the process environment.
// Variables already set in the environment win over file values.
func Load(log logger.Logger, files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && log != nil {
		log.Debug("no .env file loaded, using process env", map[string]any{"err": err})
	}

	cfg := Config{
		Port:  envOr("PORT", "8080"),
		DBDSN: strings.TrimSpace(os.Getenv("DB_DSN")),
		Log: logger.Options{
			Level:  logger.ParseLevel(os.Getenv("LOG_LEVEL")),
			Format: logger.ParseFormat(os.Getenv("LOG_FORMAT")),
			App:    envOr("APP_NAME", "genefit"),
		},
		Auth: AuthConfig{
			Mode:      AuthMode(strings.ToLower(envOr("AUTH_MODE", string(AuthDev)))),
			JWTSecret: strings.TrimSpace(os.Getenv("JWT_SECRET")),
			JWTIssuer: strings.TrimSpace(os.Getenv("JWT_ISSUER")),
			BaseURL:   strings.TrimSpace(os.Getenv("AUTH_BASE_URL")),
			APIKey:    strings.TrimSpace(os.Getenv("AUTH_API_KEY")),
		},
		RateLimit: RateLimitConfig{
			RedisURL: strings.TrimSpace(os.Getenv("REDIS_URL")),
			Limit:    120,
			Window:   time.Minute,
		},
	}

	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT must be a positive integer, got %q", v)
		}
		cfg.RateLimit.Limit = n
	}
	if v := strings.TrimSpace(os.Getenv("RATE_LIMIT_WINDOW")); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("RATE_LIMIT_WINDOW must be a positive duration, got %q", v)
		}
		cfg.RateLimit.Window = d
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}

	switch c.Auth.Mode {
	case AuthDev:
	case AuthJWT:
		if c.Auth.JWTSecret == "" {
			return errors.New("AUTH_MODE=jwt requires JWT_SECRET")
		}
	case AuthRemote:
		if c.Auth.BaseURL == "" || c.Auth.APIKey == "" {
			return errors.New("AUTH_MODE=remote requires AUTH_BASE_URL and AUTH_API_KEY")
		}
	default:
		return fmt.Errorf("unknown AUTH_MODE %q", c.Auth.Mode)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
