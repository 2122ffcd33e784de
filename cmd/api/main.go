package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	jwtauth "genefit/internal/adapters/auth/jwt"
	"genefit/internal/adapters/auth/remote"
	pg "genefit/internal/adapters/storage/postgres"
	"genefit/internal/config"
	"genefit/internal/middleware"
	"genefit/internal/platform/logger"
	"genefit/internal/ports/auth"
	"genefit/internal/router"

	"github.com/redis/go-redis/v9"
)

// @title genefit API
// @version 1.0
// @description Genetic test kits, supplement subscriptions and weight tracking.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "genefit: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	boot, err := logger.NewFromEnv()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	cfg, err := config.Load(boot)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var db *sql.DB
	if cfg.DBDSN != "" {
		db, err = pg.Open(cfg.DBDSN)
		if err != nil {
			return fmt.Errorf("open postgres: %w", err)
		}
		defer db.Close()

		if err := pg.Migrate(ctx, db); err != nil {
			return err
		}
	}

	verifier, err := newVerifier(cfg.Auth)
	if err != nil {
		return fmt.Errorf("auth: %w", err)
	}

	limiter, closeLimiter, err := newRateLimiter(ctx, cfg.RateLimit, log)
	if err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}
	defer closeLimiter()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			AuthVerifier: verifier,
			DB:           db,
			Logger:       log,
			RateLimiter:  limiter,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{
			"addr":       srv.Addr,
			"auth_mode":  string(cfg.Auth.Mode),
			"postgres":   db != nil,
			"rate_limit": limiter != nil,
		})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newVerifier returns nil in dev mode, which makes AuthContext trust X-Debug-User-ID.
func newVerifier(cfg config.AuthConfig) (auth.AuthVerifier, error) {
	switch cfg.Mode {
	case config.AuthJWT:
		return jwtauth.NewVerifier(jwtauth.Config{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer})
	case config.AuthRemote:
		return remote.NewVerifier(remote.Config{BaseURL: cfg.BaseURL, APIKey: cfg.APIKey})
	default:
		return nil, nil
	}
}

func newRateLimiter(ctx context.Context, cfg config.RateLimitConfig, log logger.Logger) (*middleware.RateLimiter, func(), error) {
	if cfg.RedisURL == "" {
		return nil, func() {}, nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}

	limiter := middleware.NewRateLimiter(middleware.NewRedisCounter(client), middleware.RateLimitConfig{
		Limit:  cfg.Limit,
		Window: cfg.Window,
	}, log.With(map[string]any{"component": "ratelimit"}))

	return limiter, func() { _ = client.Close() }, nil
}
