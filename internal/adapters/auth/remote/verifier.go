// Package remote verifies bearer tokens against an external identity service.
package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"genefit/internal/platform/httpclient"
	"genefit/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("remote auth not configured")
	ErrUnauthorized  = errors.New("remote auth unauthorized")
	ErrUpstream      = errors.New("remote auth upstream error")
)

const DefaultVerifyPath = "/v1/tokens/verify"

type Config struct {
	BaseURL string
	APIKey  string

	// Header carrying the API key. Defaults to X-Api-Key.
	APIKeyHeader string
	VerifyPath   string
	Timeout      time.Duration
}

// Verifier implements auth.AuthVerifier.
type Verifier struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
	verifyPath   string
}

func NewVerifier(cfg Config) (*Verifier, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if strings.TrimSpace(cfg.BaseURL) == "" || apiKey == "" {
		return nil, ErrNotConfigured
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.BaseURL), cfg.Timeout)
	if err != nil {
		return nil, err
	}

	header := strings.TrimSpace(cfg.APIKeyHeader)
	if header == "" {
		header = "X-Api-Key"
	}
	path := strings.TrimSpace(cfg.VerifyPath)
	if path == "" {
		path = DefaultVerifyPath
	}

	return &Verifier{
		http:         hc,
		apiKey:       apiKey,
		apiKeyHeader: header,
		verifyPath:   path,
	}, nil
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	TenantID string `json:"tenant_id"`
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out verifyResponse
	err := v.http.DoJSON(ctx, http.MethodPost, v.verifyPath, map[string]string{
		v.apiKeyHeader:  v.apiKey,
		"Authorization": "Bearer " + token,
	}, verifyRequest{Token: token}, &out)
	if err != nil {
		switch httpclient.StatusCode(err) {
		case http.StatusUnauthorized, http.StatusForbidden:
			return auth.Claims{}, ErrUnauthorized
		default:
			return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
		}
	}

	userID := strings.TrimSpace(out.UserID)
	if userID == "" {
		return auth.Claims{}, fmt.Errorf("%w: response missing user_id", ErrUpstream)
	}

	return auth.Claims{
		UserID:   userID,
		Email:    strings.TrimSpace(out.Email),
		TenantID: strings.TrimSpace(out.TenantID),
	}, nil
}
