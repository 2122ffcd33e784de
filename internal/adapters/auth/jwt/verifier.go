package jwt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"genefit/internal/ports/auth"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrSecretRequired = errors.New("jwt secret required")
	ErrInvalidToken   = errors.New("invalid token")
)

// TokenClaims is the HS256 payload; the subject is the user id.
type TokenClaims struct {
	gojwt.RegisteredClaims
	Email    string `json:"email,omitempty"`
	TenantID string `json:"tenant_id,omitempty"`
}

type Config struct {
	Secret string
	// Issuer, when set, must match the iss claim.
	Issuer string
}

// Verifier implements auth.AuthVerifier for locally signed tokens.
type Verifier struct {
	secret []byte
	parser *gojwt.Parser
}

func NewVerifier(cfg Config) (*Verifier, error) {
	secret := strings.TrimSpace(cfg.Secret)
	if secret == "" {
		return nil, ErrSecretRequired
	}

	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithExpirationRequired(),
	}
	if iss := strings.TrimSpace(cfg.Issuer); iss != "" {
		opts = append(opts, gojwt.WithIssuer(iss))
	}

	return &Verifier{
		secret: []byte(secret),
		parser: gojwt.NewParser(opts...),
	}, nil
}

func (v *Verifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrInvalidToken
	}

	var claims TokenClaims
	parsed, err := v.parser.ParseWithClaims(token, &claims, func(*gojwt.Token) (any, error) {
		return v.secret, nil
	})
	if err != nil {
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return auth.Claims{}, ErrInvalidToken
	}

	userID := strings.TrimSpace(claims.Subject)
	if userID == "" {
		return auth.Claims{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}

	return auth.Claims{
		UserID:   userID,
		Email:    strings.TrimSpace(claims.Email),
		TenantID: strings.TrimSpace(claims.TenantID),
	}, nil
}

// Sign issues an HS256 token for claims. Used by tooling and tests.
func Sign(secret string, claims TokenClaims) (string, error) {
	return gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
