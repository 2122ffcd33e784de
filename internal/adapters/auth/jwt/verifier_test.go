package jwt

import (
	"context"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClaims(sub string) TokenClaims {
	return TokenClaims{
		RegisteredClaims: gojwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    "genefit",
			ExpiresAt: gojwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  gojwt.NewNumericDate(time.Now()),
		},
		Email: "kim@example.com",
	}
}

func TestNewVerifier_RequiresSecret(t *testing.T) {
	_, err := NewVerifier(Config{Secret: "  "})
	assert.ErrorIs(t, err, ErrSecretRequired)
}

func TestVerify_ValidToken(t *testing.T) {
	v, err := NewVerifier(Config{Secret: "s3cret", Issuer: "genefit"})
	require.NoError(t, err)

	tok, err := Sign("s3cret", validClaims("user-1"))
	require.NoError(t, err)

	c, err := v.Verify(context.Background(), tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.UserID)
	assert.Equal(t, "kim@example.com", c.Email)
}

func TestVerify_Rejects(t *testing.T) {
	v, err := NewVerifier(Config{Secret: "s3cret", Issuer: "genefit"})
	require.NoError(t, err)

	wrongSecret, _ := Sign("other", validClaims("user-1"))

	expiredClaims := validClaims("user-1")
	expiredClaims.ExpiresAt = gojwt.NewNumericDate(time.Now().Add(-time.Minute))
	expired, _ := Sign("s3cret", expiredClaims)

	otherIssuerClaims := validClaims("user-1")
	otherIssuerClaims.Issuer = "someone-else"
	otherIssuer, _ := Sign("s3cret", otherIssuerClaims)

	noSubject, _ := Sign("s3cret", validClaims(""))

	cases := map[string]string{
		"empty":        "",
		"garbage":      "not-a-jwt",
		"wrong secret": wrongSecret,
		"expired":      expired,
		"issuer":       otherIssuer,
		"no subject":   noSubject,
	}
	for name, tok := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
