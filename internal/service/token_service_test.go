package service

import (
	"errors"
	"testing"

	"github.com/petwatch/petwatch/internal/config"
	"github.com/petwatch/petwatch/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokenService(ttlSeconds int) *TokenService {
	return NewTokenService(&config.Config{
		JWTSecret:       "test-secret",
		TokenTTLSeconds: ttlSeconds,
	})
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := testTokenService(3600)

	token, err := svc.Issue("a@example.com", domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, 3600, token.ExpiresIn)
	assert.NotEmpty(t, token.AccessToken)

	claims, err := svc.Verify(token.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenService_VerifyExpired(t *testing.T) {
	// Negative TTL yields a token that is already past its expiry.
	svc := testTokenService(-60)

	token, err := svc.Issue("a@example.com", domain.RoleMember)
	require.NoError(t, err)

	_, err = svc.Verify(token.AccessToken)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestTokenService_VerifyWrongSecret(t *testing.T) {
	issuer := testTokenService(3600)
	verifier := NewTokenService(&config.Config{
		JWTSecret:       "a-different-secret",
		TokenTTLSeconds: 3600,
	})

	token, err := issuer.Issue("a@example.com", domain.RoleMember)
	require.NoError(t, err)

	_, err = verifier.Verify(token.AccessToken)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}

func TestTokenService_VerifyGarbage(t *testing.T) {
	svc := testTokenService(3600)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "definitely-not-a-token"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9.e30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Verify(tt.token)
			assert.ErrorIs(t, err, domain.ErrInvalidToken)
		})
	}
}
