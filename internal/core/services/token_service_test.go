package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/services"
)

func TestTokenService(t *testing.T) {
	repo := newRepo()
	require.NoError(t, repo.SetPINHash(context.Background(), "$2a$10$placeholder"))

	secret := "super-secret"
	issuer := "kanso-test"
	svc := services.NewTokenService(secret, issuer, time.Hour, repo)

	t.Run("Success: Generate and validate", func(t *testing.T) {
		token, err := svc.GenerateToken(domain.OwnerSubject)
		require.NoError(t, err)
		assert.NotEmpty(t, token)

		sub, err := svc.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, domain.OwnerSubject, sub)
	})

	t.Run("Error: Expired token", func(t *testing.T) {
		expired := services.NewTokenService(secret, issuer, -time.Minute, repo)
		token, err := expired.GenerateToken(domain.OwnerSubject)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("Error: Wrong secret", func(t *testing.T) {
		other := services.NewTokenService("other-secret", issuer, time.Hour, repo)
		token, _ := other.GenerateToken(domain.OwnerSubject)

		_, err := svc.ValidateToken(token)
		assert.Error(t, err)
	})

	t.Run("Error: Wrong issuer", func(t *testing.T) {
		other := services.NewTokenService(secret, "someone-else", time.Hour, repo)
		token, _ := other.GenerateToken(domain.OwnerSubject)

		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})

	t.Run("Error: Foreign subject", func(t *testing.T) {
		token, _ := svc.GenerateToken("intruder")

		_, err := svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidSubject)
	})

	t.Run("Error: None signing method", func(t *testing.T) {
		claims := jwt.MapClaims{"sub": domain.OwnerSubject, "iss": issuer, "exp": time.Now().Add(time.Hour).Unix()}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})

	t.Run("Error: Missing expiry", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: domain.OwnerSubject, Issuer: issuer}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
		require.NoError(t, err)

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrTokenRequiredClaimMissing)
	})

	t.Run("Error: Pin removed", func(t *testing.T) {
		token, err := svc.GenerateToken(domain.OwnerSubject)
		require.NoError(t, err)
		require.NoError(t, repo.SetPINHash(context.Background(), ""))
		t.Cleanup(func() { _ = repo.SetPINHash(context.Background(), "$2a$10$placeholder") })

		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Error: Malformed token", func(t *testing.T) {
		_, err := svc.ValidateToken("not.a.token")
		assert.Error(t, err)
	})
}
