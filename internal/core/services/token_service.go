package services

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

const settingsLookupTimeout = 2 * time.Second

// TokenService issues HS256 device tokens for the single local owner.
type TokenService struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
	settings domain.SettingsRepository
	parser   *jwt.Parser
}

func NewTokenService(secretKey string, issuer string, tokenDuration time.Duration, settings domain.SettingsRepository) *TokenService {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithSubject(domain.OwnerSubject),
		jwt.WithExpirationRequired(),
	)
	return &TokenService{
		secret:   []byte(secretKey),
		issuer:   issuer,
		lifetime: tokenDuration,
		settings: settings,
		parser:   parser,
	}
}

func (s *TokenService) GenerateToken(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		Issuer:    s.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("token service: failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken returns the token subject. Tokens stop validating as soon as
// the app PIN is removed, whatever their expiry.
func (s *TokenService) ValidateToken(tokenString string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := s.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), settingsLookupTimeout)
	defer cancel()

	hash, err := s.settings.PINHash(ctx)
	if err != nil {
		return "", fmt.Errorf("settings unavailable: %w", err)
	}
	if hash == "" {
		return "", fmt.Errorf("%w: app pin removed", domain.ErrUnauthorized)
	}
	return claims.Subject, nil
}
