package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
)

type AuthService struct {
	repo   domain.SettingsRepository
	tokens *TokenService
}

func NewAuthService(repo domain.SettingsRepository, tokens *TokenService) *AuthService {
	return &AuthService{
		repo:   repo,
		tokens: tokens,
	}
}

type SetPINInput struct {
	// Current must match the stored PIN when one is already set.
	Current string
	PIN     string
}

func (s *AuthService) HasPIN(ctx context.Context) (bool, error) {
	hash, err := s.repo.PINHash(ctx)
	if err != nil {
		return false, err
	}
	return hash != "", nil
}

func (s *AuthService) SetPIN(ctx context.Context, input SetPINInput) error {
	if err := domain.ValidatePIN(input.PIN); err != nil {
		return err
	}

	hash, err := s.repo.PINHash(ctx)
	if err != nil {
		return err
	}
	if hash != "" {
		if err := comparePIN(hash, input.Current); err != nil {
			return err
		}
	}

	newHash, err := bcrypt.GenerateFromPassword([]byte(input.PIN), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("auth service: failed to hash pin: %w", err)
	}
	return s.repo.SetPINHash(ctx, string(newHash))
}

// RemovePIN unlocks the app. Tokens issued earlier stop validating.
func (s *AuthService) RemovePIN(ctx context.Context, current string) error {
	hash, err := s.repo.PINHash(ctx)
	if err != nil {
		return err
	}
	if hash == "" {
		return domain.ErrPINNotSet
	}
	if err := comparePIN(hash, current); err != nil {
		return err
	}
	return s.repo.SetPINHash(ctx, "")
}

// Login exchanges the PIN for a device token.
func (s *AuthService) Login(ctx context.Context, pin string) (string, error) {
	hash, err := s.repo.PINHash(ctx)
	if err != nil {
		return "", err
	}
	if hash == "" {
		return "", domain.ErrPINNotSet
	}
	if err := comparePIN(hash, pin); err != nil {
		return "", err
	}
	return s.tokens.GenerateToken(domain.OwnerSubject)
}

func comparePIN(hash, pin string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return domain.ErrInvalidCredentials
	}
	if err != nil {
		return fmt.Errorf("auth service: failed to compare pin: %w", err)
	}
	return nil
}
