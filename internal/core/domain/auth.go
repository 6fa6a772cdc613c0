package domain

import "errors"

var (
	ErrInvalidPIN         = errors.New("pin must be 4 to 12 digits")
	ErrPINNotSet          = errors.New("app pin has not been set")
	ErrInvalidCredentials = errors.New("invalid pin")
	ErrUnauthorized       = errors.New("unauthorized access")
)

const (
	MinPINLen = 4
	MaxPINLen = 12

	// OwnerSubject is the token subject of the single device owner.
	OwnerSubject = "owner"
)

func ValidatePIN(pin string) error {
	if len(pin) < MinPINLen || len(pin) > MaxPINLen {
		return ErrInvalidPIN
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return ErrInvalidPIN
		}
	}
	return nil
}
