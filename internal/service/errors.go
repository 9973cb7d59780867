package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gashorafarm/farmconnect/internal/cart"
	"github.com/gashorafarm/farmconnect/internal/lifecycle"
	"github.com/gashorafarm/farmconnect/internal/pricing"
	"github.com/gashorafarm/farmconnect/internal/repo"
)

var (
	ErrInvalidInput      = pricing.ErrInvalidInput
	ErrInvalidQuantity   = cart.ErrInvalidQuantity
	ErrIllegalTransition = lifecycle.ErrIllegalTransition

	ErrEmptyCart          = errors.New("empty cart")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateAccount   = errors.New("account already registered")
	ErrInvalidSession     = errors.New("invalid session")
	ErrRemoteUnavailable  = errors.New("remote unavailable")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrForbidden          = errors.New("forbidden")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// storeErr classifies an error coming back from the store or a cart session.
func storeErr(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, repo.ErrDuplicateEmail):
		return fmt.Errorf("%s: %w", op, ErrDuplicateAccount)
	case errors.Is(err, repo.ErrStaleVersion), errors.Is(err, repo.ErrNoFarmerProfile):
		return fmt.Errorf("%s: %w: %v", op, ErrConflict, err)
	case errors.Is(err, cart.ErrInvalidQuantity), errors.Is(err, cart.ErrInvalidItem):
		return fmt.Errorf("%s: %w", op, err)
	default:
		return fmt.Errorf("%s: %w: %v", op, ErrRemoteUnavailable, err)
	}
}
