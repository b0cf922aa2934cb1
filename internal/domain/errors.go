package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors returned by the marketplace. Callers match them with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidInput       = errors.New("invalid input")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrTicketNotAvailable = errors.New("ticket not available")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrPriceCapExceeded   = errors.New("price exceeds resale cap")
	ErrNotTicketOwner     = errors.New("seller does not own ticket")
	ErrInvalidPrice       = errors.New("invalid price")
	ErrInvalidSupply      = errors.New("total supply must be positive")
	ErrInvalidEventName   = errors.New("event name is required")
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// CapViolationError is returned when a resale listing asks more than the cap allows.
// It unwraps to ErrPriceCapExceeded.
type CapViolationError struct {
	TicketID  string
	Attempted decimal.Decimal
	Cap       decimal.Decimal
}

func (e *CapViolationError) Error() string {
	return fmt.Sprintf("price $%s exceeds the 110%% resale cap ($%s)", FormatAmount(e.Attempted), FormatAmount(e.Cap))
}

func (e *CapViolationError) Unwrap() error {
	return ErrPriceCapExceeded
}

// IsRejection reports whether err is a business-rule rejection rather than a fault.
func IsRejection(err error) bool {
	for _, target := range []error{
		ErrTicketNotFound,
		ErrTicketNotAvailable,
		ErrInsufficientFunds,
		ErrPriceCapExceeded,
		ErrNotTicketOwner,
		ErrInvalidPrice,
		ErrInvalidSupply,
		ErrInvalidEventName,
		ErrWalletNotFound,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
