package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// Role tags a wallet's participant.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Wallet holds a participant's spendable balance. Balance never goes negative.
// swagger:model Wallet
type Wallet struct {
	OwnerID        string          `json:"owner_id"`
	Balance        decimal.Decimal `json:"balance" swaggertype:"string"`
	Role           Role            `json:"role"`
	Email          string          `json:"email,omitempty"`
	PassphraseHash string          `json:"-"`
}

// NewWallet returns a wallet for ownerID with an opening balance.
func NewWallet(ownerID string, role Role, balance decimal.Decimal) *Wallet {
	return &Wallet{
		OwnerID: ownerID,
		Role:    role,
		Balance: balance,
	}
}

// WalletRepository defines the interface for wallet storage.
// Transfer moves amount between two wallets as one step; it fails with
// ErrInsufficientFunds or ErrWalletNotFound without touching either balance.
type WalletRepository interface {
	Create(ctx context.Context, wallet *Wallet) error
	GetByOwnerID(ctx context.Context, ownerID string) (*Wallet, error)
	List(ctx context.Context) ([]*Wallet, error)
	Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) error
}
