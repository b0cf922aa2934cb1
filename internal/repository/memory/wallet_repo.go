package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"fairtix/internal/domain"
)

type walletRepository struct {
	mu      sync.RWMutex
	byOwner map[string]*domain.Wallet
}

// NewWalletRepository returns an in-memory WalletRepository keyed by participant id.
func NewWalletRepository() domain.WalletRepository {
	return &walletRepository{
		byOwner: make(map[string]*domain.Wallet),
	}
}

func (r *walletRepository) Create(ctx context.Context, w *domain.Wallet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w.OwnerID == "" {
		return fmt.Errorf("create wallet: %w", domain.ErrInvalidInput)
	}
	if w.Balance.IsNegative() {
		return fmt.Errorf("create wallet %s: negative opening balance: %w", w.OwnerID, domain.ErrInvalidInput)
	}
	if _, ok := r.byOwner[w.OwnerID]; ok {
		return fmt.Errorf("create wallet %s: duplicate owner", w.OwnerID)
	}
	cp := *w
	r.byOwner[w.OwnerID] = &cp
	return nil
}

func (r *walletRepository) GetByOwnerID(ctx context.Context, ownerID string) (*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	w, ok := r.byOwner[ownerID]
	if !ok {
		return nil, domain.ErrWalletNotFound
	}
	cp := *w
	return &cp, nil
}

// List returns every wallet ordered by owner id.
func (r *walletRepository) List(ctx context.Context) ([]*domain.Wallet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	wallets := make([]*domain.Wallet, 0, len(r.byOwner))
	for _, w := range r.byOwner {
		cp := *w
		wallets = append(wallets, &cp)
	}
	sort.Slice(wallets, func(i, j int) bool { return wallets[i].OwnerID < wallets[j].OwnerID })
	return wallets, nil
}

// Transfer debits fromID and credits toID by amount under one lock.
// Both wallets are validated before either balance changes.
func (r *walletRepository) Transfer(ctx context.Context, fromID, toID string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("transfer: %w", domain.ErrInvalidPrice)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	from, ok := r.byOwner[fromID]
	if !ok {
		return fmt.Errorf("transfer from %s: %w", fromID, domain.ErrWalletNotFound)
	}
	to, ok := r.byOwner[toID]
	if !ok {
		return fmt.Errorf("transfer to %s: %w", toID, domain.ErrWalletNotFound)
	}
	if from.Balance.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}
	from.Balance = from.Balance.Sub(amount)
	to.Balance = to.Balance.Add(amount)
	return nil
}
