package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"fairtix/internal/domain"
)

// WalletSeed describes one participant of the fixed wallet set.
type WalletSeed struct {
	ParticipantID string
	Role          domain.Role
	Balance       decimal.Decimal
	Passphrase    string
	Email         string
}

// DemoEvent is the event minted at start-up when demo seeding is enabled.
type DemoEvent struct {
	Name        string
	TotalSupply int
	FaceValue   decimal.Decimal
	OrganizerID string
}

// DefaultDemoEvent mirrors the sample gala shipped with the marketplace.
func DefaultDemoEvent(organizerID string) DemoEvent {
	return DemoEvent{
		Name:        "Graduation Gala 2025",
		TotalSupply: 1,
		FaceValue:   decimal.NewFromInt(20),
		OrganizerID: organizerID,
	}
}

// SeedWallets provisions the fixed participant set. Passphrases are stored hashed.
func SeedWallets(ctx context.Context, walletRepo domain.WalletRepository, hasher domain.PasswordHasher, seeds []WalletSeed) error {
	for _, seed := range seeds {
		if !seed.Role.Valid() {
			return fmt.Errorf("seed wallet %s: unknown role %q: %w", seed.ParticipantID, seed.Role, domain.ErrInvalidInput)
		}
		w := domain.NewWallet(seed.ParticipantID, seed.Role, seed.Balance)
		w.Email = seed.Email
		if seed.Passphrase != "" {
			hash, err := hasher.Hash(seed.Passphrase)
			if err != nil {
				return fmt.Errorf("seed wallet %s: %w", seed.ParticipantID, err)
			}
			w.PassphraseHash = hash
		}
		if err := walletRepo.Create(ctx, w); err != nil {
			return fmt.Errorf("seed wallet %s: %w", seed.ParticipantID, err)
		}
	}
	return nil
}

// SeedDemo mints the demo event through the marketplace so it is recorded in the ledger.
func SeedDemo(ctx context.Context, market domain.MarketplaceService, demo DemoEvent, logger *slog.Logger) (*domain.Event, error) {
	event, err := market.Mint(ctx, demo.Name, demo.TotalSupply, demo.FaceValue, demo.OrganizerID)
	if err != nil {
		return nil, fmt.Errorf("seed demo event: %w", err)
	}
	logger.InfoContext(ctx, "demo event seeded", "event_id", event.ID, "name", event.Name)
	return event, nil
}
