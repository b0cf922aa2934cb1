package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// WalletSeed is one participant parsed from WALLET_SEED.
type WalletSeed struct {
	ParticipantID string
	Role          string
	Balance       decimal.Decimal
	Passphrase    string
	Email         string
}

// ParseWalletSeed parses a comma separated list of id:role:balance[:passphrase[:email]].
func ParseWalletSeed(s string) ([]WalletSeed, error) {
	var seeds []WalletSeed
	seen := make(map[string]struct{})
	for _, item := range splitList(s) {
		parts := strings.Split(item, ":")
		if len(parts) < 3 || len(parts) > 5 {
			return nil, fmt.Errorf("wallet %q: want id:role:balance[:passphrase[:email]]", item)
		}
		seed := WalletSeed{
			ParticipantID: strings.TrimSpace(parts[0]),
			Role:          strings.ToLower(strings.TrimSpace(parts[1])),
		}
		if seed.ParticipantID == "" {
			return nil, fmt.Errorf("wallet %q: empty participant id", item)
		}
		if _, ok := seen[seed.ParticipantID]; ok {
			return nil, fmt.Errorf("wallet %q: duplicate participant id", item)
		}
		seen[seed.ParticipantID] = struct{}{}
		if seed.Role != "admin" && seed.Role != "user" {
			return nil, fmt.Errorf("wallet %q: role must be admin or user", item)
		}
		balance, err := decimal.NewFromString(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, fmt.Errorf("wallet %q: balance: %w", item, err)
		}
		if balance.IsNegative() {
			return nil, fmt.Errorf("wallet %q: balance must not be negative", item)
		}
		seed.Balance = balance
		if len(parts) > 3 {
			seed.Passphrase = parts[3]
		}
		if len(parts) > 4 {
			seed.Email = strings.TrimSpace(parts[4])
		}
		seeds = append(seeds, seed)
	}
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no wallets configured")
	}
	return seeds, nil
}
