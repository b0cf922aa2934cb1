package memory

import (
	"context"
	"testing"

	"fairtix/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedWallets(t *testing.T, balances map[string]string) domain.WalletRepository {
	t.Helper()
	repo := NewWalletRepository()
	for id, bal := range balances {
		require.NoError(t, repo.Create(context.Background(), domain.NewWallet(id, domain.RoleUser, decimal.RequireFromString(bal))))
	}
	return repo
}

func TestWalletRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewWalletRepository()

	require.NoError(t, repo.Create(ctx, domain.NewWallet("alice", domain.RoleUser, decimal.NewFromInt(200))))
	assert.Error(t, repo.Create(ctx, domain.NewWallet("alice", domain.RoleUser, decimal.NewFromInt(1))), "duplicate owner")
	assert.ErrorIs(t, repo.Create(ctx, domain.NewWallet("", domain.RoleUser, decimal.Zero)), domain.ErrInvalidInput)
	assert.ErrorIs(t, repo.Create(ctx, domain.NewWallet("bob", domain.RoleUser, decimal.NewFromInt(-1))), domain.ErrInvalidInput)

	w, err := repo.GetByOwnerID(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(w.Balance))

	_, err = repo.GetByOwnerID(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrWalletNotFound)
}

func TestWalletRepository_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := seedWallets(t, map[string]string{"alice": "200"})

	w, err := repo.GetByOwnerID(ctx, "alice")
	require.NoError(t, err)
	w.Balance = decimal.NewFromInt(1_000_000)

	again, err := repo.GetByOwnerID(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(again.Balance))
}

func TestWalletRepository_Transfer(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		from, to  string
		amount    string
		wantErr   error
		wantAlice string
		wantBob   string
	}{
		{name: "success", from: "alice", to: "bob", amount: "20", wantAlice: "180", wantBob: "20"},
		{name: "exact balance", from: "alice", to: "bob", amount: "200", wantAlice: "0", wantBob: "200"},
		{name: "insufficient funds", from: "alice", to: "bob", amount: "200.01", wantErr: domain.ErrInsufficientFunds, wantAlice: "200", wantBob: "0"},
		{name: "unknown sender", from: "carol", to: "bob", amount: "1", wantErr: domain.ErrWalletNotFound, wantAlice: "200", wantBob: "0"},
		{name: "unknown receiver", from: "alice", to: "carol", amount: "1", wantErr: domain.ErrWalletNotFound, wantAlice: "200", wantBob: "0"},
		{name: "negative amount", from: "alice", to: "bob", amount: "-1", wantErr: domain.ErrInvalidPrice, wantAlice: "200", wantBob: "0"},
		{name: "self transfer", from: "alice", to: "alice", amount: "50", wantAlice: "200", wantBob: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := seedWallets(t, map[string]string{"alice": "200", "bob": "0"})
			err := repo.Transfer(ctx, tt.from, tt.to, decimal.RequireFromString(tt.amount))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			alice, err := repo.GetByOwnerID(ctx, "alice")
			require.NoError(t, err)
			bob, err := repo.GetByOwnerID(ctx, "bob")
			require.NoError(t, err)
			assert.Equal(t, tt.wantAlice, alice.Balance.String())
			assert.Equal(t, tt.wantBob, bob.Balance.String())
		})
	}
}

func TestWalletRepository_List(t *testing.T) {
	repo := seedWallets(t, map[string]string{"carol": "1", "alice": "2", "bob": "3"})
	wallets, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, wallets, 3)
	assert.Equal(t, "alice", wallets[0].OwnerID)
	assert.Equal(t, "bob", wallets[1].OwnerID)
	assert.Equal(t, "carol", wallets[2].OwnerID)
}
