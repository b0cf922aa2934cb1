package main

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"fairtix/config"
	"fairtix/internal/domain"
)

func TestWalletSeeds(t *testing.T) {
	in := []config.WalletSeed{
		{ParticipantID: "alice", Role: "user", Balance: decimal.NewFromInt(200), Passphrase: "pw", Email: "a@example.com"},
		{ParticipantID: "organizer", Role: "admin", Balance: decimal.Zero},
	}
	out := walletSeeds(in)
	assert.Len(t, out, 2)
	assert.Equal(t, domain.RoleUser, out[0].Role)
	assert.Equal(t, "a@example.com", out[0].Email)
	assert.True(t, out[0].Balance.Equal(decimal.NewFromInt(200)))

	org, ok := firstAdmin(in)
	assert.True(t, ok)
	assert.Equal(t, "organizer", org)

	_, ok = firstAdmin(in[:1])
	assert.False(t, ok)
}
