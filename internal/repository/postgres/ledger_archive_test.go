package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"fairtix/internal/domain"
)

func TestLedgerArchive_Publish(t *testing.T) {
	ctx := context.Background()
	ts := time.Date(2025, 6, 20, 19, 0, 0, 0, time.UTC)
	price := decimal.RequireFromString("22.01")

	tests := []struct {
		name    string
		entry   domain.LedgerEntry
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "reverted listing with amount",
			entry: domain.LedgerEntry{
				ID: "0b6f1f9e-6a4c-4d8e-9a51-3c1a6f0f2f11", Seq: 2, Timestamp: ts,
				Kind: domain.TxResaleAttempt, From: "alice", To: "marketplace",
				Detail: "Attempted $22.01 for ev-1-1 exceeds cap $22.00", Status: domain.StatusReverted,
				TicketID: "ev-1-1", EventID: "ev-1", Amount: &price,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO ledger_archive \(id, seq, ts, kind, from_actor, to_actor, detail, status, ticket_id, event_id, amount\)`).
					WithArgs("0b6f1f9e-6a4c-4d8e-9a51-3c1a6f0f2f11", int64(2), ts, "RESALE_ATTEMPT", "alice", "marketplace",
						"Attempted $22.01 for ev-1-1 exceeds cap $22.00", "REVERTED", "ev-1-1", "ev-1", "22.01").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "entry without ticket or amount",
			entry: domain.LedgerEntry{
				ID: "id-2", Seq: 1, Timestamp: ts, Kind: domain.TxMint, From: "org", To: "ev-1",
				Detail: "Minted 2 tickets for Gala", Status: domain.StatusSuccess,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO ledger_archive`).
					WithArgs("id-2", int64(1), ts, "MINT", "org", "ev-1", "Minted 2 tickets for Gala", "SUCCESS", nil, nil, nil).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:  "db error",
			entry: domain.LedgerEntry{ID: "id-3", Seq: 9, Timestamp: ts, Kind: domain.TxBuy, Status: domain.StatusSuccess},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO ledger_archive`).WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			archive := NewLedgerArchive(db)
			err = archive.Publish(ctx, tt.entry)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLedgerArchive_EnsureSchema(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS ledger_archive`).WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, NewLedgerArchive(db).EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS ledger_archive`).WillReturnError(sql.ErrConnDone)
	require.Error(t, NewLedgerArchive(db).EnsureSchema(context.Background()))
}
