package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"fairtix/internal/domain"
)

const createLedgerArchiveTable = `
	CREATE TABLE IF NOT EXISTS ledger_archive (
		id         UUID PRIMARY KEY,
		seq        BIGINT NOT NULL,
		ts         TIMESTAMPTZ NOT NULL,
		kind       TEXT NOT NULL,
		from_actor TEXT NOT NULL,
		to_actor   TEXT NOT NULL,
		detail     TEXT NOT NULL,
		status     TEXT NOT NULL,
		ticket_id  TEXT,
		event_id   TEXT,
		amount     NUMERIC(12, 2)
	)
`

// LedgerArchive copies ledger entries into a Postgres audit table. The archive
// is write-only: the marketplace never reads its state back from it.
type LedgerArchive struct {
	DB *sql.DB
}

// NewLedgerArchive returns a LedgerSink backed by db.
func NewLedgerArchive(db *sql.DB) *LedgerArchive {
	return &LedgerArchive{DB: db}
}

// EnsureSchema creates the archive table if it does not exist.
func (a *LedgerArchive) EnsureSchema(ctx context.Context) error {
	if _, err := a.DB.ExecContext(ctx, createLedgerArchiveTable); err != nil {
		return fmt.Errorf("create ledger_archive: %w", err)
	}
	return nil
}

// Publish inserts one entry. Re-publishing the same entry id is a no-op.
func (a *LedgerArchive) Publish(ctx context.Context, e domain.LedgerEntry) error {
	query := `
		INSERT INTO ledger_archive (id, seq, ts, kind, from_actor, to_actor, detail, status, ticket_id, event_id, amount)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO NOTHING
	`
	amount := decimal.NullDecimal{}
	if e.Amount != nil {
		amount = decimal.NullDecimal{Decimal: *e.Amount, Valid: true}
	}
	_, err := a.DB.ExecContext(ctx, query,
		e.ID, e.Seq, e.Timestamp, string(e.Kind), e.From, e.To, e.Detail, string(e.Status),
		nullString(e.TicketID), nullString(e.EventID), amount,
	)
	if err != nil {
		return fmt.Errorf("archive ledger entry %d: %w", e.Seq, err)
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
