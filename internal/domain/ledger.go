package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TxKind is the kind of action a ledger entry records.
type TxKind string

const (
	TxMint          TxKind = "MINT"
	TxBuy           TxKind = "BUY"
	TxListing       TxKind = "LISTING"
	TxResaleAttempt TxKind = "RESALE_ATTEMPT"
)

// TxStatus is the outcome of a recorded action.
type TxStatus string

const (
	StatusSuccess  TxStatus = "SUCCESS"
	StatusReverted TxStatus = "REVERTED"
)

// LedgerEntry is an immutable record of one marketplace action.
// Seq is assigned on append and defines ledger order; Timestamp is informational.
// swagger:model LedgerEntry
type LedgerEntry struct {
	ID        string           `json:"id"`
	Seq       int64            `json:"seq"`
	Timestamp time.Time        `json:"timestamp"`
	Kind      TxKind           `json:"kind"`
	From      string           `json:"from"`
	To        string           `json:"to"`
	Detail    string           `json:"detail"`
	Status    TxStatus         `json:"status"`
	TicketID  string           `json:"ticket_id,omitempty"`
	EventID   string           `json:"event_id,omitempty"`
	Amount    *decimal.Decimal `json:"amount,omitempty" swaggertype:"string"`
}

// LedgerRepository is the append-only transaction log.
// Append never fails and assigns Seq; List returns entries in append order.
type LedgerRepository interface {
	Append(ctx context.Context, entry *LedgerEntry)
	List(ctx context.Context, params PaginationParams) ([]*LedgerEntry, int, error)
	Len(ctx context.Context) int
}

// LedgerSink receives a copy of every appended entry, e.g. for archiving or
// publishing. Sink failures never affect the recorded outcome.
type LedgerSink interface {
	Publish(ctx context.Context, entry LedgerEntry) error
}
