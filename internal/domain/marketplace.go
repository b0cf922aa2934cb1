package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// TxResult describes the outcome of a Buy or ListResale call. It is always
// returned; Success is false when the call was rejected, in which case the
// error carries the reason and Message repeats it for display.
// swagger:model TxResult
type TxResult struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Ticket  *Ticket         `json:"ticket,omitempty"`
	Price   decimal.Decimal `json:"price" swaggertype:"string"`
}

// MarketplaceService is the ticket transaction engine: the only component
// allowed to mutate wallets, tickets and events, and the only writer of the ledger.
type MarketplaceService interface {
	Mint(ctx context.Context, eventName string, totalSupply int, faceValue decimal.Decimal, organizerID string) (*Event, error)
	Buy(ctx context.Context, ticketID, buyerID string) (*TxResult, error)
	ListResale(ctx context.Context, ticketID, sellerID string, askPrice decimal.Decimal) (*TxResult, error)

	ListEvents(ctx context.Context) ([]*Event, error)
	ListTickets(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
	ListLedger(ctx context.Context, params PaginationParams) ([]*LedgerEntry, int, error)
	GetBalance(ctx context.Context, participantID string) (decimal.Decimal, error)
	GetWallet(ctx context.Context, participantID string) (*Wallet, error)
	ListWallets(ctx context.Context) ([]*Wallet, error)
}
