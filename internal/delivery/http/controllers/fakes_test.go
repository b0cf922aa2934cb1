package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"fairtix/internal/delivery/http/helpers"
	"fairtix/internal/delivery/http/middleware"
	"fairtix/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeMarketplace implements domain.MarketplaceService for handler tests.
type fakeMarketplace struct {
	mintErr    error
	mintResult *domain.Event
	lastMint   struct {
		name      string
		supply    int
		face      decimal.Decimal
		organizer string
	}

	buyErr     error
	buyResult  *domain.TxResult
	lastBuyer  string
	lastTicket string

	listErr    error
	listResult *domain.TxResult
	lastSeller string
	lastAsk    decimal.Decimal

	events     []*domain.Event
	eventsErr  error
	tickets    []*domain.Ticket
	ticketsErr error
	lastFilter domain.TicketFilter

	ledger      []*domain.LedgerEntry
	ledgerTotal int
	ledgerErr   error
	lastParams  domain.PaginationParams

	wallets    map[string]*domain.Wallet
	walletsErr error
}

func (f *fakeMarketplace) Mint(_ context.Context, name string, supply int, face decimal.Decimal, organizerID string) (*domain.Event, error) {
	f.lastMint.name, f.lastMint.supply, f.lastMint.face, f.lastMint.organizer = name, supply, face, organizerID
	if f.mintErr != nil {
		return nil, f.mintErr
	}
	if f.mintResult != nil {
		return f.mintResult, nil
	}
	event := domain.NewEvent(name, supply, face, organizerID, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	event.ID = "evt-1"
	return event, nil
}

func (f *fakeMarketplace) Buy(_ context.Context, ticketID, buyerID string) (*domain.TxResult, error) {
	f.lastTicket, f.lastBuyer = ticketID, buyerID
	return f.buyResult, f.buyErr
}

func (f *fakeMarketplace) ListResale(_ context.Context, ticketID, sellerID string, ask decimal.Decimal) (*domain.TxResult, error) {
	f.lastTicket, f.lastSeller, f.lastAsk = ticketID, sellerID, ask
	return f.listResult, f.listErr
}

func (f *fakeMarketplace) ListEvents(context.Context) ([]*domain.Event, error) {
	return f.events, f.eventsErr
}

func (f *fakeMarketplace) ListTickets(_ context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	f.lastFilter = filter
	return f.tickets, f.ticketsErr
}

func (f *fakeMarketplace) ListLedger(_ context.Context, params domain.PaginationParams) ([]*domain.LedgerEntry, int, error) {
	f.lastParams = params
	return f.ledger, f.ledgerTotal, f.ledgerErr
}

func (f *fakeMarketplace) GetBalance(ctx context.Context, participantID string) (decimal.Decimal, error) {
	w, err := f.GetWallet(ctx, participantID)
	if err != nil {
		return decimal.Zero, err
	}
	return w.Balance, nil
}

func (f *fakeMarketplace) GetWallet(_ context.Context, participantID string) (*domain.Wallet, error) {
	w, ok := f.wallets[participantID]
	if !ok {
		return nil, domain.ErrWalletNotFound
	}
	return w, nil
}

func (f *fakeMarketplace) ListWallets(context.Context) ([]*domain.Wallet, error) {
	if f.walletsErr != nil {
		return nil, f.walletsErr
	}
	var out []*domain.Wallet
	for _, w := range f.wallets {
		out = append(out, w)
	}
	return out, nil
}

// newRequest builds a request with an optional JSON body and authenticated principal.
func newRequest(t *testing.T, method, target string, body any, principal *domain.Principal) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	req := httptest.NewRequest(method, target, &buf)
	if principal != nil {
		req = req.WithContext(middleware.SetPrincipal(req.Context(), *principal))
	}
	return req
}

// envelope is the API response with data left raw for per-test decoding.
type envelope struct {
	Data  json.RawMessage   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&env))
	return env
}

var (
	alice     = &domain.Principal{ParticipantID: "alice", Role: domain.RoleUser}
	organizer = &domain.Principal{ParticipantID: "organizer", Role: domain.RoleAdmin}
)

var fixedTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
