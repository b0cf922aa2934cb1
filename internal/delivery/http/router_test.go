package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fairtix/internal/adapters/auth"
	"fairtix/internal/clock"
	"fairtix/internal/delivery/http/controllers"
	"fairtix/internal/delivery/http/helpers"
	"fairtix/internal/domain"
	"fairtix/internal/repository/memory"
	"fairtix/internal/services"
)

type testServer struct {
	*httptest.Server
	market domain.MarketplaceService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	wallets := memory.NewWalletRepository()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, services.SeedWallets(ctx, wallets, hasher, []services.WalletSeed{
		{ParticipantID: "organizer", Role: domain.RoleAdmin, Balance: decimal.Zero, Passphrase: "org-pass"},
		{ParticipantID: "alice", Role: domain.RoleUser, Balance: decimal.NewFromInt(200), Passphrase: "alice-pass"},
		{ParticipantID: "bob", Role: domain.RoleUser, Balance: decimal.NewFromInt(150), Passphrase: "bob-pass"},
	}))
	market := services.NewMarketplaceService(memory.NewEventRepository(), memory.NewTicketRepository(), wallets,
		memory.NewLedgerRepository(), nil, nil, time.Second, clock.NewSystem(), logger)
	authSvc := services.NewAuthService(wallets, hasher, auth.NewJWTIssuer("test-secret"), time.Hour)

	handler := NewRouter(RouterConfig{
		Logger:   logger,
		Verifier: auth.NewJWTVerifier("test-secret"),
		Auth:     controllers.NewAuthController(logger, authSvc),
		Events:   controllers.NewEventController(logger, market),
		Tickets:  controllers.NewTicketController(logger, market),
		Ledger:   controllers.NewLedgerController(logger, market),
		Wallets:  controllers.NewWalletController(logger, market),
	})
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, market: market}
}

type apiResult struct {
	Status int
	Data   json.RawMessage
	Error  *helpers.APIError
}

func (s *testServer) do(t *testing.T, method, path, token, body string) apiResult {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, s.URL+path, r)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return apiResult{Status: resp.StatusCode, Data: env.Data, Error: env.Error}
}

func (s *testServer) login(t *testing.T, id, passphrase string) string {
	t.Helper()
	res := s.do(t, http.MethodPost, "/auth/login", "", `{"participant_id":"`+id+`","passphrase":"`+passphrase+`"}`)
	require.Equal(t, http.StatusOK, res.Status)
	var login controllers.LoginResponse
	require.NoError(t, json.Unmarshal(res.Data, &login))
	return login.Token
}

func TestRouter_MarketplaceFlow(t *testing.T) {
	srv := newTestServer(t)
	orgToken := srv.login(t, "organizer", "org-pass")
	aliceToken := srv.login(t, "alice", "alice-pass")
	bobToken := srv.login(t, "bob", "bob-pass")

	// Only admins mint.
	res := srv.do(t, http.MethodPost, "/events", aliceToken, `{"name":"Graduation Gala 2025","total_supply":1,"face_value":"20"}`)
	require.Equal(t, http.StatusForbidden, res.Status)

	res = srv.do(t, http.MethodPost, "/events", orgToken, `{"name":"Graduation Gala 2025","total_supply":1,"face_value":"20"}`)
	require.Equal(t, http.StatusCreated, res.Status)
	var event domain.Event
	require.NoError(t, json.Unmarshal(res.Data, &event))
	ticketID := domain.TicketID(event.ID, 1)

	res = srv.do(t, http.MethodPost, "/tickets/"+ticketID+"/buy", aliceToken, "")
	require.Equal(t, http.StatusOK, res.Status)

	// Sold tickets are no longer available.
	res = srv.do(t, http.MethodPost, "/tickets/"+ticketID+"/buy", bobToken, "")
	require.Equal(t, http.StatusConflict, res.Status)
	require.NotNil(t, res.Error)
	assert.Equal(t, "ticket not available", res.Error.Message)

	res = srv.do(t, http.MethodPost, "/tickets/"+ticketID+"/listing", aliceToken, `{"ask_price":"22.01"}`)
	require.Equal(t, http.StatusUnprocessableEntity, res.Status)

	res = srv.do(t, http.MethodPost, "/tickets/"+ticketID+"/listing", bobToken, `{"ask_price":"21"}`)
	require.Equal(t, http.StatusForbidden, res.Status)

	res = srv.do(t, http.MethodPost, "/tickets/"+ticketID+"/listing", aliceToken, `{"ask_price":"22.00"}`)
	require.Equal(t, http.StatusOK, res.Status)

	res = srv.do(t, http.MethodPost, "/tickets/"+ticketID+"/buy", bobToken, "")
	require.Equal(t, http.StatusOK, res.Status)

	res = srv.do(t, http.MethodGet, "/wallets/me", aliceToken, "")
	require.Equal(t, http.StatusOK, res.Status)
	var wallet domain.Wallet
	require.NoError(t, json.Unmarshal(res.Data, &wallet))
	assert.Equal(t, "202", wallet.Balance.String())

	res = srv.do(t, http.MethodGet, "/tickets?owner=bob", "", "")
	require.Equal(t, http.StatusOK, res.Status)
	var tickets []domain.Ticket
	require.NoError(t, json.Unmarshal(res.Data, &tickets))
	require.Len(t, tickets, 1)
	assert.False(t, tickets[0].ForSale)

	res = srv.do(t, http.MethodGet, "/ledger?page_size=100", "", "")
	require.Equal(t, http.StatusOK, res.Status)
	var page controllers.LedgerPage
	require.NoError(t, json.Unmarshal(res.Data, &page))
	kinds := make([]string, 0, len(page.Items))
	for _, e := range page.Items {
		kinds = append(kinds, string(e.Kind)+"/"+string(e.Status))
	}
	assert.Equal(t, []string{
		"MINT/SUCCESS",
		"BUY/SUCCESS",
		"RESALE_ATTEMPT/REVERTED",
		"RESALE_ATTEMPT/REVERTED",
		"LISTING/SUCCESS",
		"BUY/SUCCESS",
	}, kinds)
}

func TestRouter_AuthGuards(t *testing.T) {
	srv := newTestServer(t)
	aliceToken := srv.login(t, "alice", "alice-pass")

	tests := []struct {
		name       string
		method     string
		path       string
		token      string
		wantStatus int
	}{
		{"health is public", http.MethodGet, "/health", "", http.StatusOK},
		{"events are public", http.MethodGet, "/events", "", http.StatusOK},
		{"buy needs a token", http.MethodPost, "/tickets/x-1/buy", "", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/wallets/me", "garbage", http.StatusUnauthorized},
		{"wallet list is admin only", http.MethodGet, "/wallets", aliceToken, http.StatusForbidden},
		{"unknown ticket", http.MethodPost, "/tickets/x-1/buy", aliceToken, http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := srv.do(t, tt.method, tt.path, tt.token, "")
			assert.Equal(t, tt.wantStatus, res.Status)
		})
	}

	res := srv.do(t, http.MethodPost, "/auth/login", "", `{"participant_id":"alice","passphrase":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, res.Status)
}
