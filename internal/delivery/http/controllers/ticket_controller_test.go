package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fairtix/internal/delivery/http/helpers"
	"fairtix/internal/domain"
)

func TestTicketController_ListTickets(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantStatus  int
		wantOwner   string
		wantForSale *bool
	}{
		{name: "no filter", query: "", wantStatus: http.StatusOK},
		{name: "owner and for sale", query: "?owner=alice&for_sale=true", wantStatus: http.StatusOK, wantOwner: "alice", wantForSale: boolPtr(true)},
		{name: "not for sale", query: "?for_sale=false", wantStatus: http.StatusOK, wantForSale: boolPtr(false)},
		{name: "bad bool", query: "?for_sale=maybe", wantStatus: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeMarketplace{}
			c := NewTicketController(testLogger, svc)
			rr := httptest.NewRecorder()
			c.ListTickets(rr, newRequest(t, http.MethodGet, "/tickets"+tt.query, nil, nil))

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}
			assert.JSONEq(t, `[]`, string(decodeEnvelope(t, rr).Data))
			assert.Equal(t, tt.wantOwner, svc.lastFilter.OwnerID)
			assert.Equal(t, tt.wantForSale, svc.lastFilter.ForSale)
		})
	}
}

func TestTicketController_BuyTicket(t *testing.T) {
	ticket := &domain.Ticket{ID: "evt-1-1", EventID: "evt-1", OwnerID: "alice", FaceValue: decimal.NewFromInt(20), ResalePrice: decimal.NewFromInt(20)}
	tests := []struct {
		name       string
		principal  *domain.Principal
		result     *domain.TxResult
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "success",
			principal:  alice,
			result:     &domain.TxResult{Success: true, Message: "Purchased evt-1-1 for $20.00", Ticket: ticket, Price: decimal.NewFromInt(20)},
			wantStatus: http.StatusOK,
		},
		{
			name:       "not available",
			principal:  alice,
			result:     &domain.TxResult{Message: "ticket not available"},
			err:        domain.ErrTicketNotAvailable,
			wantStatus: http.StatusConflict,
			wantCode:   helpers.ErrCodeConflict,
		},
		{
			name:       "insufficient funds",
			principal:  alice,
			result:     &domain.TxResult{Message: "insufficient funds", Price: decimal.NewFromInt(20)},
			err:        domain.ErrInsufficientFunds,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   helpers.ErrCodeUnprocessable,
		},
		{
			name:       "unknown buyer wallet",
			principal:  alice,
			result:     &domain.TxResult{Message: "wallet not found"},
			err:        fmt.Errorf("buyer alice: %w", domain.ErrWalletNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
		},
		{
			name:       "no principal",
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
		},
		{
			name:       "fault",
			principal:  alice,
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   helpers.ErrCodeInternalError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeMarketplace{buyResult: tt.result, buyErr: tt.err}
			c := NewTicketController(testLogger, svc)
			req := newRequest(t, http.MethodPost, "/tickets/evt-1-1/buy", nil, tt.principal)
			req.SetPathValue("ticketID", "evt-1-1")
			rr := httptest.NewRecorder()

			c.BuyTicket(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			env := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
			}
			if tt.principal != nil {
				assert.Equal(t, "evt-1-1", svc.lastTicket)
				assert.Equal(t, tt.principal.ParticipantID, svc.lastBuyer)
			}
			if tt.result == nil {
				assert.Equal(t, "null", string(env.Data))
				return
			}
			var res domain.TxResult
			require.NoError(t, json.Unmarshal(env.Data, &res))
			assert.Equal(t, tt.result.Success, res.Success)
			assert.Equal(t, tt.result.Message, res.Message)
		})
	}
}

func TestTicketController_ListForResale(t *testing.T) {
	capErr := &domain.CapViolationError{TicketID: "evt-1-1", Attempted: decimal.RequireFromString("22.01"), Cap: decimal.RequireFromString("22.00")}
	tests := []struct {
		name       string
		body       string
		principal  *domain.Principal
		result     *domain.TxResult
		err        error
		wantStatus int
		wantCode   string
		wantAsk    string
	}{
		{
			name:       "at the cap",
			body:       `{"ask_price":"22.00"}`,
			principal:  alice,
			result:     &domain.TxResult{Success: true, Message: "Listed for $22.00"},
			wantStatus: http.StatusOK,
			wantAsk:    "22",
		},
		{
			name:       "above the cap",
			body:       `{"ask_price":"22.01"}`,
			principal:  alice,
			result:     &domain.TxResult{Message: capErr.Error()},
			err:        capErr,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   helpers.ErrCodeUnprocessable,
			wantAsk:    "22.01",
		},
		{
			name:       "not the owner",
			body:       `{"ask_price":"10"}`,
			principal:  alice,
			result:     &domain.TxResult{Message: domain.ErrNotTicketOwner.Error()},
			err:        domain.ErrNotTicketOwner,
			wantStatus: http.StatusForbidden,
			wantCode:   helpers.ErrCodeForbidden,
			wantAsk:    "10",
		},
		{
			name:       "unknown ticket",
			body:       `{"ask_price":"10"}`,
			principal:  alice,
			result:     &domain.TxResult{Message: domain.ErrTicketNotFound.Error()},
			err:        domain.ErrTicketNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   helpers.ErrCodeNotFound,
			wantAsk:    "10",
		},
		{
			name:       "missing ask price",
			body:       `{}`,
			principal:  alice,
			wantStatus: http.StatusBadRequest,
			wantCode:   helpers.ErrCodeBadRequest,
		},
		{
			name:       "no principal",
			body:       `{"ask_price":"10"}`,
			wantStatus: http.StatusUnauthorized,
			wantCode:   helpers.ErrCodeUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeMarketplace{listResult: tt.result, listErr: tt.err}
			c := NewTicketController(testLogger, svc)
			req := newRequest(t, http.MethodPost, "/tickets/evt-1-1/listing", tt.body, tt.principal)
			req.SetPathValue("ticketID", "evt-1-1")
			rr := httptest.NewRecorder()

			c.ListForResale(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			env := decodeEnvelope(t, rr)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
			}
			if tt.wantAsk != "" {
				assert.Equal(t, tt.wantAsk, svc.lastAsk.String())
				assert.Equal(t, "alice", svc.lastSeller)
			}
		})
	}
}

func TestTicketController_CapMessage(t *testing.T) {
	capErr := &domain.CapViolationError{TicketID: "evt-1-1", Attempted: decimal.RequireFromString("22.01"), Cap: decimal.RequireFromString("22")}
	svc := &fakeMarketplace{listResult: &domain.TxResult{Message: capErr.Error()}, listErr: capErr}
	c := NewTicketController(testLogger, svc)
	req := newRequest(t, http.MethodPost, "/tickets/evt-1-1/listing", `{"ask_price":"22.01"}`, alice)
	req.SetPathValue("ticketID", "evt-1-1")
	rr := httptest.NewRecorder()

	c.ListForResale(rr, req)

	env := decodeEnvelope(t, rr)
	require.NotNil(t, env.Error)
	assert.Contains(t, env.Error.Message, "$22.01")
	assert.Contains(t, env.Error.Message, "$22.00")
}

func boolPtr(b bool) *bool { return &b }
