package controllers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	h "fairtix/internal/delivery/http/helpers"
	"fairtix/internal/delivery/http/middleware"
	"fairtix/internal/domain"
)

// ListResaleRequest is the request body for POST /tickets/{ticketID}/listing.
type ListResaleRequest struct {
	AskPrice *decimal.Decimal `json:"ask_price" validate:"required" swaggertype:"string" example:"22.00"`
}

// TxResultResponse is the response envelope for buy and listing calls. On a
// rejection both data (with success=false) and error are set.
type TxResultResponse struct {
	Data  *domain.TxResult `json:"data"`
	Error *h.APIError      `json:"error"`
}

type TicketController struct {
	Logger  *slog.Logger
	Service domain.MarketplaceService
}

func NewTicketController(logger *slog.Logger, svc domain.MarketplaceService) *TicketController {
	return &TicketController{
		Logger:  logger,
		Service: svc,
	}
}

// ListTickets godoc
// @Summary List tickets
// @Description Returns tickets in mint order, optionally filtered by owner and for-sale state.
// @Tags tickets
// @Produce json
// @Param owner query string false "Owner participant id"
// @Param for_sale query bool false "Only tickets that are (or are not) for sale"
// @Success 200 {object} helpers.APIResponse "data contains the tickets"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tickets [get]
func (c *TicketController) ListTickets(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.TicketFilter{OwnerID: q.Get("owner")}
	if s := q.Get("for_sale"); s != "" {
		forSale, err := strconv.ParseBool(s)
		if err != nil {
			h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "for_sale must be true or false")
			return
		}
		filter.ForSale = &forSale
	}
	tickets, err := c.Service.ListTickets(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, nil)
		return
	}
	if tickets == nil {
		tickets = []*domain.Ticket{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, tickets)
}

// BuyTicket godoc
// @Summary Buy a ticket
// @Description Buy a listed ticket at its current price. The caller pays the current owner and becomes the new owner.
// @Tags tickets
// @Produce json
// @Security BearerAuth
// @Param ticketID path string true "Ticket ID"
// @Success 200 {object} controllers.TxResultResponse "data.success is true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} controllers.TxResultResponse "error.code: not_found"
// @Failure 409 {object} controllers.TxResultResponse "error.code: conflict (ticket not available)"
// @Failure 422 {object} controllers.TxResultResponse "error.code: unprocessable (insufficient funds)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tickets/{ticketID}/buy [post]
func (c *TicketController) BuyTicket(w http.ResponseWriter, r *http.Request) {
	ticketID := r.PathValue("ticketID")
	if ticketID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing ticketID")
		return
	}
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	result, err := c.Service.Buy(r.Context(), ticketID, principal.ParticipantID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, resultData(result))
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, result)
}

// ListForResale godoc
// @Summary List a ticket for resale
// @Description List an owned ticket at ask_price. Prices above 110% of face value are rejected and recorded as reverted attempts.
// @Tags tickets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ticketID path string true "Ticket ID"
// @Param body body ListResaleRequest true "Asking price"
// @Success 200 {object} controllers.TxResultResponse "data.success is true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} controllers.TxResultResponse "error.code: forbidden (not the owner)"
// @Failure 404 {object} controllers.TxResultResponse "error.code: not_found"
// @Failure 422 {object} controllers.TxResultResponse "error.code: unprocessable (price cap exceeded)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /tickets/{ticketID}/listing [post]
func (c *TicketController) ListForResale(w http.ResponseWriter, r *http.Request) {
	ticketID := r.PathValue("ticketID")
	if ticketID == "" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "missing ticketID")
		return
	}
	var req ListResaleRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	result, err := c.Service.ListResale(r.Context(), ticketID, principal.ParticipantID, *req.AskPrice)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, resultData(result))
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, result)
}

// resultData avoids a typed nil landing in the envelope's any field.
func resultData(res *domain.TxResult) any {
	if res == nil {
		return nil
	}
	return res
}
