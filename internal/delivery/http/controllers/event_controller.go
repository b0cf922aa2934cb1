package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/shopspring/decimal"

	h "fairtix/internal/delivery/http/helpers"
	"fairtix/internal/delivery/http/middleware"
	"fairtix/internal/domain"
)

// MintEventRequest is the request body for POST /events.
type MintEventRequest struct {
	Name        string          `json:"name" validate:"required"`
	TotalSupply int             `json:"total_supply" validate:"gt=0"`
	FaceValue   decimal.Decimal `json:"face_value" swaggertype:"string" example:"20.00"`
}

// Validate implements Validator.
func (m MintEventRequest) Validate() []string {
	var errs []string
	if m.Name != "" && strings.TrimSpace(m.Name) == "" {
		errs = append(errs, "name must not be blank")
	}
	if !m.FaceValue.IsPositive() {
		errs = append(errs, "face_value must be greater than 0")
	}
	return errs
}

// MintEventSuccessResponse is the success response envelope for POST /events (201).
type MintEventSuccessResponse struct {
	Data  *domain.Event `json:"data"`
	Error *h.APIError   `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.MarketplaceService
}

func NewEventController(logger *slog.Logger, svc domain.MarketplaceService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// MintEvent godoc
// @Summary Mint an event
// @Description Create an event and mint total_supply tickets owned by the caller, all listed at face value. Admin only.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body MintEventRequest true "Event to mint"
// @Success 201 {object} controllers.MintEventSuccessResponse "data contains the minted event"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 422 {object} helpers.APIResponse "error.code: unprocessable"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [post]
func (c *EventController) MintEvent(w http.ResponseWriter, r *http.Request) {
	var req MintEventRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	event, err := c.Service.Mint(r.Context(), req.Name, req.TotalSupply, req.FaceValue, principal.ParticipantID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, nil)
		return
	}
	h.WriteJSONSuccess(w, http.StatusCreated, event)
}

// ListEvents godoc
// @Summary List events
// @Description Returns every minted event in mint order.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the events"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, nil)
		return
	}
	if events == nil {
		events = []*domain.Event{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, events)
}
