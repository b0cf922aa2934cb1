package controllers

import (
	"log/slog"
	"net/http"

	h "fairtix/internal/delivery/http/helpers"
	"fairtix/internal/domain"
)

// LedgerPage is one page of ledger entries in append order.
type LedgerPage struct {
	Items      []*domain.LedgerEntry `json:"items"`
	Pagination h.PaginationMeta      `json:"pagination"`
}

type LedgerController struct {
	Logger  *slog.Logger
	Service domain.MarketplaceService
}

func NewLedgerController(logger *slog.Logger, svc domain.MarketplaceService) *LedgerController {
	return &LedgerController{
		Logger:  logger,
		Service: svc,
	}
}

// ListLedger godoc
// @Summary Read the ledger
// @Description Returns ledger entries in append order, oldest first, including reverted resale attempts.
// @Tags ledger
// @Produce json
// @Param page query int false "Page number (1-based)" default(1)
// @Param page_size query int false "Page size (max 100)" default(20)
// @Success 200 {object} helpers.APIResponse "data contains items and pagination"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /ledger [get]
func (c *LedgerController) ListLedger(w http.ResponseWriter, r *http.Request) {
	params := h.ParsePagination(r)
	entries, total, err := c.Service.ListLedger(r.Context(), params)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, nil)
		return
	}
	if entries == nil {
		entries = []*domain.LedgerEntry{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, LedgerPage{
		Items:      entries,
		Pagination: h.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}
