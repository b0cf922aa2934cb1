package controllers

import (
	"log/slog"
	"net/http"

	h "fairtix/internal/delivery/http/helpers"
	"fairtix/internal/delivery/http/middleware"
	"fairtix/internal/domain"
)

type WalletController struct {
	Logger  *slog.Logger
	Service domain.MarketplaceService
}

func NewWalletController(logger *slog.Logger, svc domain.MarketplaceService) *WalletController {
	return &WalletController{
		Logger:  logger,
		Service: svc,
	}
}

// GetMyWallet godoc
// @Summary Get the caller's wallet
// @Tags wallets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the wallet"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wallets/me [get]
func (c *WalletController) GetMyWallet(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	wallet, err := c.Service.GetWallet(r.Context(), principal.ParticipantID)
	if err != nil {
		writeServiceError(w, r, c.Logger, err, nil)
		return
	}
	h.WriteJSONSuccess(w, http.StatusOK, wallet)
}

// ListWallets godoc
// @Summary List all wallets
// @Description Returns every participant wallet ordered by id. Admin only.
// @Tags wallets
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the wallets"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /wallets [get]
func (c *WalletController) ListWallets(w http.ResponseWriter, r *http.Request) {
	wallets, err := c.Service.ListWallets(r.Context())
	if err != nil {
		writeServiceError(w, r, c.Logger, err, nil)
		return
	}
	if wallets == nil {
		wallets = []*domain.Wallet{}
	}
	h.WriteJSONSuccess(w, http.StatusOK, wallets)
}
