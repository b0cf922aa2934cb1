package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"fairtix/internal/delivery/http/controllers"
	h "fairtix/internal/delivery/http/helpers"
	"fairtix/internal/delivery/http/middleware"
	"fairtix/internal/domain"
)

// RouterConfig carries the controllers and auth dependencies the router wires together.
type RouterConfig struct {
	Logger         *slog.Logger
	Verifier       domain.TokenVerifier
	AllowedOrigins []string

	Auth    *controllers.AuthController
	Events  *controllers.EventController
	Tickets *controllers.TicketController
	Ledger  *controllers.LedgerController
	Wallets *controllers.WalletController
}

// NewRouter initializes the HTTP router with all application routes and wraps it
// in the CORS, logging and recovery middleware.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(cfg.Verifier, cfg.Logger)
	admin := func(next http.HandlerFunc) http.HandlerFunc {
		return auth(middleware.RequireRole(domain.RoleAdmin)(next))
	}

	mux.HandleFunc("GET /health", Health)

	// Auth
	mux.HandleFunc("POST /auth/login", cfg.Auth.Login)

	// Events
	mux.HandleFunc("GET /events", cfg.Events.ListEvents)
	mux.HandleFunc("POST /events", admin(cfg.Events.MintEvent))

	// Tickets
	mux.HandleFunc("GET /tickets", cfg.Tickets.ListTickets)
	mux.HandleFunc("POST /tickets/{ticketID}/buy", auth(cfg.Tickets.BuyTicket))
	mux.HandleFunc("POST /tickets/{ticketID}/listing", auth(cfg.Tickets.ListForResale))

	// Ledger
	mux.HandleFunc("GET /ledger", cfg.Ledger.ListLedger)

	// Wallets
	mux.HandleFunc("GET /wallets/me", auth(cfg.Wallets.GetMyWallet))
	mux.HandleFunc("GET /wallets", admin(cfg.Wallets.ListWallets))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var handler http.Handler = mux
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	handler = middleware.LoggingMiddleware(cfg.Logger, handler)
	handler = middleware.Recover(cfg.Logger, handler)
	return handler
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} helpers.APIResponse "data.status is ok"
// @Router /health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	h.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
