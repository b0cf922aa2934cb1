package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"fairtix/config"
	"fairtix/docs"
	"fairtix/internal/adapters/auth"
	"fairtix/internal/adapters/email"
	"fairtix/internal/adapters/feed"
	"fairtix/internal/clock"
	deliveryhttp "fairtix/internal/delivery/http"
	"fairtix/internal/delivery/http/controllers"
	"fairtix/internal/domain"
	"fairtix/internal/repository/memory"
	"fairtix/internal/repository/postgres"
	"fairtix/internal/services"
)

// @title FairTix API
// @version 1.0
// @description Ticket marketplace with capped resale and a public transaction ledger.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.

const (
	startupTimeout  = 10 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	startupCtx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	// Engine state lives in memory and is rebuilt from configuration on every start.
	walletRepo := memory.NewWalletRepository()
	hasher := auth.NewBcryptHasher(bcrypt.DefaultCost)
	if err := services.SeedWallets(startupCtx, walletRepo, hasher, walletSeeds(cfg.Wallets)); err != nil {
		return err
	}

	sinks, closeSinks, err := ledgerSinks(startupCtx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeSinks()

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:             cfg.Email.AWSRegion,
			AccessKeyID:        cfg.Email.AWSAccessKeyID,
			SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return fmt.Errorf("email templates: %w", err)
	}
	notifier := services.NewNotificationService(mailer, renderer, logger)

	market := services.NewMarketplaceService(
		memory.NewEventRepository(),
		memory.NewTicketRepository(),
		walletRepo,
		memory.NewLedgerRepository(),
		notifier,
		sinks,
		cfg.SinkTimeout,
		clock.NewSystem(),
		logger,
	)

	if cfg.SeedDemoEvent {
		if organizer, ok := firstAdmin(cfg.Wallets); ok {
			if _, err := services.SeedDemo(startupCtx, market, services.DefaultDemoEvent(organizer), logger); err != nil {
				return err
			}
		} else {
			logger.Warn("demo event skipped: no admin wallet configured")
		}
	}

	authSvc := services.NewAuthService(walletRepo, hasher, auth.NewJWTIssuer(cfg.JWTSecret), cfg.JWTExpiry)

	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	handler := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:         logger,
		Verifier:       auth.NewJWTVerifier(cfg.JWTSecret),
		AllowedOrigins: cfg.AllowedOrigins,
		Auth:           controllers.NewAuthController(logger, authSvc),
		Events:         controllers.NewEventController(logger, market),
		Tickets:        controllers.NewTicketController(logger, market),
		Ledger:         controllers.NewLedgerController(logger, market),
		Wallets:        controllers.NewWalletController(logger, market),
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		logger.Info("api listening", "addr", server.Addr, "env", cfg.Environment)
		srvErr <- server.ListenAndServe()
	}()

	stopCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
	case <-stopCtx.Done():
		logger.Info("shutdown signal received, stopping server")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// ledgerSinks connects the optional ledger archive and feed. The returned func
// closes whatever was opened.
func ledgerSinks(ctx context.Context, cfg *config.Config, logger *slog.Logger) ([]domain.LedgerSink, func(), error) {
	var sinks []domain.LedgerSink
	var closers []func() error
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				logger.Warn("close ledger sink", "err", err)
			}
		}
	}

	if cfg.LedgerArchiveURL != "" {
		db, err := postgres.Open(ctx, cfg.LedgerArchiveURL)
		if err != nil {
			return nil, closeAll, fmt.Errorf("ledger archive: %w", err)
		}
		closers = append(closers, db.Close)
		archive := postgres.NewLedgerArchive(db)
		if err := archive.EnsureSchema(ctx); err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("ledger archive: %w", err)
		}
		sinks = append(sinks, archive)
		logger.Info("ledger archive enabled")
	}

	if cfg.Redis.Addr != "" {
		rdb, err := feed.NewRedisClient(ctx, feed.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			closeAll()
			return nil, func() {}, fmt.Errorf("ledger feed: %w", err)
		}
		closers = append(closers, rdb.Close)
		sinks = append(sinks, feed.NewRedisPublisher(rdb, cfg.Redis.Key, cfg.Redis.MaxLen))
		logger.Info("ledger feed enabled", "addr", cfg.Redis.Addr)
	}

	return sinks, closeAll, nil
}

func walletSeeds(in []config.WalletSeed) []services.WalletSeed {
	out := make([]services.WalletSeed, 0, len(in))
	for _, w := range in {
		out = append(out, services.WalletSeed{
			ParticipantID: w.ParticipantID,
			Role:          domain.Role(w.Role),
			Balance:       w.Balance,
			Passphrase:    w.Passphrase,
			Email:         w.Email,
		})
	}
	return out
}

func firstAdmin(wallets []config.WalletSeed) (string, bool) {
	for _, w := range wallets {
		if domain.Role(w.Role) == domain.RoleAdmin {
			return w.ParticipantID, true
		}
	}
	return "", false
}
