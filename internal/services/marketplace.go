package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"fairtix/internal/clock"
	"fairtix/internal/domain"
)

// marketContext is the destination recorded for listing actions.
const marketContext = "marketplace"

type marketplaceService struct {
	// mu serializes every validate-mutate-record sequence.
	mu sync.Mutex

	eventRepo  domain.EventRepository
	ticketRepo domain.TicketRepository
	walletRepo domain.WalletRepository
	ledgerRepo domain.LedgerRepository

	notifier    domain.NotificationService
	sinks       []domain.LedgerSink
	sinkTimeout time.Duration

	clock  clock.Clock
	logger *slog.Logger
	newID  func() string
}

// NewMarketplaceService returns the ticket transaction engine over the given registries.
// notifier may be nil. Each appended ledger entry is handed to every sink after
// the operation completes; sink errors are logged and otherwise ignored.
func NewMarketplaceService(
	eventRepo domain.EventRepository,
	ticketRepo domain.TicketRepository,
	walletRepo domain.WalletRepository,
	ledgerRepo domain.LedgerRepository,
	notifier domain.NotificationService,
	sinks []domain.LedgerSink,
	sinkTimeout time.Duration,
	clk clock.Clock,
	logger *slog.Logger,
) domain.MarketplaceService {
	return &marketplaceService{
		eventRepo:   eventRepo,
		ticketRepo:  ticketRepo,
		walletRepo:  walletRepo,
		ledgerRepo:  ledgerRepo,
		notifier:    notifier,
		sinks:       sinks,
		sinkTimeout: sinkTimeout,
		clock:       clk,
		logger:      logger,
		newID:       uuid.NewString,
	}
}

func (s *marketplaceService) Mint(ctx context.Context, eventName string, totalSupply int, faceValue decimal.Decimal, organizerID string) (*domain.Event, error) {
	eventName = strings.TrimSpace(eventName)
	if eventName == "" {
		return nil, domain.ErrInvalidEventName
	}
	if totalSupply <= 0 {
		return nil, domain.ErrInvalidSupply
	}
	if !faceValue.IsPositive() {
		return nil, fmt.Errorf("face value must be positive: %w", domain.ErrInvalidPrice)
	}

	s.mu.Lock()
	if _, err := s.walletRepo.GetByOwnerID(ctx, organizerID); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("organizer %s: %w", organizerID, err)
	}

	event := domain.NewEvent(eventName, totalSupply, faceValue, organizerID, s.clock.Now())
	event.ID = s.newID()
	tickets := make([]*domain.Ticket, 0, totalSupply)
	for seq := 1; seq <= totalSupply; seq++ {
		tickets = append(tickets, domain.NewTicket(event, seq))
	}
	if err := s.ticketRepo.CreateBatch(ctx, tickets); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("create tickets: %w", err)
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("create event: %w", err)
	}
	entry := s.record(ctx, &domain.LedgerEntry{
		Kind:    domain.TxMint,
		From:    organizerID,
		To:      event.ID,
		Detail:  fmt.Sprintf("Minted %d tickets for %s", totalSupply, eventName),
		Status:  domain.StatusSuccess,
		EventID: event.ID,
		Amount:  &faceValue,
	})
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "event minted", "event_id", event.ID, "name", eventName, "supply", totalSupply, "organizer", organizerID)
	s.publish(ctx, entry)
	return event, nil
}

func (s *marketplaceService) Buy(ctx context.Context, ticketID, buyerID string) (*domain.TxResult, error) {
	s.mu.Lock()
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		s.mu.Unlock()
		if errors.Is(err, domain.ErrTicketNotFound) {
			return s.rejectPurchase(ctx, ticketID, buyerID, nil, domain.ErrTicketNotAvailable)
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}
	if !ticket.ForSale {
		s.mu.Unlock()
		return s.rejectPurchase(ctx, ticketID, buyerID, nil, domain.ErrTicketNotAvailable)
	}
	buyer, err := s.walletRepo.GetByOwnerID(ctx, buyerID)
	if err != nil {
		s.mu.Unlock()
		return s.rejectPurchase(ctx, ticketID, buyerID, nil, fmt.Errorf("buyer %s: %w", buyerID, err))
	}
	price := ticket.ResalePrice
	if buyer.Balance.LessThan(price) {
		s.mu.Unlock()
		return s.rejectPurchase(ctx, ticketID, buyerID, &price, domain.ErrInsufficientFunds)
	}

	seller := ticket.OwnerID
	if err := s.walletRepo.Transfer(ctx, buyerID, seller, price); err != nil {
		s.mu.Unlock()
		if domain.IsRejection(err) {
			return s.rejectPurchase(ctx, ticketID, buyerID, &price, err)
		}
		return nil, fmt.Errorf("settle purchase: %w", err)
	}
	ticket.OwnerID = buyerID
	ticket.ForSale = false
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		if rbErr := s.walletRepo.Transfer(ctx, seller, buyerID, price); rbErr != nil {
			s.logger.ErrorContext(ctx, "settlement rollback failed", "ticket_id", ticketID, "err", rbErr)
		}
		s.mu.Unlock()
		return nil, fmt.Errorf("transfer ownership: %w", err)
	}
	entry := s.record(ctx, &domain.LedgerEntry{
		Kind:     domain.TxBuy,
		From:     buyerID,
		To:       seller,
		Detail:   fmt.Sprintf("%s bought %s from %s for $%s", buyerID, ticketID, seller, domain.FormatAmount(price)),
		Status:   domain.StatusSuccess,
		TicketID: ticketID,
		EventID:  ticket.EventID,
		Amount:   &price,
	})
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "ticket purchased", "ticket_id", ticketID, "buyer", buyerID, "seller", seller, "price", domain.FormatAmount(price))
	s.publish(ctx, entry)
	s.notifyPurchase(ctx, ticket, buyerID, seller, price)

	return &domain.TxResult{
		Success: true,
		Message: fmt.Sprintf("Purchased %s for $%s", ticketID, domain.FormatAmount(price)),
		Ticket:  ticket,
		Price:   price,
	}, nil
}

// rejectPurchase reports a failed purchase. Rejected purchases are logged but
// not written to the ledger; only rejected listings are.
func (s *marketplaceService) rejectPurchase(ctx context.Context, ticketID, buyerID string, price *decimal.Decimal, reason error) (*domain.TxResult, error) {
	s.logger.WarnContext(ctx, "purchase rejected", "ticket_id", ticketID, "buyer", buyerID, "reason", reason.Error())
	res := &domain.TxResult{Success: false, Message: reason.Error()}
	if price != nil {
		res.Price = *price
	}
	return res, reason
}

func (s *marketplaceService) ListResale(ctx context.Context, ticketID, sellerID string, askPrice decimal.Decimal) (*domain.TxResult, error) {
	s.mu.Lock()
	ticket, err := s.ticketRepo.GetByID(ctx, ticketID)
	if err != nil {
		s.mu.Unlock()
		if errors.Is(err, domain.ErrTicketNotFound) {
			s.logger.WarnContext(ctx, "listing rejected", "ticket_id", ticketID, "seller", sellerID, "reason", err.Error())
			return &domain.TxResult{Success: false, Message: err.Error(), Price: askPrice}, err
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	var reason error
	var detail string
	switch {
	case ticket.OwnerID != sellerID:
		reason = domain.ErrNotTicketOwner
		detail = fmt.Sprintf("%s tried to list %s owned by %s", sellerID, ticketID, ticket.OwnerID)
	case askPrice.IsNegative():
		reason = fmt.Errorf("ask price $%s is negative: %w", domain.FormatAmount(askPrice), domain.ErrInvalidPrice)
		detail = fmt.Sprintf("Attempted negative price $%s for %s", domain.FormatAmount(askPrice), ticketID)
	case askPrice.GreaterThan(ticket.Cap()):
		capErr := &domain.CapViolationError{TicketID: ticketID, Attempted: askPrice, Cap: ticket.Cap()}
		reason = capErr
		detail = fmt.Sprintf("Attempted $%s for %s exceeds cap $%s", domain.FormatAmount(askPrice), ticketID, domain.FormatAmount(capErr.Cap))
	}
	if reason != nil {
		entry := s.record(ctx, &domain.LedgerEntry{
			Kind:     domain.TxResaleAttempt,
			From:     sellerID,
			To:       marketContext,
			Detail:   detail,
			Status:   domain.StatusReverted,
			TicketID: ticketID,
			EventID:  ticket.EventID,
			Amount:   &askPrice,
		})
		s.mu.Unlock()
		s.logger.WarnContext(ctx, "listing rejected", "ticket_id", ticketID, "seller", sellerID, "reason", reason.Error())
		s.publish(ctx, entry)
		return &domain.TxResult{Success: false, Message: reason.Error(), Price: askPrice}, reason
	}

	ticket.ForSale = true
	ticket.ResalePrice = askPrice
	if err := s.ticketRepo.Update(ctx, ticket); err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("update listing: %w", err)
	}
	entry := s.record(ctx, &domain.LedgerEntry{
		Kind:     domain.TxListing,
		From:     sellerID,
		To:       marketContext,
		Detail:   fmt.Sprintf("Listed %s for $%s", ticketID, domain.FormatAmount(askPrice)),
		Status:   domain.StatusSuccess,
		TicketID: ticketID,
		EventID:  ticket.EventID,
		Amount:   &askPrice,
	})
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "ticket listed", "ticket_id", ticketID, "seller", sellerID, "price", domain.FormatAmount(askPrice))
	s.publish(ctx, entry)
	return &domain.TxResult{
		Success: true,
		Message: fmt.Sprintf("Listed for $%s", domain.FormatAmount(askPrice)),
		Ticket:  ticket,
		Price:   askPrice,
	}, nil
}

func (s *marketplaceService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return s.eventRepo.List(ctx)
}

func (s *marketplaceService) ListTickets(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	return s.ticketRepo.List(ctx, filter)
}

func (s *marketplaceService) ListLedger(ctx context.Context, params domain.PaginationParams) ([]*domain.LedgerEntry, int, error) {
	return s.ledgerRepo.List(ctx, params)
}

func (s *marketplaceService) GetBalance(ctx context.Context, participantID string) (decimal.Decimal, error) {
	w, err := s.walletRepo.GetByOwnerID(ctx, participantID)
	if err != nil {
		return decimal.Zero, err
	}
	return w.Balance, nil
}

func (s *marketplaceService) GetWallet(ctx context.Context, participantID string) (*domain.Wallet, error) {
	return s.walletRepo.GetByOwnerID(ctx, participantID)
}

func (s *marketplaceService) ListWallets(ctx context.Context) ([]*domain.Wallet, error) {
	return s.walletRepo.List(ctx)
}

// record stamps and appends entry. Callers must hold s.mu.
func (s *marketplaceService) record(ctx context.Context, entry *domain.LedgerEntry) domain.LedgerEntry {
	entry.ID = s.newID()
	entry.Timestamp = s.clock.Now()
	s.ledgerRepo.Append(ctx, entry)
	return *entry
}

func (s *marketplaceService) publish(ctx context.Context, entry domain.LedgerEntry) {
	if len(s.sinks) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.sinkTimeout)
	defer cancel()
	for _, sink := range s.sinks {
		if err := sink.Publish(ctx, entry); err != nil {
			s.logger.ErrorContext(ctx, "ledger sink failed", "seq", entry.Seq, "kind", entry.Kind, "err", err)
		}
	}
}

func (s *marketplaceService) notifyPurchase(ctx context.Context, ticket *domain.Ticket, buyerID, sellerID string, price decimal.Decimal) {
	if s.notifier == nil {
		return
	}
	buyer, err := s.walletRepo.GetByOwnerID(ctx, buyerID)
	if err == nil && buyer.Email != "" {
		err = s.notifier.SendPurchaseReceipt(ctx, &domain.PurchaseReceiptEmailData{
			Email:        buyer.Email,
			Participant:  buyerID,
			Counterparty: sellerID,
			TicketID:     ticket.ID,
			EventName:    ticket.EventName,
			Price:        domain.FormatAmount(price),
		})
	}
	if err != nil {
		s.logger.WarnContext(ctx, "purchase receipt not sent", "ticket_id", ticket.ID, "buyer", buyerID, "err", err)
	}
	seller, err := s.walletRepo.GetByOwnerID(ctx, sellerID)
	if err == nil && seller.Email != "" {
		err = s.notifier.SendSaleNotice(ctx, &domain.PurchaseReceiptEmailData{
			Email:        seller.Email,
			Participant:  sellerID,
			Counterparty: buyerID,
			TicketID:     ticket.ID,
			EventName:    ticket.EventName,
			Price:        domain.FormatAmount(price),
		})
	}
	if err != nil {
		s.logger.WarnContext(ctx, "sale notice not sent", "ticket_id", ticket.ID, "seller", sellerID, "err", err)
	}
}
