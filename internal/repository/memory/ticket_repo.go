package memory

import (
	"context"
	"fmt"
	"sync"

	"fairtix/internal/domain"
)

type ticketRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Ticket
	order []string
}

// NewTicketRepository returns an in-memory TicketRepository keyed by ticket id.
// Stored tickets are copied in and out so callers never share registry state.
func NewTicketRepository() domain.TicketRepository {
	return &ticketRepository{
		byID: make(map[string]*domain.Ticket),
	}
}

func (r *ticketRepository) CreateBatch(ctx context.Context, tickets []*domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]struct{}, len(tickets))
	for _, t := range tickets {
		if _, ok := r.byID[t.ID]; ok {
			return fmt.Errorf("create ticket %s: duplicate id", t.ID)
		}
		if _, ok := seen[t.ID]; ok {
			return fmt.Errorf("create ticket %s: duplicate id in batch", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	for _, t := range tickets {
		cp := *t
		r.byID[t.ID] = &cp
		r.order = append(r.order, t.ID)
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrTicketNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *ticketRepository) List(ctx context.Context, filter domain.TicketFilter) ([]*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tickets := make([]*domain.Ticket, 0)
	for _, id := range r.order {
		t := r.byID[id]
		if !filter.Matches(t) {
			continue
		}
		cp := *t
		tickets = append(tickets, &cp)
	}
	return tickets, nil
}

// Update replaces the mutable fields of an existing ticket. Identity and face value are kept.
func (r *ticketRepository) Update(ctx context.Context, t *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.byID[t.ID]
	if !ok {
		return domain.ErrTicketNotFound
	}
	cur.OwnerID = t.OwnerID
	cur.ForSale = t.ForSale
	cur.ResalePrice = t.ResalePrice
	return nil
}
