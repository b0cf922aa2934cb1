package memory

import (
	"context"
	"fmt"
	"sync"

	"fairtix/internal/domain"
)

type eventRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Event
	order []string
}

// NewEventRepository returns an in-memory EventRepository. Events are listed in creation order.
func NewEventRepository() domain.EventRepository {
	return &eventRepository{
		byID: make(map[string]*domain.Event),
	}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e.ID == "" {
		return fmt.Errorf("create event: %w", domain.ErrInvalidInput)
	}
	if _, ok := r.byID[e.ID]; ok {
		return fmt.Errorf("create event %s: duplicate id", e.ID)
	}
	cp := *e
	r.byID[e.ID] = &cp
	r.order = append(r.order, e.ID)
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *e
	return &cp, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	events := make([]*domain.Event, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.byID[id]
		events = append(events, &cp)
	}
	return events, nil
}
