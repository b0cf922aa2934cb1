package domain

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
)

// Ticket is a single seat of a minted event.
// ResalePrice is only honored while ForSale is true.
// swagger:model Ticket
type Ticket struct {
	ID          string          `json:"id"`
	EventID     string          `json:"event_id"`
	EventName   string          `json:"event_name"`
	OwnerID     string          `json:"owner_id"`
	FaceValue   decimal.Decimal `json:"face_value" swaggertype:"string"`
	ForSale     bool            `json:"for_sale"`
	ResalePrice decimal.Decimal `json:"resale_price" swaggertype:"string"`
}

// TicketID builds the identifier of the seq-th (1-based) ticket of an event.
func TicketID(eventID string, seq int) string {
	return fmt.Sprintf("%s-%d", eventID, seq)
}

// NewTicket returns the seq-th ticket of event, owned by the organizer and listed at face value.
func NewTicket(event *Event, seq int) *Ticket {
	return &Ticket{
		ID:          TicketID(event.ID, seq),
		EventID:     event.ID,
		EventName:   event.Name,
		OwnerID:     event.OrganizerID,
		FaceValue:   event.FaceValue,
		ForSale:     true,
		ResalePrice: event.FaceValue,
	}
}

// Cap returns the maximum resale price of the ticket.
func (t *Ticket) Cap() decimal.Decimal {
	return ResaleCap(t.FaceValue)
}

// TicketFilter narrows ticket listings. Zero value matches every ticket.
type TicketFilter struct {
	OwnerID string
	ForSale *bool
}

// Matches reports whether t passes the filter.
func (f TicketFilter) Matches(t *Ticket) bool {
	if f.OwnerID != "" && t.OwnerID != f.OwnerID {
		return false
	}
	if f.ForSale != nil && t.ForSale != *f.ForSale {
		return false
	}
	return true
}

// TicketRepository defines the interface for ticket storage
type TicketRepository interface {
	CreateBatch(ctx context.Context, tickets []*Ticket) error
	GetByID(ctx context.Context, id string) (*Ticket, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, error)
	Update(ctx context.Context, ticket *Ticket) error
}
