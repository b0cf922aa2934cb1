package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Event is a minted event. It never changes after creation.
// swagger:model Event
type Event struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	TotalSupply int             `json:"total_supply"`
	FaceValue   decimal.Decimal `json:"face_value" swaggertype:"string"`
	OrganizerID string          `json:"organizer_id"`
	CreatedAt   time.Time       `json:"created_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the marketplace on mint.
func NewEvent(name string, totalSupply int, faceValue decimal.Decimal, organizerID string, createdAt time.Time) *Event {
	return &Event{
		Name:        name,
		TotalSupply: totalSupply,
		FaceValue:   faceValue,
		OrganizerID: organizerID,
		CreatedAt:   createdAt,
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
}
