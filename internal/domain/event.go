package domain

import (
	"context"
	"time"
)

// Phase is an event's lifecycle classification. It controls which catalog
// bucket the event lands in and whether registration is offered.
type Phase string

const (
	PhaseUpcoming Phase = "upcoming"
	PhaseCurrent  Phase = "current"
	PhasePast     Phase = "past"
)

// Valid reports whether p is one of the three known phases.
func (p Phase) Valid() bool {
	switch p {
	case PhaseUpcoming, PhaseCurrent, PhasePast:
		return true
	}
	return false
}

// Event represents a listed event
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Speaker     string    `json:"speaker"`
	Position    string    `json:"position"`
	District    string    `json:"district"`
	EventDate   time.Time `json:"event_date"`
	EventTime   string    `json:"event_time"`
	Duration    string    `json:"duration"`
	Theme       string    `json:"theme"`
	BibleTexts  string    `json:"bible_texts"`
	Description string    `json:"description"`
	Phase       Phase     `json:"phase"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventForm carries the writable fields of an Event for create and update.
type EventForm struct {
	Title       string
	Speaker     string
	Position    string
	District    string
	EventDate   time.Time
	EventTime   string
	Duration    string
	Theme       string
	BibleTexts  string
	Description string
	Phase       Phase
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	// List returns all events ordered by event date descending.
	List(ctx context.Context) ([]*Event, error)
	// ListByPhase returns events in the given phase ordered by event date,
	// ascending when dateAsc is true. limit <= 0 means no limit.
	ListByPhase(ctx context.Context, phase Phase, dateAsc bool, limit int) ([]*Event, error)
	Update(ctx context.Context, id string, form *EventForm) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the admin-facing business logic for managing events.
// Deleting an event does not cascade to its registrations.
type EventService interface {
	Create(ctx context.Context, form *EventForm) (*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, id string, form *EventForm) (*Event, error)
	Delete(ctx context.Context, id string) error
}
