package domain

import (
	"context"
	"time"
)

// Registration represents a visitor's registration for an event.
// Registrations are created and deleted, never updated in place.
// swagger:model Registration
type Registration struct {
	ID            string    `json:"id"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address,omitempty"`
	PhoneNumber   string    `json:"phone_number"`
	ClassVocation string    `json:"class_vocation"`
	Church        string    `json:"church"`
	EventID       string    `json:"event_id"`
	CreatedAt     time.Time `json:"created_at"`
}

// RegistrationWithEvent bundles a registration with its event's title and
// date for the admin listing. The join is read-only.
// swagger:model RegistrationWithEvent
type RegistrationWithEvent struct {
	Registration
	EventTitle string    `json:"event_title"`
	EventDate  time.Time `json:"event_date"`
}

// RegistrationForm carries the visitor-supplied registration fields.
// FullName, PhoneNumber, ClassVocation and Church are required;
// Email and Address are optional.
type RegistrationForm struct {
	FullName      string
	Email         string
	Address       string
	PhoneNumber   string
	ClassVocation string
	Church        string
}

// RegistrationRepository defines the interface for registration storage
type RegistrationRepository interface {
	Create(ctx context.Context, reg *Registration) error
	// ListWithEvents returns a page of registrations ordered by creation time
	// descending, each joined with its event's title and date, plus the total
	// number of registrations.
	ListWithEvents(ctx context.Context, params PaginationParams) ([]*RegistrationWithEvent, int, error)
	Delete(ctx context.Context, id string) error
}

// RegistrationService defines the registration workflow.
type RegistrationService interface {
	// Register creates a registration for the event with the given ID. The
	// event must exist; the stored registration always references eventID
	// regardless of anything else in the form.
	Register(ctx context.Context, eventID string, form *RegistrationForm) (*Registration, error)
	ListWithEvents(ctx context.Context, params PaginationParams) ([]*RegistrationWithEvent, int, error)
	Delete(ctx context.Context, id string) error
}
