package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"teenevents/internal/domain"
)

type eventService struct {
	eventRepo      domain.EventRepository
	contextTimeout time.Duration
}

// NewEventService returns the admin-facing event management service.
func NewEventService(eventRepo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		contextTimeout: timeout,
	}
}

func validateEventForm(form *domain.EventForm) error {
	if strings.TrimSpace(form.Title) == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if form.EventDate.IsZero() {
		return fmt.Errorf("%w: event_date is required", domain.ErrInvalidInput)
	}
	if form.Phase == "" {
		form.Phase = domain.PhaseUpcoming
	}
	if !form.Phase.Valid() {
		return fmt.Errorf("%w: phase must be upcoming, current, or past", domain.ErrInvalidInput)
	}
	return nil
}

func (s *eventService) Create(ctx context.Context, form *domain.EventForm) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEventForm(form); err != nil {
		return nil, err
	}

	now := time.Now()
	event := &domain.Event{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(form.Title),
		Speaker:     form.Speaker,
		Position:    form.Position,
		District:    form.District,
		EventDate:   form.EventDate,
		EventTime:   form.EventTime,
		Duration:    form.Duration,
		Theme:       form.Theme,
		BibleTexts:  form.BibleTexts,
		Description: form.Description,
		Phase:       form.Phase,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) Update(ctx context.Context, id string, form *domain.EventForm) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateEventForm(form); err != nil {
		return nil, err
	}
	event, err := s.eventRepo.Update(ctx, id, form)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

// Delete removes the event only. Registrations referencing it are kept;
// whether they should cascade is an open product question.
func (s *eventService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
