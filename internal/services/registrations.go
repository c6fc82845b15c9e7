package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"teenevents/internal/domain"
)

type registrationService struct {
	registrationRepo domain.RegistrationRepository
	eventRepo        domain.EventRepository
	emailService     domain.EmailService
	contextTimeout   time.Duration
}

// NewRegistrationService returns the registration workflow service.
func NewRegistrationService(
	registrationRepo domain.RegistrationRepository,
	eventRepo domain.EventRepository,
	emailService domain.EmailService,
	timeout time.Duration,
) domain.RegistrationService {
	return &registrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		emailService:     emailService,
		contextTimeout:   timeout,
	}
}

func validateRegistrationForm(form *domain.RegistrationForm) error {
	var missing []string
	if strings.TrimSpace(form.FullName) == "" {
		missing = append(missing, "full_name")
	}
	if strings.TrimSpace(form.PhoneNumber) == "" {
		missing = append(missing, "phone_number")
	}
	if strings.TrimSpace(form.ClassVocation) == "" {
		missing = append(missing, "class_vocation")
	}
	if strings.TrimSpace(form.Church) == "" {
		missing = append(missing, "church")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s required", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// Register creates a registration for the event with the given ID. The event
// must exist; the stored row always references eventID. A confirmation email
// is sent best-effort when the visitor supplied an address.
func (s *registrationService) Register(ctx context.Context, eventID string, form *domain.RegistrationForm) (*domain.Registration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validateRegistrationForm(form); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	reg := &domain.Registration{
		ID:            uuid.NewString(),
		FullName:      strings.TrimSpace(form.FullName),
		Email:         strings.TrimSpace(form.Email),
		Address:       strings.TrimSpace(form.Address),
		PhoneNumber:   strings.TrimSpace(form.PhoneNumber),
		ClassVocation: strings.TrimSpace(form.ClassVocation),
		Church:        strings.TrimSpace(form.Church),
		EventID:       event.ID,
		CreatedAt:     time.Now(),
	}
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	if reg.Email != "" {
		data := &domain.RegistrationConfirmationData{
			Email:      reg.Email,
			FullName:   reg.FullName,
			EventTitle: event.Title,
			EventDate:  event.EventDate.Format("January 2, 2006"),
			EventTime:  event.EventTime,
		}
		if err := s.emailService.SendRegistrationConfirmation(ctx, data); err != nil {
			// The registration itself succeeded; a failed confirmation email
			// is logged, not surfaced.
			log.Printf("[REGISTRATION] confirmation email to %s failed: %v", reg.Email, err)
		}
	}
	return reg, nil
}

func (s *registrationService) ListWithEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.RegistrationWithEvent, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, total, err := s.registrationRepo.ListWithEvents(ctx, params)
	if err != nil {
		return nil, 0, fmt.Errorf("list registrations: %w", err)
	}
	return regs, total, nil
}

func (s *registrationService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.registrationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete registration: %w", err)
	}
	return nil
}
