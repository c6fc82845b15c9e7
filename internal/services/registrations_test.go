package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teenevents/internal/domain"
)

func validRegistrationForm() *domain.RegistrationForm {
	return &domain.RegistrationForm{
		FullName:      "Chika Obi",
		Email:         "chika@example.com",
		Address:       "12 Church Road",
		PhoneNumber:   "08030000000",
		ClassVocation: "SS2",
		Church:        "Grace Chapel",
	}
}

func TestRegistrationService_Register(t *testing.T) {
	ctx := context.Background()
	event := catalogEvent("e1", domain.PhaseUpcoming, "2025-11-20")
	event.EventTime = "10:00 AM"

	t.Run("binds registration to the path event", func(t *testing.T) {
		eventRepo := newFakeEventRepo(event)
		regRepo := &fakeRegistrationRepo{}
		email := &fakeEmailService{}
		svc := NewRegistrationService(regRepo, eventRepo, email, time.Second)

		reg, err := svc.Register(ctx, "e1", validRegistrationForm())
		require.NoError(t, err)
		require.NotEmpty(t, reg.ID)
		assert.Equal(t, "e1", reg.EventID)

		require.Len(t, regRepo.created, 1)
		stored := regRepo.created[0]
		assert.Equal(t, "Chika Obi", stored.FullName)
		assert.Equal(t, "chika@example.com", stored.Email)
		assert.Equal(t, "12 Church Road", stored.Address)
		assert.Equal(t, "08030000000", stored.PhoneNumber)
		assert.Equal(t, "SS2", stored.ClassVocation)
		assert.Equal(t, "Grace Chapel", stored.Church)
		assert.Equal(t, "e1", stored.EventID)
	})

	t.Run("unknown event", func(t *testing.T) {
		regRepo := &fakeRegistrationRepo{}
		svc := NewRegistrationService(regRepo, newFakeEventRepo(), &fakeEmailService{}, time.Second)

		_, err := svc.Register(ctx, "missing", validRegistrationForm())
		require.ErrorIs(t, err, domain.ErrNotFound)
		assert.Empty(t, regRepo.created)
	})

	t.Run("missing required fields", func(t *testing.T) {
		regRepo := &fakeRegistrationRepo{}
		svc := NewRegistrationService(regRepo, newFakeEventRepo(event), &fakeEmailService{}, time.Second)

		form := validRegistrationForm()
		form.PhoneNumber = "  "
		form.Church = ""
		_, err := svc.Register(ctx, "e1", form)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "phone_number")
		assert.Contains(t, err.Error(), "church")
		assert.Empty(t, regRepo.created)
	})

	t.Run("email and address are optional", func(t *testing.T) {
		regRepo := &fakeRegistrationRepo{}
		email := &fakeEmailService{}
		svc := NewRegistrationService(regRepo, newFakeEventRepo(event), email, time.Second)

		form := validRegistrationForm()
		form.Email = ""
		form.Address = ""
		reg, err := svc.Register(ctx, "e1", form)
		require.NoError(t, err)
		assert.Empty(t, reg.Email)
		// no address to send to, so no confirmation goes out
		assert.Empty(t, email.sent)
	})

	t.Run("sends confirmation email", func(t *testing.T) {
		email := &fakeEmailService{}
		svc := NewRegistrationService(&fakeRegistrationRepo{}, newFakeEventRepo(event), email, time.Second)

		_, err := svc.Register(ctx, "e1", validRegistrationForm())
		require.NoError(t, err)
		require.Len(t, email.sent, 1)
		assert.Equal(t, "chika@example.com", email.sent[0].Email)
		assert.Equal(t, event.Title, email.sent[0].EventTitle)
		assert.Equal(t, "November 20, 2025", email.sent[0].EventDate)
		assert.Equal(t, "10:00 AM", email.sent[0].EventTime)
	})

	t.Run("email failure does not fail the registration", func(t *testing.T) {
		regRepo := &fakeRegistrationRepo{}
		email := &fakeEmailService{sendErr: errors.New("ses down")}
		svc := NewRegistrationService(regRepo, newFakeEventRepo(event), email, time.Second)

		reg, err := svc.Register(ctx, "e1", validRegistrationForm())
		require.NoError(t, err)
		require.NotNil(t, reg)
		assert.Len(t, regRepo.created, 1)
	})
}

func TestRegistrationService_ListWithEvents(t *testing.T) {
	ctx := context.Background()
	regRepo := &fakeRegistrationRepo{
		list: []*domain.RegistrationWithEvent{
			{Registration: domain.Registration{ID: "r1", FullName: "Chika Obi"}, EventTitle: "Event e1"},
		},
	}
	svc := NewRegistrationService(regRepo, newFakeEventRepo(), &fakeEmailService{}, time.Second)

	params := domain.PaginationParams{Page: 2, PageSize: 25}
	regs, total, err := svc.ListWithEvents(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, regs, 1)
	assert.Equal(t, "r1", regs[0].ID)
	assert.Equal(t, params, regRepo.lastParams)
}

func TestRegistrationService_Delete(t *testing.T) {
	ctx := context.Background()
	regRepo := &fakeRegistrationRepo{}
	svc := NewRegistrationService(regRepo, newFakeEventRepo(), &fakeEmailService{}, time.Second)

	require.NoError(t, svc.Delete(ctx, "r1"))
	assert.Equal(t, []string{"r1"}, regRepo.deletedIDs)

	regRepo.deleteErr = domain.ErrNotFound
	require.ErrorIs(t, svc.Delete(ctx, "missing"), domain.ErrNotFound)
}
