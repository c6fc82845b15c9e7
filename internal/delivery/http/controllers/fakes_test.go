package controllers

import (
	"context"
	"io"
	"log/slog"

	"teenevents/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

// fakeCatalogService implements domain.CatalogService for handler tests.
type fakeCatalogService struct {
	catalog   *domain.Catalog
	highlight *domain.Highlight
	err       error
}

func (f *fakeCatalogService) Catalog(ctx context.Context) (*domain.Catalog, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.catalog, nil
}

func (f *fakeCatalogService) Highlight(ctx context.Context) (*domain.Highlight, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.highlight, nil
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	event     *domain.Event
	events    []*domain.Event
	createErr error
	getErr    error
	listErr   error
	updateErr error
	deleteErr error

	lastForm     *domain.EventForm
	lastUpdateID string
	lastDeleteID string
}

func (f *fakeEventService) Create(ctx context.Context, form *domain.EventForm) (*domain.Event, error) {
	f.lastForm = form
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.event, nil
}

func (f *fakeEventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.event, nil
}

func (f *fakeEventService) List(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeEventService) Update(ctx context.Context, id string, form *domain.EventForm) (*domain.Event, error) {
	f.lastUpdateID = id
	f.lastForm = form
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.event, nil
}

func (f *fakeEventService) Delete(ctx context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	reg       *domain.Registration
	list      []*domain.RegistrationWithEvent
	total     int
	regErr    error
	listErr   error
	deleteErr error

	lastEventID  string
	lastForm     *domain.RegistrationForm
	lastParams   domain.PaginationParams
	lastDeleteID string
}

func (f *fakeRegistrationService) Register(ctx context.Context, eventID string, form *domain.RegistrationForm) (*domain.Registration, error) {
	f.lastEventID = eventID
	f.lastForm = form
	if f.regErr != nil {
		return nil, f.regErr
	}
	return f.reg, nil
}

func (f *fakeRegistrationService) ListWithEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.RegistrationWithEvent, int, error) {
	f.lastParams = params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.list, f.total, nil
}

func (f *fakeRegistrationService) Delete(ctx context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	token      string
	user       *domain.User
	session    *domain.Session
	loginErr   error
	sessionErr error
	ensureErr  error
	result     *domain.AdminBootstrapResult
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if f.loginErr != nil {
		return "", nil, f.loginErr
	}
	return f.token, f.user, nil
}

func (f *fakeAuthService) Session(ctx context.Context, userID string) (*domain.Session, error) {
	if f.sessionErr != nil {
		return nil, f.sessionErr
	}
	return f.session, nil
}

func (f *fakeAuthService) EnsureAdmin(ctx context.Context, email, password string) (*domain.AdminBootstrapResult, error) {
	if f.ensureErr != nil {
		return nil, f.ensureErr
	}
	return f.result, nil
}
