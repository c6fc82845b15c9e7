package services

import (
	"context"
	"errors"
	"time"

	"teenevents/internal/domain"
)

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	events    map[string]*domain.Event
	listErr   error
	getErr    error
	createErr error
	updateErr error
	deleteErr error

	lastListPhase   domain.Phase
	lastListDateAsc bool
	lastListLimit   int
	deletedIDs      []string
}

func newFakeEventRepo(events ...*domain.Event) *fakeEventRepo {
	f := &fakeEventRepo{events: make(map[string]*domain.Event)}
	for _, e := range events {
		f.events[e.ID] = e
	}
	return f
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.events[e.ID] = e
	return nil
}

func (f *fakeEventRepo) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	if e, ok := f.events[id]; ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*domain.Event, 0, len(f.events))
	for _, e := range f.events {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEventRepo) ListByPhase(ctx context.Context, phase domain.Phase, dateAsc bool, limit int) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.lastListPhase = phase
	f.lastListDateAsc = dateAsc
	f.lastListLimit = limit
	out := make([]*domain.Event, 0)
	for _, e := range f.events {
		if e.Phase == phase {
			out = append(out, e)
		}
	}
	// insertion order is not stable over a map; sort by date for determinism
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			before := out[j].EventDate.Before(out[i].EventDate)
			if (dateAsc && before) || (!dateAsc && !before) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, id string, form *domain.EventForm) (*domain.Event, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	e, ok := f.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	e.Title = form.Title
	e.Phase = form.Phase
	e.EventDate = form.EventDate
	e.UpdatedAt = time.Now()
	return e, nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.events, id)
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

// fakeRegistrationRepo implements domain.RegistrationRepository for tests.
type fakeRegistrationRepo struct {
	created   []*domain.Registration
	list      []*domain.RegistrationWithEvent
	createErr error
	listErr   error
	deleteErr error

	deletedIDs []string
	lastParams domain.PaginationParams
}

func (f *fakeRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *reg
	f.created = append(f.created, &cp)
	return nil
}

func (f *fakeRegistrationRepo) ListWithEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.RegistrationWithEvent, int, error) {
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	f.lastParams = params
	return f.list, len(f.list), nil
}

func (f *fakeRegistrationRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deletedIDs = append(f.deletedIDs, id)
	return nil
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	sendErr error
	sent    []*domain.RegistrationConfirmationData
}

func (f *fakeEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, data)
	return nil
}

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byID      map[string]*domain.User
	byEmail   map[string]*domain.User
	createErr error
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{byID: make(map[string]*domain.User), byEmail: make(map[string]*domain.User)}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

// fakePasswordHasher implements domain.PasswordHasher for tests.
type fakePasswordHasher struct{}

func (fakePasswordHasher) GenerateSalt() (string, error) { return "salt", nil }
func (fakePasswordHasher) Hash(salt, password string) (string, error) {
	return "hash-" + salt + "-" + password, nil
}
func (fakePasswordHasher) Compare(hash, salt, password string) error {
	if hash != "hash-"+salt+"-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenIssuer implements domain.TokenIssuer for tests.
type fakeTokenIssuer struct {
	err      error
	lastRole domain.Role
}

func (f *fakeTokenIssuer) Issue(userID, email string, role domain.Role, expiry time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastRole = role
	return "token-" + userID, nil
}
