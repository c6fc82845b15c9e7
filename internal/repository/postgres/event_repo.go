package postgres

import (
	"context"
	"database/sql"
	"errors"

	"teenevents/internal/domain"
)

const eventColumns = `id, title, speaker, position, district, event_date, event_time, duration, theme, bible_texts, description, phase, created_at, updated_at`

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func scanEvent(row interface{ Scan(...any) error }) (*domain.Event, error) {
	e := &domain.Event{}
	err := row.Scan(
		&e.ID, &e.Title, &e.Speaker, &e.Position, &e.District,
		&e.EventDate, &e.EventTime, &e.Duration, &e.Theme, &e.BibleTexts,
		&e.Description, &e.Phase, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (id, title, speaker, position, district, event_date, event_time, duration, theme, bible_texts, description, phase, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.DB.ExecContext(ctx, query,
		e.ID, e.Title, e.Speaker, e.Position, e.District,
		e.EventDate, e.EventTime, e.Duration, e.Theme, e.BibleTexts,
		e.Description, e.Phase, e.CreatedAt, e.UpdatedAt,
	)
	return err
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY event_date DESC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) ListByPhase(ctx context.Context, phase domain.Phase, dateAsc bool, limit int) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE phase = $1
		ORDER BY event_date DESC
	`
	if dateAsc {
		query = `
		SELECT ` + eventColumns + `
		FROM events
		WHERE phase = $1
		ORDER BY event_date ASC
	`
	}
	args := []any{phase}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) Update(ctx context.Context, id string, form *domain.EventForm) (*domain.Event, error) {
	query := `
		UPDATE events
		SET title = $1, speaker = $2, position = $3, district = $4,
		    event_date = $5, event_time = $6, duration = $7, theme = $8,
		    bible_texts = $9, description = $10, phase = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING ` + eventColumns + `
	`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query,
		form.Title, form.Speaker, form.Position, form.District,
		form.EventDate, form.EventTime, form.Duration, form.Theme,
		form.BibleTexts, form.Description, form.Phase, id,
	))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Delete removes the event row only. Registrations referencing the event are
// left untouched.
func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
