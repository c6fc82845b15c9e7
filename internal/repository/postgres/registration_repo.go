package postgres

import (
	"context"
	"database/sql"

	"teenevents/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (id, full_name, email, address, phone_number, class_vocation, church, event_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		reg.ID, reg.FullName, reg.Email, reg.Address, reg.PhoneNumber,
		reg.ClassVocation, reg.Church, reg.EventID, reg.CreatedAt,
	)
	return err
}

// ListWithEvents joins each registration with its event's title and date.
// The join is a LEFT JOIN so registrations orphaned by an event delete still
// appear, with empty event fields.
func (r *registrationRepository) ListWithEvents(ctx context.Context, params domain.PaginationParams) ([]*domain.RegistrationWithEvent, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT r.id, r.full_name, r.email, r.address, r.phone_number, r.class_vocation, r.church, r.event_id, r.created_at,
		       COALESCE(e.title, ''), COALESCE(e.event_date, 'epoch'::timestamptz)
		FROM registrations r
		LEFT JOIN events e ON e.id = r.event_id
		ORDER BY r.created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	regs := make([]*domain.RegistrationWithEvent, 0)
	for rows.Next() {
		reg := &domain.RegistrationWithEvent{}
		if err := rows.Scan(
			&reg.ID, &reg.FullName, &reg.Email, &reg.Address, &reg.PhoneNumber,
			&reg.ClassVocation, &reg.Church, &reg.EventID, &reg.CreatedAt,
			&reg.EventTitle, &reg.EventDate,
		); err != nil {
			return nil, 0, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

func (r *registrationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM registrations WHERE id = $1`
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
