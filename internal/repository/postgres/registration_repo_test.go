package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"teenevents/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestRegistrationRepository_Create(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		reg     *domain.Registration
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "insert receives exactly the form fields plus event_id",
			reg: &domain.Registration{
				ID:            "reg-1",
				FullName:      "Jane Doe",
				Email:         "",
				Address:       "",
				PhoneNumber:   "555-1234",
				ClassVocation: "Student",
				Church:        "Grace Chapel",
				EventID:       "e1",
				CreatedAt:     createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO registrations`).
					WithArgs("reg-1", "Jane Doe", "", "", "555-1234", "Student", "Grace Chapel", "e1", createdAt).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "db error",
			reg: &domain.Registration{
				ID:        "reg-2",
				FullName:  "John Doe",
				EventID:   "e1",
				CreatedAt: createdAt,
			},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO registrations`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			err = repo.Create(ctx, tt.reg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRegistrationRepository_ListWithEvents(t *testing.T) {
	ctx := context.Background()
	createdAt := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	eventDate := time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM registrations`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	rows := sqlmock.NewRows([]string{
		"id", "full_name", "email", "address", "phone_number", "class_vocation",
		"church", "event_id", "created_at", "title", "event_date",
	}).
		AddRow("reg-2", "John Doe", "john@example.com", "12 Main St", "555-0000", "Teacher", "Hope Chapel", "e1", createdAt.Add(time.Hour), "Growth Program", eventDate).
		AddRow("reg-1", "Jane Doe", "", "", "555-1234", "Student", "Grace Chapel", "e1", createdAt, "Growth Program", eventDate)
	mock.ExpectQuery(`LEFT JOIN events e ON e.id = r.event_id`).
		WithArgs(20, 0).
		WillReturnRows(rows)

	repo := NewRegistrationRepository(db)
	got, total, err := repo.ListWithEvents(ctx, domain.PaginationParams{Page: 1, PageSize: 20})
	require.NoError(t, err)
	require.Equal(t, 2, total)
	require.Len(t, got, 2)
	require.Equal(t, "John Doe", got[0].FullName)
	require.Equal(t, "Growth Program", got[0].EventTitle)
	require.Equal(t, eventDate, got[1].EventDate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegistrationRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM registrations WHERE id = \$1`).
					WithArgs("reg-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing row maps to not found",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM registrations WHERE id = \$1`).
					WithArgs("reg-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRegistrationRepository(db)
			err = repo.Delete(ctx, "reg-1")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
