package promotionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/brokermart/brokermart/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var promoColumns = []string{"id", "business_id", "title", "description", "start_date", "end_date", "is_active", "max_claims", "current_claims", "points", "created_at", "updated_at"}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()
	start := now
	end := now.Add(7 * 24 * time.Hour)

	promotion := &domain.Promotion{
		BusinessID:  3,
		Title:       "Free coffee week",
		Description: "One free coffee per customer",
		StartDate:   start,
		EndDate:     end,
		IsActive:    true,
		MaxClaims:   100,
		Points:      50,
	}

	rows := pgxmock.NewRows([]string{"id", "current_claims", "created_at", "updated_at"}).
		AddRow(5, 0, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO promotions`)).
		WithArgs(3, "Free coffee week", "One free coffee per customer", start, end, true, 100, 50).
		WillReturnRows(rows)

	created, err := repo.Create(context.Background(), promotion)
	assert.NoError(t, err)
	assert.Equal(t, 5, created.ID)
	assert.Equal(t, 0, created.CurrentClaims)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	tests := []struct {
		name      string
		id        int
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Existing promotion is returned",
			id:   5,
			mockSetup: func() {
				rows := pgxmock.NewRows(promoColumns).
					AddRow(5, 3, "Free coffee week", "", now, now.Add(time.Hour), true, 100, 17, 50, now, now)
				mock.ExpectQuery(regexp.QuoteMeta(`FROM promotions`)).
					WithArgs(5).
					WillReturnRows(rows)
			},
			found: true,
		},
		{
			name: "Missing promotion returns nil",
			id:   99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM promotions`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name: "Database error is propagated",
			id:   5,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`FROM promotions`)).
					WithArgs(5).
					WillReturnError(errors.New("db error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			promotion, err := repo.GetByID(context.Background(), tt.id)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, tt.id, promotion.ID)
				assert.Equal(t, 17, promotion.CurrentClaims)
			} else {
				assert.Nil(t, promotion)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetByIDForUpdate(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(promoColumns).
		AddRow(5, 3, "Free coffee week", "", now, now.Add(time.Hour), true, 100, 17, 50, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`FOR UPDATE`)).
		WithArgs(5).
		WillReturnRows(rows)

	promotion, err := repo.GetByIDForUpdate(context.Background(), 5)
	assert.NoError(t, err)
	assert.Equal(t, 5, promotion.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListActive(t *testing.T) {
	repo, mock := NewMock(t)
	now := time.Now()

	rows := pgxmock.NewRows(promoColumns).
		AddRow(5, 3, "Free coffee week", "", now, now.Add(time.Hour), true, 100, 17, 50, now, now).
		AddRow(6, 3, "Pastry friday", "", now, now.Add(time.Hour), true, 20, 0, 10, now, now)
	mock.ExpectQuery(regexp.QuoteMeta(`is_active = TRUE`)).
		WillReturnRows(rows)

	promotions, err := repo.ListActive(context.Background())
	assert.NoError(t, err)
	assert.Len(t, promotions, 2)
	assert.Equal(t, "Pastry friday", promotions[1].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_IncrementClaims(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name        string
		mockSetup   func()
		expectedErr error
	}{
		{
			name: "Counter is incremented while below the limit",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`current_claims < max_claims`)).
					WithArgs(5).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedErr: nil,
		},
		{
			name: "No rows affected at the limit",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`current_claims < max_claims`)).
					WithArgs(5).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedErr: pgx.ErrNoRows,
		},
		{
			name: "Database error is propagated",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`current_claims < max_claims`)).
					WithArgs(5).
					WillReturnError(errors.New("db error"))
			},
			expectedErr: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			err := repo.IncrementClaims(context.Background(), 5)
			if tt.expectedErr != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedErr.Error(), err.Error())
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
