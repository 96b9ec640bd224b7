package businessrepo

import (
	"context"

	"github.com/brokermart/brokermart/internal/domain"
	"github.com/brokermart/brokermart/internal/pg"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, business *domain.BusinessProfile) (*domain.BusinessProfile, error) {
	query := `
		INSERT INTO businesses (user_id, name)
		VALUES ($1, $2)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query, business.UserID, business.Name).Scan(&business.ID, &business.CreatedAt)
	if err != nil {
		zap.L().Error("can't save business profile", zap.Error(err))
		return nil, err
	}
	return business, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.BusinessProfile, error) {
	query := `
        SELECT id, user_id, name, created_at
        FROM businesses
        WHERE id = $1
    `
	var business domain.BusinessProfile
	err := r.db.QueryRow(ctx, query, id).Scan(&business.ID, &business.UserID, &business.Name, &business.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find business profile", zap.Error(err))
		return nil, err
	}
	return &business, nil
}

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.BusinessProfile, error) {
	query := `
        SELECT id, user_id, name, created_at
        FROM businesses
        WHERE user_id = $1
    `
	var business domain.BusinessProfile
	err := r.db.QueryRow(ctx, query, userID).Scan(&business.ID, &business.UserID, &business.Name, &business.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find business profile by user", zap.Error(err))
		return nil, err
	}
	return &business, nil
}
