package promotionrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/brokermart/brokermart/internal/domain"
	"github.com/brokermart/brokermart/internal/pg"
	"go.uber.org/zap"
)

const promotionColumns = `id, business_id, title, description, start_date, end_date, is_active, max_claims, current_claims, points, created_at, updated_at`

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Create(ctx context.Context, promotion *domain.Promotion) (*domain.Promotion, error) {
	query := `
		INSERT INTO promotions (business_id, title, description, start_date, end_date, is_active, max_claims, points)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, current_claims, created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		promotion.BusinessID, promotion.Title, promotion.Description,
		promotion.StartDate, promotion.EndDate, promotion.IsActive,
		promotion.MaxClaims, promotion.Points,
	).Scan(&promotion.ID, &promotion.CurrentClaims, &promotion.CreatedAt, &promotion.UpdatedAt)
	if err != nil {
		zap.L().Error("can't save promotion", zap.Error(err))
		return nil, err
	}
	return promotion, nil
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.Promotion, error) {
	query := `
        SELECT ` + promotionColumns + `
        FROM promotions
        WHERE id = $1
    `
	return r.scanPromotion(r.db.QueryRow(ctx, query, id))
}

// GetByIDForUpdate locks the promotion row for the rest of the surrounding
// transaction. Concurrent claims of the same promotion serialize here, so the
// claims-remaining check cannot race past max_claims.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int) (*domain.Promotion, error) {
	query := `
        SELECT ` + promotionColumns + `
        FROM promotions
        WHERE id = $1
        FOR UPDATE
    `
	return r.scanPromotion(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) ListActive(ctx context.Context) ([]domain.Promotion, error) {
	query := `
        SELECT ` + promotionColumns + `
        FROM promotions
        WHERE is_active = TRUE AND start_date <= now() AND end_date >= now()
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		zap.L().Error("can't get active promotions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var promotions []domain.Promotion
	for rows.Next() {
		var p domain.Promotion
		err := rows.Scan(
			&p.ID, &p.BusinessID, &p.Title, &p.Description, &p.StartDate, &p.EndDate,
			&p.IsActive, &p.MaxClaims, &p.CurrentClaims, &p.Points, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan promotion row", zap.Error(err))
			return nil, err
		}
		promotions = append(promotions, p)
	}
	return promotions, nil
}

func (r *Repository) IncrementClaims(ctx context.Context, id int) error {
	query := `
        UPDATE promotions
        SET current_claims = current_claims + 1, updated_at = now()
        WHERE id = $1 AND current_claims < max_claims
    `
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		zap.L().Error("can't increment promotion claims", zap.Error(err))
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *Repository) scanPromotion(row pgx.Row) (*domain.Promotion, error) {
	var p domain.Promotion
	err := row.Scan(
		&p.ID, &p.BusinessID, &p.Title, &p.Description, &p.StartDate, &p.EndDate,
		&p.IsActive, &p.MaxClaims, &p.CurrentClaims, &p.Points, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan promotion row", zap.Error(err))
		return nil, err
	}
	return &p, nil
}
