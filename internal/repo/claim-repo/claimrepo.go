package claimrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/brokermart/brokermart/internal/domain"
	"github.com/brokermart/brokermart/internal/pg"
	"github.com/brokermart/brokermart/pkg/apperr"
	"go.uber.org/zap"
)

const claimColumns = `id, user_id, promotion_id, points, shared_count, status, rejection_reason, claimed_at, updated_at`

// Postgres error code for unique constraint violations.
const uniqueViolation = "23505"

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

// Create inserts the claim. The (user_id, promotion_id) unique key is the
// data-layer backstop for one-claim-per-user; a violation surfaces as
// apperr.ErrAlreadyClaimed.
func (r *Repository) Create(ctx context.Context, claim *domain.PromotionClaim) (*domain.PromotionClaim, error) {
	query := `
		INSERT INTO promotion_claims (user_id, promotion_id, points, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, shared_count, rejection_reason, claimed_at, updated_at
	`
	err := r.db.QueryRow(ctx, query, claim.UserID, claim.PromotionID, claim.Points, claim.Status).
		Scan(&claim.ID, &claim.SharedCount, &claim.RejectionReason, &claim.ClaimedAt, &claim.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, apperr.ErrAlreadyClaimed
		}
		zap.L().Error("can't save promotion claim", zap.Error(err))
		return nil, err
	}
	return claim, nil
}

func (r *Repository) FindByUserAndPromotion(ctx context.Context, userID, promotionID int) (*domain.PromotionClaim, error) {
	query := `
        SELECT ` + claimColumns + `
        FROM promotion_claims
        WHERE user_id = $1 AND promotion_id = $2
    `
	return r.scanClaim(r.db.QueryRow(ctx, query, userID, promotionID))
}

func (r *Repository) GetByID(ctx context.Context, id int) (*domain.PromotionClaim, error) {
	query := `
        SELECT ` + claimColumns + `
        FROM promotion_claims
        WHERE id = $1
    `
	return r.scanClaim(r.db.QueryRow(ctx, query, id))
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.PromotionClaim, error) {
	query := `
        SELECT ` + claimColumns + `
        FROM promotion_claims
        WHERE user_id = $1
        ORDER BY claimed_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get promotion claims", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var claims []domain.PromotionClaim
	for rows.Next() {
		var c domain.PromotionClaim
		err := rows.Scan(
			&c.ID, &c.UserID, &c.PromotionID, &c.Points, &c.SharedCount,
			&c.Status, &c.RejectionReason, &c.ClaimedAt, &c.UpdatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan promotion claim row", zap.Error(err))
			return nil, err
		}
		claims = append(claims, c)
	}
	return claims, nil
}

// UpdateStatus settles a pending claim. The status guard makes the
// transition one-way at the data layer: once a claim leaves PENDING no
// concurrent reviewer can overwrite the outcome. Returns nil when the claim
// was not pending anymore.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status, rejectionReason string) (*domain.PromotionClaim, error) {
	query := `
		UPDATE promotion_claims
		SET status = $1, rejection_reason = $2, updated_at = now()
		WHERE id = $3 AND status = 'PENDING'
		RETURNING ` + claimColumns + `
	`
	return r.scanClaim(r.db.QueryRow(ctx, query, status, rejectionReason, id))
}

func (r *Repository) scanClaim(row pgx.Row) (*domain.PromotionClaim, error) {
	var c domain.PromotionClaim
	err := row.Scan(
		&c.ID, &c.UserID, &c.PromotionID, &c.Points, &c.SharedCount,
		&c.Status, &c.RejectionReason, &c.ClaimedAt, &c.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan promotion claim row", zap.Error(err))
		return nil, err
	}
	return &c, nil
}
