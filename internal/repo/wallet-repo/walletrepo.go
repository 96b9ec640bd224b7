package walletrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/brokermart/brokermart/internal/domain"
	"github.com/brokermart/brokermart/internal/pg"
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

func (r *Repository) GetByUserID(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, points, created_at, updated_at
        FROM wallets
        WHERE user_id = $1
    `
	return r.scanWallet(r.db.QueryRow(ctx, query, userID))
}

// GetByUserIDForUpdate takes a row lock on the wallet for the rest of the
// surrounding transaction. Concurrent mutations of the same wallet serialize
// here, so a balance check is never made against a stale read.
func (r *Repository) GetByUserIDForUpdate(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        SELECT id, user_id, balance, points, created_at, updated_at
        FROM wallets
        WHERE user_id = $1
        FOR UPDATE
    `
	return r.scanWallet(r.db.QueryRow(ctx, query, userID))
}

// Create inserts a zero wallet for the user. Returns nil without error when a
// concurrent request created the row first.
func (r *Repository) Create(ctx context.Context, userID int) (*domain.Wallet, error) {
	query := `
        INSERT INTO wallets (user_id, balance, points)
        VALUES ($1, 0, 0)
        ON CONFLICT (user_id) DO NOTHING
        RETURNING id, user_id, balance, points, created_at, updated_at
    `
	wallet, err := r.scanWallet(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		zap.L().Error("can't create wallet", zap.Error(err))
		return nil, err
	}
	return wallet, nil
}

func (r *Repository) UpdateBalance(ctx context.Context, userID int, balance float64, points int) (*domain.Wallet, error) {
	query := `
		UPDATE wallets
		SET balance = $1, points = $2, updated_at = now()
		WHERE user_id = $3
		RETURNING id, user_id, balance, points, created_at, updated_at
	`
	row := r.db.QueryRow(ctx, query, balance, points, userID)
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.Points, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		zap.L().Error("can't update wallet", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}

func (r *Repository) scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var wallet domain.Wallet
	err := row.Scan(&wallet.ID, &wallet.UserID, &wallet.Balance, &wallet.Points, &wallet.CreatedAt, &wallet.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't scan wallet row", zap.Error(err))
		return nil, err
	}
	return &wallet, nil
}
