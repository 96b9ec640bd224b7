package transactionrepo

import (
	"context"
	"encoding/json"

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

// Create appends a ledger record. Records are immutable after insert; only
// the status column may change later via UpdateStatus.
func (r *Repository) Create(ctx context.Context, transaction *domain.Transaction) (*domain.Transaction, error) {
	metadata, err := marshalMetadata(transaction.Metadata)
	if err != nil {
		zap.L().Error("can't marshal transaction metadata", zap.Error(err))
		return nil, err
	}

	query := `
		INSERT INTO transactions (user_id, amount, type, status, description, reference, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err = r.db.QueryRow(ctx, query,
		transaction.UserID, transaction.Amount, transaction.Type, transaction.Status,
		transaction.Description, transaction.Reference, metadata,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		zap.L().Error("can't save transaction", zap.Error(err))
		return nil, err
	}
	return transaction, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]domain.Transaction, error) {
	query := `
        SELECT id, user_id, amount, type, status, description, reference, metadata, created_at
        FROM transactions
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get transactions", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows)
		if err != nil {
			zap.L().Error("can't scan transaction row", zap.Error(err))
			return nil, err
		}
		transactions = append(transactions, *transaction)
	}
	return transactions, nil
}

// UpdateStatus settles a previously recorded entry, e.g. a pending transfer
// leg once both balances have moved.
func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE transactions
        SET status = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, status, id); err != nil {
		zap.L().Error("can't update transaction status", zap.Error(err))
		return err
	}
	return nil
}

func scanTransaction(rows pgx.Rows) (*domain.Transaction, error) {
	var transaction domain.Transaction
	var metadata []byte
	err := rows.Scan(
		&transaction.ID, &transaction.UserID, &transaction.Amount, &transaction.Type,
		&transaction.Status, &transaction.Description, &transaction.Reference, &metadata,
		&transaction.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(metadata) > 0 {
		if err := json.Unmarshal(metadata, &transaction.Metadata); err != nil {
			return nil, err
		}
	}
	return &transaction, nil
}

func marshalMetadata(metadata map[string]any) ([]byte, error) {
	if metadata == nil {
		return nil, nil
	}
	return json.Marshal(metadata)
}
