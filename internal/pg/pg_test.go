package pg

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// stubTx fakes an open transaction; only the query surface is implemented.
type stubTx struct {
	pgx.Tx
	queries []string
}

func (s *stubTx) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	s.queries = append(s.queries, sql)
	return nil, pgx.ErrNoRows
}

func (s *stubTx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	s.queries = append(s.queries, sql)
	return nil
}

func (s *stubTx) Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error) {
	s.queries = append(s.queries, sql)
	return pgconn.CommandTag{}, nil
}

func TestDB_RoutesThroughOpenTransaction(t *testing.T) {
	tx := &stubTx{}
	ctx := contextWithTx(context.Background(), tx)
	db := New(nil)

	_, err := db.Query(ctx, "SELECT 1")
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	db.QueryRow(ctx, "SELECT 2")

	_, err = db.Exec(ctx, "UPDATE t")
	assert.NoError(t, err)

	assert.Equal(t, []string{"SELECT 1", "SELECT 2", "UPDATE t"}, tx.queries)
}

func TestTxFromContext(t *testing.T) {
	assert.Nil(t, txFromContext(context.Background()))

	tx := &stubTx{}
	assert.Equal(t, pgx.Tx(tx), txFromContext(contextWithTx(context.Background(), tx)))
}

func TestTXManager_JoinsOpenTransaction(t *testing.T) {
	m := NewTXManager(nil)
	ctx := contextWithTx(context.Background(), &stubTx{})

	var called bool
	err := m.Begin(ctx, func(ctx context.Context) error {
		called = true
		// The open transaction must stay attached for nested work.
		assert.NotNil(t, txFromContext(ctx))
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)
}

func TestTXManager_JoinPropagatesError(t *testing.T) {
	m := NewTXManager(nil)
	ctx := contextWithTx(context.Background(), &stubTx{})

	err := m.Begin(ctx, func(ctx context.Context) error {
		return assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}
