package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contextKey string

const txKey contextKey = "db_tx"

// TxFromContext retrieves the in-flight transaction, if any. Domain
// repositories consult it so that queries issued during a booking run
// inside the booking's transaction.
func TxFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txKey).(pgx.Tx)
	return tx
}

// TxRunner executes a function inside a database transaction. It exists
// as an interface so services can be unit-tested with a pass-through
// implementation that never touches a database.
type TxRunner interface {
	// Serializable runs fn inside a SERIALIZABLE transaction. The
	// transaction is injected into the context handed to fn and is
	// rolled back if fn returns an error.
	Serializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// PoolTxRunner is the production TxRunner backed by a pgx pool.
type PoolTxRunner struct {
	pool *pgxpool.Pool
}

func NewPoolTxRunner(pool *pgxpool.Pool) *PoolTxRunner {
	return &PoolTxRunner{pool: pool}
}

func (r *PoolTxRunner) Serializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(context.WithValue(ctx, txKey, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// PassthroughTxRunner runs the function directly with no transaction.
// Used in tests and anywhere transactional isolation is not required.
type PassthroughTxRunner struct{}

func (PassthroughTxRunner) Serializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
