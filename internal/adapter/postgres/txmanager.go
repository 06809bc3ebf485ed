package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/deliverydesk/backend/internal/domain"
)

// ErrNestedTransaction is returned when RunScoped is called from inside an
// already scoped transaction. One RunScoped call is one transaction with one
// tenant identity for its entire duration.
var ErrNestedTransaction = errors.New("nested scoped transaction")

// TxManager opens tenant-scoped database transactions.
//
// Every transaction carries a session-scoped tenant identity: the
// app.tenant_id setting is established as the first statement, and the
// row-level security policies on all tenant-owned tables filter by it.
// A transaction that never established the identity sees zero rows —
// the storage layer fails closed, not open.
type TxManager struct {
	pool *pgxpool.Pool
}

// NewTxManager creates a new TxManager.
func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{pool: pool}
}

// RunScoped executes fn within a database transaction confined to tenantID.
// Isolation level: Read Committed (PostgreSQL default).
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
// Calling RunScoped from within fn returns ErrNestedTransaction.
func (m *TxManager) RunScoped(ctx context.Context, tenantID uuid.UUID, fn func(ctx context.Context) error) (err error) {
	if tenantID == uuid.Nil {
		return domain.ErrUnauthorized
	}
	if _, ok := txFromCtx(ctx); ok {
		return ErrNestedTransaction
	}

	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	// set_config with is_local=true is transaction-scoped: the identity
	// vanishes at commit or rollback and can never leak to a pooled
	// connection's next transaction.
	if _, err := tx.Exec(ctx, "SELECT set_config('app.tenant_id', $1, true)", tenantID.String()); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("set tenant identity: %w", err)
	}

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}
