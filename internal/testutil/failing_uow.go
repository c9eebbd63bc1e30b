package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync/atomic"

	"github.com/alexanderramin/ironlog/internal/db"
)

// FailingUoW is a test UnitOfWork that injects Err into a transaction,
// either on the Nth ExecContext call (counted from 1) or on the first
// write whose first argument equals FailOnKey. Reads pass through.
// It lets rollback tests fail a multi-key write at a precise point.
type FailingUoW struct {
	DB        *sql.DB
	FailOn    int32
	FailOnKey string
	Err       error

	// Execs counts ExecContext calls across all transactions.
	Execs atomic.Int32
}

func (u *FailingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	wrapped := &failingExec{DBTX: tx, uow: u}
	if fnErr := fn(ctx, wrapped); fnErr != nil {
		_ = tx.Rollback()
		return fnErr
	}
	return tx.Commit()
}

type failingExec struct {
	db.DBTX
	uow   *FailingUoW
	count int32
}

func (f *failingExec) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.count++
	f.uow.Execs.Add(1)
	if f.uow.FailOn > 0 && f.count == f.uow.FailOn {
		return nil, f.uow.Err
	}
	if f.uow.FailOnKey != "" && len(args) > 0 && args[0] == f.uow.FailOnKey {
		return nil, f.uow.Err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
