// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
)

const txTimeout = 60 * time.Second

// ErrBeginTx is returned by every statement of a unit of work whose
// transaction could not be opened, and by the WithTx call owning it.
var ErrBeginTx = errors.New("failed to begin transaction")

var txOptions = &sql.TxOptions{Isolation: sql.LevelReadCommitted}

type unitOfWorkKey struct{}

// unitOfWork opens its transaction on the first statement, so a WithTx body
// that never touches the database never costs a round trip. A failed begin
// is sticky: later statements do not retry and silently split the work.
type unitOfWork struct {
	db *sql.DB

	tx     *sql.Tx
	err    error
	cancel context.CancelFunc
}

func (u *unitOfWork) open(ctx context.Context) (*sql.Tx, error) {
	if u.tx != nil || u.err != nil {
		return u.tx, u.err
	}

	// The transaction outlives request cancellation until WithTx settles it.
	txCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), txTimeout)

	tx, err := u.db.BeginTx(txCtx, txOptions)
	if err != nil {
		cancel()
		u.err = fmt.Errorf("%w: %v", ErrBeginTx, err)
		return nil, u.err
	}

	u.tx = tx
	u.cancel = cancel

	return tx, nil
}

func (u *unitOfWork) release() {
	if u.cancel != nil {
		u.cancel()
	}
}

func unitOfWorkFrom(ctx context.Context) *unitOfWork {
	u, _ := ctx.Value(unitOfWorkKey{}).(*unitOfWork)
	return u
}

// WithTx runs fn as one unit of work. Statements issued through Statement
// with the context handed to fn share a single transaction, committed when
// fn returns nil and rolled back otherwise. A nested WithTx joins the
// enclosing unit of work.
func (d *DBClient) WithTx(ctx context.Context, fn func(context.Context) error) error {
	if unitOfWorkFrom(ctx) != nil {
		return fn(ctx)
	}

	uow := &unitOfWork{db: d.db}
	defer uow.release()

	err := fn(context.WithValue(ctx, unitOfWorkKey{}, uow))

	switch {
	case uow.tx == nil && err != nil:
		return err
	case uow.tx == nil:
		// fn may have swallowed a statement error.
		return uow.err
	case err != nil:
		if rerr := uow.tx.Rollback(); rerr != nil && !errors.Is(rerr, sql.ErrTxDone) {
			d.logger.Errorf("failed to rollback transaction: %v", rerr)
		}
		return err
	}

	if err := uow.tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// failedRunner stands in for the transaction of a unit of work that could
// not begin.
type failedRunner struct {
	err error
}

type failedRow struct {
	err error
}

func (r failedRow) Scan(...any) error { return r.err }

func (f failedRunner) Exec(string, ...any) (sql.Result, error) { return nil, f.err }

func (f failedRunner) Query(string, ...any) (*sql.Rows, error) { return nil, f.err }

func (f failedRunner) QueryRow(string, ...any) sq.RowScanner { return failedRow{err: f.err} }

func (f failedRunner) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, f.err
}

func (f failedRunner) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	return nil, f.err
}

func (f failedRunner) QueryRowContext(context.Context, string, ...any) sq.RowScanner {
	return failedRow{err: f.err}
}
