// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
)

func newTestClient(t *testing.T) (*DBClient, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	logger := logging.NewNoopLogger()
	return NewDBClientFromDB(sqlDB, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger), mock
}

func TestWithTxCommits(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE devices SET status").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		_, err := client.Statement(ctx).Update("devices").Set("status", "offline").ExecContext(ctx)
		return err
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxRollsBackOnError(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE devices SET status").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	fnErr := errors.New("boom")
	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := client.Statement(ctx).Update("devices").Set("status", "offline").ExecContext(ctx); err != nil {
			return err
		}
		return fnErr
	})

	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxIsLazy(t *testing.T) {
	client, mock := newTestClient(t)

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxSurfacesBeginFailure(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many clients already"))

	var first, second error
	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		_, first = client.Statement(ctx).Update("devices").Set("status", "offline").ExecContext(ctx)

		var id string
		second = client.Statement(ctx).Select("id").From("devices").QueryRowContext(ctx).Scan(&id)

		return nil
	})

	assert.ErrorIs(t, err, ErrBeginTx)
	assert.ErrorIs(t, first, ErrBeginTx)
	assert.ErrorIs(t, second, ErrBeginTx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxReturnsCallerErrorOverBeginFailure(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := client.Statement(ctx).Delete("sessions").ExecContext(ctx); err != nil {
			return fmt.Errorf("failed to delete sessions: %w", err)
		}
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete sessions")
	assert.ErrorIs(t, err, ErrBeginTx)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithTxNestedJoinsEnclosingTransaction(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE alerts SET resolved").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("UPDATE devices SET customer_id").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := client.WithTx(context.Background(), func(ctx context.Context) error {
		if _, err := client.Statement(ctx).Update("alerts").Set("resolved", true).ExecContext(ctx); err != nil {
			return err
		}

		return client.WithTx(ctx, func(ctx context.Context) error {
			_, err := client.Statement(ctx).Update("devices").Set("customer_id", "c2").ExecContext(ctx)
			return err
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatementOutsideWithTxUsesPool(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectExec("DELETE FROM sessions").WillReturnResult(sqlmock.NewResult(0, 3))

	_, err := client.Statement(context.Background()).Delete("sessions").ExecContext(context.Background())

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionMiddlewareAnswersWhenBeginFails(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectBegin().WillReturnError(errors.New("too many clients already"))

	handler := TransactionMiddleware(client, logging.NewNoopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if _, err := client.Statement(ctx).Insert("users").Columns("email").Values("a@example.com").ExecContext(ctx); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/v0/users", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionMiddlewareRollsBackFailedRequests(t *testing.T) {
	client, mock := newTestClient(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM api_keys").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	handler := TransactionMiddleware(client, logging.NewNoopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		_, _ = client.Statement(ctx).Delete("api_keys").ExecContext(ctx)
		w.WriteHeader(http.StatusConflict)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOffsetAndPageSize(t *testing.T) {
	assert.Equal(t, uint64(0), Offset(0, 50))
	assert.Equal(t, uint64(100), Offset(3, 50))
	assert.Equal(t, uint64(100), PageSize(0))
	assert.Equal(t, uint64(25), PageSize(25))
	assert.Equal(t, uint64(1000), PageSize(50000))
}
