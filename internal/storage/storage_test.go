// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/fleet-service/internal/db"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

func newTestStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	return NewStorage(db.NewDBClientFromDB(sqlDB, tracer, monitor, logger), tracer, monitor, logger), mock
}

func deviceRow(id, deviceID, customerID string) []driver.Value {
	return []driver.Value{
		id, deviceID, customerID, "user-1", "host-1", "arm64", "rpi4",
		`["10.0.0.2"]`, `["terminal"]`, types.DeviceStatusOnline, time.Now(), nil, time.Now(),
	}
}

func TestScopedDeviceReadFiltersOnCustomer(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT .* FROM devices WHERE id = \$1 AND deleted_at IS NULL AND customer_id = \$2`).
		WithArgs("dev-uuid", "cust-1").
		WillReturnRows(sqlmock.NewRows(deviceColumns).AddRow(deviceRow("dev-uuid", "dev-42", "cust-1")...))

	d, err := s.GetDevice(context.Background(), ForCustomer("cust-1"), "dev-uuid")
	require.NoError(t, err)

	assert.Equal(t, "cust-1", d.CustomerID)
	assert.Equal(t, []string{"10.0.0.2"}, d.Addresses)
	assert.Equal(t, []string{"terminal"}, d.Capabilities)
	assert.Equal(t, types.DeviceActive, d.State())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScopedDeviceReadOfOtherTenantIsNotFound(t *testing.T) {
	s, mock := newTestStorage(t)

	// the row exists but belongs to cust-1, the predicate excludes it
	mock.ExpectQuery(`SELECT .* FROM devices WHERE id = \$1 AND deleted_at IS NULL AND customer_id = \$2`).
		WithArgs("dev-uuid", "cust-2").
		WillReturnRows(sqlmock.NewRows(deviceColumns))

	_, err := s.GetDevice(context.Background(), ForCustomer("cust-2"), "dev-uuid")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnscopedDeviceListHasNoTenantPredicate(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherFunc(func(expected, actual string) error {
		if strings.Contains(actual, "customer_id =") {
			return fmt.Errorf("unexpected tenant predicate in %q", actual)
		}
		if !strings.Contains(actual, expected) {
			return fmt.Errorf("expected %q in %q", expected, actual)
		}
		return nil
	})))
	require.NoError(t, err)
	defer sqlDB.Close()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)
	s := NewStorage(db.NewDBClientFromDB(sqlDB, tracer, monitor, logger), tracer, monitor, logger)

	mock.ExpectQuery("FROM devices WHERE deleted_at IS NULL ORDER BY created_at LIMIT 100 OFFSET 0").
		WillReturnRows(
			sqlmock.NewRows(deviceColumns).
				AddRow(deviceRow("a", "dev-1", "cust-1")...).
				AddRow(deviceRow("b", "dev-2", "cust-2")...),
		)

	devices, err := s.ListDevices(context.Background(), Unscoped(), Pagination{})
	require.NoError(t, err)

	assert.Len(t, devices, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestZeroScopeIsRejected(t *testing.T) {
	s, mock := newTestStorage(t)
	ctx := context.Background()

	_, err := s.GetDevice(ctx, Scope{}, "dev-uuid")
	assert.ErrorIs(t, err, ErrMissingScope)

	_, err = s.ListAlerts(ctx, ForCustomer(""), AlertFilter{}, Pagination{})
	assert.ErrorIs(t, err, ErrMissingScope)

	err = s.SoftDeleteDevice(ctx, Scope{}, "dev-uuid")
	assert.ErrorIs(t, err, ErrMissingScope)

	err = s.DeleteAPIKey(ctx, Scope{}, "user-1", "key-1")
	assert.ErrorIs(t, err, ErrMissingScope)

	// no statement reached the database
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertDeviceLosingTheRace(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`INSERT INTO devices .* ON CONFLICT \(device_id\) DO NOTHING RETURNING`).
		WillReturnRows(sqlmock.NewRows(deviceColumns))

	d, created, err := s.InsertDevice(context.Background(), &types.Device{DeviceID: "dev-42", CustomerID: "cust-1", UserID: "user-1"})

	require.NoError(t, err)
	assert.False(t, created)
	assert.Nil(t, d)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLockDeviceByExternalID(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT .* FROM devices WHERE device_id = \$1 FOR UPDATE`).
		WithArgs("dev-42").
		WillReturnRows(sqlmock.NewRows(deviceColumns).AddRow(deviceRow("dev-uuid", "dev-42", "cust-1")...))

	d, err := s.LockDeviceByExternalID(context.Background(), "dev-42")

	require.NoError(t, err)
	assert.Equal(t, "dev-uuid", d.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAlertUniqueViolation(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`INSERT INTO alerts`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "alerts_unresolved_unique"})

	_, err := s.CreateAlert(context.Background(), &types.Alert{DeviceID: "dev-uuid", CustomerID: "cust-1", Type: "HIGH_CPU"})

	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateAlertRequiresCustomer(t *testing.T) {
	s, _ := newTestStorage(t)

	_, err := s.CreateAlert(context.Background(), &types.Alert{DeviceID: "dev-uuid", Type: "HIGH_CPU"})

	assert.ErrorIs(t, err, ErrMissingScope)
}

func TestDeleteAPIKeyOfAnotherTenant(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(`DELETE FROM api_keys WHERE \(?id = \$1 AND user_id = \$2\)? AND user_id IN \(SELECT id FROM users WHERE customer_id = \$3\)`).
		WithArgs("key-1", "user-1", "cust-2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := s.DeleteAPIKey(context.Background(), ForCustomer("cust-2"), "user-1", "key-1")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateUserChecksInvariant(t *testing.T) {
	s, mock := newTestStorage(t)
	cust := "cust-1"

	_, err := s.UpdateUser(context.Background(), Unscoped(), &types.User{ID: "u1", Role: types.RoleSuperAdmin, CustomerID: &cust})

	assert.ErrorIs(t, err, types.ErrSuperAdminWithCustomer)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserByEmail(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`SELECT .* FROM users WHERE email = \$1`).
		WithArgs("ops@example.com").
		WillReturnRows(
			sqlmock.NewRows(userColumns).
				AddRow("u1", "ops@example.com", "hash", "ADMIN", "cust-1", true, nil, time.Now()),
		)

	u, err := s.GetUserByEmail(context.Background(), "ops@example.com")
	require.NoError(t, err)

	assert.Equal(t, types.RoleAdmin, u.Role)
	require.NotNil(t, u.CustomerID)
	assert.Equal(t, "cust-1", *u.CustomerID)
	assert.Nil(t, u.DeletedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResolveAlertAlreadyResolved(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectQuery(`UPDATE alerts SET resolved = \$1, resolved_at = NOW\(\) WHERE \(?id = \$2 AND resolved = \$3\)? AND customer_id = \$4 RETURNING`).
		WillReturnRows(sqlmock.NewRows(alertColumns))

	_, err := s.ResolveAlert(context.Background(), ForCustomer("cust-1"), "alert-1")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestoreDeviceClosesAlertsOfPreviousOwner(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(`UPDATE alerts SET resolved = \$1, resolved_at = NOW\(\) WHERE \(?device_id = \$2 AND resolved = \$3\)? AND customer_id <> \$4`).
		WithArgs(true, "dev-uuid", false, "cust-2").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`UPDATE devices SET .* customer_id = \$\d+, user_id = \$\d+, deleted_at = \$\d+ WHERE id = \$\d+ AND deleted_at IS NOT NULL RETURNING`).
		WillReturnRows(sqlmock.NewRows(deviceColumns).AddRow(deviceRow("dev-uuid", "dev-42", "cust-2")...))

	d, err := s.RestoreDevice(context.Background(), &types.Device{ID: "dev-uuid", DeviceID: "dev-42", CustomerID: "cust-2", UserID: "user-2"})
	require.NoError(t, err)

	assert.Equal(t, "cust-2", d.CustomerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRestoreDeviceStopsWhenAlertsCannotBeClosed(t *testing.T) {
	s, mock := newTestStorage(t)

	mock.ExpectExec(`UPDATE alerts SET resolved`).WillReturnError(errors.New("connection reset"))

	_, err := s.RestoreDevice(context.Background(), &types.Device{ID: "dev-uuid", CustomerID: "cust-2", UserID: "user-2"})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
