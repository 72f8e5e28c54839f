// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/fleet-service/internal/db"
	"github.com/canonical/fleet-service/internal/types"
)

var deviceColumns = []string{
	"id", "device_id", "customer_id", "user_id", "hostname", "architecture", "model",
	"addresses", "capabilities", "status", "last_seen_at", "deleted_at", "created_at",
}

func scanDevice(row rowScanner) (*types.Device, error) {
	var d types.Device
	err := row.Scan(
		&d.ID, &d.DeviceID, &d.CustomerID, &d.UserID, &d.Hostname, &d.Architecture, &d.Model,
		(*stringList)(&d.Addresses), (*stringList)(&d.Capabilities), &d.Status, &d.LastSeenAt, &d.DeletedAt, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// LockDeviceByExternalID reads the row for an external device id, soft
// deleted or not and whatever its tenant, holding a row lock until the
// surrounding transaction ends. It must run inside db.WithTx.
func (s *Storage) LockDeviceByExternalID(ctx context.Context, deviceID string) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "storage.LockDeviceByExternalID")
	defer span.End()

	d, err := scanDevice(
		s.db.Statement(ctx).
			Select(deviceColumns...).
			From("devices").
			Where(sq.Eq{"device_id": deviceID}).
			Suffix("FOR UPDATE").
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock device: %w", err)
	}

	return d, nil
}

// InsertDevice inserts a new device unless a row with the same external id
// already exists. The boolean is false when a concurrent registration won.
func (s *Storage) InsertDevice(ctx context.Context, d *types.Device) (*types.Device, bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.InsertDevice")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, false, fmt.Errorf("failed to generate device ID: %w", err)
	}

	created, err := scanDevice(
		s.db.Statement(ctx).
			Insert("devices").
			Columns("id", "device_id", "customer_id", "user_id", "hostname", "architecture", "model", "addresses", "capabilities", "status", "last_seen_at").
			Values(id.String(), d.DeviceID, d.CustomerID, d.UserID, d.Hostname, d.Architecture, d.Model, stringList(d.Addresses), stringList(d.Capabilities), types.DeviceStatusOnline, sq.Expr("NOW()")).
			Suffix("ON CONFLICT (device_id) DO NOTHING RETURNING " + columns(deviceColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, false, nil
		}
		if IsForeignKeyViolation(err) {
			return nil, false, WrapForeignKeyError(err, "device owner does not exist")
		}
		return nil, false, fmt.Errorf("failed to insert device: %w", err)
	}

	return created, true, nil
}

// RestoreDevice brings a soft deleted device back, assigning it to the
// customer and user of d. Open alerts raised under a previous customer are
// resolved first so they neither leak to nor block the new owner. It must
// run inside db.WithTx.
func (s *Storage) RestoreDevice(ctx context.Context, d *types.Device) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "storage.RestoreDevice")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("alerts").
		Set("resolved", true).
		Set("resolved_at", sq.Expr("NOW()")).
		Where(sq.Eq{"device_id": d.ID, "resolved": false}).
		Where(sq.NotEq{"customer_id": d.CustomerID}).
		ExecContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to close alerts of previous owner: %w", err)
	}

	restored, err := scanDevice(
		s.registrationUpdate(ctx, d).
			Set("customer_id", d.CustomerID).
			Set("user_id", d.UserID).
			Set("deleted_at", nil).
			Where(sq.NotEq{"deleted_at": nil}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to restore device: %w", err)
	}

	return restored, nil
}

// UpdateDeviceRegistration refreshes the mutable fields of an active
// device without touching its ownership.
func (s *Storage) UpdateDeviceRegistration(ctx context.Context, d *types.Device) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateDeviceRegistration")
	defer span.End()

	updated, err := scanDevice(
		s.registrationUpdate(ctx, d).
			Where(sq.Eq{"deleted_at": nil, "customer_id": d.CustomerID}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update device: %w", err)
	}

	return updated, nil
}

func (s *Storage) registrationUpdate(ctx context.Context, d *types.Device) sq.UpdateBuilder {
	return s.db.Statement(ctx).
		Update("devices").
		Set("hostname", d.Hostname).
		Set("architecture", d.Architecture).
		Set("model", d.Model).
		Set("addresses", stringList(d.Addresses)).
		Set("capabilities", stringList(d.Capabilities)).
		Set("status", types.DeviceStatusOnline).
		Set("last_seen_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": d.ID}).
		Suffix("RETURNING " + columns(deviceColumns))
}

func (s *Storage) GetDevice(ctx context.Context, scope Scope, id string) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDevice")
	defer span.End()

	return s.getDevice(ctx, scope, sq.Eq{"id": id})
}

func (s *Storage) GetDeviceByExternalID(ctx context.Context, scope Scope, deviceID string) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetDeviceByExternalID")
	defer span.End()

	return s.getDevice(ctx, scope, sq.Eq{"device_id": deviceID})
}

func (s *Storage) getDevice(ctx context.Context, scope Scope, key sq.Eq) (*types.Device, error) {
	q, err := scopeSelect(
		s.db.Statement(ctx).
			Select(deviceColumns...).
			From("devices").
			Where(key).
			Where(sq.Eq{"deleted_at": nil}),
		scope,
		byColumn("customer_id"),
	)
	if err != nil {
		return nil, err
	}

	d, err := scanDevice(q.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get device: %w", err)
	}

	return d, nil
}

func (s *Storage) ListDevices(ctx context.Context, scope Scope, page Pagination) ([]*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListDevices")
	defer span.End()

	size := db.PageSize(page.Size)
	q, err := scopeSelect(
		s.db.Statement(ctx).
			Select(deviceColumns...).
			From("devices").
			Where(sq.Eq{"deleted_at": nil}).
			OrderBy("created_at").
			Limit(size).
			Offset(db.Offset(page.Page, size)),
		scope,
		byColumn("customer_id"),
	)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	devices := make([]*types.Device, 0)
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		devices = append(devices, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return devices, nil
}

func (s *Storage) TouchDevice(ctx context.Context, scope Scope, id string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.TouchDevice")
	defer span.End()

	q, err := scopeUpdate(
		s.db.Statement(ctx).
			Update("devices").
			Set("last_seen_at", at).
			Set("status", types.DeviceStatusOnline).
			Where(sq.Eq{"id": id, "deleted_at": nil}),
		scope,
		byColumn("customer_id"),
	)
	if err != nil {
		return err
	}

	res, err := q.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch device: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) SoftDeleteDevice(ctx context.Context, scope Scope, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SoftDeleteDevice")
	defer span.End()

	q, err := scopeUpdate(
		s.db.Statement(ctx).
			Update("devices").
			Set("deleted_at", sq.Expr("NOW()")).
			Set("status", types.DeviceStatusOffline).
			Where(sq.Eq{"id": id, "deleted_at": nil}),
		scope,
		byColumn("customer_id"),
	)
	if err != nil {
		return err
	}

	res, err := q.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete device: %w", err)
	}

	return expectAffected(res)
}

// MarkStaleDevicesOffline flags every online device not seen since before.
func (s *Storage) MarkStaleDevicesOffline(ctx context.Context, before time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MarkStaleDevicesOffline")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("devices").
		Set("status", types.DeviceStatusOffline).
		Where(sq.Eq{"status": types.DeviceStatusOnline, "deleted_at": nil}).
		Where(sq.Lt{"last_seen_at": before}).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark devices offline: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count offline devices: %w", err)
	}

	return n, nil
}
