// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/fleet-service/internal/db"
	"github.com/canonical/fleet-service/internal/types"
)

var alertColumns = []string{
	"id", "device_id", "customer_id", "type", "severity", "message", "value",
	"acknowledged", "resolved", "created_at", "resolved_at",
}

func scanAlert(row rowScanner) (*types.Alert, error) {
	var a types.Alert
	err := row.Scan(
		&a.ID, &a.DeviceID, &a.CustomerID, &a.Type, &a.Severity, &a.Message, &a.Value,
		&a.Acknowledged, &a.Resolved, &a.CreatedAt, &a.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Storage) GetUnresolvedAlert(ctx context.Context, scope Scope, deviceID, alertType string) (*types.Alert, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUnresolvedAlert")
	defer span.End()

	q, err := scopeSelect(
		s.db.Statement(ctx).
			Select(alertColumns...).
			From("alerts").
			Where(sq.Eq{"device_id": deviceID, "type": alertType, "resolved": false}),
		scope,
		byColumn("customer_id"),
	)
	if err != nil {
		return nil, err
	}

	a, err := scanAlert(q.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get alert: %w", err)
	}

	return a, nil
}

// CreateAlert inserts an unresolved alert. A second unresolved alert for
// the same device and type violates alerts_unresolved_unique and surfaces
// as ErrDuplicateKey.
func (s *Storage) CreateAlert(ctx context.Context, a *types.Alert) (*types.Alert, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAlert")
	defer span.End()

	if a.CustomerID == "" {
		return nil, ErrMissingScope
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate alert ID: %w", err)
	}

	created, err := scanAlert(
		s.db.Statement(ctx).
			Insert("alerts").
			Columns("id", "device_id", "customer_id", "type", "severity", "message", "value").
			Values(id.String(), a.DeviceID, a.CustomerID, a.Type, a.Severity, a.Message, a.Value).
			Suffix("RETURNING " + columns(alertColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "unresolved alert already exists")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "alert device does not exist")
		}
		return nil, fmt.Errorf("failed to insert alert: %w", err)
	}

	return created, nil
}

func (s *Storage) ListAlerts(ctx context.Context, scope Scope, filter AlertFilter, page Pagination) ([]*types.Alert, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAlerts")
	defer span.End()

	size := db.PageSize(page.Size)
	query := s.db.Statement(ctx).
		Select(alertColumns...).
		From("alerts").
		OrderBy("created_at DESC").
		Limit(size).
		Offset(db.Offset(page.Page, size))

	if filter.DeviceID != "" {
		query = query.Where(sq.Eq{"device_id": filter.DeviceID})
	}

	if filter.Resolved != nil {
		query = query.Where(sq.Eq{"resolved": *filter.Resolved})
	}

	q, err := scopeSelect(query, scope, byColumn("customer_id"))
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*types.Alert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return alerts, nil
}

func (s *Storage) AcknowledgeAlert(ctx context.Context, scope Scope, id string) (*types.Alert, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AcknowledgeAlert")
	defer span.End()

	return s.updateAlert(
		ctx,
		scope,
		s.db.Statement(ctx).
			Update("alerts").
			Set("acknowledged", true).
			Where(sq.Eq{"id": id}),
	)
}

// ResolveAlert closes an alert, freeing its (device, type) slot for the
// next breach.
func (s *Storage) ResolveAlert(ctx context.Context, scope Scope, id string) (*types.Alert, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ResolveAlert")
	defer span.End()

	return s.updateAlert(
		ctx,
		scope,
		s.db.Statement(ctx).
			Update("alerts").
			Set("resolved", true).
			Set("resolved_at", sq.Expr("NOW()")).
			Where(sq.Eq{"id": id, "resolved": false}),
	)
}

func (s *Storage) updateAlert(ctx context.Context, scope Scope, update sq.UpdateBuilder) (*types.Alert, error) {
	q, err := scopeUpdate(update.Suffix("RETURNING "+columns(alertColumns)), scope, byColumn("customer_id"))
	if err != nil {
		return nil, err
	}

	a, err := scanAlert(q.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update alert: %w", err)
	}

	return a, nil
}
