// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package alerts

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/fleet-service/internal/events"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

var _ DeduplicatorInterface = (*Deduplicator)(nil)

type Outcome string

const (
	OutcomeCreated    Outcome = "created"
	OutcomeSuppressed Outcome = "suppressed"
)

type Candidate struct {
	DeviceID   string
	CustomerID string
	Type       string
	Severity   types.Severity
	Message    string
	Value      float64
}

// Decision carries the created alert, or the open one that suppressed the
// candidate when it could be read back.
type Decision struct {
	Outcome Outcome
	Type    string
	Alert   *types.Alert
}

// Deduplicator keeps at most one unresolved alert per device and type.
type Deduplicator struct {
	store  StoreInterface
	events EventPublisherInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *Deduplicator) ConsiderAlert(ctx context.Context, tc types.TenantContext, c Candidate) (*Decision, error) {
	ctx, span := d.tracer.Start(ctx, "alerts.Deduplicator.ConsiderAlert")
	defer span.End()

	existing, err := d.store.GetUnresolvedAlert(ctx, tc, c.DeviceID, c.Type)
	if err == nil {
		return &Decision{Outcome: OutcomeSuppressed, Type: c.Type, Alert: existing}, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up open %s alert: %w", c.Type, err)
	}

	created, err := d.store.CreateAlert(
		ctx,
		tc,
		&types.Alert{
			DeviceID:   c.DeviceID,
			CustomerID: c.CustomerID,
			Type:       c.Type,
			Severity:   c.Severity,
			Message:    c.Message,
			Value:      c.Value,
		},
	)

	// a concurrent sample won the unique index
	if errors.Is(err, storage.ErrDuplicateKey) {
		d.logger.Debugf("concurrent %s alert for device %s, suppressing", c.Type, c.DeviceID)
		return &Decision{Outcome: OutcomeSuppressed, Type: c.Type}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create %s alert: %w", c.Type, err)
	}

	d.publish(ctx, created)

	return &Decision{Outcome: OutcomeCreated, Type: c.Type, Alert: created}, nil
}

func (d *Deduplicator) publish(ctx context.Context, a *types.Alert) {
	err := d.events.Publish(
		ctx,
		events.RoutingKeyAlertCreated,
		events.Event{CustomerID: a.CustomerID, Data: a},
	)
	if err != nil {
		d.logger.Warnf("failed to publish alert %s: %v", a.ID, err)
	}
}

func NewDeduplicator(
	store StoreInterface,
	publisher EventPublisherInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Deduplicator {
	return &Deduplicator{
		store:   store,
		events:  publisher,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
