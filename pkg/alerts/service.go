// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package alerts

import (
	"context"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store        StoreInterface
	deduplicator DeduplicatorInterface
	rules        *Rules

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Evaluate runs a heartbeat sample of device through the threshold rules
// and hands every breach to the deduplicator.
func (s *Service) Evaluate(ctx context.Context, tc types.TenantContext, device *types.Device, sample map[string]float64) ([]*Decision, error) {
	ctx, span := s.tracer.Start(ctx, "alerts.Service.Evaluate")
	defer span.End()

	breaches := s.rules.Evaluate(sample)
	decisions := make([]*Decision, 0, len(breaches))

	for _, b := range breaches {
		decision, err := s.deduplicator.ConsiderAlert(
			ctx,
			tc,
			Candidate{
				DeviceID:   device.ID,
				CustomerID: device.CustomerID,
				Type:       b.Rule.Type,
				Severity:   b.Severity,
				Message:    b.Message(),
				Value:      b.Value,
			},
		)
		if err != nil {
			return decisions, err
		}

		decisions = append(decisions, decision)
	}

	return decisions, nil
}

func (s *Service) ListAlerts(ctx context.Context, tc types.TenantContext, filter storage.AlertFilter, page storage.Pagination) ([]*types.Alert, error) {
	ctx, span := s.tracer.Start(ctx, "alerts.Service.ListAlerts")
	defer span.End()

	return s.store.ListAlerts(ctx, tc, filter, page)
}

func (s *Service) AcknowledgeAlert(ctx context.Context, tc types.TenantContext, id string) (*types.Alert, error) {
	ctx, span := s.tracer.Start(ctx, "alerts.Service.AcknowledgeAlert")
	defer span.End()

	return s.store.AcknowledgeAlert(ctx, tc, id)
}

// ResolveAlert closes an alert, the next breach of the same type opens a
// new one.
func (s *Service) ResolveAlert(ctx context.Context, tc types.TenantContext, id string) (*types.Alert, error) {
	ctx, span := s.tracer.Start(ctx, "alerts.Service.ResolveAlert")
	defer span.End()

	return s.store.ResolveAlert(ctx, tc, id)
}

func NewService(
	store StoreInterface,
	deduplicator DeduplicatorInterface,
	rules *Rules,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		store:        store,
		deduplicator: deduplicator,
		rules:        rules,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}
