// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package alerts

import (
	"context"
	"net/http"

	"github.com/canonical/fleet-service/internal/events"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/types"
)

// StoreInterface is the tenant scoped alert storage.
type StoreInterface interface {
	GetUnresolvedAlert(context.Context, types.TenantContext, string, string) (*types.Alert, error)
	CreateAlert(context.Context, types.TenantContext, *types.Alert) (*types.Alert, error)
	ListAlerts(context.Context, types.TenantContext, storage.AlertFilter, storage.Pagination) ([]*types.Alert, error)
	AcknowledgeAlert(context.Context, types.TenantContext, string) (*types.Alert, error)
	ResolveAlert(context.Context, types.TenantContext, string) (*types.Alert, error)
}

type EventPublisherInterface interface {
	Publish(context.Context, string, events.Event) error
}

type DeduplicatorInterface interface {
	ConsiderAlert(context.Context, types.TenantContext, Candidate) (*Decision, error)
}

type ServiceInterface interface {
	Evaluate(context.Context, types.TenantContext, *types.Device, map[string]float64) ([]*Decision, error)
	ListAlerts(context.Context, types.TenantContext, storage.AlertFilter, storage.Pagination) ([]*types.Alert, error)
	AcknowledgeAlert(context.Context, types.TenantContext, string) (*types.Alert, error)
	ResolveAlert(context.Context, types.TenantContext, string) (*types.Alert, error)
}

type RoleGuardInterface interface {
	RequireRole(types.Role) func(http.Handler) http.Handler
}
