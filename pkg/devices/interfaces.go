// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package devices

import (
	"context"
	"net/http"
	"time"

	"github.com/canonical/fleet-service/internal/commands"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/alerts"
)

// RegistrationStorageInterface reads and writes devices by external id
// across tenants. Only the reconciler uses it, inside a transaction.
type RegistrationStorageInterface interface {
	LockDeviceByExternalID(context.Context, string) (*types.Device, error)
	InsertDevice(context.Context, *types.Device) (*types.Device, bool, error)
	RestoreDevice(context.Context, *types.Device) (*types.Device, error)
	UpdateDeviceRegistration(context.Context, *types.Device) (*types.Device, error)
}

type TransactorInterface interface {
	WithTx(context.Context, func(context.Context) error) error
}

// StoreInterface is the tenant scoped device storage.
type StoreInterface interface {
	GetDevice(context.Context, types.TenantContext, string) (*types.Device, error)
	GetDeviceByExternalID(context.Context, types.TenantContext, string) (*types.Device, error)
	ListDevices(context.Context, types.TenantContext, storage.Pagination) ([]*types.Device, error)
	TouchDevice(context.Context, types.TenantContext, string, time.Time) error
	SoftDeleteDevice(context.Context, types.TenantContext, string) error
}

type AuthorizerInterface interface {
	CheckOwnerOr(context.Context, types.TenantContext, string, types.Role) bool
}

type CommandPublisherInterface interface {
	Publish(context.Context, string, commands.Command) error
}

type AlertEvaluatorInterface interface {
	Evaluate(context.Context, types.TenantContext, *types.Device, map[string]float64) ([]*alerts.Decision, error)
}

type ReconcilerInterface interface {
	Reconcile(context.Context, Registration, types.TenantContext) (*Result, error)
}

type ServiceInterface interface {
	ListDevices(context.Context, types.TenantContext, storage.Pagination) ([]*types.Device, error)
	GetDevice(context.Context, types.TenantContext, string) (*types.Device, error)
	DeleteDevice(context.Context, types.TenantContext, string) error
	SendCommand(context.Context, types.TenantContext, string, CommandRequest) (*commands.Command, error)
	Heartbeat(context.Context, types.TenantContext, Heartbeat) (*HeartbeatResult, error)
}

type RoleGuardInterface interface {
	RequireRole(types.Role) func(http.Handler) http.Handler
}

type SchemeGuardInterface interface {
	RequireScheme(types.AuthScheme) func(http.Handler) http.Handler
}
