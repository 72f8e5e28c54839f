// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"time"

	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/types"
)

// ScopedStoreInterface is the tenant aware view of the storage layer.
// Every method takes the tenant context of the caller.
type ScopedStoreInterface interface {
	GetDevice(context.Context, types.TenantContext, string) (*types.Device, error)
	GetDeviceByExternalID(context.Context, types.TenantContext, string) (*types.Device, error)
	ListDevices(context.Context, types.TenantContext, storage.Pagination) ([]*types.Device, error)
	TouchDevice(context.Context, types.TenantContext, string, time.Time) error
	SoftDeleteDevice(context.Context, types.TenantContext, string) error
	GetUnresolvedAlert(context.Context, types.TenantContext, string, string) (*types.Alert, error)
	CreateAlert(context.Context, types.TenantContext, *types.Alert) (*types.Alert, error)
	ListAlerts(context.Context, types.TenantContext, storage.AlertFilter, storage.Pagination) ([]*types.Alert, error)
	AcknowledgeAlert(context.Context, types.TenantContext, string) (*types.Alert, error)
	ResolveAlert(context.Context, types.TenantContext, string) (*types.Alert, error)
	GetUser(context.Context, types.TenantContext, string) (*types.User, error)
	ListUsers(context.Context, types.TenantContext, storage.Pagination) ([]*types.User, error)
	CreateUser(context.Context, types.TenantContext, *types.User) (*types.User, error)
	UpdateUser(context.Context, types.TenantContext, *types.User) (*types.User, error)
	CreateAPIKey(context.Context, types.TenantContext, *types.APIKey) (*types.APIKey, error)
	ListAPIKeys(context.Context, types.TenantContext) ([]*types.APIKey, error)
	DeleteAPIKey(context.Context, types.TenantContext, string) error
}

// StorageInterface is the subset of internal/storage behind ScopedStore.
type StorageInterface interface {
	CreateUser(context.Context, *types.User) (*types.User, error)
	GetUser(context.Context, storage.Scope, string) (*types.User, error)
	ListUsers(context.Context, storage.Scope, storage.Pagination) ([]*types.User, error)
	UpdateUser(context.Context, storage.Scope, *types.User) (*types.User, error)
	CreateAPIKey(context.Context, *types.APIKey) (*types.APIKey, error)
	ListAPIKeys(context.Context, storage.Scope, string) ([]*types.APIKey, error)
	DeleteAPIKey(context.Context, storage.Scope, string, string) error
	GetUnresolvedAlert(context.Context, storage.Scope, string, string) (*types.Alert, error)
	CreateAlert(context.Context, *types.Alert) (*types.Alert, error)
	ListAlerts(context.Context, storage.Scope, storage.AlertFilter, storage.Pagination) ([]*types.Alert, error)
	AcknowledgeAlert(context.Context, storage.Scope, string) (*types.Alert, error)
	ResolveAlert(context.Context, storage.Scope, string) (*types.Alert, error)
	GetDevice(context.Context, storage.Scope, string) (*types.Device, error)
	GetDeviceByExternalID(context.Context, storage.Scope, string) (*types.Device, error)
	ListDevices(context.Context, storage.Scope, storage.Pagination) ([]*types.Device, error)
	TouchDevice(context.Context, storage.Scope, string, time.Time) error
	SoftDeleteDevice(context.Context, storage.Scope, string) error
}
