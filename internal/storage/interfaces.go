// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/fleet-service/internal/types"
)

type StorageInterface interface {
	UserStorageInterface
	SessionStorageInterface
	APIKeyStorageInterface
	DeviceStorageInterface
	AlertStorageInterface
}

type UserStorageInterface interface {
	CreateUser(ctx context.Context, u *types.User) (*types.User, error)
	GetUser(ctx context.Context, scope Scope, id string) (*types.User, error)
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	ListUsers(ctx context.Context, scope Scope, page Pagination) ([]*types.User, error)
	UpdateUser(ctx context.Context, scope Scope, u *types.User) (*types.User, error)
}

type SessionStorageInterface interface {
	CreateSession(ctx context.Context, s *types.Session) (*types.Session, error)
	GetSessionByTokenHash(ctx context.Context, tokenHash string) (*types.Session, error)
	RevokeSession(ctx context.Context, id string) error
	PurgeExpiredSessions(ctx context.Context, before time.Time) (int64, error)
}

type APIKeyStorageInterface interface {
	CreateAPIKey(ctx context.Context, k *types.APIKey) (*types.APIKey, error)
	GetAPIKeyByHash(ctx context.Context, keyHash string) (*types.APIKey, error)
	ListAPIKeys(ctx context.Context, scope Scope, userID string) ([]*types.APIKey, error)
	DeleteAPIKey(ctx context.Context, scope Scope, userID, id string) error
	TouchAPIKey(ctx context.Context, id string, at time.Time) error
}

type DeviceStorageInterface interface {
	LockDeviceByExternalID(ctx context.Context, deviceID string) (*types.Device, error)
	InsertDevice(ctx context.Context, d *types.Device) (*types.Device, bool, error)
	RestoreDevice(ctx context.Context, d *types.Device) (*types.Device, error)
	UpdateDeviceRegistration(ctx context.Context, d *types.Device) (*types.Device, error)
	GetDevice(ctx context.Context, scope Scope, id string) (*types.Device, error)
	GetDeviceByExternalID(ctx context.Context, scope Scope, deviceID string) (*types.Device, error)
	ListDevices(ctx context.Context, scope Scope, page Pagination) ([]*types.Device, error)
	TouchDevice(ctx context.Context, scope Scope, id string, at time.Time) error
	SoftDeleteDevice(ctx context.Context, scope Scope, id string) error
	MarkStaleDevicesOffline(ctx context.Context, before time.Time) (int64, error)
}

type AlertStorageInterface interface {
	GetUnresolvedAlert(ctx context.Context, scope Scope, deviceID, alertType string) (*types.Alert, error)
	CreateAlert(ctx context.Context, a *types.Alert) (*types.Alert, error)
	ListAlerts(ctx context.Context, scope Scope, filter AlertFilter, page Pagination) ([]*types.Alert, error)
	AcknowledgeAlert(ctx context.Context, scope Scope, id string) (*types.Alert, error)
	ResolveAlert(ctx context.Context, scope Scope, id string) (*types.Alert, error)
}

// Pagination is a 1-based page number and a page size, zero values fall
// back to the first page of the default size.
type Pagination struct {
	Page int64
	Size int64
}

type AlertFilter struct {
	DeviceID string
	Resolved *bool
}
