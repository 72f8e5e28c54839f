// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"time"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

var _ ScopedStoreInterface = (*ScopedStore)(nil)

// ScopedStore applies the tenant context of the caller to every storage
// call. Rows of other tenants are indistinguishable from missing ones.
type ScopedStore struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *ScopedStore) GetDevice(ctx context.Context, tc types.TenantContext, id string) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.GetDevice")
	defer span.End()

	return s.storage.GetDevice(ctx, ScopeFor(tc), id)
}

func (s *ScopedStore) GetDeviceByExternalID(ctx context.Context, tc types.TenantContext, deviceID string) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.GetDeviceByExternalID")
	defer span.End()

	return s.storage.GetDeviceByExternalID(ctx, ScopeFor(tc), deviceID)
}

func (s *ScopedStore) ListDevices(ctx context.Context, tc types.TenantContext, page storage.Pagination) ([]*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.ListDevices")
	defer span.End()

	return s.storage.ListDevices(ctx, ScopeFor(tc), page)
}

func (s *ScopedStore) TouchDevice(ctx context.Context, tc types.TenantContext, id string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.TouchDevice")
	defer span.End()

	return s.storage.TouchDevice(ctx, ScopeFor(tc), id, at)
}

func (s *ScopedStore) SoftDeleteDevice(ctx context.Context, tc types.TenantContext, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.SoftDeleteDevice")
	defer span.End()

	return s.storage.SoftDeleteDevice(ctx, ScopeFor(tc), id)
}

func (s *ScopedStore) GetUnresolvedAlert(ctx context.Context, tc types.TenantContext, deviceID, alertType string) (*types.Alert, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.GetUnresolvedAlert")
	defer span.End()

	return s.storage.GetUnresolvedAlert(ctx, ScopeFor(tc), deviceID, alertType)
}

func (s *ScopedStore) CreateAlert(ctx context.Context, tc types.TenantContext, a *types.Alert) (*types.Alert, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.CreateAlert")
	defer span.End()

	customerID, err := owningCustomer(tc, a.CustomerID)
	if err != nil {
		return nil, err
	}

	a.CustomerID = customerID

	return s.storage.CreateAlert(ctx, a)
}

func (s *ScopedStore) ListAlerts(ctx context.Context, tc types.TenantContext, filter storage.AlertFilter, page storage.Pagination) ([]*types.Alert, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.ListAlerts")
	defer span.End()

	return s.storage.ListAlerts(ctx, ScopeFor(tc), filter, page)
}

func (s *ScopedStore) AcknowledgeAlert(ctx context.Context, tc types.TenantContext, id string) (*types.Alert, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.AcknowledgeAlert")
	defer span.End()

	return s.storage.AcknowledgeAlert(ctx, ScopeFor(tc), id)
}

func (s *ScopedStore) ResolveAlert(ctx context.Context, tc types.TenantContext, id string) (*types.Alert, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.ResolveAlert")
	defer span.End()

	return s.storage.ResolveAlert(ctx, ScopeFor(tc), id)
}

func (s *ScopedStore) GetUser(ctx context.Context, tc types.TenantContext, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.GetUser")
	defer span.End()

	return s.storage.GetUser(ctx, ScopeFor(tc), id)
}

func (s *ScopedStore) ListUsers(ctx context.Context, tc types.TenantContext, page storage.Pagination) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.ListUsers")
	defer span.End()

	return s.storage.ListUsers(ctx, ScopeFor(tc), page)
}

// CreateUser places the user in the caller's tenant. Only a SUPERADMIN
// context may create users elsewhere, or without a customer.
func (s *ScopedStore) CreateUser(ctx context.Context, tc types.TenantContext, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.CreateUser")
	defer span.End()

	if err := s.confine(tc, u); err != nil {
		return nil, err
	}

	return s.storage.CreateUser(ctx, u)
}

func (s *ScopedStore) UpdateUser(ctx context.Context, tc types.TenantContext, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.UpdateUser")
	defer span.End()

	if err := s.confine(tc, u); err != nil {
		return nil, err
	}

	return s.storage.UpdateUser(ctx, ScopeFor(tc), u)
}

// CreateAPIKey issues the key to the caller. A key narrowed to a customer
// must stay within the caller's tenant.
func (s *ScopedStore) CreateAPIKey(ctx context.Context, tc types.TenantContext, k *types.APIKey) (*types.APIKey, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.CreateAPIKey")
	defer span.End()

	if tc.IsZero() {
		return nil, ErrMissingTenantContext
	}

	if k.CustomerID != nil && *k.CustomerID == "" {
		k.CustomerID = nil
	}

	if k.CustomerID != nil && !tc.IsSuperAdmin() {
		if customerID, _ := tc.CustomerID(); *k.CustomerID != customerID {
			return nil, ErrTenantMismatch
		}
	}

	k.UserID = tc.UserID()

	return s.storage.CreateAPIKey(ctx, k)
}

func (s *ScopedStore) ListAPIKeys(ctx context.Context, tc types.TenantContext) ([]*types.APIKey, error) {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.ListAPIKeys")
	defer span.End()

	return s.storage.ListAPIKeys(ctx, ownerScope(tc), tc.UserID())
}

func (s *ScopedStore) DeleteAPIKey(ctx context.Context, tc types.TenantContext, id string) error {
	ctx, span := s.tracer.Start(ctx, "tenancy.ScopedStore.DeleteAPIKey")
	defer span.End()

	return s.storage.DeleteAPIKey(ctx, ownerScope(tc), tc.UserID(), id)
}

func (s *ScopedStore) confine(tc types.TenantContext, u *types.User) error {
	if tc.IsZero() {
		return ErrMissingTenantContext
	}

	if tc.IsSuperAdmin() {
		return nil
	}

	customerID, _ := tc.CustomerID()
	if u.CustomerID != nil && *u.CustomerID != "" && *u.CustomerID != customerID {
		s.logger.Security().TenantIntegrityViolation(tc.UserID(), "user write outside of own tenant", logging.WithLabel("target", *u.CustomerID))
		return ErrTenantMismatch
	}

	u.CustomerID = &customerID

	return nil
}

// ownerScope scopes the caller's own api keys. Keys of a SUPERADMIN have
// no customer to filter on, so the owner id alone restricts them.
func ownerScope(tc types.TenantContext) storage.Scope {
	if tc.IsZero() {
		return storage.Scope{}
	}

	if tc.IsSuperAdmin() {
		return storage.Unscoped()
	}

	customerID, _ := tc.CustomerID()
	return storage.ForCustomer(customerID)
}

func owningCustomer(tc types.TenantContext, customerID string) (string, error) {
	if tc.IsZero() {
		return "", ErrMissingTenantContext
	}

	if !tc.IsSuperAdmin() {
		bound, _ := tc.CustomerID()
		if customerID != "" && customerID != bound {
			return "", ErrTenantMismatch
		}
		return bound, nil
	}

	return WriteTarget(tc, customerID)
}

func NewScopedStore(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ScopedStore {
	return &ScopedStore{
		storage: s,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
