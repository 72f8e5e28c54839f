// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorize reports whether the context holds at least the required role.
// A context with an invalid role is never authorized.
func Authorize(tc types.TenantContext, required types.Role) bool {
	if tc.IsZero() || !tc.Role().Valid() || !required.Valid() {
		return false
	}

	return tc.Role().Rank() >= required.Rank()
}

type Authorizer struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, tc types.TenantContext, required types.Role) bool {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return Authorize(tc, required)
}

// CheckOwnerOr authorizes the owner of a resource regardless of role,
// anyone else needs the required role.
func (a *Authorizer) CheckOwnerOr(ctx context.Context, tc types.TenantContext, ownerID string, required types.Role) bool {
	_, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckOwnerOr")
	defer span.End()

	if !tc.IsZero() && ownerID != "" && tc.UserID() == ownerID {
		return true
	}

	return Authorize(tc, required)
}

// CanAssignRole reports whether the context may hand out role to another
// user: never above its own, and SUPERADMIN only by a SUPERADMIN.
func (a *Authorizer) CanAssignRole(tc types.TenantContext, role types.Role) bool {
	if !role.Valid() || !Authorize(tc, RoleManagers) {
		return false
	}

	if role == types.RoleSuperAdmin {
		return tc.IsSuperAdmin()
	}

	return tc.Role().Rank() >= role.Rank()
}

func NewAuthorizer(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)
	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
