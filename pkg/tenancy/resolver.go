// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"context"
	"fmt"
	"strings"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

// Resolver turns a verified credential into the tenant context of the
// request.
type Resolver struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Resolve binds the context to the api key's customer when the key is
// narrowed, to the user's customer otherwise. override only applies to a
// SUPERADMIN, for whom it selects the target tenant; it is ignored for
// everyone else.
func (r *Resolver) Resolve(ctx context.Context, cred *types.Credential, override string) (types.TenantContext, error) {
	_, span := r.tracer.Start(ctx, "tenancy.Resolver.Resolve")
	defer span.End()

	if cred == nil {
		return types.TenantContext{}, ErrMissingTenantContext
	}

	customerID := deref(cred.CustomerID)
	narrowed := deref(cred.APIKeyCustomerID)

	if cred.Role == types.RoleSuperAdmin {
		tc, err := types.NewTenantContext(cred.UserID, cred.Role, "", cred.Scheme)
		if err != nil {
			return types.TenantContext{}, err
		}

		// a narrowed key pins the target, the header cannot widen it
		target := strings.TrimSpace(override)
		if narrowed != "" {
			target = narrowed
		}

		if target != "" {
			tc = tc.WithTarget(target)
		}

		return tc, nil
	}

	if customerID == "" {
		r.logger.Security().TenantIntegrityViolation(
			cred.UserID,
			"non super admin credential without customer",
			logging.WithLabel("scheme", string(cred.Scheme)),
			logging.WithLabel("role", cred.Role.String()),
		)
		return types.TenantContext{}, ErrMissingTenantContext
	}

	// the owner may have moved customer since the key was narrowed
	if narrowed != "" && narrowed != customerID {
		r.logger.Security().TenantIntegrityViolation(
			cred.UserID,
			"api key narrowed to a customer other than its owner's",
			logging.WithLabel("customer", customerID),
			logging.WithLabel("key_customer", narrowed),
		)
		return types.TenantContext{}, ErrKeyScopeMismatch
	}

	tc, err := types.NewTenantContext(cred.UserID, cred.Role, customerID, cred.Scheme)
	if err != nil {
		r.logger.Security().TenantIntegrityViolation(cred.UserID, err.Error())
		return types.TenantContext{}, fmt.Errorf("%w: %v", ErrMissingTenantContext, err)
	}

	return tc, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func NewResolver(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Resolver {
	return &Resolver{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
