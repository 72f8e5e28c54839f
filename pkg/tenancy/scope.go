// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"strings"

	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/types"
)

// ScopeFor converts a tenant context into the storage scope of its reads.
// A SUPERADMIN reads across tenants unless a target was selected. The
// zero context yields the zero scope, which storage rejects.
func ScopeFor(tc types.TenantContext) storage.Scope {
	if tc.IsZero() {
		return storage.Scope{}
	}

	if tc.IsSuperAdmin() {
		if target, ok := tc.TargetCustomerID(); ok {
			return storage.ForCustomer(target)
		}
		return storage.Unscoped()
	}

	customerID, _ := tc.CustomerID()
	return storage.ForCustomer(customerID)
}

// WriteTarget is the customer a tenant owned write lands in. Regular users
// always write into their binding and requested is ignored. A SUPERADMIN
// must name the customer, in the payload or through the override, and
// the two must agree when both are given.
func WriteTarget(tc types.TenantContext, requested string) (string, error) {
	if tc.IsZero() {
		return "", ErrMissingTenantContext
	}

	if !tc.IsSuperAdmin() {
		customerID, ok := tc.CustomerID()
		if !ok {
			return "", ErrMissingTenantContext
		}
		return customerID, nil
	}

	requested = strings.TrimSpace(requested)
	target, hasTarget := tc.TargetCustomerID()

	switch {
	case hasTarget && requested != "" && requested != target:
		return "", ErrTenantMismatch
	case hasTarget:
		return target, nil
	case requested != "":
		return requested, nil
	}

	return "", ErrTargetRequired
}
