// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"testing"
)

func TestNewTenantContext(t *testing.T) {
	tests := []struct {
		name       string
		role       Role
		customerID string
		err        error
	}{
		{name: "user bound to customer", role: RoleUser, customerID: "cust-1"},
		{name: "readonly bound to customer", role: RoleReadOnly, customerID: "cust-1"},
		{name: "admin without customer", role: RoleAdmin, err: ErrTenantContextInvariant},
		{name: "super admin without customer", role: RoleSuperAdmin},
		{name: "super admin bound to customer", role: RoleSuperAdmin, customerID: "cust-1", err: ErrTenantContextInvariant},
		{name: "invalid role", role: Role(7), customerID: "cust-1", err: ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc, err := NewTenantContext("user-1", tt.role, tt.customerID, SchemeSession)

			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("expected error %v, got %v", tt.err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			_, bound := tc.CustomerID()
			if tc.IsSuperAdmin() == bound {
				t.Errorf("invariant broken: superadmin=%v bound=%v", tc.IsSuperAdmin(), bound)
			}

			if tc.IsSuperAdmin() != (tc.Role() == RoleSuperAdmin) {
				t.Errorf("invariant broken: superadmin=%v role=%s", tc.IsSuperAdmin(), tc.Role())
			}
		})
	}
}

func TestTenantContextWithTarget(t *testing.T) {
	sa, _ := NewTenantContext("root", RoleSuperAdmin, "", SchemeSession)
	targeted := sa.WithTarget("cust-9")

	if _, ok := sa.TargetCustomerID(); ok {
		t.Error("expected the original context to be left untouched")
	}

	if target, ok := targeted.TargetCustomerID(); !ok || target != "cust-9" {
		t.Errorf("expected target cust-9, got %q", target)
	}

	if _, bound := targeted.CustomerID(); bound {
		t.Error("expected the target not to become the binding")
	}

	if effective, ok := targeted.EffectiveCustomerID(); !ok || effective != "cust-9" {
		t.Errorf("expected effective customer cust-9, got %q", effective)
	}

	user, _ := NewTenantContext("u1", RoleUser, "cust-1", SchemeAPIKey)
	overridden := user.WithTarget("cust-2")

	if _, ok := overridden.TargetCustomerID(); ok {
		t.Error("expected override to be ignored for non super admin")
	}

	if effective, _ := overridden.EffectiveCustomerID(); effective != "cust-1" {
		t.Errorf("expected effective customer cust-1, got %q", effective)
	}
}
