// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
)

var ErrTenantContextInvariant = errors.New("super admin status must match the absence of a customer binding")

type AuthScheme string

const (
	SchemeSession AuthScheme = "session"
	SchemeAPIKey  AuthScheme = "api_key"
)

// TenantContext is the identity and data scope of a single request.
// It has no setters: the only ways to obtain one are NewTenantContext and
// WithTarget, both of which return a new value.
type TenantContext struct {
	userID     string
	role       Role
	customerID string
	superAdmin bool
	target     string
	scheme     AuthScheme
}

// NewTenantContext builds a context bound to customerID. A SUPERADMIN
// must not be bound to a customer, every other role must be.
func NewTenantContext(userID string, role Role, customerID string, scheme AuthScheme) (TenantContext, error) {
	if !role.Valid() {
		return TenantContext{}, ErrUnknownRole
	}

	superAdmin := role == RoleSuperAdmin
	if superAdmin != (customerID == "") {
		return TenantContext{}, ErrTenantContextInvariant
	}

	return TenantContext{
		userID:     userID,
		role:       role,
		customerID: customerID,
		superAdmin: superAdmin,
		scheme:     scheme,
	}, nil
}

// WithTarget returns a copy of a SUPERADMIN context aimed at customerID.
// The target never becomes the binding; for any other role the receiver is
// returned unchanged.
func (tc TenantContext) WithTarget(customerID string) TenantContext {
	if !tc.superAdmin {
		return tc
	}
	tc.target = customerID
	return tc
}

func (tc TenantContext) UserID() string {
	return tc.userID
}

func (tc TenantContext) Role() Role {
	return tc.role
}

// CustomerID is the tenant the context is bound to, absent for SUPERADMIN.
func (tc TenantContext) CustomerID() (string, bool) {
	return tc.customerID, tc.customerID != ""
}

func (tc TenantContext) IsSuperAdmin() bool {
	return tc.superAdmin
}

func (tc TenantContext) TargetCustomerID() (string, bool) {
	return tc.target, tc.target != ""
}

func (tc TenantContext) Scheme() AuthScheme {
	return tc.scheme
}

// EffectiveCustomerID is the tenant a write should land in: the binding for
// regular users, the explicit target for SUPERADMIN.
func (tc TenantContext) EffectiveCustomerID() (string, bool) {
	if tc.superAdmin {
		return tc.TargetCustomerID()
	}
	return tc.CustomerID()
}

func (tc TenantContext) IsZero() bool {
	return tc.userID == ""
}
