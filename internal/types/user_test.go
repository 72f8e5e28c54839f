// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"testing"
	"time"
)

func TestUserValidate(t *testing.T) {
	cust := "cust-1"
	empty := ""

	tests := []struct {
		name string
		user User
		err  error
	}{
		{name: "user with customer", user: User{Role: RoleUser, CustomerID: &cust}},
		{name: "admin without customer", user: User{Role: RoleAdmin}, err: ErrUserWithoutCustomer},
		{name: "readonly with empty customer", user: User{Role: RoleReadOnly, CustomerID: &empty}, err: ErrUserWithoutCustomer},
		{name: "super admin without customer", user: User{Role: RoleSuperAdmin}},
		{name: "super admin with customer", user: User{Role: RoleSuperAdmin, CustomerID: &cust}, err: ErrSuperAdminWithCustomer},
		{name: "unknown role", user: User{Role: Role(-1), CustomerID: &cust}, err: ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if !errors.Is(err, tt.err) {
				t.Errorf("expected error %v, got %v", tt.err, err)
			}
		})
	}
}

func TestSessionValid(t *testing.T) {
	now := time.Now()
	revoked := now.Add(-time.Minute)

	tests := []struct {
		name     string
		session  Session
		expected bool
	}{
		{name: "live", session: Session{ExpiresAt: now.Add(time.Hour)}, expected: true},
		{name: "expired", session: Session{ExpiresAt: now.Add(-time.Second)}},
		{name: "expires exactly now", session: Session{ExpiresAt: now}},
		{name: "revoked", session: Session{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.session.Valid(now); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
