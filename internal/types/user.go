// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"time"
)

var (
	ErrSuperAdminWithCustomer = errors.New("super admin users cannot be bound to a customer")
	ErrUserWithoutCustomer    = errors.New("users below super admin must be bound to a customer")
)

type User struct {
	ID           string     `db:"id" json:"id"`
	Email        string     `db:"email" json:"email"`
	PasswordHash string     `db:"password_hash" json:"-"`
	Role         Role       `db:"role" json:"role"`
	CustomerID   *string    `db:"customer_id" json:"customer_id,omitempty"`
	Active       bool       `db:"active" json:"active"`
	DeletedAt    *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

func (u *User) Deleted() bool {
	return u.DeletedAt != nil
}

// Validate checks the role/customer invariant. It runs on every create and
// every update, not only when the user is first provisioned.
func (u *User) Validate() error {
	if !u.Role.Valid() {
		return ErrUnknownRole
	}

	hasCustomer := u.CustomerID != nil && *u.CustomerID != ""

	switch {
	case u.Role == RoleSuperAdmin && hasCustomer:
		return ErrSuperAdminWithCustomer
	case u.Role != RoleSuperAdmin && !hasCustomer:
		return ErrUserWithoutCustomer
	}

	return nil
}
