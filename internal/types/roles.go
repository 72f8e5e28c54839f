// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownRole = errors.New("unknown role")

// Role is the closed, totally ordered set of roles a user can hold.
// Adding a role means extending the ordering below.
type Role int

const (
	RoleReadOnly Role = iota
	RoleUser
	RoleAdmin
	RoleSuperAdmin
)

var roleNames = [...]string{
	RoleReadOnly:   "READONLY",
	RoleUser:       "USER",
	RoleAdmin:      "ADMIN",
	RoleSuperAdmin: "SUPERADMIN",
}

// Roles lists every role in ascending rank.
func Roles() []Role {
	return []Role{RoleReadOnly, RoleUser, RoleAdmin, RoleSuperAdmin}
}

func (r Role) Valid() bool {
	return r >= RoleReadOnly && r <= RoleSuperAdmin
}

// Rank is the position of the role in the hierarchy.
func (r Role) Rank() int {
	return int(r)
}

func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", int(r))
	}
	return roleNames[r]
}

func ParseRole(s string) (Role, error) {
	for _, r := range Roles() {
		if roleNames[r] == strings.ToUpper(strings.TrimSpace(s)) {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(r))
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(b []byte) error {
	role, err := ParseRole(string(b))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// Value stores the role by name.
func (r Role) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownRole, int(r))
	}
	return r.String(), nil
}

func (r *Role) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return r.UnmarshalText([]byte(v))
	case []byte:
		return r.UnmarshalText(v)
	default:
		return fmt.Errorf("cannot scan %T into Role", src)
	}
}
