// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRoleRankStrictlyIncreasing(t *testing.T) {
	roles := Roles()
	for i := 1; i < len(roles); i++ {
		if roles[i].Rank() <= roles[i-1].Rank() {
			t.Errorf("expected rank(%s) > rank(%s)", roles[i], roles[i-1])
		}
	}
}

func TestParseRole(t *testing.T) {
	tests := []struct {
		input    string
		expected Role
		err      error
	}{
		{input: "READONLY", expected: RoleReadOnly},
		{input: "user", expected: RoleUser},
		{input: " Admin ", expected: RoleAdmin},
		{input: "SUPERADMIN", expected: RoleSuperAdmin},
		{input: "OWNER", err: ErrUnknownRole},
		{input: "", err: ErrUnknownRole},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			role, err := ParseRole(tt.input)

			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("expected error %v, got %v", tt.err, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if role != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, role)
			}
		})
	}
}

func TestRoleJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Role Role `json:"role"`
	}{Role: RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(b) != `{"role":"ADMIN"}` {
		t.Errorf("unexpected encoding %s", b)
	}

	var out struct {
		Role Role `json:"role"`
	}
	if err := json.Unmarshal([]byte(`{"role":"GOD"}`), &out); err == nil {
		t.Error("expected unknown role to be rejected")
	}
}

func TestRoleScan(t *testing.T) {
	var r Role
	if err := r.Scan([]byte("USER")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r != RoleUser {
		t.Errorf("expected USER, got %s", r)
	}

	if err := r.Scan(42); err == nil {
		t.Error("expected error scanning an int")
	}

	if _, err := Role(9).Value(); !errors.Is(err, ErrUnknownRole) {
		t.Errorf("expected ErrUnknownRole, got %v", err)
	}
}
