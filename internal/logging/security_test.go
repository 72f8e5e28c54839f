// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSecurityLoggerEvents(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	s := NewSecurityLogger(zap.New(core))

	s.SystemStartup()
	s.AuthzFailure("user-1", "devices")
	s.TenantIntegrityViolation("user-2", "no customer bound", WithRequest("10.0.0.1", "req-1"))
	s.AdminAction("admin-1", "create_user", "user-3")

	entries := logs.All()
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	expected := []string{
		"sys_startup:fleet-service",
		"authz_fail:user-1,devices",
		"tenant_integrity_violation:user-2",
		"admin_action:admin-1,create_user,user-3",
	}

	for i, e := range entries {
		if got := e.ContextMap()["event"]; got != expected[i] {
			t.Errorf("expected event %q, got %q", expected[i], got)
		}
	}

	if entries[2].Level != zap.ErrorLevel {
		t.Errorf("expected integrity violations to be logged at error level, got %s", entries[2].Level)
	}

	if got := entries[2].ContextMap()["source_ip"]; got != "10.0.0.1" {
		t.Errorf("expected source_ip to be set, got %v", got)
	}
}
