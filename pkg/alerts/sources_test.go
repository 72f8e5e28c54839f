// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package alerts

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package alerts -destination ./mock_interfaces.go -source=./interfaces.go

func tenantContext(t *testing.T, role types.Role, customerID string) types.TenantContext {
	t.Helper()

	tc, err := types.NewTenantContext("u1", role, customerID, types.SchemeAPIKey)
	if err != nil {
		t.Fatalf("failed to build tenant context: %v", err)
	}
	return tc
}

// memoryAlerts enforces one unresolved alert per device and type the way
// the partial unique index does.
type memoryAlerts struct {
	mu     sync.Mutex
	alerts []*types.Alert
}

func (m *memoryAlerts) GetUnresolvedAlert(_ context.Context, _ types.TenantContext, deviceID, alertType string) (*types.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.alerts {
		if a.DeviceID == deviceID && a.Type == alertType && !a.Resolved {
			return a, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memoryAlerts) CreateAlert(_ context.Context, _ types.TenantContext, a *types.Alert) (*types.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.alerts {
		if existing.DeviceID == a.DeviceID && existing.Type == a.Type && !existing.Resolved {
			return nil, storage.ErrDuplicateKey
		}
	}

	a.ID = fmt.Sprintf("a%d", len(m.alerts)+1)
	m.alerts = append(m.alerts, a)
	return a, nil
}

func (m *memoryAlerts) ListAlerts(context.Context, types.TenantContext, storage.AlertFilter, storage.Pagination) ([]*types.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]*types.Alert(nil), m.alerts...), nil
}

func (m *memoryAlerts) AcknowledgeAlert(_ context.Context, _ types.TenantContext, id string) (*types.Alert, error) {
	return m.update(id, func(a *types.Alert) { a.Acknowledged = true })
}

func (m *memoryAlerts) ResolveAlert(_ context.Context, _ types.TenantContext, id string) (*types.Alert, error) {
	return m.update(id, func(a *types.Alert) { a.Resolved = true })
}

func (m *memoryAlerts) update(id string, fn func(*types.Alert)) (*types.Alert, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.alerts {
		if a.ID == id {
			fn(a)
			return a, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memoryAlerts) unresolved(deviceID, alertType string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for _, a := range m.alerts {
		if a.DeviceID == deviceID && a.Type == alertType && !a.Resolved {
			n++
		}
	}
	return n
}
