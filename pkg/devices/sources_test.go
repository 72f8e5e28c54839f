// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package devices

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package devices -destination ./mock_interfaces.go -source=./interfaces.go

func tenantContext(t *testing.T, userID string, role types.Role, customerID string) types.TenantContext {
	t.Helper()

	tc, err := types.NewTenantContext(userID, role, customerID, types.SchemeAPIKey)
	if err != nil {
		t.Fatalf("failed to build tenant context: %v", err)
	}
	return tc
}

func registration(deviceID string) Registration {
	return Registration{
		DeviceID:     deviceID,
		Hostname:     "edge-01",
		Architecture: "arm64",
		Addresses:    []string{"10.0.0.4"},
	}
}

// memoryRegistry stores devices by external id. WithTx holds a single
// lock for the whole transaction, like the row lock taken by the storage.
type memoryRegistry struct {
	mu      sync.Mutex
	seq     int
	devices map[string]*types.Device
}

func newMemoryRegistry() *memoryRegistry {
	return &memoryRegistry{devices: make(map[string]*types.Device)}
}

func (m *memoryRegistry) WithTx(ctx context.Context, fn func(context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}

func (m *memoryRegistry) LockDeviceByExternalID(_ context.Context, deviceID string) (*types.Device, error) {
	d, ok := m.devices[deviceID]
	if !ok {
		return nil, storage.ErrNotFound
	}

	c := *d
	return &c, nil
}

func (m *memoryRegistry) InsertDevice(_ context.Context, d *types.Device) (*types.Device, bool, error) {
	if _, ok := m.devices[d.DeviceID]; ok {
		return nil, false, nil
	}

	m.seq++
	c := *d
	c.ID = fmt.Sprintf("row-%d", m.seq)
	c.Status = types.DeviceStatusOnline
	m.devices[d.DeviceID] = &c

	out := c
	return &out, true, nil
}

func (m *memoryRegistry) RestoreDevice(_ context.Context, d *types.Device) (*types.Device, error) {
	existing, ok := m.devices[d.DeviceID]
	if !ok || existing.DeletedAt == nil {
		return nil, storage.ErrNotFound
	}

	existing.CustomerID = d.CustomerID
	existing.UserID = d.UserID
	existing.Hostname = d.Hostname
	existing.DeletedAt = nil

	out := *existing
	return &out, nil
}

func (m *memoryRegistry) UpdateDeviceRegistration(_ context.Context, d *types.Device) (*types.Device, error) {
	existing, ok := m.devices[d.DeviceID]
	if !ok || existing.DeletedAt != nil || existing.CustomerID != d.CustomerID {
		return nil, storage.ErrNotFound
	}

	existing.Hostname = d.Hostname

	out := *existing
	return &out, nil
}

func (m *memoryRegistry) softDelete(deviceID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.devices[deviceID].DeletedAt = &now
}

func (m *memoryRegistry) get(deviceID string) *types.Device {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.devices[deviceID]
}

func (m *memoryRegistry) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.devices)
}
