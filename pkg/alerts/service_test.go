// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package alerts

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

func TestService_Evaluate(t *testing.T) {
	device := &types.Device{ID: "d1", CustomerID: "c1"}

	tests := []struct {
		name          string
		sample        map[string]float64
		setupMocks    func(*MockDeduplicatorInterface)
		expectedTypes []string
		expectErr     bool
	}{
		{
			name:          "Healthy sample",
			sample:        map[string]float64{MetricCPU: 10, MetricMemory: 20},
			setupMocks:    func(d *MockDeduplicatorInterface) {},
			expectedTypes: []string{},
		},
		{
			name:   "Every breach is considered",
			sample: map[string]float64{MetricCPU: 96, MetricDisk: 90},
			setupMocks: func(d *MockDeduplicatorInterface) {
				d.EXPECT().ConsiderAlert(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ types.TenantContext, c Candidate) (*Decision, error) {
						if c.DeviceID != "d1" || c.CustomerID != "c1" {
							t.Errorf("unexpected candidate %+v", c)
						}
						if c.Type == AlertHighCPU && c.Severity != types.SeverityCritical {
							t.Errorf("expected critical cpu, got %s", c.Severity)
						}
						return &Decision{Outcome: OutcomeCreated, Type: c.Type}, nil
					},
				).Times(2)
			},
			expectedTypes: []string{AlertHighCPU, AlertHighDisk},
		},
		{
			name:   "Deduplicator failure",
			sample: map[string]float64{MetricCPU: 96},
			setupMocks: func(d *MockDeduplicatorInterface) {
				d.EXPECT().ConsiderAlert(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectErr: true,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			dedup := NewMockDeduplicatorInterface(ctrl)
			logger := logging.NewNoopLogger()

			test.setupMocks(dedup)

			s := NewService(NewMockStoreInterface(ctrl), dedup, DefaultRules(), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)

			decisions, err := s.Evaluate(context.Background(), tenantContext(t, types.RoleUser, "c1"), device, test.sample)

			if test.expectErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(decisions) != len(test.expectedTypes) {
				t.Fatalf("expected %d decisions, got %d", len(test.expectedTypes), len(decisions))
			}

			for i, d := range decisions {
				if d.Type != test.expectedTypes[i] {
					t.Errorf("expected decision %d for %s, got %s", i, test.expectedTypes[i], d.Type)
				}
			}
		})
	}
}
