// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package devices

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/fleet-service/internal/commands"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/alerts"
)

type serviceMocks struct {
	store      *MockStoreInterface
	authorizer *MockAuthorizerInterface
	publisher  *MockCommandPublisherInterface
	evaluator  *MockAlertEvaluatorInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, serviceMocks) {
	m := serviceMocks{
		store:      NewMockStoreInterface(ctrl),
		authorizer: NewMockAuthorizerInterface(ctrl),
		publisher:  NewMockCommandPublisherInterface(ctrl),
		evaluator:  NewMockAlertEvaluatorInterface(ctrl),
	}
	logger := logging.NewNoopLogger()

	return NewService(m.store, m.authorizer, m.publisher, m.evaluator, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger), m
}

func TestService_Heartbeat(t *testing.T) {
	owner := tenantContext(t, "u1", types.RoleUser, "cust-1")
	device := &types.Device{ID: "row-1", DeviceID: "dev-42", CustomerID: "cust-1", UserID: "u1"}
	hb := Heartbeat{DeviceID: "dev-42", Metrics: map[string]float64{"cpu": 92}}

	tests := []struct {
		name        string
		tc          types.TenantContext
		setupMocks  func(serviceMocks)
		expectedErr error
		expected    []AlertOutcome
	}{
		{
			name: "Unknown device",
			tc:   owner,
			setupMocks: func(m serviceMocks) {
				m.store.EXPECT().GetDeviceByExternalID(gomock.Any(), owner, "dev-42").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "Device of another user in the same tenant",
			tc:   tenantContext(t, "u2", types.RoleAdmin, "cust-1"),
			setupMocks: func(m serviceMocks) {
				m.store.EXPECT().GetDeviceByExternalID(gomock.Any(), gomock.Any(), "dev-42").Return(device, nil)
			},
			expectedErr: ErrNotDeviceOwner,
		},
		{
			name: "Owner heartbeat evaluates alerts",
			tc:   owner,
			setupMocks: func(m serviceMocks) {
				m.store.EXPECT().GetDeviceByExternalID(gomock.Any(), owner, "dev-42").Return(device, nil)
				m.store.EXPECT().TouchDevice(gomock.Any(), owner, "row-1", gomock.Any()).Return(nil)
				m.evaluator.EXPECT().Evaluate(gomock.Any(), owner, device, hb.Metrics).Return(
					[]*alerts.Decision{{Outcome: alerts.OutcomeCreated, Type: alerts.AlertHighCPU, Alert: &types.Alert{ID: "a1"}}},
					nil,
				)
			},
			expected: []AlertOutcome{{Type: alerts.AlertHighCPU, Outcome: alerts.OutcomeCreated, AlertID: "a1"}},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			test.setupMocks(m)

			result, err := s.Heartbeat(context.Background(), test.tc, hb)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected error %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(result.Alerts) != len(test.expected) || result.Alerts[0] != test.expected[0] {
				t.Errorf("expected %+v, got %+v", test.expected, result.Alerts)
			}
		})
	}
}

func TestService_SendCommand(t *testing.T) {
	device := &types.Device{ID: "row-1", DeviceID: "dev-42", CustomerID: "cust-1", UserID: "u1"}
	req := CommandRequest{Name: "reboot"}

	tests := []struct {
		name        string
		setupMocks  func(serviceMocks)
		expectedErr error
	}{
		{
			name: "Denied",
			setupMocks: func(m serviceMocks) {
				m.store.EXPECT().GetDevice(gomock.Any(), gomock.Any(), "row-1").Return(device, nil)
				m.authorizer.EXPECT().CheckOwnerOr(gomock.Any(), gomock.Any(), "u1", types.RoleAdmin).Return(false)
			},
			expectedErr: ErrCommandNotAllowed,
		},
		{
			name: "Broker not configured",
			setupMocks: func(m serviceMocks) {
				m.store.EXPECT().GetDevice(gomock.Any(), gomock.Any(), "row-1").Return(device, nil)
				m.authorizer.EXPECT().CheckOwnerOr(gomock.Any(), gomock.Any(), "u1", types.RoleAdmin).Return(true)
				m.publisher.EXPECT().Publish(gomock.Any(), "dev-42", gomock.Any()).Return(commands.ErrDisabled)
			},
			expectedErr: commands.ErrDisabled,
		},
		{
			name: "Published to the external device id",
			setupMocks: func(m serviceMocks) {
				m.store.EXPECT().GetDevice(gomock.Any(), gomock.Any(), "row-1").Return(device, nil)
				m.authorizer.EXPECT().CheckOwnerOr(gomock.Any(), gomock.Any(), "u1", types.RoleAdmin).Return(true)
				m.publisher.EXPECT().Publish(gomock.Any(), "dev-42", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, cmd commands.Command) error {
						if cmd.Name != "reboot" || cmd.IssuedBy != "u3" || cmd.ID == "" {
							t.Errorf("unexpected command %+v", cmd)
						}
						return nil
					},
				)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			test.setupMocks(m)

			_, err := s.SendCommand(context.Background(), tenantContext(t, "u3", types.RoleAdmin, "cust-1"), "row-1", req)

			if !errors.Is(err, test.expectedErr) {
				t.Errorf("expected error %v, got %v", test.expectedErr, err)
			}
		})
	}
}

func TestService_DeleteDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	tc := tenantContext(t, "u3", types.RoleAdmin, "cust-1")

	m.store.EXPECT().SoftDeleteDevice(gomock.Any(), tc, "row-2").Return(storage.ErrNotFound)

	if err := s.DeleteDevice(context.Background(), tc, "row-2"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("expected not found, got %v", err)
	}
}
