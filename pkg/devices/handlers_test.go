// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package devices

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/fleet-service/internal/commands"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/authentication"
	"github.com/canonical/fleet-service/pkg/tenancy"
)

func passthrough(next http.Handler) http.Handler { return next }

func newTestAPI(ctrl *gomock.Controller, service ServiceInterface, reconciler ReconcilerInterface) *chi.Mux {
	roles := NewMockRoleGuardInterface(ctrl)
	roles.EXPECT().RequireRole(gomock.Any()).Return(passthrough).AnyTimes()

	schemes := NewMockSchemeGuardInterface(ctrl)
	schemes.EXPECT().RequireScheme(types.SchemeAPIKey).Return(passthrough).AnyTimes()

	mux := chi.NewMux()
	NewAPI(service, reconciler, roles, schemes, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

func TestAPI_Register(t *testing.T) {
	body := `{"device_id": "dev-42", "hostname": "edge-01", "architecture": "arm64"}`

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockReconcilerInterface)
		expectedStatus int
		expectedAction Action
	}{
		{
			name: "Created",
			body: body,
			setupMocks: func(r *MockReconcilerInterface) {
				r.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).Return(&Result{Action: ActionCreated, Device: &types.Device{ID: "row-1"}}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedAction: ActionCreated,
		},
		{
			name: "Restored",
			body: body,
			setupMocks: func(r *MockReconcilerInterface) {
				r.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).Return(&Result{Action: ActionRestored, Device: &types.Device{ID: "row-1"}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedAction: ActionRestored,
		},
		{
			name: "Owned elsewhere",
			body: body,
			setupMocks: func(r *MockReconcilerInterface) {
				r.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).Return(&Result{Action: ActionDuplicateRejected, Message: msgDuplicateRejected}, nil)
			},
			expectedStatus: http.StatusConflict,
			expectedAction: ActionDuplicateRejected,
		},
		{
			name: "Super admin without customer",
			body: body,
			setupMocks: func(r *MockReconcilerInterface) {
				r.EXPECT().Reconcile(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tenancy.ErrTargetRequired)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing hostname",
			body:           `{"device_id": "dev-42", "architecture": "arm64"}`,
			setupMocks:     func(r *MockReconcilerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reconciler := NewMockReconcilerInterface(ctrl)
			test.setupMocks(reconciler)

			mux := newTestAPI(ctrl, NewMockServiceInterface(ctrl), reconciler)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/devices", strings.NewReader(test.body))
			req = req.WithContext(authentication.WithTenantContext(req.Context(), tenantContext(t, "u1", types.RoleUser, "cust-1")))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, w.Code, w.Body.String())
			}

			if test.expectedAction == "" {
				return
			}

			resp := struct {
				Data Result `json:"data"`
			}{}
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}

			if resp.Data.Action != test.expectedAction {
				t.Errorf("expected action %s, got %s", test.expectedAction, resp.Data.Action)
			}
		})
	}
}

func TestAPI_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "Heartbeat for unknown device",
			method: http.MethodPost,
			path:   "/api/v0/heartbeat",
			body:   `{"device_id": "dev-1", "metrics": {"cpu": 10}}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Heartbeat(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "Heartbeat for another user's device",
			method: http.MethodPost,
			path:   "/api/v0/heartbeat",
			body:   `{"device_id": "dev-1"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Heartbeat(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrNotDeviceOwner)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "Heartbeat metric out of range",
			method:         http.MethodPost,
			path:           "/api/v0/heartbeat",
			body:           `{"device_id": "dev-1", "metrics": {"cpu": 140}}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Command without broker",
			method: http.MethodPost,
			path:   "/api/v0/devices/row-1/commands",
			body:   `{"name": "reboot"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().SendCommand(gomock.Any(), gomock.Any(), "row-1", CommandRequest{Name: "reboot"}).Return(nil, commands.ErrDisabled)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:   "Soft delete",
			method: http.MethodDelete,
			path:   "/api/v0/devices/row-1",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteDevice(gomock.Any(), gomock.Any(), "row-1").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:   "Get device of another tenant",
			method: http.MethodGet,
			path:   "/api/v0/devices/row-9",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetDevice(gomock.Any(), gomock.Any(), "row-9").Return(nil, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			test.setupMocks(service)

			mux := newTestAPI(ctrl, service, NewMockReconcilerInterface(ctrl))

			req := httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			req = req.WithContext(authentication.WithTenantContext(req.Context(), tenantContext(t, "u1", types.RoleAdmin, "cust-1")))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", test.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
