// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"go.uber.org/mock/gomock"

	"github.com/canonical/fleet-service/internal/authorization"
	"github.com/canonical/fleet-service/internal/db"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/ratelimit"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/authentication"
	"github.com/canonical/fleet-service/pkg/devices"
	"github.com/canonical/fleet-service/pkg/status"
	"github.com/canonical/fleet-service/pkg/users"
)

func TestNewRouter(t *testing.T) {
	readOnly := types.RoleReadOnly
	admin := types.RoleAdmin

	tests := []struct {
		name           string
		method         string
		path           string
		credential     bool
		role           *types.Role
		setup          func(d *devices.MockServiceInterface, u *users.MockServiceInterface)
		expectedStatus int
	}{
		{name: "Status is public", method: http.MethodGet, path: "/api/v0/status", expectedStatus: http.StatusOK},
		{name: "Metrics are public", method: http.MethodGet, path: "/api/v0/metrics", expectedStatus: http.StatusOK},
		{name: "Devices need a credential", method: http.MethodGet, path: "/api/v0/devices", credential: true, expectedStatus: http.StatusUnauthorized},
		{
			name:       "Read only user lists devices",
			method:     http.MethodGet,
			path:       "/api/v0/devices",
			credential: true,
			role:       &readOnly,
			setup: func(d *devices.MockServiceInterface, _ *users.MockServiceInterface) {
				d.EXPECT().ListDevices(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*types.Device{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{name: "Read only user cannot list users", method: http.MethodGet, path: "/api/v0/admin/users", credential: true, role: &readOnly, expectedStatus: http.StatusForbidden},
		{
			name:       "Admin lists users",
			method:     http.MethodGet,
			path:       "/api/v0/admin/users",
			credential: true,
			role:       &admin,
			setup: func(_ *devices.MockServiceInterface, u *users.MockServiceInterface) {
				u.EXPECT().ListUsers(gomock.Any(), gomock.Any(), gomock.Any()).Return([]*types.User{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			logger := logging.NewNoopLogger()
			tracer := tracing.NewNoopTracer()
			monitor := monitoring.NewNoopMonitor("", logger)

			verifier := authentication.NewMockVerifierInterface(ctrl)
			resolver := authentication.NewMockTenantResolverInterface(ctrl)
			deviceService := devices.NewMockServiceInterface(ctrl)
			userService := users.NewMockServiceInterface(ctrl)

			if test.credential {
				if test.role == nil {
					verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil, authentication.ErrMissingCredential)
				} else {
					cred := &types.Credential{UserID: "u1", Role: *test.role, Scheme: types.SchemeSession}
					tc, err := types.NewTenantContext("u1", *test.role, "cust-1", types.SchemeSession)
					if err != nil {
						t.Fatalf("failed to build tenant context: %v", err)
					}

					verifier.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(cred, nil)
					resolver.EXPECT().Resolve(gomock.Any(), cred, "").Return(tc, nil)
				}
			}

			if test.setup != nil {
				test.setup(deviceService, userService)
			}

			sqlDB, _, err := sqlmock.New()
			if err != nil {
				t.Fatalf("failed to create sqlmock: %v", err)
			}
			defer sqlDB.Close()

			authn := authentication.NewMiddleware(verifier, resolver, ratelimit.NewNoopLimiter(), tracer, monitor, logger)
			authz := authorization.NewMiddleware(
				authorization.NewAuthorizer(tracer, monitor, logger),
				authentication.TenantContextFromRequest,
				tracer,
				monitor,
				logger,
			)

			router := NewRouter(
				Services{Devices: deviceService, Users: userService, Limiter: ratelimit.NewNoopLimiter()},
				authn,
				authz,
				map[string]status.PingerInterface{},
				db.NewDBClientFromDB(sqlDB, tracer, monitor, logger),
				Config{CookieName: "auth-token"},
				tracer,
				monitor,
				logger,
			)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(test.method, test.path, nil))

			if w.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", test.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
