// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

func TestMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name           string
		role           types.Role
		hasContext     bool
		expectedStatus int
		expectAudit    bool
	}{
		{name: "No tenant context", expectedStatus: http.StatusUnauthorized},
		{name: "Role too low", role: types.RoleReadOnly, hasContext: true, expectedStatus: http.StatusForbidden, expectAudit: true},
		{name: "Role sufficient", role: types.RoleAdmin, hasContext: true, expectedStatus: http.StatusOK},
		{name: "Super admin bypasses tenant restrictions", role: types.RoleSuperAdmin, hasContext: true, expectedStatus: http.StatusOK},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			if test.expectAudit {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthzFailure("u1", "DELETE /api/v0/devices/d1", gomock.Any(), gomock.Any())
			}

			tenant := func(*http.Request) (types.TenantContext, bool) {
				if !test.hasContext {
					return types.TenantContext{}, false
				}
				return tenantContext(t, "u1", test.role), true
			}

			noop := logging.NewNoopLogger()
			authorizer := NewAuthorizer(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", noop), noop)
			mw := NewMiddleware(authorizer, tenant, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", noop), mockLogger)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodDelete, "/api/v0/devices/d1", nil)

			mw.RequireRole(RoleManagers)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})).ServeHTTP(w, r)

			if w.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d", test.expectedStatus, w.Code)
			}
		})
	}
}
