// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package apikeys

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/authentication"
)

func TestAPI(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:   "Create shows the key once",
			method: http.MethodPost,
			path:   "/api/v0/apikeys",
			body:   `{"name": "agent"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateAPIKey(gomock.Any(), gomock.Any(), CreateAPIKeyRequest{Name: "agent"}).Return(&IssuedKey{Key: "fk_x", APIKey: &types.APIKey{ID: "k1"}}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing name",
			method:         http.MethodPost,
			path:           "/api/v0/apikeys",
			body:           `{}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Expiry in the past",
			method: http.MethodPost,
			path:   "/api/v0/apikeys",
			body:   `{"name": "agent", "expires_at": "2020-01-01T00:00:00Z"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateAPIKey(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, ErrExpiryInPast)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "Delete someone else's key",
			method: http.MethodDelete,
			path:   "/api/v0/apikeys/k9",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteAPIKey(gomock.Any(), gomock.Any(), "k9").Return(storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:   "List",
			method: http.MethodGet,
			path:   "/api/v0/apikeys",
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().ListAPIKeys(gomock.Any(), gomock.Any()).Return([]*types.APIKey{{ID: "k1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			service := NewMockServiceInterface(ctrl)
			test.setupMocks(service)

			guard := NewMockRoleGuardInterface(ctrl)
			guard.EXPECT().RequireRole(types.RoleUser).Return(func(next http.Handler) http.Handler { return next })

			mux := chi.NewMux()
			NewAPI(service, guard, tracing.NewNoopTracer(), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(test.method, test.path, strings.NewReader(test.body))
			req = req.WithContext(authentication.WithTenantContext(req.Context(), tenantContext(t)))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != test.expectedStatus {
				t.Errorf("expected status %d, got %d: %s", test.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
