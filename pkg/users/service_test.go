// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/tenancy"
)

//go:generate mockgen -build_flags=--mod=mod -package users -destination ./mock_interfaces.go -source=./interfaces.go

func tenantContext(t *testing.T, userID string, role types.Role, customerID string) types.TenantContext {
	t.Helper()

	tc, err := types.NewTenantContext(userID, role, customerID, types.SchemeSession)
	if err != nil {
		t.Fatalf("failed to build tenant context: %v", err)
	}
	return tc
}

func rolePtr(r types.Role) *types.Role {
	return &r
}

func strPtr(s string) *string {
	return &s
}

func newTestService(ctrl *gomock.Controller) (*Service, *MockStoreInterface, *MockAuthorizerInterface) {
	store := NewMockStoreInterface(ctrl)
	authorizer := NewMockAuthorizerInterface(ctrl)
	logger := logging.NewNoopLogger()

	return NewService(store, authorizer, bcrypt.MinCost, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger), store, authorizer
}

func TestService_CreateUser(t *testing.T) {
	admin := tenantContext(t, "admin", types.RoleAdmin, "cust-1")
	sa := tenantContext(t, "root", types.RoleSuperAdmin, "")

	tests := []struct {
		name             string
		tc               types.TenantContext
		req              CreateUserRequest
		assignable       bool
		expectCreate     bool
		expectedErr      error
		expectedCustomer string
	}{
		{
			name:             "Admin creates in own tenant",
			tc:               admin,
			req:              CreateUserRequest{Email: "Ops@Example.com", Password: "correct horse battery", Role: rolePtr(types.RoleUser)},
			assignable:       true,
			expectCreate:     true,
			expectedCustomer: "cust-1",
		},
		{
			name:        "Admin cannot grant super admin",
			tc:          admin,
			req:         CreateUserRequest{Email: "x@example.com", Password: "correct horse battery", Role: rolePtr(types.RoleSuperAdmin)},
			expectedErr: ErrRoleNotAssignable,
		},
		{
			name:             "Admin naming another tenant still lands in its own",
			tc:               admin,
			req:              CreateUserRequest{Email: "x@example.com", Password: "correct horse battery", Role: rolePtr(types.RoleUser), CustomerID: "cust-2"},
			assignable:       true,
			expectCreate:     true,
			expectedCustomer: "cust-1",
		},
		{
			name:             "Super admin names the customer",
			tc:               sa,
			req:              CreateUserRequest{Email: "x@example.com", Password: "correct horse battery", Role: rolePtr(types.RoleAdmin), CustomerID: "cust-7"},
			assignable:       true,
			expectCreate:     true,
			expectedCustomer: "cust-7",
		},
		{
			name:        "Super admin must name a customer for tenant users",
			tc:          sa,
			req:         CreateUserRequest{Email: "x@example.com", Password: "correct horse battery", Role: rolePtr(types.RoleAdmin)},
			assignable:  true,
			expectedErr: tenancy.ErrTargetRequired,
		},
		{
			name:        "Super admin users have no customer",
			tc:          sa,
			req:         CreateUserRequest{Email: "x@example.com", Password: "correct horse battery", Role: rolePtr(types.RoleSuperAdmin), CustomerID: "cust-7"},
			assignable:  true,
			expectedErr: types.ErrSuperAdminWithCustomer,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, store, authorizer := newTestService(ctrl)

			authorizer.EXPECT().CanAssignRole(test.tc, *test.req.Role).Return(test.assignable)

			if test.expectCreate {
				store.EXPECT().CreateUser(gomock.Any(), test.tc, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ types.TenantContext, u *types.User) (*types.User, error) {
						if u.Email != "ops@example.com" && u.Email != "x@example.com" {
							t.Errorf("expected a normalised email, got %s", u.Email)
						}
						if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(test.req.Password)) != nil {
							t.Errorf("expected the password to be hashed")
						}
						u.ID = "new"
						return u, nil
					},
				)
			}

			u, err := s.CreateUser(context.Background(), test.tc, test.req)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected error %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if u.CustomerID == nil || *u.CustomerID != test.expectedCustomer {
				t.Errorf("expected customer %s, got %v", test.expectedCustomer, u.CustomerID)
			}
		})
	}
}

func TestService_UpdateUser(t *testing.T) {
	admin := tenantContext(t, "admin", types.RoleAdmin, "cust-1")

	tests := []struct {
		name        string
		id          string
		req         UpdateUserRequest
		setupMocks  func(*MockStoreInterface, *MockAuthorizerInterface)
		expectedErr error
	}{
		{
			name: "Promotion keeps the invariant",
			id:   "u2",
			req:  UpdateUserRequest{Role: rolePtr(types.RoleAdmin)},
			setupMocks: func(s *MockStoreInterface, a *MockAuthorizerInterface) {
				s.EXPECT().GetUser(gomock.Any(), admin, "u2").Return(&types.User{ID: "u2", Role: types.RoleUser, CustomerID: strPtr("cust-1")}, nil)
				a.EXPECT().CanAssignRole(admin, types.RoleUser).Return(true)
				a.EXPECT().CanAssignRole(admin, types.RoleAdmin).Return(true)
				s.EXPECT().UpdateUser(gomock.Any(), admin, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ types.TenantContext, u *types.User) (*types.User, error) {
						if u.Role != types.RoleAdmin {
							t.Errorf("expected role ADMIN, got %s", u.Role)
						}
						return u, nil
					},
				)
			},
		},
		{
			name: "Clearing the customer of a tenant user breaks the invariant",
			id:   "u2",
			req:  UpdateUserRequest{CustomerID: strPtr("")},
			setupMocks: func(s *MockStoreInterface, a *MockAuthorizerInterface) {
				s.EXPECT().GetUser(gomock.Any(), admin, "u2").Return(&types.User{ID: "u2", Role: types.RoleUser, CustomerID: strPtr("cust-1")}, nil)
				a.EXPECT().CanAssignRole(admin, types.RoleUser).Return(true)
			},
			expectedErr: types.ErrUserWithoutCustomer,
		},
		{
			name: "Self demotion",
			id:   "admin",
			req:  UpdateUserRequest{Role: rolePtr(types.RoleReadOnly)},
			setupMocks: func(s *MockStoreInterface, a *MockAuthorizerInterface) {
				s.EXPECT().GetUser(gomock.Any(), admin, "admin").Return(&types.User{ID: "admin", Role: types.RoleAdmin, CustomerID: strPtr("cust-1")}, nil)
				a.EXPECT().CanAssignRole(admin, types.RoleAdmin).Return(true)
			},
			expectedErr: ErrSelfModification,
		},
		{
			name: "User of another tenant",
			id:   "u9",
			req:  UpdateUserRequest{Active: new(bool)},
			setupMocks: func(s *MockStoreInterface, a *MockAuthorizerInterface) {
				s.EXPECT().GetUser(gomock.Any(), admin, "u9").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, store, authorizer := newTestService(ctrl)
			test.setupMocks(store, authorizer)

			_, err := s.UpdateUser(context.Background(), admin, test.id, test.req)

			if !errors.Is(err, test.expectedErr) {
				t.Errorf("expected error %v, got %v", test.expectedErr, err)
			}
		})
	}
}
