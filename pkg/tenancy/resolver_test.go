// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

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

//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenancy -destination ./mock_logger.go -source=../../internal/logging/interfaces.go

func strPtr(s string) *string {
	return &s
}

func TestResolver_Resolve(t *testing.T) {
	tests := []struct {
		name           string
		cred           *types.Credential
		override       string
		expectErr      error
		expectCustomer string
		expectTarget   string
		expectSA       bool
	}{
		{
			name:           "User bound to its customer",
			cred:           &types.Credential{UserID: "u1", Role: types.RoleUser, CustomerID: strPtr("c1"), Scheme: types.SchemeSession},
			expectCustomer: "c1",
		},
		{
			name:           "Override is ignored for regular users",
			cred:           &types.Credential{UserID: "u1", Role: types.RoleAdmin, CustomerID: strPtr("c1"), Scheme: types.SchemeSession},
			override:       "c2",
			expectCustomer: "c1",
		},
		{
			name:           "Key narrowed to the owner's customer",
			cred:           &types.Credential{UserID: "u1", Role: types.RoleUser, CustomerID: strPtr("c1"), APIKeyCustomerID: strPtr("c1"), Scheme: types.SchemeAPIKey},
			expectCustomer: "c1",
		},
		{
			name:      "Key narrowed to a customer the owner left is rejected",
			cred:      &types.Credential{UserID: "u1", Role: types.RoleUser, CustomerID: strPtr("c1"), APIKeyCustomerID: strPtr("c3"), Scheme: types.SchemeAPIKey},
			expectErr: ErrKeyScopeMismatch,
		},
		{
			name:      "Narrowed key of an unbound user is still an integrity violation",
			cred:      &types.Credential{UserID: "u1", Role: types.RoleAdmin, APIKeyCustomerID: strPtr("c3"), Scheme: types.SchemeAPIKey},
			expectErr: ErrMissingTenantContext,
		},
		{
			name:      "Regular user without customer is an integrity violation",
			cred:      &types.Credential{UserID: "u1", Role: types.RoleReadOnly, Scheme: types.SchemeSession},
			expectErr: ErrMissingTenantContext,
		},
		{
			name:      "Empty customer counts as none",
			cred:      &types.Credential{UserID: "u1", Role: types.RoleUser, CustomerID: strPtr(" "), Scheme: types.SchemeSession},
			expectErr: ErrMissingTenantContext,
		},
		{
			name:     "Super admin without target",
			cred:     &types.Credential{UserID: "sa", Role: types.RoleSuperAdmin, Scheme: types.SchemeSession},
			expectSA: true,
		},
		{
			name:         "Super admin override becomes the target, not the binding",
			cred:         &types.Credential{UserID: "sa", Role: types.RoleSuperAdmin, Scheme: types.SchemeSession},
			override:     "c2",
			expectSA:     true,
			expectTarget: "c2",
		},
		{
			name:         "Narrowed super admin key cannot be widened by the header",
			cred:         &types.Credential{UserID: "sa", Role: types.RoleSuperAdmin, APIKeyCustomerID: strPtr("c4"), Scheme: types.SchemeAPIKey},
			override:     "c2",
			expectSA:     true,
			expectTarget: "c4",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			if test.expectErr != nil {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().TenantIntegrityViolation(test.cred.UserID, gomock.Any(), gomock.Any(), gomock.Any())
			}

			r := NewResolver(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logging.NewNoopLogger()), mockLogger)

			tc, err := r.Resolve(context.Background(), test.cred, test.override)

			if !errors.Is(err, test.expectErr) {
				t.Fatalf("expected error %v, got %v", test.expectErr, err)
			}

			if test.expectErr != nil {
				if !tc.IsZero() {
					t.Errorf("expected zero context on failure, got %+v", tc)
				}
				return
			}

			if tc.IsSuperAdmin() != test.expectSA {
				t.Errorf("expected super admin %v", test.expectSA)
			}

			customerID, bound := tc.CustomerID()
			if customerID != test.expectCustomer || bound == test.expectSA {
				t.Errorf("expected binding %q, got %q", test.expectCustomer, customerID)
			}

			if target, _ := tc.TargetCustomerID(); target != test.expectTarget {
				t.Errorf("expected target %q, got %q", test.expectTarget, target)
			}

			if tc.UserID() != test.cred.UserID || tc.Scheme() != test.cred.Scheme {
				t.Errorf("unexpected identity %s/%s", tc.UserID(), tc.Scheme())
			}
		})
	}
}
