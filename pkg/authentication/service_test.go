// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

func newTestService(s StorageInterface, now time.Time) *Service {
	logger := logging.NewNoopLogger()
	svc := NewService(s, NewSessionTokens("secret"), time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)
	svc.now = func() time.Time { return now }
	return svc
}

func TestService_Login(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	deletedAt := now.Add(-time.Hour)

	tests := []struct {
		name        string
		password    string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:     "Unknown email",
			password: "correct horse",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), "ops@example.com").Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			password: "battery staple",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&types.User{ID: "u1", PasswordHash: string(hash), Active: true}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "Deleted user",
			password: "correct horse",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&types.User{ID: "u1", PasswordHash: string(hash), Active: true, DeletedAt: &deletedAt}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:     "Inactive user",
			password: "correct horse",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&types.User{ID: "u1", PasswordHash: string(hash)}, nil)
			},
			expectedErr: ErrUserInactive,
		},
		{
			name:     "Valid login creates a session",
			password: "correct horse",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetUserByEmail(gomock.Any(), gomock.Any()).Return(&types.User{ID: "u1", PasswordHash: string(hash), Active: true, Role: types.RoleAdmin}, nil)
				s.EXPECT().CreateSession(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, session *types.Session) (*types.Session, error) {
						if session.UserID != "u1" || !session.ExpiresAt.Equal(now.Add(time.Hour)) || session.TokenHash == "" {
							t.Errorf("unexpected session %+v", session)
						}
						session.ID = "s1"
						return session, nil
					},
				)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			test.setupMocks(mockStorage)

			result, err := newTestService(mockStorage, now).Login(context.Background(), "ops@example.com", test.password)

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected error %v, got %v", test.expectedErr, err)
			}

			if test.expectedErr != nil {
				return
			}

			if result.Token == "" || result.User.ID != "u1" {
				t.Errorf("unexpected login result %+v", result)
			}
		})
	}
}

func TestService_Logout(t *testing.T) {
	tests := []struct {
		name        string
		cred        *types.Credential
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:        "Api key credentials have no session",
			cred:        &types.Credential{UserID: "u1", Scheme: types.SchemeAPIKey, APIKeyID: "k1"},
			expectedErr: ErrNotASession,
		},
		{
			name: "Revokes the session",
			cred: &types.Credential{UserID: "u1", Scheme: types.SchemeSession, SessionID: "s1"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().RevokeSession(gomock.Any(), "s1").Return(nil)
			},
		},
		{
			name: "Already revoked session",
			cred: &types.Credential{UserID: "u1", Scheme: types.SchemeSession, SessionID: "s1"},
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().RevokeSession(gomock.Any(), "s1").Return(storage.ErrNotFound)
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			if test.setupMocks != nil {
				test.setupMocks(mockStorage)
			}

			err := newTestService(mockStorage, time.Now()).Logout(context.Background(), test.cred)

			if !errors.Is(err, test.expectedErr) {
				t.Errorf("expected error %v, got %v", test.expectedErr, err)
			}
		})
	}
}
