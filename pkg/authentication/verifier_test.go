// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

func TestVerifier_Verify(t *testing.T) {
	apiKeyCred := &types.Credential{UserID: "u1", Scheme: types.SchemeAPIKey}
	sessionCred := &types.Credential{UserID: "u2", Scheme: types.SchemeSession}

	tests := []struct {
		name       string
		setupMocks func(apiKey, session *MockCredentialSource, monitor *MockMonitorInterface)
		expected   *types.Credential
		expectErr  error
	}{
		{
			name: "Api key takes precedence over a session",
			setupMocks: func(apiKey, session *MockCredentialSource, _ *MockMonitorInterface) {
				apiKey.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(apiKeyCred, true, nil)
			},
			expected: apiKeyCred,
		},
		{
			name: "Falls through to the session when no api key is present",
			setupMocks: func(apiKey, session *MockCredentialSource, _ *MockMonitorInterface) {
				apiKey.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(nil, false, nil)
				session.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(sessionCred, true, nil)
			},
			expected: sessionCred,
		},
		{
			name: "An invalid api key does not fall back to the session",
			setupMocks: func(apiKey, session *MockCredentialSource, monitor *MockMonitorInterface) {
				apiKey.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(nil, true, ErrInvalidAPIKey)
				apiKey.EXPECT().Scheme().Return(types.SchemeAPIKey)
				monitor.EXPECT().IncAuthFailure(map[string]string{"scheme": "api_key", "reason": "invalid api key"}).Return(nil)
			},
			expectErr: ErrInvalidAPIKey,
		},
		{
			name: "Storage failures are not labelled with their message",
			setupMocks: func(apiKey, session *MockCredentialSource, monitor *MockMonitorInterface) {
				apiKey.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(nil, false, nil)
				session.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(nil, true, errors.New("connection reset"))
				session.EXPECT().Scheme().Return(types.SchemeSession)
				monitor.EXPECT().IncAuthFailure(map[string]string{"scheme": "session", "reason": "internal"}).Return(nil)
			},
			expectErr: errors.New("connection reset"),
		},
		{
			name: "No credential at all",
			setupMocks: func(apiKey, session *MockCredentialSource, _ *MockMonitorInterface) {
				apiKey.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(nil, false, nil)
				session.EXPECT().Authenticate(gomock.Any(), gomock.Any()).Return(nil, false, nil)
			},
			expectErr: ErrMissingCredential,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			apiKey := NewMockCredentialSource(ctrl)
			session := NewMockCredentialSource(ctrl)
			monitor := NewMockMonitorInterface(ctrl)
			test.setupMocks(apiKey, session, monitor)

			v := NewVerifier([]CredentialSource{apiKey, session}, tracing.NewNoopTracer(), monitor, logging.NewNoopLogger())

			cred, err := v.Verify(context.Background(), NewHTTPCarrier(httptest.NewRequest(http.MethodGet, "/", nil)))

			if test.expectErr != nil {
				if err == nil || err.Error() != test.expectErr.Error() {
					t.Fatalf("expected error %v, got %v", test.expectErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if cred != test.expected {
				t.Errorf("expected credential %+v, got %+v", test.expected, cred)
			}
		})
	}
}

func TestIsAuthenticationError(t *testing.T) {
	if !IsAuthenticationError(ErrSessionExpired) {
		t.Errorf("expected expired session to be an authentication error")
	}

	if IsAuthenticationError(errors.New("connection refused")) {
		t.Errorf("expected a storage failure not to be an authentication error")
	}
}

func TestSessionTokens(t *testing.T) {
	tokens := NewSessionTokens("secret")

	raw, err := tokens.Issue("u1", time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := tokens.Verify(raw); err != nil {
		t.Errorf("expected own token to verify, got %v", err)
	}

	if err := NewSessionTokens("other").Verify(raw); err == nil {
		t.Errorf("expected token signed with another secret to fail")
	}

	other, _ := tokens.Issue("u1", time.Now().Add(time.Hour))
	if other == raw {
		t.Errorf("expected distinct tokens for the same user and expiry")
	}
}

func TestGenerateAPIKey(t *testing.T) {
	raw, display, hash, err := GenerateAPIKey("fsk_")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if display != raw[:12] {
		t.Errorf("expected display prefix of the raw key, got %s", display)
	}

	if hash != HashSecret(raw) {
		t.Errorf("expected stored hash to match the raw key")
	}
}
