// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteError(t *testing.T) {
	cause := errors.New("pq: connection refused")

	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
		expectedFields  map[string]string
	}{
		{
			name:            "authentication",
			err:             NewAuthenticationError("session expired", cause),
			expectedStatus:  http.StatusUnauthorized,
			expectedMessage: "session expired",
		},
		{
			name:            "authorization",
			err:             NewAuthorizationError("insufficient role"),
			expectedStatus:  http.StatusForbidden,
			expectedMessage: "insufficient role",
		},
		{
			name:            "tenant integrity",
			err:             NewTenantIntegrityError("no tenant bound to credential", nil),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "no tenant bound to credential",
		},
		{
			name:            "conflict",
			err:             NewConflictError("device is already registered"),
			expectedStatus:  http.StatusConflict,
			expectedMessage: "device is already registered",
		},
		{
			name:            "validation with fields",
			err:             NewValidationError("invalid payload", map[string]string{"device_id": "required"}),
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "invalid payload",
			expectedFields:  map[string]string{"device_id": "required"},
		},
		{
			name:            "wrapped not found",
			err:             fmt.Errorf("handler: %w", NewNotFoundError("device not found")),
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "device not found",
		},
		{
			name:            "unknown errors do not leak",
			err:             cause,
			expectedStatus:  http.StatusInternalServerError,
			expectedMessage: "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()

			if err := WriteError(rr, tt.err); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}

			var body ErrorResponse
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body.Status != tt.expectedStatus {
				t.Errorf("expected body status %d, got %d", tt.expectedStatus, body.Status)
			}

			if body.Message != tt.expectedMessage {
				t.Errorf("expected message %q, got %q", tt.expectedMessage, body.Message)
			}

			if len(body.Fields) != len(tt.expectedFields) {
				t.Errorf("expected fields %v, got %v", tt.expectedFields, body.Fields)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewAuthenticationError("invalid api key", cause)

	if !errors.Is(err, cause) {
		t.Error("expected the cause to be reachable through errors.Is")
	}
}
