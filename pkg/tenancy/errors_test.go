// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	httpTypes "github.com/canonical/fleet-service/internal/http/types"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/types"
)

func TestHTTPError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "Other tenant row", err: fmt.Errorf("failed to get device: %w", storage.ErrNotFound), expected: http.StatusNotFound},
		{name: "Super admin without target", err: ErrTargetRequired, expected: http.StatusBadRequest},
		{name: "Missing scope", err: storage.ErrMissingScope, expected: http.StatusBadRequest},
		{name: "Invariant violation", err: types.ErrSuperAdminWithCustomer, expected: http.StatusBadRequest},
		{name: "Duplicate", err: storage.ErrDuplicateKey, expected: http.StatusConflict},
		{name: "Already mapped", err: httpTypes.NewAuthorizationError("nope"), expected: http.StatusForbidden},
		{name: "Unknown", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := httpTypes.AsError(HTTPError(test.err)).Kind.Status(); got != test.expected {
				t.Errorf("expected status %d, got %d", test.expected, got)
			}
		})
	}
}
