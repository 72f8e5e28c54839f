// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// Credential is the output of a successful credential verification.
type Credential struct {
	UserID string
	Role   Role
	// CustomerID is the owning user's binding.
	CustomerID *string
	// APIKeyCustomerID narrows an API key to a single customer and wins
	// over CustomerID when set.
	APIKeyCustomerID *string

	Scheme    AuthScheme
	APIKeyID  string
	SessionID string
}
