// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
)

var (
	ErrMissingCredential  = errors.New("no credential provided")
	ErrInvalidAPIKey      = errors.New("invalid api key")
	ErrAPIKeyExpired      = errors.New("api key expired")
	ErrInvalidSession     = errors.New("invalid session")
	ErrSessionRevoked     = errors.New("session revoked")
	ErrSessionExpired     = errors.New("session expired")
	ErrUserDeleted        = errors.New("user deleted")
	ErrUserInactive       = errors.New("user inactive")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotASession        = errors.New("request is not authenticated with a session")
)
