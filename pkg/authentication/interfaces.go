// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/types"
)

// Carrier exposes the credential bearing parts of a request independently
// of the transport.
type Carrier interface {
	Header(string) string
	Cookie(string) (string, bool)
	RemoteAddr() string
}

// CredentialSource is one link of the verification chain. ok is false when
// the request does not carry this source's scheme at all.
type CredentialSource interface {
	Scheme() types.AuthScheme
	Authenticate(context.Context, Carrier) (*types.Credential, bool, error)
}

type VerifierInterface interface {
	Verify(context.Context, Carrier) (*types.Credential, error)
}

type TenantResolverInterface interface {
	Resolve(context.Context, *types.Credential, string) (types.TenantContext, error)
}

type RateLimiterInterface interface {
	Exceeded(context.Context, string) (bool, error)
	RecordFailure(context.Context, string) error
}

// StorageInterface is the subset of internal/storage used to verify
// credentials and manage sessions.
type StorageInterface interface {
	GetAPIKeyByHash(context.Context, string) (*types.APIKey, error)
	TouchAPIKey(context.Context, string, time.Time) error
	GetSessionByTokenHash(context.Context, string) (*types.Session, error)
	CreateSession(context.Context, *types.Session) (*types.Session, error)
	RevokeSession(context.Context, string) error
	GetUser(context.Context, storage.Scope, string) (*types.User, error)
	GetUserByEmail(context.Context, string) (*types.User, error)
}

type ServiceInterface interface {
	Login(context.Context, string, string) (*LoginResult, error)
	Logout(context.Context, *types.Credential) error
}
