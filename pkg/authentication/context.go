// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"

	"github.com/canonical/fleet-service/internal/types"
)

type credentialContextKey struct{}
type tenantContextKey struct{}

// WithCredential stores the verified credential of the request, kept so
// handlers can resolve a body level tenant override.
func WithCredential(ctx context.Context, cred *types.Credential) context.Context {
	return context.WithValue(ctx, credentialContextKey{}, cred)
}

func CredentialFromContext(ctx context.Context) (*types.Credential, bool) {
	cred, ok := ctx.Value(credentialContextKey{}).(*types.Credential)
	return cred, ok && cred != nil
}

// WithTenantContext stores the resolved tenant context, request scoped.
func WithTenantContext(ctx context.Context, tc types.TenantContext) context.Context {
	return context.WithValue(ctx, tenantContextKey{}, tc)
}

// TenantContextFromContext returns the tenant context set by the
// authentication middleware, false if the request never went through it.
func TenantContextFromContext(ctx context.Context) (types.TenantContext, bool) {
	tc, ok := ctx.Value(tenantContextKey{}).(types.TenantContext)
	return tc, ok && !tc.IsZero()
}

func TenantContextFromRequest(r *http.Request) (types.TenantContext, bool) {
	return TenantContextFromContext(r.Context())
}
