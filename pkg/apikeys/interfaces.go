// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package apikeys

import (
	"context"
	"net/http"

	"github.com/canonical/fleet-service/internal/types"
)

type StoreInterface interface {
	CreateAPIKey(context.Context, types.TenantContext, *types.APIKey) (*types.APIKey, error)
	ListAPIKeys(context.Context, types.TenantContext) ([]*types.APIKey, error)
	DeleteAPIKey(context.Context, types.TenantContext, string) error
}

type ServiceInterface interface {
	ListAPIKeys(context.Context, types.TenantContext) ([]*types.APIKey, error)
	CreateAPIKey(context.Context, types.TenantContext, CreateAPIKeyRequest) (*IssuedKey, error)
	DeleteAPIKey(context.Context, types.TenantContext, string) error
}

type RoleGuardInterface interface {
	RequireRole(types.Role) func(http.Handler) http.Handler
}
