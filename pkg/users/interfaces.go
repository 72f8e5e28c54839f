// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"net/http"

	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/types"
)

type StoreInterface interface {
	GetUser(context.Context, types.TenantContext, string) (*types.User, error)
	ListUsers(context.Context, types.TenantContext, storage.Pagination) ([]*types.User, error)
	CreateUser(context.Context, types.TenantContext, *types.User) (*types.User, error)
	UpdateUser(context.Context, types.TenantContext, *types.User) (*types.User, error)
}

type AuthorizerInterface interface {
	CanAssignRole(types.TenantContext, types.Role) bool
}

type ServiceInterface interface {
	ListUsers(context.Context, types.TenantContext, storage.Pagination) ([]*types.User, error)
	GetUser(context.Context, types.TenantContext, string) (*types.User, error)
	CreateUser(context.Context, types.TenantContext, CreateUserRequest) (*types.User, error)
	UpdateUser(context.Context, types.TenantContext, string, UpdateUserRequest) (*types.User, error)
}

type RoleGuardInterface interface {
	RequireRole(types.Role) func(http.Handler) http.Handler
}
