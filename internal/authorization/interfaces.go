// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/fleet-service/internal/types"
)

type AuthorizerInterface interface {
	Check(context.Context, types.TenantContext, types.Role) bool
	CheckOwnerOr(context.Context, types.TenantContext, string, types.Role) bool
	CanAssignRole(types.TenantContext, types.Role) bool
}
