// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/fleet-service/internal/types"
)

// Minimum roles of the API surface.
const (
	RoleViewers   = types.RoleReadOnly
	RoleOperators = types.RoleUser
	RoleManagers  = types.RoleAdmin
	RolePlatform  = types.RoleSuperAdmin
)
