// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenancy

import (
	"errors"

	httpTypes "github.com/canonical/fleet-service/internal/http/types"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/types"
)

var (
	ErrMissingTenantContext = errors.New("credential is not bound to a customer")
	ErrTenantMismatch       = errors.New("customer does not match the caller's tenant")
	ErrTargetRequired       = errors.New("customerId is required when acting as super admin")
	ErrKeyScopeMismatch     = errors.New("api key is narrowed to another customer")
)

// HTTPError maps tenant scoped storage failures onto their API surface.
// Rows of other tenants surface as not found, like missing ones.
func HTTPError(err error) error {
	var e *httpTypes.Error

	switch {
	case err == nil:
		return nil
	case errors.As(err, &e):
		return e
	case errors.Is(err, storage.ErrNotFound):
		return httpTypes.NewNotFoundError("resource not found")
	case errors.Is(err, ErrTargetRequired):
		return httpTypes.NewValidationError(err.Error(), map[string]string{"customerId": "is required"})
	case errors.Is(err, ErrTenantMismatch):
		return httpTypes.NewValidationError(err.Error(), map[string]string{"customerId": "must match the caller's tenant"})
	case errors.Is(err, ErrMissingTenantContext), errors.Is(err, ErrKeyScopeMismatch), errors.Is(err, storage.ErrMissingScope):
		return httpTypes.NewTenantIntegrityError("request is not bound to a tenant", err)
	case errors.Is(err, types.ErrSuperAdminWithCustomer), errors.Is(err, types.ErrUserWithoutCustomer), errors.Is(err, types.ErrUnknownRole):
		return httpTypes.NewValidationError(err.Error(), nil)
	case errors.Is(err, storage.ErrDuplicateKey):
		return httpTypes.NewConflictError("resource already exists")
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return httpTypes.NewValidationError("referenced resource does not exist", nil)
	default:
		return err
	}
}
