// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/fleet-service/internal/http/types"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/authentication"
	"github.com/canonical/fleet-service/pkg/tenancy"
)

type API struct {
	service   ServiceInterface
	guard     RoleGuardInterface
	validator *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Route("/api/v0/admin/users", func(r chi.Router) {
		r.Use(a.guard.RequireRole(types.RoleAdmin))

		r.Get("/", a.list)
		r.Post("/", a.create)
		r.Get("/{id}", a.get)
		r.Patch("/{id}", a.update)
	})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.list")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	page, size, err := httpTypes.ParsePagination(r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	users, err := a.service.ListUsers(ctx, tc, storage.Pagination{Page: page, Size: size})
	if err != nil {
		a.logger.Errorf("failed to list users: %v", err)
		a.writeError(w, mapError(err))
		return
	}

	a.writeJSON(w, http.StatusOK, users)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.get")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	user, err := a.service.GetUser(ctx, tc, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, mapError(err))
		return
	}

	a.writeJSON(w, http.StatusOK, user)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.create")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	req := CreateUserRequest{}
	if err := httpTypes.DecodeAndValidate(r, a.validator, &req); err != nil {
		a.writeError(w, err)
		return
	}

	user, err := a.service.CreateUser(ctx, tc, req)
	if err != nil {
		a.writeError(w, mapError(err))
		return
	}

	a.writeJSON(w, http.StatusCreated, user)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "users.API.update")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	req := UpdateUserRequest{}
	if err := httpTypes.DecodeAndValidate(r, a.validator, &req); err != nil {
		a.writeError(w, err)
		return
	}

	user, err := a.service.UpdateUser(ctx, tc, chi.URLParam(r, "id"), req)
	if err != nil {
		a.writeError(w, mapError(err))
		return
	}

	a.writeJSON(w, http.StatusOK, user)
}

func mapError(err error) error {
	switch {
	case errors.Is(err, ErrRoleNotAssignable):
		return httpTypes.NewAuthorizationError(err.Error())
	case errors.Is(err, ErrSelfModification):
		return httpTypes.NewValidationError(err.Error(), nil)
	default:
		return tenancy.HTTPError(err)
	}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, data any) {
	if err := httpTypes.WriteJSON(w, status, data); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func (a *API) writeError(w http.ResponseWriter, err error) {
	if err := httpTypes.WriteError(w, err); err != nil {
		a.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewAPI(service ServiceInterface, guard RoleGuardInterface, tracer tracing.TracingInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:   service,
		guard:     guard,
		validator: httpTypes.NewValidator(),
		tracer:    tracer,
		logger:    logger,
	}
}
