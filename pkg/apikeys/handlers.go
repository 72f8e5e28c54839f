// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package apikeys

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/fleet-service/internal/http/types"
	"github.com/canonical/fleet-service/internal/logging"
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
	mux.Route("/api/v0/apikeys", func(r chi.Router) {
		r.Use(a.guard.RequireRole(types.RoleUser))

		r.Get("/", a.list)
		r.Post("/", a.create)
		r.Delete("/{id}", a.delete)
	})
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "apikeys.API.list")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	keys, err := a.service.ListAPIKeys(ctx, tc)
	if err != nil {
		a.logger.Errorf("failed to list api keys: %v", err)
		a.writeError(w, tenancy.HTTPError(err))
		return
	}

	a.writeJSON(w, http.StatusOK, keys)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "apikeys.API.create")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	req := CreateAPIKeyRequest{}
	if err := httpTypes.DecodeAndValidate(r, a.validator, &req); err != nil {
		a.writeError(w, err)
		return
	}

	issued, err := a.service.CreateAPIKey(ctx, tc, req)
	if err != nil {
		if errors.Is(err, ErrExpiryInPast) {
			a.writeError(w, httpTypes.NewValidationError("invalid request payload", map[string]string{"expires_at": "must be in the future"}))
			return
		}

		a.writeError(w, tenancy.HTTPError(err))
		return
	}

	a.writeJSON(w, http.StatusCreated, issued)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "apikeys.API.delete")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	if err := a.service.DeleteAPIKey(ctx, tc, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, tenancy.HTTPError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
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
