// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package devices

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/fleet-service/internal/commands"
	httpTypes "github.com/canonical/fleet-service/internal/http/types"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/authentication"
	"github.com/canonical/fleet-service/pkg/tenancy"
)

type API struct {
	service    ServiceInterface
	reconciler ReconcilerInterface
	roles      RoleGuardInterface
	schemes    SchemeGuardInterface
	validator  *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.With(a.roles.RequireRole(types.RoleUser)).Post("/api/v0/devices", a.register)
	mux.With(a.roles.RequireRole(types.RoleReadOnly)).Get("/api/v0/devices", a.list)
	mux.With(a.roles.RequireRole(types.RoleReadOnly)).Get("/api/v0/devices/{id}", a.get)
	mux.With(a.roles.RequireRole(types.RoleAdmin)).Delete("/api/v0/devices/{id}", a.delete)
	// ownership is checked by the service, admins pass regardless
	mux.With(a.roles.RequireRole(types.RoleReadOnly)).Post("/api/v0/devices/{id}/commands", a.command)
	mux.With(a.schemes.RequireScheme(types.SchemeAPIKey), a.roles.RequireRole(types.RoleReadOnly)).Post("/api/v0/heartbeat", a.heartbeat)
}

func (a *API) register(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "devices.API.register")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	reg := Registration{}
	if err := httpTypes.DecodeAndValidate(r, a.validator, &reg); err != nil {
		a.writeError(w, err)
		return
	}

	result, err := a.reconciler.Reconcile(ctx, reg, tc)
	if err != nil {
		a.logger.Errorf("failed to register device %s: %v", reg.DeviceID, err)
		a.writeError(w, a.mapError(err))
		return
	}

	a.writeJSON(w, result.Action.Status(), result)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "devices.API.list")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	page, size, err := httpTypes.ParsePagination(r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	devices, err := a.service.ListDevices(ctx, tc, storage.Pagination{Page: page, Size: size})
	if err != nil {
		a.logger.Errorf("failed to list devices: %v", err)
		a.writeError(w, a.mapError(err))
		return
	}

	a.writeJSON(w, http.StatusOK, devices)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "devices.API.get")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	device, err := a.service.GetDevice(ctx, tc, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, a.mapError(err))
		return
	}

	a.writeJSON(w, http.StatusOK, device)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "devices.API.delete")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	if err := a.service.DeleteDevice(ctx, tc, chi.URLParam(r, "id")); err != nil {
		a.writeError(w, a.mapError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) command(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "devices.API.command")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	req := CommandRequest{}
	if err := httpTypes.DecodeAndValidate(r, a.validator, &req); err != nil {
		a.writeError(w, err)
		return
	}

	cmd, err := a.service.SendCommand(ctx, tc, chi.URLParam(r, "id"), req)
	if err != nil {
		a.logger.Errorf("failed to send command: %v", err)
		a.writeError(w, a.mapError(err))
		return
	}

	a.writeJSON(w, http.StatusAccepted, cmd)
}

func (a *API) heartbeat(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "devices.API.heartbeat")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	hb := Heartbeat{}
	if err := httpTypes.DecodeAndValidate(r, a.validator, &hb); err != nil {
		a.writeError(w, err)
		return
	}

	result, err := a.service.Heartbeat(ctx, tc, hb)
	if err != nil {
		a.writeError(w, a.mapError(err))
		return
	}

	a.writeJSON(w, http.StatusOK, result)
}

func (a *API) mapError(err error) error {
	switch {
	case errors.Is(err, ErrNotDeviceOwner), errors.Is(err, ErrCommandNotAllowed):
		return httpTypes.NewAuthorizationError(err.Error())
	case errors.Is(err, commands.ErrDisabled):
		return httpTypes.NewError(httpTypes.KindUnavailable, err.Error(), err)
	case errors.Is(err, ErrRegistrationContention):
		return httpTypes.NewConflictError(err.Error())
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

func NewAPI(
	service ServiceInterface,
	reconciler ReconcilerInterface,
	roles RoleGuardInterface,
	schemes SchemeGuardInterface,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:    service,
		reconciler: reconciler,
		roles:      roles,
		schemes:    schemes,
		validator:  httpTypes.NewValidator(),
		tracer:     tracer,
		logger:     logger,
	}
}
