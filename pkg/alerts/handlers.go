// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package alerts

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	httpTypes "github.com/canonical/fleet-service/internal/http/types"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/authentication"
	"github.com/canonical/fleet-service/pkg/tenancy"
)

type API struct {
	service ServiceInterface
	guard   RoleGuardInterface

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.With(a.guard.RequireRole(types.RoleReadOnly)).Get("/api/v0/alerts", a.list)
	mux.With(a.guard.RequireRole(types.RoleUser)).Post("/api/v0/alerts/{id}/acknowledge", a.acknowledge)
	mux.With(a.guard.RequireRole(types.RoleUser)).Post("/api/v0/alerts/{id}/resolve", a.resolve)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "alerts.API.list")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	page, size, err := httpTypes.ParsePagination(r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	filter := storage.AlertFilter{DeviceID: r.URL.Query().Get("device_id")}

	if raw := r.URL.Query().Get("resolved"); raw != "" {
		resolved, err := strconv.ParseBool(raw)
		if err != nil {
			a.writeError(w, httpTypes.NewValidationError("invalid query", map[string]string{"resolved": "must be a boolean"}))
			return
		}
		filter.Resolved = &resolved
	}

	alerts, err := a.service.ListAlerts(ctx, tc, filter, storage.Pagination{Page: page, Size: size})
	if err != nil {
		a.logger.Errorf("failed to list alerts: %v", err)
		a.writeError(w, tenancy.HTTPError(err))
		return
	}

	a.writeJSON(w, http.StatusOK, alerts)
}

func (a *API) acknowledge(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "alerts.API.acknowledge")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	alert, err := a.service.AcknowledgeAlert(ctx, tc, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, tenancy.HTTPError(err))
		return
	}

	a.writeJSON(w, http.StatusOK, alert)
}

func (a *API) resolve(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "alerts.API.resolve")
	defer span.End()

	tc, _ := authentication.TenantContextFromContext(ctx)

	alert, err := a.service.ResolveAlert(ctx, tc, chi.URLParam(r, "id"))
	if err != nil {
		a.writeError(w, tenancy.HTTPError(err))
		return
	}

	a.writeJSON(w, http.StatusOK, alert)
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
		service: service,
		guard:   guard,
		tracer:  tracer,
		logger:  logger,
	}
}
