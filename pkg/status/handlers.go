// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httpTypes "github.com/canonical/fleet-service/internal/http/types"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/version"
)

const readyTimeout = 2 * time.Second

type Status struct {
	Status    string `json:"status"`
	BuildInfo string `json:"buildInfo"`
}

type Readiness struct {
	Ready        bool            `json:"ready"`
	Dependencies map[string]bool `json:"dependencies"`
}

type API struct {
	dependencies map[string]PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_, span := a.tracer.Start(r.Context(), "status.API.alive")
	defer span.End()

	a.writeJSON(w, http.StatusOK, Status{Status: "ok", BuildInfo: version.Version})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, readyTimeout)
	defer cancel()

	resp := Readiness{Ready: true, Dependencies: make(map[string]bool, len(a.dependencies))}

	for name, dep := range a.dependencies {
		up := dep.Ping(ctx) == nil
		resp.Dependencies[name] = up

		availability := 0.0
		if up {
			availability = 1.0
		} else {
			resp.Ready = false
			a.logger.Warnf("dependency %s is not reachable", name)
		}

		if err := a.monitor.SetDependencyAvailability(map[string]string{"component": name}, availability); err != nil {
			a.logger.Debugf("failed to set %s availability: %v", name, err)
		}
	}

	status := http.StatusOK
	if !resp.Ready {
		status = http.StatusServiceUnavailable
	}

	a.writeJSON(w, status, resp)
}

func (a *API) writeJSON(w http.ResponseWriter, status int, data any) {
	if err := httpTypes.WriteJSON(w, status, data); err != nil {
		a.logger.Errorf("failed to encode response: %v", err)
	}
}

func NewAPI(
	dependencies map[string]PingerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		dependencies: dependencies,
		tracer:       tracer,
		monitor:      monitor,
		logger:       logger,
	}
}
