// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/fleet-service/internal/authorization"
	"github.com/canonical/fleet-service/internal/db"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/pkg/alerts"
	"github.com/canonical/fleet-service/pkg/apikeys"
	"github.com/canonical/fleet-service/pkg/authentication"
	"github.com/canonical/fleet-service/pkg/devices"
	"github.com/canonical/fleet-service/pkg/metrics"
	"github.com/canonical/fleet-service/pkg/status"
	"github.com/canonical/fleet-service/pkg/users"
)

// Services groups the domain services exposed over HTTP.
type Services struct {
	Auth       authentication.ServiceInterface
	Devices    devices.ServiceInterface
	Reconciler devices.ReconcilerInterface
	Alerts     alerts.ServiceInterface
	Users      users.ServiceInterface
	APIKeys    apikeys.ServiceInterface

	// Limiter is the failed authentication budget shared by login and
	// the authentication middleware.
	Limiter authentication.RateLimiterInterface
}

type Config struct {
	CookieName     string
	CookieSecure   bool
	AllowedOrigins []string
}

func NewRouter(
	services Services,
	authn *authentication.Middleware,
	authz *authorization.Middleware,
	dependencies map[string]status.PingerInterface,
	dbClient db.DBClientInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(config.AllowedOrigins),
	)

	router.Use(middlewares...)

	authAPI := authentication.NewAPI(services.Auth, services.Limiter, config.CookieName, config.CookieSecure, tracer, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dependencies, tracer, monitor, logger).RegisterEndpoints(router)
	authAPI.RegisterPublicEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authn.Authenticate())

		authAPI.RegisterEndpoints(r)
		devices.NewAPI(services.Devices, services.Reconciler, authz, authn, tracer, logger).RegisterEndpoints(r)
		alerts.NewAPI(services.Alerts, authz, tracer, logger).RegisterEndpoints(r)
		apikeys.NewAPI(services.APIKeys, authz, tracer, logger).RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(db.TransactionMiddleware(dbClient, logger))

			users.NewAPI(services.Users, authz, tracer, logger).RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
