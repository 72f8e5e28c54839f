// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	httpTypes "github.com/canonical/fleet-service/internal/http/types"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

// TenantContextFunc extracts the tenant context stored by the
// authentication middleware.
type TenantContextFunc func(*http.Request) (types.TenantContext, bool)

type Middleware struct {
	authorizer AuthorizerInterface
	tenant     TenantContextFunc

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// RequireRole rejects requests whose tenant context ranks below role.
func (m *Middleware) RequireRole(role types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.RequireRole")
			defer span.End()

			tc, ok := m.tenant(r)
			if !ok {
				m.writeError(w, httpTypes.NewAuthenticationError("authentication required", nil))
				return
			}

			if !m.authorizer.Check(ctx, tc, role) {
				m.logger.Security().AuthzFailure(
					tc.UserID(),
					r.Method+" "+r.URL.Path,
					logging.WithRequest(r.RemoteAddr, middleware.GetReqID(ctx)),
					logging.WithLabel("required_role", role.String()),
				)
				m.writeError(w, httpTypes.NewAuthorizationError("insufficient role"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) writeError(w http.ResponseWriter, err error) {
	if err := httpTypes.WriteError(w, err); err != nil {
		m.logger.Errorf("failed to encode error response: %v", err)
	}
}

func NewMiddleware(
	authorizer AuthorizerInterface,
	tenant TenantContextFunc,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		authorizer: authorizer,
		tenant:     tenant,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
