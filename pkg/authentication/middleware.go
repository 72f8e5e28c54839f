// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	httpTypes "github.com/canonical/fleet-service/internal/http/types"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

const CustomerOverrideHeader = "x-customer-id"

type Middleware struct {
	verifier VerifierInterface
	resolver TenantResolverInterface
	limiter  RateLimiterInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate verifies the request credential and resolves its tenant
// context, in that order, before anything else runs. Both are stored in
// the request context.
func (m *Middleware) Authenticate() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authentication.Middleware.Authenticate")
			defer span.End()

			carrier := NewHTTPCarrier(r)
			client := carrier.RemoteAddr()
			requestInfo := logging.WithRequest(client, middleware.GetReqID(ctx))

			exceeded, err := m.limiter.Exceeded(ctx, client)
			if err != nil {
				m.logger.Errorf("failed to check authentication failure budget: %v", err)
			}

			if exceeded {
				m.writeError(w, httpTypes.NewError(httpTypes.KindTooManyRequests, "too many failed authentication attempts", nil))
				return
			}

			cred, err := m.verifier.Verify(ctx, carrier)
			if err != nil {
				if !IsAuthenticationError(err) {
					m.logger.Errorf("credential verification failed: %v", err)
					m.writeError(w, err)
					return
				}

				if err := m.limiter.RecordFailure(ctx, client); err != nil {
					m.logger.Errorf("failed to record authentication failure: %v", err)
				}

				m.logger.Security().AuthnFailure(client, err.Error(), requestInfo)
				m.writeError(w, httpTypes.NewAuthenticationError(err.Error(), err))
				return
			}

			tc, err := m.resolver.Resolve(ctx, cred, r.Header.Get(CustomerOverrideHeader))
			if err != nil {
				m.writeError(w, httpTypes.NewTenantIntegrityError("credential is not bound to a tenant", err))
				return
			}

			ctx = WithCredential(ctx, cred)
			ctx = WithTenantContext(ctx, tc)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireScheme rejects requests authenticated with any other scheme.
func (m *Middleware) RequireScheme(scheme types.AuthScheme) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cred, ok := CredentialFromContext(r.Context())
			if !ok || cred.Scheme != scheme {
				m.writeError(w, httpTypes.NewAuthenticationError(string(scheme)+" credential required", nil))
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
	verifier VerifierInterface,
	resolver TenantResolverInterface,
	limiter RateLimiterInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Middleware {
	return &Middleware{
		verifier: verifier,
		resolver: resolver,
		limiter:  limiter,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
