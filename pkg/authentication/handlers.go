// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/fleet-service/internal/http/types"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/tracing"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
}

type WhoAmIResponse struct {
	UserID           string  `json:"user_id"`
	Role             string  `json:"role"`
	CustomerID       *string `json:"customer_id,omitempty"`
	TargetCustomerID *string `json:"target_customer_id,omitempty"`
	Scheme           string  `json:"scheme"`
}

type API struct {
	service      ServiceInterface
	limiter      RateLimiterInterface
	cookieName   string
	cookieSecure bool
	validator    *validator.Validate

	tracer tracing.TracingInterface
	logger logging.LoggerInterface
}

// RegisterPublicEndpoints mounts the routes reachable without a credential.
func (a *API) RegisterPublicEndpoints(mux chi.Router) {
	mux.Post("/api/v0/auth/login", a.login)
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/api/v0/auth/logout", a.logout)
	mux.Get("/api/v0/auth/me", a.me)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.login")
	defer span.End()

	client := NewHTTPCarrier(r).RemoteAddr()

	exceeded, err := a.limiter.Exceeded(ctx, client)
	if err != nil {
		a.logger.Errorf("failed to check authentication failure budget: %v", err)
	}

	if exceeded {
		a.writeError(w, httpTypes.NewError(httpTypes.KindTooManyRequests, "too many failed authentication attempts", nil))
		return
	}

	req := new(LoginRequest)
	if err := httpTypes.DecodeAndValidate(r, a.validator, req); err != nil {
		a.writeError(w, err)
		return
	}

	result, err := a.service.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrUserInactive) {
			if err := a.limiter.RecordFailure(ctx, client); err != nil {
				a.logger.Errorf("failed to record authentication failure: %v", err)
			}

			a.logger.Security().AuthnFailure(req.Email, err.Error(), logging.WithRequest(client, middleware.GetReqID(ctx)))
			a.writeError(w, httpTypes.NewAuthenticationError(ErrInvalidCredentials.Error(), err))
			return
		}

		a.logger.Errorf("login failed: %v", err)
		a.writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     a.cookieName,
		Value:    result.Token,
		Path:     "/",
		Expires:  result.ExpiresAt,
		HttpOnly: true,
		Secure:   a.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	a.writeJSON(w, http.StatusOK, LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		UserID:    result.User.ID,
		Role:      result.User.Role.String(),
	})
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.logout")
	defer span.End()

	cred, _ := CredentialFromContext(ctx)

	if err := a.service.Logout(ctx, cred); err != nil {
		if errors.Is(err, ErrNotASession) {
			a.writeError(w, httpTypes.NewValidationError(err.Error(), nil))
			return
		}

		a.logger.Errorf("logout failed: %v", err)
		a.writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     a.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

func (a *API) me(w http.ResponseWriter, r *http.Request) {
	tc, ok := TenantContextFromContext(r.Context())
	if !ok {
		a.writeError(w, httpTypes.NewAuthenticationError(ErrMissingCredential.Error(), nil))
		return
	}

	resp := WhoAmIResponse{
		UserID: tc.UserID(),
		Role:   tc.Role().String(),
		Scheme: string(tc.Scheme()),
	}

	if id, ok := tc.CustomerID(); ok {
		resp.CustomerID = &id
	}

	if id, ok := tc.TargetCustomerID(); ok {
		resp.TargetCustomerID = &id
	}

	a.writeJSON(w, http.StatusOK, resp)
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

// NewAPI builds the login, logout and whoami handlers. limiter is the
// failed authentication budget shared with Middleware.
func NewAPI(
	service ServiceInterface,
	limiter RateLimiterInterface,
	cookieName string,
	cookieSecure bool,
	tracer tracing.TracingInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:      service,
		limiter:      limiter,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
		validator:    httpTypes.NewValidator(),
		tracer:       tracer,
		logger:       logger,
	}
}
