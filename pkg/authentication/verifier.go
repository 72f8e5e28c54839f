// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

var _ VerifierInterface = (*Verifier)(nil)

// Verifier walks an ordered chain of credential sources. The first source
// whose scheme is present on the request decides the outcome, a present
// but invalid credential never falls through to the next source.
type Verifier struct {
	sources []CredentialSource

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *Verifier) Verify(ctx context.Context, c Carrier) (*types.Credential, error) {
	ctx, span := v.tracer.Start(ctx, "authentication.Verifier.Verify")
	defer span.End()

	for _, source := range v.sources {
		cred, ok, err := source.Authenticate(ctx, c)
		if !ok {
			continue
		}

		if err != nil {
			_ = v.monitor.IncAuthFailure(map[string]string{"scheme": string(source.Scheme()), "reason": failureReason(err)})
			return nil, err
		}

		return cred, nil
	}

	return nil, ErrMissingCredential
}

// NewVerifier chains sources in the given order.
func NewVerifier(sources []CredentialSource, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Verifier {
	return &Verifier{
		sources: sources,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// NewDefaultVerifier checks API keys first and sessions second.
func NewDefaultVerifier(s StorageInterface, tokens *SessionTokens, cookieName string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Verifier {
	return NewVerifier(
		[]CredentialSource{
			NewAPIKeySource(s, tracer, monitor, logger),
			NewSessionSource(s, tokens, cookieName, tracer, monitor, logger),
		},
		tracer,
		monitor,
		logger,
	)
}

var authenticationErrors = []error{
	ErrMissingCredential,
	ErrInvalidAPIKey,
	ErrAPIKeyExpired,
	ErrInvalidSession,
	ErrSessionRevoked,
	ErrSessionExpired,
	ErrUserDeleted,
	ErrUserInactive,
}

// IsAuthenticationError reports whether err is a credential problem, as
// opposed to a failure reaching the credential store.
func IsAuthenticationError(err error) bool {
	for _, e := range authenticationErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}

func failureReason(err error) string {
	for _, e := range authenticationErrors {
		if errors.Is(err, e) {
			return e.Error()
		}
	}
	return "internal"
}
