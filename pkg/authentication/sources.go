// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

const (
	APIKeyHeader        = "x-api-key"
	AuthorizationHeader = "Authorization"

	bearerPrefix = "Bearer "
	apiKeyPrefix = "ApiKey "

	touchTimeout = 5 * time.Second
)

// owner loads the user behind a credential, failing on deleted or
// disabled accounts.
func owner(ctx context.Context, s StorageInterface, userID string) (*types.User, error) {
	u, err := s.GetUser(ctx, storage.Unscoped(), userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserDeleted
		}
		return nil, fmt.Errorf("failed to load credential owner: %w", err)
	}

	if u.Deleted() {
		return nil, ErrUserDeleted
	}

	if !u.Active {
		return nil, ErrUserInactive
	}

	return u, nil
}

type APIKeySource struct {
	storage StorageInterface
	now     func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *APIKeySource) Scheme() types.AuthScheme {
	return types.SchemeAPIKey
}

func (s *APIKeySource) rawKey(c Carrier) (string, bool) {
	if key := strings.TrimSpace(c.Header(APIKeyHeader)); key != "" {
		return key, true
	}

	if h := c.Header(AuthorizationHeader); strings.HasPrefix(h, apiKeyPrefix) {
		if key := strings.TrimSpace(strings.TrimPrefix(h, apiKeyPrefix)); key != "" {
			return key, true
		}
	}

	return "", false
}

func (s *APIKeySource) Authenticate(ctx context.Context, c Carrier) (*types.Credential, bool, error) {
	raw, found := s.rawKey(c)
	if !found {
		return nil, false, nil
	}

	ctx, span := s.tracer.Start(ctx, "authentication.APIKeySource.Authenticate")
	defer span.End()

	key, err := s.storage.GetAPIKeyByHash(ctx, HashSecret(raw))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, true, ErrInvalidAPIKey
		}
		return nil, true, err
	}

	now := s.now()
	if key.Expired(now) {
		return nil, true, ErrAPIKeyExpired
	}

	u, err := owner(ctx, s.storage, key.UserID)
	if err != nil {
		return nil, true, err
	}

	s.touch(ctx, key.ID, now)

	return &types.Credential{
		UserID:           u.ID,
		Role:             u.Role,
		CustomerID:       u.CustomerID,
		APIKeyCustomerID: key.CustomerID,
		Scheme:           types.SchemeAPIKey,
		APIKeyID:         key.ID,
	}, true, nil
}

// touch records the key usage in the background. It outlives the request
// and its failure never fails verification.
func (s *APIKeySource) touch(ctx context.Context, id string, at time.Time) {
	detached := context.WithoutCancel(ctx)

	go func() {
		ctx, cancel := context.WithTimeout(detached, touchTimeout)
		defer cancel()

		if err := s.storage.TouchAPIKey(ctx, id, at); err != nil {
			s.logger.Warnf("failed to update last use of api key %s: %v", id, err)
		}
	}()
}

func NewAPIKeySource(s StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *APIKeySource {
	return &APIKeySource{
		storage: s,
		now:     time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

type SessionSource struct {
	storage    StorageInterface
	tokens     *SessionTokens
	cookieName string
	now        func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *SessionSource) Scheme() types.AuthScheme {
	return types.SchemeSession
}

// rawToken prefers an explicit Authorization: Bearer header over the
// session cookie, so a client sending both is judged by the token it chose.
func (s *SessionSource) rawToken(c Carrier) (string, bool) {
	if h := c.Header(AuthorizationHeader); strings.HasPrefix(h, bearerPrefix) {
		if token := strings.TrimSpace(strings.TrimPrefix(h, bearerPrefix)); token != "" {
			return token, true
		}
	}

	if token, ok := c.Cookie(s.cookieName); ok && token != "" {
		return token, true
	}

	return "", false
}

func (s *SessionSource) Authenticate(ctx context.Context, c Carrier) (*types.Credential, bool, error) {
	raw, found := s.rawToken(c)
	if !found {
		return nil, false, nil
	}

	ctx, span := s.tracer.Start(ctx, "authentication.SessionSource.Authenticate")
	defer span.End()

	if err := s.tokens.Verify(raw); err != nil {
		s.logger.Debugf("session token signature check failed: %v", err)
		return nil, true, ErrInvalidSession
	}

	session, err := s.storage.GetSessionByTokenHash(ctx, HashSecret(raw))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, true, ErrInvalidSession
		}
		return nil, true, err
	}

	if session.Revoked() {
		return nil, true, ErrSessionRevoked
	}

	if session.Expired(s.now()) {
		return nil, true, ErrSessionExpired
	}

	u, err := owner(ctx, s.storage, session.UserID)
	if err != nil {
		return nil, true, err
	}

	return &types.Credential{
		UserID:     u.ID,
		Role:       u.Role,
		CustomerID: u.CustomerID,
		Scheme:     types.SchemeSession,
		SessionID:  session.ID,
	}, true, nil
}

func NewSessionSource(s StorageInterface, tokens *SessionTokens, cookieName string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SessionSource {
	return &SessionSource{
		storage:    s,
		tokens:     tokens,
		cookieName: cookieName,
		now:        time.Now,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
