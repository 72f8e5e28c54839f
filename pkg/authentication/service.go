// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

// dummyHash is compared against when the email is unknown so both paths
// pay for one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("fleet-service"), bcrypt.DefaultCost)

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *types.User
}

type Service struct {
	storage    StorageInterface
	tokens     *SessionTokens
	sessionTTL time.Duration
	now        func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Login")
	defer span.End()

	u, err := s.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("failed to look up user: %w", err)
		}

		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if u.Deleted() {
		return nil, ErrInvalidCredentials
	}

	if !u.Active {
		return nil, ErrUserInactive
	}

	expiresAt := s.now().Add(s.sessionTTL)

	token, err := s.tokens.Issue(u.ID, expiresAt)
	if err != nil {
		return nil, err
	}

	session, err := s.storage.CreateSession(
		ctx,
		&types.Session{
			TokenHash: HashSecret(token),
			UserID:    u.ID,
			ExpiresAt: expiresAt,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.Security().SessionCreated(u.ID, logging.WithLabel("session_id", session.ID))

	return &LoginResult{Token: token, ExpiresAt: session.ExpiresAt, User: u}, nil
}

// Logout revokes the session behind cred. API keys have no session to end.
func (s *Service) Logout(ctx context.Context, cred *types.Credential) error {
	ctx, span := s.tracer.Start(ctx, "authentication.Service.Logout")
	defer span.End()

	if cred == nil || cred.Scheme != types.SchemeSession || cred.SessionID == "" {
		return ErrNotASession
	}

	if err := s.storage.RevokeSession(ctx, cred.SessionID); err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	s.logger.Security().SessionRevoked(cred.UserID, logging.WithLabel("session_id", cred.SessionID))

	return nil
}

func NewService(
	s StorageInterface,
	tokens *SessionTokens,
	sessionTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:    s,
		tokens:     tokens,
		sessionTTL: sessionTTL,
		now:        time.Now,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
