// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package apikeys

import (
	"context"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/fleet-service/internal/http/types"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/authentication"
)

var ErrExpiryInPast = errors.New("expires_at must be in the future")

// CreateAPIKeyRequest issues a key for the caller. CustomerID narrows the
// key to a single customer, typically for a device agent.
type CreateAPIKeyRequest struct {
	Name       string     `json:"name" validate:"required,max=64"`
	CustomerID *string    `json:"customerId" validate:"omitempty,max=128"`
	ExpiresAt  *time.Time `json:"expires_at"`
}

// IssuedKey carries the raw key. It is returned once and never stored.
type IssuedKey struct {
	Key    string        `json:"key"`
	APIKey *types.APIKey `json:"api_key"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store     StoreInterface
	prefix    string
	validator *validator.Validate
	now       func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListAPIKeys(ctx context.Context, tc types.TenantContext) ([]*types.APIKey, error) {
	ctx, span := s.tracer.Start(ctx, "apikeys.Service.ListAPIKeys")
	defer span.End()

	return s.store.ListAPIKeys(ctx, tc)
}

func (s *Service) CreateAPIKey(ctx context.Context, tc types.TenantContext, req CreateAPIKeyRequest) (*IssuedKey, error) {
	ctx, span := s.tracer.Start(ctx, "apikeys.Service.CreateAPIKey")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		return nil, httpTypes.ValidationErrorFrom(err)
	}

	if req.ExpiresAt != nil && !req.ExpiresAt.After(s.now()) {
		return nil, ErrExpiryInPast
	}

	raw, display, hash, err := authentication.GenerateAPIKey(s.prefix)
	if err != nil {
		return nil, err
	}

	created, err := s.store.CreateAPIKey(
		ctx,
		tc,
		&types.APIKey{
			Name:       req.Name,
			Prefix:     display,
			KeyHash:    hash,
			CustomerID: req.CustomerID,
			ExpiresAt:  req.ExpiresAt,
		},
	)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(tc.UserID(), "create_api_key", created.ID, logging.WithLabel("prefix", display))

	return &IssuedKey{Key: raw, APIKey: created}, nil
}

func (s *Service) DeleteAPIKey(ctx context.Context, tc types.TenantContext, id string) error {
	ctx, span := s.tracer.Start(ctx, "apikeys.Service.DeleteAPIKey")
	defer span.End()

	if err := s.store.DeleteAPIKey(ctx, tc, id); err != nil {
		return err
	}

	s.logger.Security().AdminAction(tc.UserID(), "delete_api_key", id)

	return nil
}

func NewService(
	store StoreInterface,
	prefix string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		store:     store,
		prefix:    prefix,
		validator: httpTypes.NewValidator(),
		now:       time.Now,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
