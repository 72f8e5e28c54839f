// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/tenancy"
)

var (
	ErrRoleNotAssignable = errors.New("role cannot be assigned by the caller")
	ErrSelfModification  = errors.New("users cannot change their own role or deactivate themselves")
)

type CreateUserRequest struct {
	Email      string      `json:"email" validate:"required,email,max=254"`
	Password   string      `json:"password" validate:"required,min=12,max=72"`
	Role       *types.Role `json:"role" validate:"required"`
	CustomerID string      `json:"customerId" validate:"omitempty,max=128"`
}

// UpdateUserRequest is a partial update, nil fields are left untouched.
// An empty CustomerID clears the binding.
type UpdateUserRequest struct {
	Role       *types.Role `json:"role"`
	CustomerID *string     `json:"customerId" validate:"omitempty,max=128"`
	Active     *bool       `json:"active"`
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store      StoreInterface
	authorizer AuthorizerInterface
	cost       int

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListUsers(ctx context.Context, tc types.TenantContext, page storage.Pagination) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.ListUsers")
	defer span.End()

	return s.store.ListUsers(ctx, tc, page)
}

func (s *Service) GetUser(ctx context.Context, tc types.TenantContext, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.GetUser")
	defer span.End()

	return s.store.GetUser(ctx, tc, id)
}

// CreateUser provisions a user. Everyone but a super admin lands in a
// customer: the caller's own, or the one a super admin names.
func (s *Service) CreateUser(ctx context.Context, tc types.TenantContext, req CreateUserRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.CreateUser")
	defer span.End()

	role := *req.Role

	if !s.authorizer.CanAssignRole(tc, role) {
		s.denied(tc, "create_user", role)
		return nil, ErrRoleNotAssignable
	}

	var customerID *string

	if role == types.RoleSuperAdmin {
		if req.CustomerID != "" {
			return nil, types.ErrSuperAdminWithCustomer
		}
	} else {
		target, err := tenancy.WriteTarget(tc, req.CustomerID)
		if err != nil {
			return nil, err
		}
		customerID = &target
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &types.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: string(hash),
		Role:         role,
		CustomerID:   customerID,
		Active:       true,
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	created, err := s.store.CreateUser(ctx, tc, u)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(tc.UserID(), "create_user", created.ID, logging.WithLabel("role", role.String()))

	return created, nil
}

func (s *Service) UpdateUser(ctx context.Context, tc types.TenantContext, id string, req UpdateUserRequest) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "users.Service.UpdateUser")
	defer span.End()

	u, err := s.store.GetUser(ctx, tc, id)
	if err != nil {
		return nil, err
	}

	// managing a user is as privileged as granting their current role
	if !s.authorizer.CanAssignRole(tc, u.Role) {
		s.denied(tc, "update_user", u.Role)
		return nil, ErrRoleNotAssignable
	}

	if id == tc.UserID() && ((req.Role != nil && *req.Role != u.Role) || (req.Active != nil && !*req.Active)) {
		return nil, ErrSelfModification
	}

	if req.Role != nil {
		if !s.authorizer.CanAssignRole(tc, *req.Role) {
			s.denied(tc, "update_user", *req.Role)
			return nil, ErrRoleNotAssignable
		}
		u.Role = *req.Role
	}

	if req.CustomerID != nil {
		u.CustomerID = nil
		if *req.CustomerID != "" {
			customerID := *req.CustomerID
			u.CustomerID = &customerID
		}
	}

	if req.Active != nil {
		u.Active = *req.Active
	}

	if err := u.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateUser(ctx, tc, u)
	if err != nil {
		return nil, err
	}

	s.logger.Security().AdminAction(tc.UserID(), "update_user", updated.ID, logging.WithLabel("role", updated.Role.String()))

	return updated, nil
}

func (s *Service) denied(tc types.TenantContext, action string, role types.Role) {
	s.logger.Security().AuthzFailure(tc.UserID(), action, logging.WithLabel("role", role.String()))
}

// NewService builds the user administration service, cost is the bcrypt
// cost used for new passwords.
func NewService(
	store StoreInterface,
	authorizer AuthorizerInterface,
	cost int,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &Service{
		store:      store,
		authorizer: authorizer,
		cost:       cost,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
