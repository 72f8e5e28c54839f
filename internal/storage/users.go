// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/fleet-service/internal/db"
	"github.com/canonical/fleet-service/internal/types"
)

var userColumns = []string{"id", "email", "password_hash", "role", "customer_id", "active", "deleted_at", "created_at"}

type rowScanner interface {
	Scan(...any) error
}

func scanUser(row rowScanner) (*types.User, error) {
	var u types.User
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.CustomerID, &u.Active, &u.DeletedAt, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Storage) CreateUser(ctx context.Context, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateUser")
	defer span.End()

	if err := u.Validate(); err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate user ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("users").
		Columns("id", "email", "password_hash", "role", "customer_id", "active").
		Values(id.String(), u.Email, u.PasswordHash, u.Role, u.CustomerID, u.Active).
		Suffix("RETURNING " + columns(userColumns)).
		QueryRowContext(ctx)

	created, err := scanUser(row)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "user email already exists")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "customer does not exist")
		}
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	return created, nil
}

func (s *Storage) GetUser(ctx context.Context, scope Scope, id string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUser")
	defer span.End()

	q, err := scopeSelect(
		s.db.Statement(ctx).Select(userColumns...).From("users").Where(sq.Eq{"id": id}),
		scope,
		byColumn("customer_id"),
	)
	if err != nil {
		return nil, err
	}

	u, err := scanUser(q.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// GetUserByEmail is the unscoped lookup used at login, before any tenant
// context exists.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUserByEmail")
	defer span.End()

	u, err := scanUser(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(sq.Eq{"email": email}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

func (s *Storage) ListUsers(ctx context.Context, scope Scope, page Pagination) ([]*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListUsers")
	defer span.End()

	size := db.PageSize(page.Size)
	q, err := scopeSelect(
		s.db.Statement(ctx).
			Select(userColumns...).
			From("users").
			Where(sq.Eq{"deleted_at": nil}).
			OrderBy("created_at").
			Limit(size).
			Offset(db.Offset(page.Page, size)),
		scope,
		byColumn("customer_id"),
	)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*types.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return users, nil
}

// UpdateUser overwrites role, customer binding and activation of a user
// visible in scope. The role/customer invariant is checked again here.
func (s *Storage) UpdateUser(ctx context.Context, scope Scope, u *types.User) (*types.User, error) {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateUser")
	defer span.End()

	if err := u.Validate(); err != nil {
		return nil, err
	}

	q, err := scopeUpdate(
		s.db.Statement(ctx).
			Update("users").
			Set("role", u.Role).
			Set("customer_id", u.CustomerID).
			Set("active", u.Active).
			Where(sq.Eq{"id": u.ID}).
			Suffix("RETURNING "+columns(userColumns)),
		scope,
		byColumn("customer_id"),
	)
	if err != nil {
		return nil, err
	}

	updated, err := scanUser(q.QueryRowContext(ctx))
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "customer does not exist")
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return updated, nil
}
