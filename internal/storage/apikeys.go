// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/fleet-service/internal/types"
)

var apiKeyColumns = []string{"id", "name", "prefix", "key_hash", "user_id", "customer_id", "expires_at", "last_used_at", "created_at"}

func scanAPIKey(row rowScanner) (*types.APIKey, error) {
	var k types.APIKey
	if err := row.Scan(&k.ID, &k.Name, &k.Prefix, &k.KeyHash, &k.UserID, &k.CustomerID, &k.ExpiresAt, &k.LastUsedAt, &k.CreatedAt); err != nil {
		return nil, err
	}
	return &k, nil
}

func (s *Storage) CreateAPIKey(ctx context.Context, k *types.APIKey) (*types.APIKey, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateAPIKey")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate api key ID: %w", err)
	}

	created, err := scanAPIKey(
		s.db.Statement(ctx).
			Insert("api_keys").
			Columns("id", "name", "prefix", "key_hash", "user_id", "customer_id", "expires_at").
			Values(id.String(), k.Name, k.Prefix, k.KeyHash, k.UserID, k.CustomerID, k.ExpiresAt).
			Suffix("RETURNING " + columns(apiKeyColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, WrapDuplicateKeyError(err, "api key already exists")
		}
		if IsForeignKeyViolation(err) {
			return nil, WrapForeignKeyError(err, "api key owner does not exist")
		}
		return nil, fmt.Errorf("failed to insert api key: %w", err)
	}

	return created, nil
}

// GetAPIKeyByHash is the unscoped lookup used during credential
// verification.
func (s *Storage) GetAPIKeyByHash(ctx context.Context, keyHash string) (*types.APIKey, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetAPIKeyByHash")
	defer span.End()

	k, err := scanAPIKey(
		s.db.Statement(ctx).
			Select(apiKeyColumns...).
			From("api_keys").
			Where(sq.Eq{"key_hash": keyHash}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get api key: %w", err)
	}

	return k, nil
}

func (s *Storage) ListAPIKeys(ctx context.Context, scope Scope, userID string) ([]*types.APIKey, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListAPIKeys")
	defer span.End()

	q, err := scopeSelect(
		s.db.Statement(ctx).
			Select(apiKeyColumns...).
			From("api_keys").
			Where(sq.Eq{"user_id": userID}).
			OrderBy("created_at"),
		scope,
		byOwner("user_id"),
	)
	if err != nil {
		return nil, err
	}

	rows, err := q.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list api keys: %w", err)
	}
	defer rows.Close()

	keys := make([]*types.APIKey, 0)
	for rows.Next() {
		k, err := scanAPIKey(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan api key: %w", err)
		}
		keys = append(keys, k)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return keys, nil
}

func (s *Storage) DeleteAPIKey(ctx context.Context, scope Scope, userID, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteAPIKey")
	defer span.End()

	q, err := scopeDelete(
		s.db.Statement(ctx).
			Delete("api_keys").
			Where(sq.Eq{"id": id, "user_id": userID}),
		scope,
		byOwner("user_id"),
	)
	if err != nil {
		return err
	}

	res, err := q.ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete api key: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) TouchAPIKey(ctx context.Context, id string, at time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.TouchAPIKey")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Update("api_keys").
		Set("last_used_at", at).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to touch api key: %w", err)
	}

	return nil
}
