// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/fleet-service/internal/types"
)

var sessionColumns = []string{"id", "token_hash", "user_id", "expires_at", "revoked_at", "created_at"}

func columns(c []string) string {
	return strings.Join(c, ", ")
}

func scanSession(row rowScanner) (*types.Session, error) {
	var sess types.Session
	if err := row.Scan(&sess.ID, &sess.TokenHash, &sess.UserID, &sess.ExpiresAt, &sess.RevokedAt, &sess.CreatedAt); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *Storage) CreateSession(ctx context.Context, sess *types.Session) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateSession")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	created, err := scanSession(
		s.db.Statement(ctx).
			Insert("sessions").
			Columns("id", "token_hash", "user_id", "expires_at").
			Values(id.String(), sess.TokenHash, sess.UserID, sess.ExpiresAt).
			Suffix("RETURNING " + columns(sessionColumns)).
			QueryRowContext(ctx),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert session: %w", err)
	}

	return created, nil
}

func (s *Storage) GetSessionByTokenHash(ctx context.Context, tokenHash string) (*types.Session, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSessionByTokenHash")
	defer span.End()

	sess, err := scanSession(
		s.db.Statement(ctx).
			Select(sessionColumns...).
			From("sessions").
			Where(sq.Eq{"token_hash": tokenHash}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return sess, nil
}

func (s *Storage) RevokeSession(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.RevokeSession")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("sessions").
		Set("revoked_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "revoked_at": nil}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	return expectAffected(res)
}

func (s *Storage) PurgeExpiredSessions(ctx context.Context, before time.Time) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.PurgeExpiredSessions")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("sessions").
		Where(sq.Or{
			sq.Lt{"expires_at": before},
			sq.Lt{"revoked_at": before},
		}).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge sessions: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged sessions: %w", err)
	}

	return n, nil
}
