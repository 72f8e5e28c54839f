// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Session struct {
	ID        string     `db:"id"`
	TokenHash string     `db:"token_hash"`
	UserID    string     `db:"user_id"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
	CreatedAt time.Time  `db:"created_at"`
}

func (s *Session) Revoked() bool {
	return s.RevokedAt != nil
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Valid reports whether the session is neither revoked nor expired at now.
func (s *Session) Valid(now time.Time) bool {
	return !s.Revoked() && !s.Expired(now)
}
