// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
)

// NoopLimiter never throttles, used when redis is disabled.
type NoopLimiter struct{}

func (NoopLimiter) Exceeded(context.Context, string) (bool, error) {
	return false, nil
}

func (NoopLimiter) RecordFailure(context.Context, string) error {
	return nil
}

func (NoopLimiter) Ping(context.Context) error {
	return nil
}

func (NoopLimiter) Close() error {
	return nil
}

func NewNoopLimiter() NoopLimiter {
	return NoopLimiter{}
}
