// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
)

func newTestLimiter(t *testing.T, limit int64) (*FailureLimiter, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	logger := logging.NewNoopLogger()

	l := NewFailureLimiter(
		NewRedisClient(mr.Addr(), "", 0),
		limit,
		time.Minute,
		tracing.NewNoopTracer(),
		monitoring.NewNoopMonitor("", logger),
		logger,
	)
	t.Cleanup(func() { _ = l.Close() })

	return l, mr
}

func TestFailureLimiter_ThrottlesAfterLimit(t *testing.T) {
	l, _ := newTestLimiter(t, 3)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		require.NoError(t, l.RecordFailure(ctx, "192.0.2.1"))
	}

	exceeded, err := l.Exceeded(ctx, "192.0.2.1")
	require.NoError(t, err)
	assert.False(t, exceeded)

	require.NoError(t, l.RecordFailure(ctx, "192.0.2.1"))

	exceeded, err = l.Exceeded(ctx, "192.0.2.1")
	require.NoError(t, err)
	assert.True(t, exceeded)

	exceeded, err = l.Exceeded(ctx, "192.0.2.2")
	require.NoError(t, err)
	assert.False(t, exceeded, "other clients are not affected")
}

func TestFailureLimiter_WindowExpires(t *testing.T) {
	l, mr := newTestLimiter(t, 1)
	ctx := context.Background()

	require.NoError(t, l.RecordFailure(ctx, "192.0.2.1"))
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"192.0.2.1"))

	require.NoError(t, l.RecordFailure(ctx, "192.0.2.1"))
	assert.Equal(t, time.Minute, mr.TTL(keyPrefix+"192.0.2.1"), "later failures do not extend the window")

	mr.FastForward(time.Minute + time.Second)

	exceeded, err := l.Exceeded(ctx, "192.0.2.1")
	require.NoError(t, err)
	assert.False(t, exceeded)
}

func TestFailureLimiter_RedisUnavailable(t *testing.T) {
	l, mr := newTestLimiter(t, 1)
	mr.Close()

	_, err := l.Exceeded(context.Background(), "192.0.2.1")
	assert.Error(t, err)
	assert.Error(t, l.Ping(context.Background()))
}
