// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
)

const keyPrefix = "fleet:authn_failures:"

// FailureLimiter counts failed authentication attempts per client in a
// fixed window. Once limit failures are recorded the client is refused
// until the window expires.
type FailureLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (l *FailureLimiter) Exceeded(ctx context.Context, client string) (bool, error) {
	ctx, span := l.tracer.Start(ctx, "ratelimit.FailureLimiter.Exceeded")
	defer span.End()

	count, err := l.client.Get(ctx, keyPrefix+client).Int64()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("failed to read failure counter: %w", err)
	}

	return count >= l.limit, nil
}

func (l *FailureLimiter) RecordFailure(ctx context.Context, client string) error {
	ctx, span := l.tracer.Start(ctx, "ratelimit.FailureLimiter.RecordFailure")
	defer span.End()

	key := keyPrefix + client

	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to increment failure counter: %w", err)
	}

	// the window starts at the first failure
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return fmt.Errorf("failed to set failure window: %w", err)
		}
	}

	if count == l.limit {
		l.logger.Warnf("client %s reached %d failed authentication attempts", client, count)
	}

	return nil
}

// Ping reports whether redis is reachable and updates the dependency
// availability gauge.
func (l *FailureLimiter) Ping(ctx context.Context) error {
	err := l.client.Ping(ctx).Err()

	available := 1.0
	if err != nil {
		available = 0.0
	}

	_ = l.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, available)

	return err
}

func (l *FailureLimiter) Close() error {
	return l.client.Close()
}

func NewFailureLimiter(
	client *redis.Client,
	limit int64,
	window time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *FailureLimiter {
	return &FailureLimiter{
		client:  client,
		limit:   limit,
		window:  window,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// NewRedisClient builds the client shared by the limiter.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
