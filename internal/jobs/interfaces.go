// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package jobs

import (
	"context"
	"time"
)

type StorageInterface interface {
	MarkStaleDevicesOffline(context.Context, time.Time) (int64, error)
	PurgeExpiredSessions(context.Context, time.Time) (int64, error)
}
