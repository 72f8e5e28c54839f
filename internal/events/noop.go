// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
)

// NoopPublisher drops events, used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, Event) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}

func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}
