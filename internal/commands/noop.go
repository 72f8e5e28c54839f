// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package commands

import (
	"context"
)

// NoopPublisher refuses every command, used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, string, Command) error {
	return ErrDisabled
}

func (NoopPublisher) Close() {}

func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}
