// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/fleet-service/internal/logging"
)

type exporterKind int

const (
	exporterStdout exporterKind = iota
	exporterGRPC
	exporterHTTP
)

// Config selects where spans go. The gRPC endpoint wins when both are set,
// and neither means spans are written to stdout.
type Config struct {
	Service      string
	GRPCEndpoint string
	HTTPEndpoint string
	Enabled      bool

	Logger logging.LoggerInterface
}

func (c *Config) exporter() exporterKind {
	switch {
	case c.GRPCEndpoint != "":
		return exporterGRPC
	case c.HTTPEndpoint != "":
		return exporterHTTP
	default:
		return exporterStdout
	}
}

func (c *Config) service() string {
	if c.Service == "" {
		return serviceName
	}
	return c.Service
}

func NewConfig(enabled bool, grpcEndpoint, httpEndpoint string, logger logging.LoggerInterface) *Config {
	return &Config{
		Service:      serviceName,
		GRPCEndpoint: grpcEndpoint,
		HTTPEndpoint: httpEndpoint,
		Enabled:      enabled,
		Logger:       logger,
	}
}

func NewNoopConfig() *Config {
	return &Config{Service: serviceName, Logger: logging.NewNoopLogger()}
}
