// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Errorf(string, ...interface{})
	Infof(string, ...interface{})
	Warnf(string, ...interface{})
	Debugf(string, ...interface{})
	Fatalf(string, ...interface{})
	Error(...interface{})
	Info(...interface{})
	Warn(...interface{})
	Debug(...interface{})
	Fatal(...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

type SecurityLoggerInterface interface {
	SystemStartup(...Option)
	SystemShutdown(...Option)
	AuthnFailure(string, string, ...Option)
	AuthzFailure(string, string, ...Option)
	TenantIntegrityViolation(string, string, ...Option)
	SessionCreated(string, ...Option)
	SessionRevoked(string, ...Option)
	AdminAction(string, string, string, ...Option)
}
