// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const appID = "fleet-service"

// event names follow the OWASP logging vocabulary
const (
	eventSysStartup          = "sys_startup"
	eventSysShutdown         = "sys_shutdown"
	eventAuthnLoginFail      = "authn_login_fail"
	eventAuthzFail           = "authz_fail"
	eventTenantIntegrity     = "tenant_integrity_violation"
	eventSessionCreated      = "session_created"
	eventSessionRevoked      = "session_revoked"
	eventAdminAction         = "admin_action"
	securityEventDescription = "description"
)

var _ SecurityLoggerInterface = (*SecurityLogger)(nil)

type Option func(*[]zap.Field)

// WithRequest attaches the originating client address and request id to an event.
func WithRequest(remoteAddr, requestID string) Option {
	return func(fields *[]zap.Field) {
		*fields = append(*fields, zap.String("source_ip", remoteAddr), zap.String("request_id", requestID))
	}
}

// WithLabel attaches a free form key/value pair to an event.
func WithLabel(key, value string) Option {
	return func(fields *[]zap.Field) {
		*fields = append(*fields, zap.String(key, value))
	}
}

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup(opts ...Option) {
	s.log(zapcore.InfoLevel, fmt.Sprintf("%s:%s", eventSysStartup, appID), fmt.Sprintf("%s is starting", appID), opts...)
}

func (s *SecurityLogger) SystemShutdown(opts ...Option) {
	s.log(zapcore.InfoLevel, fmt.Sprintf("%s:%s", eventSysShutdown, appID), fmt.Sprintf("%s is shutting down", appID), opts...)
}

func (s *SecurityLogger) AuthnFailure(principal, reason string, opts ...Option) {
	s.log(zapcore.WarnLevel, fmt.Sprintf("%s:%s", eventAuthnLoginFail, principal), fmt.Sprintf("authentication failed: %s", reason), opts...)
}

func (s *SecurityLogger) AuthzFailure(userID, resource string, opts ...Option) {
	s.log(zapcore.WarnLevel, fmt.Sprintf("%s:%s,%s", eventAuthzFail, userID, resource), fmt.Sprintf("user %s attempted to access %s without entitlement", userID, resource), opts...)
}

func (s *SecurityLogger) TenantIntegrityViolation(userID, reason string, opts ...Option) {
	s.log(zapcore.ErrorLevel, fmt.Sprintf("%s:%s", eventTenantIntegrity, userID), reason, opts...)
}

func (s *SecurityLogger) SessionCreated(userID string, opts ...Option) {
	s.log(zapcore.InfoLevel, fmt.Sprintf("%s:%s", eventSessionCreated, userID), fmt.Sprintf("user %s logged in", userID), opts...)
}

func (s *SecurityLogger) SessionRevoked(userID string, opts ...Option) {
	s.log(zapcore.InfoLevel, fmt.Sprintf("%s:%s", eventSessionRevoked, userID), fmt.Sprintf("user %s logged out", userID), opts...)
}

func (s *SecurityLogger) AdminAction(userID, action, target string, opts ...Option) {
	s.log(zapcore.InfoLevel, fmt.Sprintf("%s:%s,%s,%s", eventAdminAction, userID, action, target), fmt.Sprintf("user %s performed %s on %s", userID, action, target), opts...)
}

func (s *SecurityLogger) log(level zapcore.Level, event, description string, opts ...Option) {
	fields := []zap.Field{
		zap.String("type", "security"),
		zap.String("appid", appID),
		zap.String("event", event),
		zap.String(securityEventDescription, description),
	}

	for _, opt := range opts {
		opt(&fields)
	}

	if ce := s.l.Check(level, description); ce != nil {
		ce.Write(fields...)
	}
}

func NewSecurityLogger(l *zap.Logger) *SecurityLogger {
	return &SecurityLogger{l: l}
}
