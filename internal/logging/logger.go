// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

// Logger is the application logger, a sugared zap logger carrying a
// dedicated security event stream.
type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// NewLogger creates a new default logger
// it will need to be closed with
// ```
// defer logger.Sync()
// ```
// to make sure all has been piped out before terminating
func NewLogger(l string) *Logger {
	var lvl string

	switch strings.ToLower(l) {
	case "debug", "info", "warn", "error":
		lvl = strings.ToLower(l)
	default:
		lvl = "error"
	}

	rawLevel := zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	if level, err := zap.ParseAtomicLevel(lvl); err == nil {
		rawLevel = level
	}

	cfg := zap.Config{
		Level:            rawLevel,
		Encoding:         "json",
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig: zapcore.EncoderConfig{
			MessageKey:   "message",
			LevelKey:     "severity",
			TimeKey:      "@timestamp",
			CallerKey:    "caller",
			EncodeLevel:  zapcore.LowercaseLevelEncoder,
			EncodeTime:   zapcore.RFC3339NanoTimeEncoder,
			EncodeCaller: zapcore.ShortCallerEncoder,
		},
	}

	logger := zap.Must(cfg.Build())

	// security events are emitted whatever the configured level
	securityCfg := cfg
	securityCfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	securityLogger := zap.Must(securityCfg.Build()).Named("security")

	return &Logger{
		SugaredLogger: logger.Sugar(),
		security:      NewSecurityLogger(securityLogger),
	}
}
