// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ LoggerInterface = (*Logger)(nil)

type Logger struct {
	*zap.SugaredLogger

	security *SecurityLogger
}

func (l *Logger) Security() SecurityLoggerInterface {
	return l.security
}

// SecurityLogger emits audit-relevant events on a dedicated logger so that
// they can be routed and retained separately from application logs.
type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AccessDenied(requester, target, reason string) {
	s.l.Warn("access denied",
		zap.String("event", "authz_fail"),
		zap.String("requester", requester),
		zap.String("target", target),
		zap.String("reason", reason),
	)
}

func (s *SecurityLogger) CeilingChanged(actor, account string) {
	s.l.Info("quota ceiling changed",
		zap.String("event", "quota_ceiling_change"),
		zap.String("actor", actor),
		zap.String("account", account),
	)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn", "warning":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.ErrorLevel
	}
}

func NewLogger(level string) *Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(level))
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	return &Logger{
		SugaredLogger: l.Sugar(),
		security:      &SecurityLogger{l: l.Named("security")},
	}
}
