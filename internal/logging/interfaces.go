// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

type LoggerInterface interface {
	Debug(args ...interface{})
	Info(args ...interface{})
	Warn(args ...interface{})
	Error(args ...interface{})
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
	Security() SecurityLoggerInterface
	Sync() error
}

type SecurityLoggerInterface interface {
	SystemStartup()
	SystemShutdown()
	AccessDenied(requester, target, reason string)
	CeilingChanged(actor, account string)
}
