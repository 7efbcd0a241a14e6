// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net/http"

	"github.com/stratusline/ledger-service/internal/logging"
	"github.com/stratusline/ledger-service/internal/monitoring"
	"github.com/stratusline/ledger-service/internal/tracing"
)

// HeaderName carries the authenticated requester account ID, set by the API
// gateway in front of this service. Session issuance and verification happen
// upstream; this service only consumes the resolved identity.
const HeaderName = "X-Requester-Id"

type contextKey struct{}

var requesterContextKey = contextKey{}

// WithRequesterID returns a new context carrying the requester account ID.
func WithRequesterID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requesterContextKey, id)
}

// RequesterID retrieves the requester account ID from the context.
func RequesterID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requesterContextKey).(string)
	return id, ok && id != ""
}

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		requesterID := r.Header.Get(HeaderName)
		if requesterID == "" {
			http.Error(w, "missing requester identity", http.StatusUnauthorized)
			return
		}

		ctx = WithRequesterID(ctx, requesterID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
