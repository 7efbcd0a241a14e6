// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package web assembles the HTTP surface: middleware chain, operational
// endpoints, and the ledger API packages.
package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/stratusline/ledger-service/internal/db"
	"github.com/stratusline/ledger-service/internal/identity"
	"github.com/stratusline/ledger-service/internal/logging"
	"github.com/stratusline/ledger-service/internal/monitoring"
	"github.com/stratusline/ledger-service/internal/storage"
	"github.com/stratusline/ledger-service/internal/tracing"
	"github.com/stratusline/ledger-service/pkg/accounts"
	"github.com/stratusline/ledger-service/pkg/metrics"
	"github.com/stratusline/ledger-service/pkg/provision"
	"github.com/stratusline/ledger-service/pkg/quota"
	"github.com/stratusline/ledger-service/pkg/status"
	"github.com/stratusline/ledger-service/pkg/visibility"
)

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)
	if dbClient != nil {
		middlewares = append(middlewares, db.TransactionMiddleware(dbClient, logger))
	}

	router.Use(middlewares...)

	// Operational endpoints stay outside the identity requirement so probes
	// and scrapers need no gateway header.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware)

		accounts.NewAPI(accounts.NewService(s, tracer, monitor, logger), logger).RegisterEndpoints(r)
		quota.NewAPI(quota.NewService(s, tracer, monitor, logger), logger).RegisterEndpoints(r)
		provision.NewAPI(provision.NewService(s, tracer, monitor, logger), logger).RegisterEndpoints(r)
		visibility.NewAPI(visibility.NewService(s, tracer, monitor, logger), logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
