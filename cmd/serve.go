// Copyright 2026 Stratusline Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/stratusline/ledger-service/internal/config"
	"github.com/stratusline/ledger-service/internal/db"
	"github.com/stratusline/ledger-service/internal/logging"
	"github.com/stratusline/ledger-service/internal/monitoring/prometheus"
	"github.com/stratusline/ledger-service/internal/storage"
	"github.com/stratusline/ledger-service/internal/storage/inmemory"
	"github.com/stratusline/ledger-service/internal/tracing"
	"github.com/stratusline/ledger-service/pkg/web"
)

var devMode bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the ledger API, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	serveCmd.Flags().BoolVar(&devMode, "dev", false, "serve from an in-memory store instead of PostgreSQL")
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("ledger-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	var s storage.StorageInterface
	var dbClient db.DBClientInterface
	if devMode {
		logger.Warn("dev mode: ledger state is held in memory and lost on exit")
		s = inmemory.NewStore(logger)
	} else {
		dbConfig := db.Config{
			DSN:             specs.DSN,
			MaxConns:        specs.DBMaxConns,
			MinConns:        specs.DBMinConns,
			MaxConnLifetime: specs.DBMaxConnLifetime,
			MaxConnIdleTime: specs.DBMaxConnIdleTime,
			TracingEnabled:  specs.TracingEnabled,
		}
		client, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to create database client: %v", err)
		}
		defer client.Close()

		dbClient = client
		s = storage.NewStorage(client, tracer, monitor, logger)
	}

	router := web.NewRouter(s, dbClient, tracer, monitor, logger)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
