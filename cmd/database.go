// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/spf13/cobra"

	"github.com/canonical/fleet-service/internal/db"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

// cliActor is the user id recorded in the audit log for changes made
// from the command line.
const cliActor = "fleet-service-cli"

func resolveDSN(cmd *cobra.Command) (string, error) {
	dsn, _ := cmd.Flags().GetString("dsn")
	if dsn == "" {
		dsn = os.Getenv("DSN")
	}

	if dsn == "" {
		return "", errors.New("no database configured, pass --dsn or set DSN")
	}

	return dsn, nil
}

// adminEnv is what the one shot admin commands need: storage and the
// ambient components services are built with.
type adminEnv struct {
	storage *storage.Storage
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface

	close func()
}

func openAdminEnv(cmd *cobra.Command) (*adminEnv, error) {
	dsn, err := resolveDSN(cmd)
	if err != nil {
		return nil, err
	}

	config, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("DSN validation failed: %w", err)
	}

	sqlDB := stdlib.OpenDB(*config)
	if err := sqlDB.PingContext(cmd.Context()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("DB connection failed: %w", err)
	}

	level, _ := cmd.Flags().GetString("log-level")
	logger := logging.NewLogger(level)
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("fleet-service-cli", logger)

	dbClient := db.NewDBClientFromDB(sqlDB, tracer, monitor, logger)

	return &adminEnv{
		storage: storage.NewStorage(dbClient, tracer, monitor, logger),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
		close: func() {
			sqlDB.Close()
			logger.Sync()
		},
	}, nil
}

// superAdminContext is the tenant context admin commands act with.
func superAdminContext() types.TenantContext {
	tc, _ := types.NewTenantContext(cliActor, types.RoleSuperAdmin, "", types.SchemeSession)
	return tc
}

func addDatabaseFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String("dsn", "", "PostgreSQL DSN connection string, defaults to $DSN")
	cmd.PersistentFlags().String("log-level", "error", "Log level")
}
