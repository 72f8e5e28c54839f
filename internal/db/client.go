// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/exaring/otelpgx"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
)

var _ DBClientInterface = (*DBClient)(nil)

// Config sizes the pgx pool backing the registry.
type Config struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
	TracingEnabled  bool
}

// DBClient hands out squirrel builders bound either to the pool or to the
// unit of work opened by WithTx.
type DBClient struct {
	pool *pgxpool.Pool
	db   *sql.DB

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (d *DBClient) builder(runner sq.BaseRunner) sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar).RunWith(runner)
}

// Statement returns a builder for the current context. Inside WithTx every
// statement shares one transaction; when that transaction cannot be opened
// the builder fails each statement with ErrBeginTx instead of reaching the
// pool.
func (d *DBClient) Statement(ctx context.Context) sq.StatementBuilderType {
	uow := unitOfWorkFrom(ctx)
	if uow == nil {
		return d.builder(d.db)
	}

	tx, err := uow.open(ctx)
	if err != nil {
		return d.builder(failedRunner{err: err})
	}

	return d.builder(tx)
}

// Ping checks the pool can still reach the database.
func (d *DBClient) Ping(ctx context.Context) error {
	ctx, span := d.tracer.Start(ctx, "db.DBClient.Ping")
	defer span.End()

	up := 1.0
	err := d.db.PingContext(ctx)
	if err != nil {
		up = 0
	}

	if merr := d.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, up); merr != nil {
		d.logger.Debugf("failed to record database availability: %v", merr)
	}

	return err
}

func (d *DBClient) Close() {
	if d.db != nil {
		_ = d.db.Close()
	}

	if d.pool != nil {
		d.pool.Close()
	}
}

func poolConfig(cfg Config) (*pgxpool.Config, error) {
	c, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("invalid database DSN: %w", err)
	}

	if cfg.TracingEnabled {
		c.ConnConfig.Tracer = otelpgx.NewTracer()
	}

	c.MaxConns = cfg.MaxConns
	c.MinConns = cfg.MinConns
	c.MaxConnLifetime = cfg.MaxConnLifetime
	c.MaxConnLifetimeJitter = cfg.MaxConnLifetime / 10
	c.MaxConnIdleTime = cfg.MaxConnIdleTime

	return c, nil
}

// NewDBClient opens a pgx pool and exposes it through database/sql so
// squirrel and goose can share it.
func NewDBClient(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*DBClient, error) {
	c, err := poolConfig(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(context.Background(), c)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}

	if cfg.TracingEnabled {
		if err := otelpgx.RecordStats(pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to start metrics collection for database: %w", err)
		}
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		pool.Close()
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	d := NewDBClientFromDB(sqlDB, tracer, monitor, logger)
	d.pool = pool

	return d, nil
}

// NewDBClientFromDB wraps an already opened database handle, used by the
// migrate command and by tests running against sqlmock.
func NewDBClientFromDB(sqlDB *sql.DB, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *DBClient {
	d := new(DBClient)
	d.db = sqlDB

	d.tracer = tracer
	d.monitor = monitor
	d.logger = logger

	return d
}
