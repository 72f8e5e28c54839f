// Copyright 2026 Canonical Ltd.
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

	"github.com/canonical/fleet-service/internal/authorization"
	"github.com/canonical/fleet-service/internal/commands"
	"github.com/canonical/fleet-service/internal/config"
	"github.com/canonical/fleet-service/internal/db"
	"github.com/canonical/fleet-service/internal/events"
	"github.com/canonical/fleet-service/internal/jobs"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring/prometheus"
	"github.com/canonical/fleet-service/internal/ratelimit"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/pkg/alerts"
	"github.com/canonical/fleet-service/pkg/apikeys"
	"github.com/canonical/fleet-service/pkg/authentication"
	"github.com/canonical/fleet-service/pkg/devices"
	"github.com/canonical/fleet-service/pkg/status"
	"github.com/canonical/fleet-service/pkg/tenancy"
	"github.com/canonical/fleet-service/pkg/users"
	"github.com/canonical/fleet-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

type limiter interface {
	authentication.RateLimiterInterface
	status.PingerInterface
	Close() error
}

type eventPublisher interface {
	alerts.EventPublisherInterface
	Close() error
}

type commandPublisher interface {
	devices.CommandPublisherInterface
	Close()
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("fleet-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	dependencies := map[string]status.PingerInterface{"database": dbClient}

	var failures limiter = ratelimit.NewNoopLimiter()
	if specs.RedisEnabled {
		failures = ratelimit.NewFailureLimiter(
			ratelimit.NewRedisClient(specs.RedisAddr, specs.RedisPassword, specs.RedisDB),
			specs.AuthFailureLimit,
			specs.AuthFailureWindow,
			tracer,
			monitor,
			logger,
		)
		dependencies["redis"] = failures
		logger.Info("Authentication failure limiting is enabled")
	}
	defer failures.Close()

	var publisher eventPublisher = events.NewNoopPublisher()
	if specs.RabbitMQURL != "" {
		p, err := events.NewPublisher(specs.RabbitMQURL, specs.RabbitMQExchange, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to create event publisher: %v", err)
		}
		publisher = p
	} else {
		logger.Info("Using noop event publisher")
	}
	defer publisher.Close()

	var commander commandPublisher = commands.NewNoopPublisher()
	if specs.MQTTBrokerURL != "" {
		p, err := commands.NewPublisher(specs.MQTTBrokerURL, specs.MQTTClientID, specs.MQTTCommandTopic, tracer, monitor, logger)
		if err != nil {
			return fmt.Errorf("failed to create command publisher: %v", err)
		}
		commander = p
	} else {
		logger.Info("Device commands are disabled, no mqtt broker configured")
	}
	defer commander.Close()

	rules, err := alerts.LoadRules(specs.AlertRulesFile)
	if err != nil {
		return fmt.Errorf("failed to load alert rules: %v", err)
	}

	scoped := tenancy.NewScopedStore(s, tracer, monitor, logger)
	authorizer := authorization.NewAuthorizer(tracer, monitor, logger)
	tokens := authentication.NewSessionTokens(specs.SessionSecret)

	alertService := alerts.NewService(
		scoped,
		alerts.NewDeduplicator(scoped, publisher, tracer, monitor, logger),
		rules,
		tracer,
		monitor,
		logger,
	)

	services := web.Services{
		Auth:       authentication.NewService(s, tokens, specs.SessionLifetime, tracer, monitor, logger),
		Devices:    devices.NewService(scoped, authorizer, commander, alertService, tracer, monitor, logger),
		Reconciler: devices.NewReconciler(s, dbClient, tracer, monitor, logger),
		Alerts:     alertService,
		Users:      users.NewService(scoped, authorizer, 0, tracer, monitor, logger),
		APIKeys:    apikeys.NewService(scoped, specs.APIKeyPrefix, tracer, monitor, logger),
		Limiter:    failures,
	}

	authn := authentication.NewMiddleware(
		authentication.NewDefaultVerifier(s, tokens, specs.SessionCookieName, tracer, monitor, logger),
		tenancy.NewResolver(tracer, monitor, logger),
		failures,
		tracer,
		monitor,
		logger,
	)
	authz := authorization.NewMiddleware(authorizer, authentication.TenantContextFromRequest, tracer, monitor, logger)

	scheduler := jobs.NewScheduler(
		s,
		jobs.Config{
			OfflineAfter:  specs.OfflineAfter,
			SweepSchedule: specs.SweepSchedule,
			PurgeSchedule: specs.PurgeSchedule,
		},
		tracer,
		monitor,
		logger,
	)
	if err := scheduler.Start(); err != nil {
		return fmt.Errorf("failed to start jobs: %v", err)
	}

	router := web.NewRouter(
		services,
		authn,
		authz,
		dependencies,
		dbClient,
		web.Config{
			CookieName:     specs.SessionCookieName,
			CookieSecure:   specs.CookieSecure,
			AllowedOrigins: specs.CORSAllowedOrigins,
		},
		tracer,
		monitor,
		logger,
	)
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

	scheduler.Stop(ctx)

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
