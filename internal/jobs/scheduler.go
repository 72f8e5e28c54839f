// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
)

const jobTimeout = 30 * time.Second

type Config struct {
	// OfflineAfter is how long a device may stay silent before it is
	// reported offline.
	OfflineAfter  time.Duration
	SweepSchedule string
	PurgeSchedule string
}

// Scheduler runs the periodic maintenance jobs. A run that overlaps the
// previous one of the same job is skipped.
type Scheduler struct {
	cron    *cron.Cron
	storage StorageInterface
	config  Config
	now     func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.config.SweepSchedule, s.run("sweep_offline_devices", s.SweepOfflineDevices)); err != nil {
		return fmt.Errorf("invalid sweep schedule %q: %w", s.config.SweepSchedule, err)
	}

	if _, err := s.cron.AddFunc(s.config.PurgeSchedule, s.run("purge_sessions", s.PurgeSessions)); err != nil {
		return fmt.Errorf("invalid purge schedule %q: %w", s.config.PurgeSchedule, err)
	}

	s.cron.Start()

	return nil
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("jobs still running at shutdown")
	}
}

// SweepOfflineDevices flags devices without a heartbeat in the last
// OfflineAfter as offline.
func (s *Scheduler) SweepOfflineDevices(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "jobs.Scheduler.SweepOfflineDevices")
	defer span.End()

	n, err := s.storage.MarkStaleDevicesOffline(ctx, s.now().Add(-s.config.OfflineAfter))
	if err != nil {
		return err
	}

	if n > 0 {
		s.logger.Infof("marked %d devices offline", n)
	}

	return nil
}

func (s *Scheduler) PurgeSessions(ctx context.Context) error {
	ctx, span := s.tracer.Start(ctx, "jobs.Scheduler.PurgeSessions")
	defer span.End()

	n, err := s.storage.PurgeExpiredSessions(ctx, s.now())
	if err != nil {
		return err
	}

	s.logger.Debugf("purged %d expired sessions", n)

	return nil
}

func (s *Scheduler) run(name string, job func(context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		if err := job(ctx); err != nil {
			s.logger.Errorf("job %s failed: %v", name, err)
		}
	}
}

func NewScheduler(
	s StorageInterface,
	config Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Scheduler {
	return &Scheduler{
		cron: cron.New(
			cron.WithChain(cron.Recover(cron.DiscardLogger), cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		storage: s,
		config:  config,
		now:     time.Now,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
