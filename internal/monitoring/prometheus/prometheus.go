// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	authFailures           *prometheus.CounterVec
	registrations          *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not available")
	}

	m.responseTime.With(m.withService(tags)).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not available")
	}

	m.dependencyAvailability.With(m.withService(tags)).Set(value)

	return nil
}

func (m *Monitor) IncAuthFailure(tags map[string]string) error {
	if m.authFailures == nil {
		return fmt.Errorf("metric not available")
	}

	m.authFailures.With(m.withService(tags)).Inc()

	return nil
}

func (m *Monitor) IncRegistration(tags map[string]string) error {
	if m.registrations == nil {
		return fmt.Errorf("metric not available")
	}

	m.registrations.With(m.withService(tags)).Inc()

	return nil
}

func (m *Monitor) withService(tags map[string]string) prometheus.Labels {
	labels := prometheus.Labels{"service": m.service}
	for k, v := range tags {
		labels[k] = v
	}

	return labels
}

func (m *Monitor) register(c prometheus.Collector) {
	if err := prometheus.Register(c); err != nil {
		m.logger.Debugf("metric already registered: %v", err)
	}
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_response_time_seconds",
			Help: "http_response_time_seconds",
		},
		[]string{"route", "status", "service"},
	)
	m.register(m.responseTime)
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dependency_available",
			Help: "dependency_available",
		},
		[]string{"component", "service"},
	)
	m.register(m.dependencyAvailability)
}

func (m *Monitor) registerCounters() {
	m.authFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authentication_failures_total",
			Help: "failed credential verifications, by scheme and reason",
		},
		[]string{"scheme", "reason", "service"},
	)
	m.register(m.authFailures)

	m.registrations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "device_registrations_total",
			Help: "device registrations, by reconciliation outcome",
		},
		[]string{"action", "service"},
	)
	m.register(m.registrations)
}

// NewMonitor creates a new Prometheus backed monitor
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}
