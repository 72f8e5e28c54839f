// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port int `envconfig:"port" default:"8080"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	SessionSecret     string        `envconfig:"session_secret" required:"true"`
	SessionLifetime   time.Duration `envconfig:"session_lifetime" default:"24h"`
	SessionCookieName string        `envconfig:"session_cookie_name" default:"auth-token"`
	CookieSecure      bool          `envconfig:"cookie_secure" default:"true"`

	APIKeyPrefix string `envconfig:"api_key_prefix" default:"fk_"`

	RedisEnabled      bool          `envconfig:"redis_enabled" default:"false"`
	RedisAddr         string        `envconfig:"redis_addr" default:"localhost:6379"`
	RedisPassword     string        `envconfig:"redis_password"`
	RedisDB           int           `envconfig:"redis_db" default:"0"`
	AuthFailureLimit  int64         `envconfig:"auth_failure_limit" default:"20"`
	AuthFailureWindow time.Duration `envconfig:"auth_failure_window" default:"1m"`

	RabbitMQURL      string `envconfig:"rabbitmq_url"`
	RabbitMQExchange string `envconfig:"rabbitmq_exchange" default:"fleet.events"`

	MQTTBrokerURL    string `envconfig:"mqtt_broker_url"`
	MQTTClientID     string `envconfig:"mqtt_client_id" default:"fleet-service"`
	MQTTCommandTopic string `envconfig:"mqtt_command_topic" default:"fleet/devices/%s/commands"`

	AlertRulesFile string        `envconfig:"alert_rules_file"`
	OfflineAfter   time.Duration `envconfig:"offline_after" default:"5m"`
	SweepSchedule  string        `envconfig:"sweep_schedule" default:"@every 1m"`
	PurgeSchedule  string        `envconfig:"purge_schedule" default:"@hourly"`
}
