// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
)

const (
	qosAtLeastOnce  = 1
	connectTimeout  = 10 * time.Second
	disconnectQuiet = 250
)

var ErrDisabled = errors.New("device commands are not configured")

// Command is the message delivered to a device agent.
type Command struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Args     map[string]string `json:"args,omitempty"`
	IssuedBy string            `json:"issued_by"`
	IssuedAt time.Time         `json:"issued_at"`
}

// mqttPublisher is the part of mqtt.Client used to deliver commands.
type mqttPublisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Publisher delivers commands on a per device MQTT topic.
type Publisher struct {
	client mqttPublisher
	topic  string
	close  func()

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *Publisher) Topic(deviceID string) string {
	return fmt.Sprintf(p.topic, deviceID)
}

func (p *Publisher) Publish(ctx context.Context, deviceID string, cmd Command) error {
	ctx, span := p.tracer.Start(ctx, "commands.Publisher.Publish")
	defer span.End()

	payload, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("failed to encode command: %w", err)
	}

	token := p.client.Publish(p.Topic(deviceID), qosAtLeastOnce, false, payload)

	select {
	case <-token.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	if err := token.Error(); err != nil {
		return fmt.Errorf("failed to publish command %s to device %s: %w", cmd.Name, deviceID, err)
	}

	p.logger.Debugf("published command %s (%s) to device %s", cmd.Name, cmd.ID, deviceID)

	return nil
}

func (p *Publisher) Close() {
	if p.close != nil {
		p.close()
	}
}

// NewPublisher connects to the broker. topic is a format string taking the
// external device id.
func NewPublisher(
	brokerURL, clientID, topic string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*Publisher, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(brokerURL).
		SetClientID(clientID).
		SetAutoReconnect(true).
		SetCleanSession(true).
		SetConnectTimeout(connectTimeout).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Warnf("mqtt connection lost: %v", err)
			_ = monitor.SetDependencyAvailability(map[string]string{"component": "mqtt"}, 0)
		}).
		SetOnConnectHandler(func(mqtt.Client) {
			_ = monitor.SetDependencyAvailability(map[string]string{"component": "mqtt"}, 1)
		})

	client := mqtt.NewClient(opts)

	token := client.Connect()
	if !token.WaitTimeout(connectTimeout) {
		return nil, fmt.Errorf("timed out connecting to mqtt broker %s", brokerURL)
	}

	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to mqtt broker: %w", err)
	}

	p := newPublisher(client, topic, tracer, monitor, logger)
	p.close = func() { client.Disconnect(disconnectQuiet) }

	return p, nil
}

func newPublisher(client mqttPublisher, topic string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Publisher {
	return &Publisher{
		client:  client,
		topic:   topic,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
