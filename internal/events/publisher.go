// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
)

const (
	RoutingKeyAlertCreated = "alert.created"

	exchangeKind   = "topic"
	publishTimeout = 5 * time.Second
)

// Event is the envelope of every message on the exchange.
type Event struct {
	Type       string    `json:"type"`
	CustomerID string    `json:"customer_id"`
	OccurredAt time.Time `json:"occurred_at"`
	Data       any       `json:"data"`
}

type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Publisher emits domain events on a durable topic exchange.
type Publisher struct {
	mu       sync.Mutex
	channel  amqpChannel
	conn     *amqp.Connection
	exchange string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (p *Publisher) Publish(ctx context.Context, routingKey string, e Event) error {
	ctx, span := p.tracer.Start(ctx, "events.Publisher.Publish")
	defer span.End()

	if e.Type == "" {
		e.Type = routingKey
	}

	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		p.exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    e.OccurredAt,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish %s event: %w", routingKey, err)
	}

	return nil
}

func (p *Publisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.logger.Warnf("failed to close amqp channel: %v", err)
	}

	if p.conn != nil {
		return p.conn.Close()
	}

	return nil
}

// NewPublisher dials the broker and declares the exchange.
func NewPublisher(
	url, exchange string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open amqp channel: %w", err)
	}

	if err := ch.ExchangeDeclare(exchange, exchangeKind, true, false, false, false, nil); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange %s: %w", exchange, err)
	}

	go func() {
		err := <-conn.NotifyClose(make(chan *amqp.Error, 1))
		if err != nil {
			logger.Errorf("rabbitmq connection closed: %v", err)
		}
		_ = monitor.SetDependencyAvailability(map[string]string{"component": "rabbitmq"}, 0)
	}()

	_ = monitor.SetDependencyAvailability(map[string]string{"component": "rabbitmq"}, 1)

	p := newPublisher(ch, exchange, tracer, monitor, logger)
	p.conn = conn

	return p, nil
}

func newPublisher(ch amqpChannel, exchange string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Publisher {
	return &Publisher{
		channel:  ch,
		exchange: exchange,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}
