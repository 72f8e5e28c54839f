// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package commands

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/tracing"
)

type fakeToken struct {
	done chan struct{}
	err  error
}

func (t *fakeToken) Wait() bool {
	<-t.done
	return true
}

func (t *fakeToken) WaitTimeout(time.Duration) bool { return true }
func (t *fakeToken) Done() <-chan struct{}          { return t.done }
func (t *fakeToken) Error() error                   { return t.err }

type fakeClient struct {
	topic   string
	qos     byte
	payload []byte
	token   *fakeToken
}

func (c *fakeClient) Publish(topic string, qos byte, _ bool, payload interface{}) mqtt.Token {
	c.topic = topic
	c.qos = qos
	c.payload = payload.([]byte)
	return c.token
}

func completedToken(err error) *fakeToken {
	t := &fakeToken{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

func newTestPublisher(client mqttPublisher) *Publisher {
	logger := logging.NewNoopLogger()
	return newPublisher(client, "fleet/devices/%s/commands", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("", logger), logger)
}

func TestPublisher_Publish(t *testing.T) {
	client := &fakeClient{token: completedToken(nil)}
	p := newTestPublisher(client)

	cmd := Command{ID: "cmd-1", Name: "reboot", IssuedBy: "u1"}
	if err := p.Publish(context.Background(), "dev-42", cmd); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if client.topic != "fleet/devices/dev-42/commands" {
		t.Errorf("unexpected topic %s", client.topic)
	}

	if client.qos != qosAtLeastOnce {
		t.Errorf("expected at least once delivery, got qos %d", client.qos)
	}

	var got Command
	if err := json.Unmarshal(client.payload, &got); err != nil {
		t.Fatalf("payload is not json: %v", err)
	}

	if got.Name != "reboot" || got.ID != "cmd-1" {
		t.Errorf("unexpected command %+v", got)
	}
}

func TestPublisher_PublishFailure(t *testing.T) {
	p := newTestPublisher(&fakeClient{token: completedToken(errors.New("not connected"))})

	if err := p.Publish(context.Background(), "dev-42", Command{Name: "reboot"}); err == nil {
		t.Errorf("expected broker error to be returned")
	}
}

func TestPublisher_PublishCancelled(t *testing.T) {
	p := newTestPublisher(&fakeClient{token: &fakeToken{done: make(chan struct{})}})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Publish(ctx, "dev-42", Command{Name: "reboot"}); !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation, got %v", err)
	}
}

func TestNoopPublisher(t *testing.T) {
	if err := NewNoopPublisher().Publish(context.Background(), "dev-42", Command{}); !errors.Is(err, ErrDisabled) {
		t.Errorf("expected ErrDisabled, got %v", err)
	}
}
