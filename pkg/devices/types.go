// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package devices

import (
	"net/http"

	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/alerts"
)

type Action string

const (
	ActionCreated           Action = "created"
	ActionUpdated           Action = "updated"
	ActionRestored          Action = "restored"
	ActionDuplicateRejected Action = "duplicate_rejected"
)

// Status is the HTTP status a registration answers with.
func (a Action) Status() int {
	switch a {
	case ActionCreated:
		return http.StatusCreated
	case ActionDuplicateRejected:
		return http.StatusConflict
	default:
		return http.StatusOK
	}
}

// Registration is the payload a device agent sends on start up.
// CustomerID is only honoured for super admins.
type Registration struct {
	DeviceID     string   `json:"device_id" validate:"required,max=128"`
	Hostname     string   `json:"hostname" validate:"required,hostname_rfc1123"`
	Architecture string   `json:"architecture" validate:"required,max=32"`
	Model        string   `json:"model" validate:"omitempty,max=256"`
	Addresses    []string `json:"addresses" validate:"omitempty,dive,ip"`
	Capabilities []string `json:"capabilities" validate:"omitempty,dive,required"`
	CustomerID   string   `json:"customerId" validate:"omitempty,max=128"`
}

// Result never carries the device of another tenant: a rejected
// registration has no Device.
type Result struct {
	Action  Action        `json:"action"`
	Device  *types.Device `json:"device,omitempty"`
	Message string        `json:"message,omitempty"`
}

type CommandRequest struct {
	Name string            `json:"name" validate:"required,max=64"`
	Args map[string]string `json:"args" validate:"omitempty,max=32"`
}

type Heartbeat struct {
	DeviceID string             `json:"device_id" validate:"required,max=128"`
	Metrics  map[string]float64 `json:"metrics" validate:"omitempty,dive,keys,required,endkeys,gte=0,lte=100"`
}

type AlertOutcome struct {
	Type    string         `json:"type"`
	Outcome alerts.Outcome `json:"outcome"`
	AlertID string         `json:"alert_id,omitempty"`
}

type HeartbeatResult struct {
	DeviceID string         `json:"device_id"`
	Alerts   []AlertOutcome `json:"alerts"`
}
