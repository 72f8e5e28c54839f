// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"time"
)

type DeviceState int

const (
	DeviceActive DeviceState = iota
	DeviceSoftDeleted
)

func (s DeviceState) String() string {
	switch s {
	case DeviceActive:
		return "active"
	case DeviceSoftDeleted:
		return "soft_deleted"
	default:
		return fmt.Sprintf("DeviceState(%d)", int(s))
	}
}

const (
	DeviceStatusOnline  = "online"
	DeviceStatusOffline = "offline"
)

type Device struct {
	ID           string     `db:"id" json:"id"`
	DeviceID     string     `db:"device_id" json:"device_id"`
	CustomerID   string     `db:"customer_id" json:"customer_id"`
	UserID       string     `db:"user_id" json:"user_id"`
	Hostname     string     `db:"hostname" json:"hostname"`
	Architecture string     `db:"architecture" json:"architecture"`
	Model        string     `db:"model" json:"model,omitempty"`
	Addresses    []string   `db:"addresses" json:"addresses"`
	Capabilities []string   `db:"capabilities" json:"capabilities"`
	Status       string     `db:"status" json:"status"`
	LastSeenAt   *time.Time `db:"last_seen_at" json:"last_seen_at,omitempty"`
	DeletedAt    *time.Time `db:"deleted_at" json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}

func (d *Device) State() DeviceState {
	if d.DeletedAt != nil {
		return DeviceSoftDeleted
	}
	return DeviceActive
}

// RegistrationDecision is the ownership transition for an inbound
// registration of an external device id.
type RegistrationDecision int

const (
	DecisionCreate RegistrationDecision = iota
	DecisionRestore
	DecisionUpdate
	DecisionReject
)

func (d RegistrationDecision) String() string {
	switch d {
	case DecisionCreate:
		return "create"
	case DecisionRestore:
		return "restore"
	case DecisionUpdate:
		return "update"
	case DecisionReject:
		return "reject"
	default:
		return fmt.Sprintf("RegistrationDecision(%d)", int(d))
	}
}

// DecideRegistration maps the stored row for a device id (nil when there
// is none) and the tenant the registration targets onto a transition.
// An active device owned by another tenant is never reassigned.
func DecideRegistration(existing *Device, targetCustomerID string) RegistrationDecision {
	if existing == nil {
		return DecisionCreate
	}

	switch existing.State() {
	case DeviceSoftDeleted:
		return DecisionRestore
	case DeviceActive:
		if existing.CustomerID == targetCustomerID {
			return DecisionUpdate
		}
		return DecisionReject
	default:
		return DecisionReject
	}
}
