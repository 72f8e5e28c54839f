// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

type Severity string

const (
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// Rank orders severities so the most severe band can be picked.
func (s Severity) Rank() int {
	switch s {
	case SeverityWarning:
		return 1
	case SeverityCritical:
		return 2
	default:
		return 0
	}
}

type Alert struct {
	ID           string     `db:"id" json:"id"`
	DeviceID     string     `db:"device_id" json:"device_id"`
	CustomerID   string     `db:"customer_id" json:"customer_id"`
	Type         string     `db:"type" json:"type"`
	Severity     Severity   `db:"severity" json:"severity"`
	Message      string     `db:"message" json:"message"`
	Value        float64    `db:"value" json:"value"`
	Acknowledged bool       `db:"acknowledged" json:"acknowledged"`
	Resolved     bool       `db:"resolved" json:"resolved"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	ResolvedAt   *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
}
