// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package alerts

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/canonical/fleet-service/internal/types"
)

func TestRuleSeverity(t *testing.T) {
	rule := DefaultRules().Rules[0]

	tests := []struct {
		name     string
		value    float64
		expected types.Severity
		breach   bool
	}{
		{name: "Below warning", value: 50, breach: false},
		{name: "Exactly on warning threshold", value: 80, breach: false},
		{name: "Warning band", value: 92, expected: types.SeverityWarning, breach: true},
		{name: "Exactly on critical threshold", value: 95, expected: types.SeverityWarning, breach: true},
		{name: "Critical band", value: 96, expected: types.SeverityCritical, breach: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			severity, ok := rule.Severity(test.value)

			if ok != test.breach {
				t.Fatalf("expected breach %v, got %v", test.breach, ok)
			}

			if severity != test.expected {
				t.Errorf("expected severity %q, got %q", test.expected, severity)
			}
		})
	}
}

func TestRulesEvaluate(t *testing.T) {
	breaches := DefaultRules().Evaluate(map[string]float64{
		MetricMemory: 99,
		MetricCPU:    92,
		MetricDisk:   10,
		"swap":       100,
	})

	if len(breaches) != 2 {
		t.Fatalf("expected 2 breaches, got %d", len(breaches))
	}

	if breaches[0].Rule.Type != AlertHighCPU || breaches[0].Severity != types.SeverityWarning {
		t.Errorf("unexpected first breach %+v", breaches[0])
	}

	if breaches[1].Rule.Type != AlertHighMemory || breaches[1].Severity != types.SeverityCritical {
		t.Errorf("unexpected second breach %+v", breaches[1])
	}

	if msg := breaches[0].Message(); msg != "CPU usage at 92.0%" {
		t.Errorf("unexpected message %q", msg)
	}
}

func TestLoadRules(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
		expectedLen int
	}{
		{
			name: "Valid file",
			content: `rules:
  - metric: cpu
    type: HIGH_CPU
    warning: 70
    critical: 90
`,
			expectedLen: 1,
		},
		{
			name: "Inverted thresholds",
			content: `rules:
  - metric: cpu
    type: HIGH_CPU
    warning: 90
    critical: 70
`,
			expectedErr: ErrInvalidRule,
		},
		{
			name: "Duplicate metric",
			content: `rules:
  - {metric: cpu, type: HIGH_CPU, warning: 70, critical: 90}
  - {metric: cpu, type: CPU_AGAIN, warning: 70, critical: 90}
`,
			expectedErr: ErrInvalidRule,
		},
		{
			name: "Message with one value verb and an escaped percent",
			content: `rules:
  - {metric: cpu, type: HIGH_CPU, warning: 70, critical: 90, message: "CPU at %.1f%%"}
`,
			expectedLen: 1,
		},
		{
			name: "Message with two verbs",
			content: `rules:
  - {metric: cpu, type: HIGH_CPU, warning: 70, critical: 90, message: "CPU at %.1f of %.1f"}
`,
			expectedErr: ErrInvalidRule,
		},
		{
			name: "Message without a verb",
			content: `rules:
  - {metric: cpu, type: HIGH_CPU, warning: 70, critical: 90, message: "CPU is high"}
`,
			expectedErr: ErrInvalidRule,
		},
		{
			name: "Message with a non numeric verb",
			content: `rules:
  - {metric: cpu, type: HIGH_CPU, warning: 70, critical: 90, message: "CPU at %s"}
`,
			expectedErr: ErrInvalidRule,
		},
		{
			name: "Message with a dangling percent",
			content: `rules:
  - {metric: cpu, type: HIGH_CPU, warning: 70, critical: 90, message: "CPU at %.1f %"}
`,
			expectedErr: ErrInvalidRule,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rules.yaml")
			if err := os.WriteFile(path, []byte(test.content), 0o600); err != nil {
				t.Fatalf("failed to write rules: %v", err)
			}

			rules, err := LoadRules(path)

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected error %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if len(rules.Rules) != test.expectedLen {
				t.Errorf("expected %d rules, got %d", test.expectedLen, len(rules.Rules))
			}
		})
	}
}

func TestLoadRulesDefaults(t *testing.T) {
	rules, err := LoadRules("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(rules.Rules) != 3 {
		t.Errorf("expected the 3 default rules, got %d", len(rules.Rules))
	}
}

func TestDefaultRulesFormatCleanly(t *testing.T) {
	rules := DefaultRules()
	if err := rules.validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	breaches := rules.Evaluate(map[string]float64{MetricCPU: 97.5})
	if len(breaches) != 1 {
		t.Fatalf("expected 1 breach, got %d", len(breaches))
	}

	if msg := breaches[0].Message(); msg != "CPU usage at 97.5%" {
		t.Errorf("unexpected message %q", msg)
	}
}
