// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package alerts

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/canonical/fleet-service/internal/types"
)

const (
	MetricCPU    = "cpu"
	MetricMemory = "memory"
	MetricDisk   = "disk"

	AlertHighCPU    = "HIGH_CPU"
	AlertHighMemory = "HIGH_MEMORY"
	AlertHighDisk   = "HIGH_DISK"
)

var ErrInvalidRule = errors.New("invalid alert rule")

// Rule bands one metric into a warning and a critical range. A sample
// must be strictly above a threshold to fall into its band.
type Rule struct {
	Metric   string  `yaml:"metric"`
	Type     string  `yaml:"type"`
	Warning  float64 `yaml:"warning"`
	Critical float64 `yaml:"critical"`
	Message  string  `yaml:"message"`
}

// Severity returns the most severe band value falls into.
func (r Rule) Severity(value float64) (types.Severity, bool) {
	switch {
	case value > r.Critical:
		return types.SeverityCritical, true
	case value > r.Warning:
		return types.SeverityWarning, true
	default:
		return "", false
	}
}

func (r Rule) validate() error {
	if r.Metric == "" || r.Type == "" {
		return fmt.Errorf("%w: metric and type are required", ErrInvalidRule)
	}

	if r.Warning >= r.Critical {
		return fmt.Errorf("%w: %s warning threshold must be below critical", ErrInvalidRule, r.Metric)
	}

	if r.Message != "" && !singleValueVerb(r.Message) {
		return fmt.Errorf("%w: %s message must hold exactly one value verb such as %%.1f", ErrInvalidRule, r.Metric)
	}

	return nil
}

// singleValueVerb reports whether format consumes exactly one float64
// argument. %% escapes are allowed, argument indexes and * widths are not.
func singleValueVerb(format string) bool {
	verbs := 0

	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			continue
		}

		i++
		for i < len(format) && strings.IndexByte("+-# 0123456789.", format[i]) >= 0 {
			i++
		}

		if i == len(format) {
			return false
		}

		switch format[i] {
		case '%':
		case 'e', 'E', 'f', 'F', 'g', 'G', 'v':
			verbs++
		default:
			return false
		}
	}

	return verbs == 1
}

// Breach is a sample that crossed a rule threshold.
type Breach struct {
	Rule     Rule
	Value    float64
	Severity types.Severity
}

func (b Breach) Message() string {
	if b.Rule.Message != "" {
		return fmt.Sprintf(b.Rule.Message, b.Value)
	}
	return fmt.Sprintf("%s at %.1f%% (%s)", b.Rule.Metric, b.Value, b.Severity)
}

type Rules struct {
	Rules []Rule `yaml:"rules"`
}

// Evaluate returns the breaches of a heartbeat sample, ordered by metric.
// Metrics without a rule are ignored.
func (rs *Rules) Evaluate(sample map[string]float64) []Breach {
	breaches := make([]Breach, 0)

	for _, rule := range rs.Rules {
		value, ok := sample[rule.Metric]
		if !ok {
			continue
		}

		if severity, ok := rule.Severity(value); ok {
			breaches = append(breaches, Breach{Rule: rule, Value: value, Severity: severity})
		}
	}

	sort.SliceStable(breaches, func(i, j int) bool { return breaches[i].Rule.Metric < breaches[j].Rule.Metric })

	return breaches
}

func (rs *Rules) validate() error {
	seen := make(map[string]bool, len(rs.Rules))

	for _, r := range rs.Rules {
		if err := r.validate(); err != nil {
			return err
		}

		if seen[r.Metric] {
			return fmt.Errorf("%w: duplicate rule for %s", ErrInvalidRule, r.Metric)
		}
		seen[r.Metric] = true
	}

	return nil
}

func DefaultRules() *Rules {
	return &Rules{
		Rules: []Rule{
			{Metric: MetricCPU, Type: AlertHighCPU, Warning: 80, Critical: 95, Message: "CPU usage at %.1f%%"},
			{Metric: MetricMemory, Type: AlertHighMemory, Warning: 85, Critical: 95, Message: "memory usage at %.1f%%"},
			{Metric: MetricDisk, Type: AlertHighDisk, Warning: 85, Critical: 95, Message: "disk usage at %.1f%%"},
		},
	}
}

// LoadRules reads a YAML rule file. An empty path yields the defaults.
func LoadRules(path string) (*Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read alert rules: %w", err)
	}

	rules := new(Rules)
	if err := yaml.Unmarshal(raw, rules); err != nil {
		return nil, fmt.Errorf("failed to parse alert rules: %w", err)
	}

	if err := rules.validate(); err != nil {
		return nil, err
	}

	return rules, nil
}
