// Package scenarios replays YAML described inspections against the model
// registry and compares each decision with its expected outcome.
package scenarios

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kilianp07/fleetservice/core/inspection"
)

// Expected holds the decision an inspection must produce. Component flags
// are only checked when set.
type Expected struct {
	NeedsService bool  `yaml:"needs_service"`
	EngineDue    *bool `yaml:"engine_due,omitempty"`
	BatteryDue   *bool `yaml:"battery_due,omitempty"`
}

// Case is one inspection in a scenario.
type Case struct {
	Name      string         `yaml:"name"`
	VehicleID string         `yaml:"vehicle_id"`
	Model     string         `yaml:"model"`
	Telemetry map[string]any `yaml:"telemetry"`
	Expected  Expected       `yaml:"expected"`
}

func (c Case) Request() inspection.Request {
	id := c.VehicleID
	if id == "" {
		id = c.Name
	}
	return inspection.Request{VehicleID: id, Model: c.Model, Telemetry: c.Telemetry}
}

type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	// Strict evaluates the cases with input validation enabled.
	Strict      bool   `yaml:"strict,omitempty"`
	Inspections []Case `yaml:"inspections"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("parse %s: scenario name is required", path)
	}
	return &sc, nil
}
