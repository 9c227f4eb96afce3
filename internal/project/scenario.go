// Package project handles persistence of scenarios and application
// preferences as JSON files.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/WoolCost/internal/model"
)

// DefaultConfigDir returns the default directory for application data.
// On all platforms this is ~/.woolcost/
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".woolcost")
}

// SaveScenario persists a scenario to the given path as JSON, creating any
// missing parent directories.
func SaveScenario(path string, scenario model.Scenario) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(scenario, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadScenario reads a scenario from the given path. The stored density list
// and ledger may legitimately be empty; a missing file is an error because a
// caller asked for a specific scenario.
func LoadScenario(path string) (model.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.Scenario{}, err
	}
	var scenario model.Scenario
	if err := json.Unmarshal(data, &scenario); err != nil {
		return model.Scenario{}, fmt.Errorf("failed to parse scenario file: %w", err)
	}
	if scenario.Densities == nil {
		scenario.Densities = model.DensityList{}
	}
	if scenario.FixedCosts == nil {
		scenario.FixedCosts = model.FixedCostLedger{}
	}
	return scenario, nil
}
