package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/WoolCost/internal/model"
)

// DefaultAppConfigPath returns the default path for the application config
// file.
func DefaultAppConfigPath() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// SaveAppConfig persists an AppConfig to the given path as JSON. It creates
// any missing parent directories automatically.
func SaveAppConfig(path string, config model.AppConfig) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadAppConfig reads an AppConfig from the given path. If the file does not
// exist, it returns DefaultAppConfig with no error.
func LoadAppConfig(path string) (model.AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	var config model.AppConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return model.AppConfig{}, err
	}
	// Ensure RecentScenarios is never nil
	if config.RecentScenarios == nil {
		config.RecentScenarios = []string{}
	}
	return config, nil
}

// RememberScenario prepends a scenario path to the recent list, dropping
// duplicates and keeping at most ten entries.
func RememberScenario(config *model.AppConfig, path string) {
	recent := []string{path}
	for _, p := range config.RecentScenarios {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > 10 {
		recent = recent[:10]
	}
	config.RecentScenarios = recent
}
