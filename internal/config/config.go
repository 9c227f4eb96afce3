// Package config loads a scenario description from a YAML file and converts
// it into the model types the engine consumes.
package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/piwi3910/WoolCost/internal/model"
	"github.com/spf13/viper"
)

// Configuration is the top-level shape of a scenario YAML file. Parameters
// overlay the built-in defaults: keys left out of the file keep their
// default values.
type Configuration struct {
	Name       string                 `json:"name"`
	Parameters model.Config           `json:"parameters"`
	FixedCosts []model.FixedCostEntry `json:"fixed_costs"`
	Densities  []DensityConfig        `json:"densities"`
	Logging    LoggingConfig          `json:"logging"`
}

// DensityConfig is one density entry of the file, with an optional manual
// pack override.
type DensityConfig struct {
	Density   float64 `json:"density"`
	Mode      string  `json:"mode"`       // "auto" (default) or "manual"
	SlabCount int     `json:"slab_count"` // manual mode only
}

// LoggingConfig holds logging options.
type LoggingConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, console
}

// LoadConfiguration reads and decodes a scenario YAML file. The decode is
// atomic: any unreadable value fails the load and nothing is returned.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	configuration := Configuration{
		Parameters: model.DefaultConfig(),
	}
	// Decode against the json field names so the YAML keys match the
	// persisted scenario format.
	err := v.Unmarshal(&configuration, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
	if err != nil {
		return nil, fmt.Errorf("unable to decode config file: %w", err)
	}

	return &configuration, nil
}

// BuildScenario converts the file contents into a runnable scenario. Missing
// sections fall back to the reference defaults; invalid parameters or
// densities reject the whole scenario.
func (c *Configuration) BuildScenario() (model.Scenario, error) {
	scenario := model.NewScenario(c.Name)
	scenario.Config = c.Parameters

	if err := scenario.Config.Validate(); err != nil {
		return model.Scenario{}, fmt.Errorf("invalid parameters: %w", err)
	}

	if len(c.FixedCosts) > 0 {
		scenario.FixedCosts = model.FixedCostLedger{}
		for _, e := range c.FixedCosts {
			scenario.FixedCosts.Set(e.Category, e.RatePerHour)
		}
	}

	if len(c.Densities) > 0 {
		scenario.Densities = model.DensityList{}
		for _, d := range c.Densities {
			if err := scenario.Densities.Add(d.Density); err != nil {
				return model.Scenario{}, fmt.Errorf("invalid density list: %w", err)
			}
			setting, err := parsePackSetting(d)
			if err != nil {
				return model.Scenario{}, err
			}
			if err := scenario.Densities.SetPack(d.Density, setting); err != nil {
				return model.Scenario{}, err
			}
		}
	}

	return scenario, nil
}

func parsePackSetting(d DensityConfig) (model.PackSetting, error) {
	switch d.Mode {
	case "", "auto":
		return model.DefaultPackSetting(), nil
	case "manual":
		count := d.SlabCount
		if count < 1 {
			count = 1
		}
		return model.PackSetting{Mode: model.PackModeManual, ManualCount: count}, nil
	default:
		return model.PackSetting{}, fmt.Errorf("unknown pack mode %q for density %v", d.Mode, d.Density)
	}
}
