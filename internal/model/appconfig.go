package model

// AppConfig holds application-wide preferences and the default parameter set
// applied to new scenarios.
type AppConfig struct {
	DefaultConfig     Config          `json:"default_config"`
	DefaultFixedCosts FixedCostLedger `json:"default_fixed_costs"`
	RecentScenarios   []string        `json:"recent_scenarios"`
}

// DefaultAppConfig returns an AppConfig populated with the reference
// defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultConfig:     DefaultConfig(),
		DefaultFixedCosts: DefaultFixedCosts(),
		RecentScenarios:   []string{},
	}
}

// ApplyToScenario copies the saved defaults into a scenario. Used when
// creating a new scenario so it inherits the user's preferred parameters.
func (c AppConfig) ApplyToScenario(s *Scenario) {
	s.Config = c.DefaultConfig
	s.FixedCosts = c.DefaultFixedCosts.Clone()
}
