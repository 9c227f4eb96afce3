package model

import "github.com/google/uuid"

// Scenario ties a configuration, fixed-cost ledger and density list together
// for save/load. Result is the last successful run, if any.
type Scenario struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Config     Config          `json:"config"`
	FixedCosts FixedCostLedger `json:"fixed_costs"`
	Densities  DensityList     `json:"densities"`
	Result     []ResultRow     `json:"result,omitempty"`
}

// NewScenario creates a scenario with a generated short ID and the reference
// defaults.
func NewScenario(name string) Scenario {
	if name == "" {
		name = "Untitled"
	}
	return Scenario{
		ID:         uuid.New().String()[:8],
		Name:       name,
		Config:     DefaultConfig(),
		FixedCosts: DefaultFixedCosts(),
		Densities:  DefaultDensityList(),
	}
}

// Clone returns a deep copy of the scenario. A run embedded in a concurrent
// caller must operate on its own copy; the engine imposes no locking.
func (s Scenario) Clone() Scenario {
	out := s
	out.FixedCosts = s.FixedCosts.Clone()
	out.Densities = s.Densities.Clone()
	if s.Result != nil {
		out.Result = make([]ResultRow, len(s.Result))
		copy(out.Result, s.Result)
	}
	return out
}
