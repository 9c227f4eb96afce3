package model

import (
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero throughput", func(c *Config) { c.ThroughputTonsPerHour = 0 }},
		{"negative throughput", func(c *Config) { c.ThroughputTonsPerHour = -1 }},
		{"zero yield", func(c *Config) { c.YieldRate = 0 }},
		{"yield above one", func(c *Config) { c.YieldRate = 1.2 }},
		{"zero solid content", func(c *Config) { c.ResinSolidContent = 0 }},
		{"zero efficiency", func(c *Config) { c.ResinEfficiency = 0 }},
		{"zero slab length", func(c *Config) { c.SlabLengthMM = 0 }},
		{"zero slab thickness", func(c *Config) { c.SlabThicknessMM = 0 }},
		{"zero pallet width", func(c *Config) { c.PalletWidthMM = 0 }},
		{"zero max pack weight", func(c *Config) { c.MaxPackWeightKG = 0 }},
		{"zero pallets per truck", func(c *Config) { c.PalletsPerTruck = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateAcceptsFullYield(t *testing.T) {
	cfg := DefaultConfig()
	cfg.YieldRate = 1.0
	if err := cfg.Validate(); err != nil {
		t.Errorf("yield of exactly 1 is valid, got %v", err)
	}
}

func TestParamsOrderIsStable(t *testing.T) {
	params := DefaultConfig().Params()
	if len(params) != 23 {
		t.Fatalf("expected 23 params, got %d", len(params))
	}
	if params[0].Name != "throughput_t_h" {
		t.Errorf("first param should be throughput_t_h, got %s", params[0].Name)
	}
	if params[len(params)-1].Name != "pallets_per_truck" {
		t.Errorf("last param should be pallets_per_truck, got %s", params[len(params)-1].Name)
	}
}

func TestPackModeString(t *testing.T) {
	if PackModeAuto.String() != "Auto" {
		t.Errorf("got %s", PackModeAuto.String())
	}
	if PackModeManual.String() != "Manual" {
		t.Errorf("got %s", PackModeManual.String())
	}
}

func TestResultCellsMatchColumns(t *testing.T) {
	var row ResultRow
	if len(row.Cells()) != len(ResultColumns) {
		t.Fatalf("Cells() returns %d values for %d columns", len(row.Cells()), len(ResultColumns))
	}
}
