package model

import "fmt"

// Config holds the plant, recipe, geometry and logistics parameters that
// drive a calculation run. It is passed by value into every engine operation
// and is never mutated during a run.
type Config struct {
	// Production line
	ThroughputTonsPerHour float64 `json:"throughput_t_h"` // melt throughput (t/h)
	YieldRate             float64 `json:"yield_rate"`     // fraction of melt that becomes product (0..1]

	// Binder recipe
	LOIPercent        float64 `json:"loi_percent"`         // binder content, % of finished-board weight
	ResinSolidContent float64 `json:"resin_solid_content"` // dry share of the resin concentrate
	ResinEfficiency   float64 `json:"resin_efficiency"`    // spraying efficiency
	ResinPricePerTon  float64 `json:"resin_price_per_ton"`

	// Variable costs per ton of input melt (excluding binder)
	StoneCostPerTon      float64 `json:"var_stone_t"`
	MeltEnergyCostPerTon float64 `json:"var_melting_energy_t"`
	OtherVarCostPerTon   float64 `json:"var_other_t"`

	// Board geometry (mm)
	SlabLengthMM    float64 `json:"slab_length_mm"`
	SlabWidthMM     float64 `json:"slab_width_mm"`
	SlabThicknessMM float64 `json:"slab_thickness_mm"`

	// Pack and pallet targets (mm / kg)
	TargetPackHeightMM   float64 `json:"target_pack_height_mm"`
	TargetPalletHeightMM float64 `json:"target_pallet_height_mm"` // product stack, excluding the base
	PalletLengthMM       float64 `json:"pallet_length_mm"`
	PalletWidthMM        float64 `json:"pallet_width_mm"`
	MaxPackWeightKG      float64 `json:"max_pack_weight_kg"`

	// Packaging and logistics pricing
	FilmPricePerLinearMeter float64 `json:"film_price_per_lm"`
	FilmWidthM              float64 `json:"film_width_m"` // roll width; reference only, not used in cost math
	PalletPrice             float64 `json:"pallet_price"`
	HoodPrice               float64 `json:"hood_price"`
	StretchPrice            float64 `json:"stretch_price_pallet"`
	PalletsPerTruck         int     `json:"pallets_per_truck"`
}

// DefaultConfig returns the reference parameter set the calculator ships with.
func DefaultConfig() Config {
	return Config{
		ThroughputTonsPerHour:   4.0,
		YieldRate:               0.97,
		LOIPercent:              4.5,
		ResinSolidContent:       0.5,
		ResinEfficiency:         0.95,
		ResinPricePerTon:        60000,
		StoneCostPerTon:         15000,
		MeltEnergyCostPerTon:    15000,
		OtherVarCostPerTon:      3500,
		SlabLengthMM:            1200,
		SlabWidthMM:             600,
		SlabThicknessMM:         50,
		TargetPackHeightMM:      600,
		TargetPalletHeightMM:    2400,
		PalletLengthMM:          2400,
		PalletWidthMM:           1200,
		MaxPackWeightKG:         30,
		FilmPricePerLinearMeter: 15,
		FilmWidthM:              1.4,
		PalletPrice:             1500,
		HoodPrice:               500,
		StretchPrice:            150,
		PalletsPerTruck:         22,
	}
}

// Validate checks the invariants every engine operation relies on. A config
// that fails validation must not be used for a run.
func (c Config) Validate() error {
	if c.ThroughputTonsPerHour <= 0 {
		return fmt.Errorf("throughput must be positive, got %v", c.ThroughputTonsPerHour)
	}
	if c.YieldRate <= 0 || c.YieldRate > 1 {
		return fmt.Errorf("yield rate must be in (0, 1], got %v", c.YieldRate)
	}
	if c.ResinSolidContent*c.ResinEfficiency <= 0 {
		return fmt.Errorf("resin solid content * efficiency must be positive, got %v * %v",
			c.ResinSolidContent, c.ResinEfficiency)
	}
	lengths := []struct {
		name  string
		value float64
	}{
		{"slab length", c.SlabLengthMM},
		{"slab width", c.SlabWidthMM},
		{"slab thickness", c.SlabThicknessMM},
		{"target pack height", c.TargetPackHeightMM},
		{"target pallet height", c.TargetPalletHeightMM},
		{"pallet length", c.PalletLengthMM},
		{"pallet width", c.PalletWidthMM},
		{"max pack weight", c.MaxPackWeightKG},
	}
	for _, l := range lengths {
		if l.value <= 0 {
			return fmt.Errorf("%s must be positive, got %v", l.name, l.value)
		}
	}
	if c.PalletsPerTruck < 1 {
		return fmt.Errorf("pallets per truck must be at least 1, got %d", c.PalletsPerTruck)
	}
	return nil
}

// Param is a named configuration value, used by tabular consumers (XLSX
// parameter sheet, CLI dumps) that need a stable ordering.
type Param struct {
	Name  string
	Value float64
}

// Params returns the configuration as ordered name/value pairs.
func (c Config) Params() []Param {
	return []Param{
		{"throughput_t_h", c.ThroughputTonsPerHour},
		{"yield_rate", c.YieldRate},
		{"loi_percent", c.LOIPercent},
		{"resin_solid_content", c.ResinSolidContent},
		{"resin_efficiency", c.ResinEfficiency},
		{"resin_price_per_ton", c.ResinPricePerTon},
		{"var_stone_t", c.StoneCostPerTon},
		{"var_melting_energy_t", c.MeltEnergyCostPerTon},
		{"var_other_t", c.OtherVarCostPerTon},
		{"slab_length_mm", c.SlabLengthMM},
		{"slab_width_mm", c.SlabWidthMM},
		{"slab_thickness_mm", c.SlabThicknessMM},
		{"target_pack_height_mm", c.TargetPackHeightMM},
		{"target_pallet_height_mm", c.TargetPalletHeightMM},
		{"pallet_length_mm", c.PalletLengthMM},
		{"pallet_width_mm", c.PalletWidthMM},
		{"max_pack_weight_kg", c.MaxPackWeightKG},
		{"film_price_per_lm", c.FilmPricePerLinearMeter},
		{"film_width_m", c.FilmWidthM},
		{"pallet_price", c.PalletPrice},
		{"hood_price", c.HoodPrice},
		{"stretch_price_pallet", c.StretchPrice},
		{"pallets_per_truck", float64(c.PalletsPerTruck)},
	}
}

// PackMode selects how the slab count of a pack is chosen for a density.
type PackMode int

const (
	PackModeAuto   PackMode = iota // optimizer picks the slab count
	PackModeManual                 // operator-supplied slab count
)

func (m PackMode) String() string {
	if m == PackModeManual {
		return "Manual"
	}
	return "Auto"
}

// PackSetting holds the per-density pack sizing choice. ManualCount is only
// consulted in manual mode.
type PackSetting struct {
	Mode        PackMode `json:"mode"`
	ManualCount int      `json:"manual_count"`
}

// DefaultPackSetting returns the auto mode with a manual count of 1.
func DefaultPackSetting() PackSetting {
	return PackSetting{Mode: PackModeAuto, ManualCount: 1}
}

// PackagingBreakdown is the intermediate record produced by the packaging
// cost model for one pack/pallet combination. Monetary fields are rounded to
// 2 decimals at this boundary; the volume is kept unrounded for downstream
// math.
type PackagingBreakdown struct {
	SlabCount           int     `json:"slab_count"`
	PackHeightMM        float64 `json:"pack_height_mm"`
	FilmCostPerPack     float64 `json:"film_cost_per_pack"`
	PalletPackagingCost float64 `json:"pallet_packaging_cost"`
	PackPackagingCost   float64 `json:"pack_packaging_cost"` // pallet cost distributed per pack
	PackVolumeM3        float64 `json:"pack_volume_m3"`
}
