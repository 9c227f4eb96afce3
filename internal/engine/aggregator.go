package engine

import (
	"fmt"

	"github.com/piwi3910/WoolCost/internal/model"
)

// Run computes one result row per density, in list order. The configuration
// is validated first: on error no rows are produced, so a caller can keep
// its last good table. Given identical inputs the output is bit-identical
// across calls.
func Run(cfg model.Config, fixedCosts model.FixedCostLedger, densities model.DensityList) ([]model.ResultRow, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration rejected: %w", err)
	}

	// Base cost per ton depends on recipe and throughput only, not density.
	costPerTon := ProductionCostPerTon(cfg, fixedCosts.Sum())

	rows := make([]model.ResultRow, 0, len(densities))
	for _, entry := range densities {
		rows = append(rows, buildRow(cfg, costPerTon, entry))
	}
	return rows, nil
}

// ResolveSlabCount returns the slab count for a density entry: the manual
// count (floored to 1) in manual mode, the optimizer's pick otherwise.
func ResolveSlabCount(cfg model.Config, entry model.DensityEntry) int {
	if entry.Pack.Mode == model.PackModeManual {
		n := entry.Pack.ManualCount
		if n < 1 {
			n = 1
		}
		return n
	}
	return OptimalSlabsPerPack(cfg, cfg.SlabThicknessMM, entry.Density)
}

// buildRow derives the full metric set for one density. All divisions are
// zero-guarded; intermediates stay unrounded except the packaging breakdown's
// monetary fields, which are fixed at their record boundary.
func buildRow(cfg model.Config, costPerTon float64, entry model.DensityEntry) model.ResultRow {
	density := entry.Density
	slabs := ResolveSlabCount(cfg, entry)

	packH := PackHeightMM(cfg, slabs)
	packsPerPallet := PacksPerPallet(cfg, packH)
	pkg := PackagingCost(cfg, slabs, packsPerPallet)

	palletVolume := pkg.PackVolumeM3 * float64(packsPerPallet)

	woolCostPerM3 := costPerTon * density / 1000
	packagingCostPerM3 := 0.0
	if palletVolume > 0 {
		packagingCostPerM3 = pkg.PalletPackagingCost / palletVolume
	}

	woolPalletCost := woolCostPerM3 * palletVolume
	palletCostPacked := woolPalletCost + pkg.PalletPackagingCost
	totalCostPerM3 := 0.0
	if palletVolume > 0 {
		totalCostPerM3 = palletCostPacked / palletVolume
	}
	costPerTonPacked := 0.0
	if density > 0 {
		costPerTonPacked = totalCostPerM3 / (density / 1000)
	}

	packWeight := pkg.PackVolumeM3 * density
	palletWeight := packWeight * float64(packsPerPallet)
	truckWeight := palletWeight * float64(cfg.PalletsPerTruck)
	truckVolume := palletVolume * float64(cfg.PalletsPerTruck)
	truckCost := palletCostPacked * float64(cfg.PalletsPerTruck)

	// Stacked height for the pack height actually chosen; matches the target
	// whenever the optimizer's divisibility constraint held.
	realPalletH := 0.0
	if packH > 0 {
		realPalletH = float64(int(cfg.TargetPalletHeightMM/packH)) * packH
	}

	packsPerTon := 0.0
	if packWeight > 0 {
		packsPerTon = 1000 / packWeight
	}
	palletsPerTon := 0.0
	if palletWeight > 0 {
		palletsPerTon = 1000 / palletWeight
	}

	return model.ResultRow{
		Density:                density,
		CostPerTon:             costPerTon,
		CostPerTonPacked:       round2(costPerTonPacked),
		WoolCostPerM3:          round2(woolCostPerM3),
		TotalCostPerM3:         round2(totalCostPerM3),
		SlabsPerPack:           slabs,
		PackHeightMM:           packH,
		PackVolumeM3:           round4(pkg.PackVolumeM3),
		PacksPerPallet:         packsPerPallet,
		PalletHeightMM:         realPalletH,
		PackWeightKG:           round2(packWeight),
		PalletWeightKG:         round2(palletWeight),
		PalletVolumeM3:         round4(palletVolume),
		TruckWeightKG:          round2(truckWeight),
		TruckVolumeM3:          round4(truckVolume),
		PacksPerTon:            round2(packsPerTon),
		PalletsPerTon:          round2(palletsPerTon),
		PackagingCostPerPack:   pkg.PackPackagingCost,
		PackagingCostPerPallet: pkg.PalletPackagingCost,
		PackagingCostPerM3:     round2(packagingCostPerM3),
		PalletCostPacked:       round2(palletCostPacked),
		TruckCost:              round2(truckCost),
		PackPrice:              round2(totalCostPerM3 * pkg.PackVolumeM3),
	}
}
