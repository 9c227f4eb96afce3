package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/WoolCost/internal/model"
)

// reportDensity is the representative density the detailed report is worked
// through for. Other densities follow the same arithmetic.
const reportDensity = 50.0

// fnum formats a number with the shortest exact decimal representation, so
// the report shows the operands the engine actually used.
func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// DetailedReport reproduces, as text, the exact arithmetic a run performs:
// stage 1 the cost-per-ton formula with every operand substituted, stage 2
// the pack/pallet/packaging geometry for the representative density, stage 3
// the volumetric rollup for that density. The operand ordering and decimal
// formatting are a contract; in particular the fixed-cost and binder terms
// stay separate parenthesized addends in the final formula line because only
// the former is divided by the yield rate.
func DetailedReport(cfg model.Config, fixedCosts model.FixedCostLedger, densities model.DensityList) string {
	costPerTon := ProductionCostPerTon(cfg, fixedCosts.Sum())
	resinKg := ResinKgPerTon(cfg)
	resinCost := ResinCostPerTon(cfg)
	fixedH := fixedCosts.Sum()
	varExBinder := cfg.StoneCostPerTon + cfg.MeltEnergyCostPerTon + cfg.OtherVarCostPerTon

	var report []string
	report = append(report, "=== STAGE 1: PRODUCTION COST PER TON (WITHOUT PACKAGING) ===")
	report = append(report, fmt.Sprintf("1. Resin usage: 1000 * (%s%% / 100) / (%s * %s) = %.2f kg/t",
		fnum(cfg.LOIPercent), fnum(cfg.ResinSolidContent), fnum(cfg.ResinEfficiency), resinKg))
	report = append(report, fmt.Sprintf("2. Resin cost per ton: %.2f kg * %.2f/kg = %.2f",
		resinKg, cfg.ResinPricePerTon/1000, resinCost))
	report = append(report, fmt.Sprintf("3. Fixed costs (per hour): %s total", fnum(fixedH)))
	for _, e := range fixedCosts {
		report = append(report, fmt.Sprintf("   - %s: %.2f", e.Category, e.RatePerHour))
	}
	report = append(report, fmt.Sprintf("4. Variable costs (per ton): %s + %s + %s = %s",
		fnum(cfg.StoneCostPerTon), fnum(cfg.MeltEnergyCostPerTon), fnum(cfg.OtherVarCostPerTon), fnum(varExBinder)))
	report = append(report, "5. Cost per ton, final formula:")
	report = append(report, fmt.Sprintf("   (%s / %s / %s) + (%s / %s) + %s = %s",
		fnum(fixedH), fnum(cfg.ThroughputTonsPerHour), fnum(cfg.YieldRate),
		fnum(varExBinder), fnum(cfg.YieldRate), fnum(resinCost), fnum(costPerTon)))

	report = append(report, fmt.Sprintf("\n=== STAGE 2: GEOMETRY AND PACKAGING (for %s kg/m3) ===", fnum(reportDensity)))

	setting := densities.Setting(reportDensity)
	var slabs int
	if setting.Mode == model.PackModeManual {
		slabs = setting.ManualCount
		if slabs < 1 {
			slabs = 1
		}
		report = append(report, fmt.Sprintf("Mode: manual (%d slabs)", slabs))
	} else {
		slabs = OptimalSlabsPerPack(cfg, cfg.SlabThicknessMM, reportDensity)
		report = append(report, fmt.Sprintf("1. Pack optimization (for %s kg/m3):", fnum(reportDensity)))
		report = append(report, fmt.Sprintf("   - Target pack height: %s mm", fnum(cfg.TargetPackHeightMM)))
		report = append(report, fmt.Sprintf("   - Max pack weight: %s kg", fnum(cfg.MaxPackWeightKG)))
		report = append(report, fmt.Sprintf("   - Pallet content height: %s mm", fnum(cfg.TargetPalletHeightMM)))
		report = append(report, fmt.Sprintf("   -> Result: %d slabs (height %s mm)",
			slabs, fnum(float64(slabs)*cfg.SlabThicknessMM)))
	}

	packH := PackHeightMM(cfg, slabs)
	packsPerPallet := PacksPerPallet(cfg, packH)
	pkg := PackagingCost(cfg, slabs, packsPerPallet)
	perimeterM := PackPerimeterM(cfg, packH)

	report = append(report, fmt.Sprintf("2. Film per pack (linear meters): (2*%s + 2*%s) / 1000 = %.3f lin.m",
		fnum(packH), fnum(cfg.SlabWidthMM), perimeterM))
	report = append(report, fmt.Sprintf("   Film roll width %s m; the price is set per linear meter.", fnum(cfg.FilmWidthM)))
	report = append(report, fmt.Sprintf("3. Film cost per pack: %.3f lin.m * %s/lin.m = %s",
		perimeterM, fnum(cfg.FilmPricePerLinearMeter), fnum(pkg.FilmCostPerPack)))
	report = append(report, fmt.Sprintf("4. Hood share: %s / %d packs = %.2f",
		fnum(cfg.HoodPrice), packsPerPallet, cfg.HoodPrice/float64(packsPerPallet)))
	report = append(report, fmt.Sprintf("5. Stretch share: %s / %d packs = %.2f",
		fnum(cfg.StretchPrice), packsPerPallet, cfg.StretchPrice/float64(packsPerPallet)))
	report = append(report, fmt.Sprintf("6. Packaging per pack (distributed): %s", fnum(pkg.PackPackagingCost)))
	report = append(report, fmt.Sprintf("7. Packaging per pallet: (%s * %d) + %s + %s = %s",
		fnum(pkg.FilmCostPerPack), packsPerPallet, fnum(cfg.HoodPrice), fnum(cfg.StretchPrice), fnum(pkg.PalletPackagingCost)))

	report = append(report, "\n=== STAGE 3: VOLUMETRIC ROLLUP (m3) ===")
	woolCostPerM3 := costPerTon * reportDensity / 1000
	palletVolume := pkg.PackVolumeM3 * float64(packsPerPallet)
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
	report = append(report, fmt.Sprintf("1. Pallet volume: %.4f * %d = %.4f m3",
		pkg.PackVolumeM3, packsPerPallet, palletVolume))
	report = append(report, fmt.Sprintf("2. Wool cost on the pallet: %.2f * %.4f = %.2f",
		woolCostPerM3, palletVolume, woolPalletCost))
	report = append(report, fmt.Sprintf("3. Pallet cost with packaging: %.2f + %s = %.2f",
		woolPalletCost, fnum(pkg.PalletPackagingCost), palletCostPacked))
	report = append(report, fmt.Sprintf("4. Cost per m3 with packaging: %.2f / %.4f = %.2f",
		palletCostPacked, palletVolume, totalCostPerM3))
	report = append(report, fmt.Sprintf("5. Packaging cost per m3: %s / %.4f = %.2f",
		fnum(pkg.PalletPackagingCost), palletVolume, packagingCostPerM3))

	report = append(report, "\n* Other densities follow the same arithmetic with the density substituted.")

	return strings.Join(report, "\n")
}
