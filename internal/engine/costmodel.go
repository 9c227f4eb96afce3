// Package engine implements the cost and packaging calculation core. All
// operations are pure functions over a configuration snapshot; they perform
// no I/O and hold no state between calls.
package engine

import (
	"math"

	"github.com/piwi3910/WoolCost/internal/model"
)

// round2 rounds to 2 decimal places (monetary and weight boundaries).
// Exact halves round to the even neighbor, so 76.625 becomes 76.62.
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}

// round4 rounds to 4 decimal places (volume boundaries).
func round4(v float64) float64 {
	return math.RoundToEven(v*10000) / 10000
}

// ResinKgPerTon returns the liquid resin usage per ton of finished product,
// accounting for the concentrate's dry share and spraying losses.
func ResinKgPerTon(cfg model.Config) float64 {
	return 1000 * (cfg.LOIPercent / 100) / (cfg.ResinSolidContent * cfg.ResinEfficiency)
}

// ResinCostPerTon returns the binder cost per ton of finished product.
func ResinCostPerTon(cfg model.Config) float64 {
	return ResinKgPerTon(cfg) / 1000 * cfg.ResinPricePerTon
}

// ProductionCostPerTon computes the base production cost of one ton of wool,
// excluding packaging, rounded to 2 decimals.
//
// Fixed and non-binder variable costs are per ton of input melt and are
// inflated by the yield rate. The binder cost is NOT divided by yield:
// LOI% is defined relative to the finished board's weight, so the resin
// figure is already per ton of finished product.
func ProductionCostPerTon(cfg model.Config, fixedCostsPerHour float64) float64 {
	resinCost := ResinCostPerTon(cfg)
	varExBinder := cfg.StoneCostPerTon + cfg.MeltEnergyCostPerTon + cfg.OtherVarCostPerTon
	cost := fixedCostsPerHour/cfg.ThroughputTonsPerHour/cfg.YieldRate +
		varExBinder/cfg.YieldRate +
		resinCost
	return round2(cost)
}
