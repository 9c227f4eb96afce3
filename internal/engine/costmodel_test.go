package engine

import (
	"math"
	"testing"

	"github.com/piwi3910/WoolCost/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestProductionCostPerTon_Defaults(t *testing.T) {
	cfg := model.DefaultConfig()
	fixed := model.DefaultFixedCosts()

	// fixed 80000/h, throughput 4 t/h, yield 0.97, var-ex-binder 33500,
	// resin cost 5684.21
	cost := ProductionCostPerTon(cfg, fixed.Sum())
	assert.InDelta(t, 60838.85, cost, 0.001)
}

func TestProductionCostPerTon_BinderNotInflatedByYield(t *testing.T) {
	cfg := model.DefaultConfig()
	fixed := model.DefaultFixedCosts()

	// LOI% is relative to finished-board weight, so the resin term must not
	// be divided by the yield rate. With yield 1.0 the fixed and variable
	// terms lose their inflation but the resin term stays the same.
	resin := ResinCostPerTon(cfg)

	cfg.YieldRate = 1.0
	costAtFullYield := ProductionCostPerTon(cfg, fixed.Sum())
	expected := fixed.Sum()/cfg.ThroughputTonsPerHour +
		cfg.StoneCostPerTon + cfg.MeltEnergyCostPerTon + cfg.OtherVarCostPerTon +
		resin
	assert.InDelta(t, expected, costAtFullYield, 0.01)

	cfg.YieldRate = 0.5
	costAtHalfYield := ProductionCostPerTon(cfg, fixed.Sum())
	wrongIfResinInflated := (fixed.Sum()/cfg.ThroughputTonsPerHour +
		cfg.StoneCostPerTon + cfg.MeltEnergyCostPerTon + cfg.OtherVarCostPerTon + resin) / 0.5
	assert.False(t, math.Abs(wrongIfResinInflated-costAtHalfYield) < 0.01,
		"resin cost must not be divided by yield")
	assert.InDelta(t, wrongIfResinInflated-resin, costAtHalfYield, 0.01)
}

func TestResinKgPerTon_Defaults(t *testing.T) {
	cfg := model.DefaultConfig()
	// 1000 * (4.5/100) / (0.5 * 0.95)
	assert.InDelta(t, 94.7368, ResinKgPerTon(cfg), 0.001)
	assert.InDelta(t, 5684.21, ResinCostPerTon(cfg), 0.01)
}

func TestProductionCostPerTon_EmptyLedger(t *testing.T) {
	cfg := model.DefaultConfig()
	var empty model.FixedCostLedger

	cost := ProductionCostPerTon(cfg, empty.Sum())
	expected := (cfg.StoneCostPerTon+cfg.MeltEnergyCostPerTon+cfg.OtherVarCostPerTon)/cfg.YieldRate +
		ResinCostPerTon(cfg)
	assert.InDelta(t, expected, cost, 0.01)
}
