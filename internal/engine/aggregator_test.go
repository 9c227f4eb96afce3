package engine

import (
	"testing"

	"github.com/piwi3910/WoolCost/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findRow(t *testing.T, rows []model.ResultRow, density float64) model.ResultRow {
	t.Helper()
	for _, r := range rows {
		if r.Density == density {
			return r
		}
	}
	t.Fatalf("no row for density %v", density)
	return model.ResultRow{}
}

func TestRun_DefaultDensity50(t *testing.T) {
	cfg := model.DefaultConfig()
	rows, err := Run(cfg, model.DefaultFixedCosts(), model.DefaultDensityList())
	require.NoError(t, err)
	require.Len(t, rows, 8)

	row := findRow(t, rows, 50)
	assert.InDelta(t, 60838.85, row.CostPerTon, 0.001)
	assert.Equal(t, 12, row.SlabsPerPack)
	assert.Equal(t, 16, row.PacksPerPallet)
	assert.InDelta(t, 600.0, row.PackHeightMM, 0.001)
	assert.InDelta(t, 2400.0, row.PalletHeightMM, 0.001)
	assert.InDelta(t, 177.37, row.PackagingCostPerM3, 0.001)
	assert.InDelta(t, 21.6, row.PackWeightKG, 0.001)
	assert.InDelta(t, 6.912, row.PalletVolumeM3, 1e-4)
	assert.InDelta(t, row.PalletCostPacked*float64(cfg.PalletsPerTruck), row.TruckCost, 0.1)
}

func TestRun_RowInvariants(t *testing.T) {
	cfg := model.DefaultConfig()
	rows, err := Run(cfg, model.DefaultFixedCosts(), model.DefaultDensityList())
	require.NoError(t, err)

	for _, row := range rows {
		assert.InDelta(t, row.PackVolumeM3*float64(row.PacksPerPallet), row.PalletVolumeM3, 1e-4,
			"density %v: pallet volume", row.Density)

		woolCostPerM3 := row.CostPerTon * row.Density / 1000
		expected := (woolCostPerM3*row.PalletVolumeM3 + row.PackagingCostPerPallet) / row.PalletVolumeM3
		assert.InDelta(t, expected, row.TotalCostPerM3, 1e-2,
			"density %v: cost per m3 with packaging", row.Density)

		assert.InDelta(t, row.PalletVolumeM3*float64(cfg.PalletsPerTruck), row.TruckVolumeM3, 1e-3,
			"density %v: truck volume", row.Density)
	}
}

func TestRun_RowOrderFollowsListOrder(t *testing.T) {
	cfg := model.DefaultConfig()
	var densities model.DensityList
	for _, d := range []float64{120, 40, 90} {
		require.NoError(t, densities.Add(d))
	}

	rows, err := Run(cfg, model.DefaultFixedCosts(), densities)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, 120.0, rows[0].Density)
	assert.Equal(t, 40.0, rows[1].Density)
	assert.Equal(t, 90.0, rows[2].Density)
}

func TestRun_Idempotent(t *testing.T) {
	cfg := model.DefaultConfig()
	fixed := model.DefaultFixedCosts()
	densities := model.DefaultDensityList()

	first, err := Run(cfg, fixed, densities)
	require.NoError(t, err)
	second, err := Run(cfg, fixed, densities)
	require.NoError(t, err)

	assert.Equal(t, first, second, "two runs over unchanged inputs must be bit-identical")
}

func TestRun_ManualPackSetting(t *testing.T) {
	cfg := model.DefaultConfig()
	densities := model.DefaultDensityList()
	require.NoError(t, densities.SetPack(50, model.PackSetting{Mode: model.PackModeManual, ManualCount: 5}))

	rows, err := Run(cfg, model.DefaultFixedCosts(), densities)
	require.NoError(t, err)

	row := findRow(t, rows, 50)
	assert.Equal(t, 5, row.SlabsPerPack)
	assert.InDelta(t, 250.0, row.PackHeightMM, 0.001)
}

func TestRun_ManualCountFlooredToOne(t *testing.T) {
	cfg := model.DefaultConfig()
	densities := model.DefaultDensityList()
	require.NoError(t, densities.SetPack(50, model.PackSetting{Mode: model.PackModeManual, ManualCount: -3}))

	rows, err := Run(cfg, model.DefaultFixedCosts(), densities)
	require.NoError(t, err)
	assert.Equal(t, 1, findRow(t, rows, 50).SlabsPerPack)
}

func TestRun_InvalidConfigProducesNoRows(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.YieldRate = 0

	rows, err := Run(cfg, model.DefaultFixedCosts(), model.DefaultDensityList())
	require.Error(t, err)
	assert.Nil(t, rows, "a rejected run must not publish partial results")
}

func TestRun_EmptyDensityList(t *testing.T) {
	cfg := model.DefaultConfig()
	rows, err := Run(cfg, model.DefaultFixedCosts(), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
