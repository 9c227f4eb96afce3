package engine

import (
	"testing"

	"github.com/piwi3910/WoolCost/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestPackagingCost_Defaults(t *testing.T) {
	cfg := model.DefaultConfig()

	pkg := PackagingCost(cfg, 12, 16)

	// Perimeter (2*600 + 2*600)/1000 = 2.4 lin.m at 15/lin.m.
	assert.InDelta(t, 36.00, pkg.FilmCostPerPack, 0.001)
	// 36*16 + hood 500 + stretch 150.
	assert.InDelta(t, 1226.00, pkg.PalletPackagingCost, 0.001)
	assert.InDelta(t, 76.62, pkg.PackPackagingCost, 0.001)
	assert.Equal(t, 12, pkg.SlabCount)
	assert.InDelta(t, 600.0, pkg.PackHeightMM, 0.001)
	assert.InDelta(t, 0.432, pkg.PackVolumeM3, 1e-9)
}

func TestPackagingCost_HalfCentRoundsToEven(t *testing.T) {
	cfg := model.DefaultConfig()

	// 1226/16 is exactly 76.625; a half cent lands on the even neighbor,
	// not away from zero.
	pkg := PackagingCost(cfg, 12, 16)
	assert.InDelta(t, 76.62, pkg.PackPackagingCost, 1e-9)

	// 77.375 sits next to an odd cent and rounds up to 77.38.
	cfg.HoodPrice = 512
	pkg = PackagingCost(cfg, 12, 16)
	assert.InDelta(t, 1238.00, pkg.PalletPackagingCost, 1e-9)
	assert.InDelta(t, 77.38, pkg.PackPackagingCost, 1e-9)
}

func TestPackagingCost_ZeroPacksGuard(t *testing.T) {
	cfg := model.DefaultConfig()

	pkg := PackagingCost(cfg, 12, 0)

	assert.Equal(t, 0.0, pkg.PackPackagingCost)
	// Pallet-level extras still apply even with no packs to spread over.
	assert.InDelta(t, cfg.HoodPrice+cfg.StretchPrice, pkg.PalletPackagingCost, 0.001)
}

func TestPackPerimeterM_WrapsEndProfile(t *testing.T) {
	cfg := model.DefaultConfig()

	// Film wraps the height x width face, not the length.
	assert.InDelta(t, 2.4, PackPerimeterM(cfg, 600), 1e-9)
	assert.InDelta(t, 1.4, PackPerimeterM(cfg, 100), 1e-9)
}

func TestPackVolumeM3(t *testing.T) {
	cfg := model.DefaultConfig()

	// 1200 * 600 * 600 / 1e9
	assert.InDelta(t, 0.432, PackVolumeM3(cfg, 600), 1e-9)
}
