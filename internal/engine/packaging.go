package engine

import "github.com/piwi3910/WoolCost/internal/model"

// PackHeightMM returns the pack height for a slab count under the configured
// slab thickness.
func PackHeightMM(cfg model.Config, slabCount int) float64 {
	return float64(slabCount) * cfg.SlabThicknessMM
}

// PackPerimeterM returns the pack's end-profile perimeter in linear meters.
// The film wraps the cross-sectional face: height on two sides, slab width
// on the other two.
func PackPerimeterM(cfg model.Config, packHeightMM float64) float64 {
	return (2*packHeightMM + 2*cfg.SlabWidthMM) / 1000
}

// PackVolumeM3 returns the volume of one pack in cubic meters.
func PackVolumeM3(cfg model.Config, packHeightMM float64) float64 {
	return cfg.SlabLengthMM * cfg.SlabWidthMM * packHeightMM / 1e9
}

// PackagingCost computes the packaging geometry and cost breakdown for one
// pack/pallet combination. Film is purchased by the linear meter; the hood
// and stretch film are priced per pallet and distributed across its packs.
// Monetary results are rounded once, at the record boundary.
func PackagingCost(cfg model.Config, slabCount, packsPerPallet int) model.PackagingBreakdown {
	packH := PackHeightMM(cfg, slabCount)
	perimeterM := PackPerimeterM(cfg, packH)
	filmCost := perimeterM * cfg.FilmPricePerLinearMeter
	palletCost := filmCost*float64(packsPerPallet) + cfg.HoodPrice + cfg.StretchPrice

	perPack := 0.0
	if packsPerPallet > 0 {
		perPack = palletCost / float64(packsPerPallet)
	}

	return model.PackagingBreakdown{
		SlabCount:           slabCount,
		PackHeightMM:        packH,
		FilmCostPerPack:     round2(filmCost),
		PalletPackagingCost: round2(palletCost),
		PackPackagingCost:   round2(perPack),
		PackVolumeM3:        PackVolumeM3(cfg, packH),
	}
}
