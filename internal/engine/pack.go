package engine

import (
	"math"

	"github.com/piwi3910/WoolCost/internal/model"
)

// stackTolMM is the tolerance for the clean-stacking divisibility check,
// needed for non-integral slab thicknesses.
const stackTolMM = 0.001

// unboundedSlabs is the weight-bound sentinel when a slab weighs nothing.
const unboundedSlabs = 999

// OptimalSlabsPerPack picks the slab count for a pack of the given slab
// thickness and product density. The count is bounded by the target pack
// height and the maximum pack weight, then lowered to the largest value
// whose pack height divides the pallet content height, so that pallet
// layers stack cleanly without trimming.
func OptimalSlabsPerPack(cfg model.Config, slabThicknessMM, density float64) int {
	nHeight := int(cfg.TargetPackHeightMM / slabThicknessMM)
	if nHeight < 1 {
		nHeight = 1
	}

	slabVolumeM3 := cfg.SlabLengthMM * cfg.SlabWidthMM * slabThicknessMM / 1e9
	slabWeightKG := slabVolumeM3 * density
	nWeight := unboundedSlabs
	if slabWeightKG > 0 {
		nWeight = int(cfg.MaxPackWeightKG / slabWeightKG)
	}

	nStart := nHeight
	if nWeight < nStart {
		nStart = nWeight
	}
	if nStart < 1 {
		nStart = 1
	}

	// Largest n whose pack height divides the pallet content height.
	// n=1 always qualifies when the thickness itself divides the height,
	// so the fallback below is defensive only.
	for n := nStart; n >= 1; n-- {
		packH := float64(n) * slabThicknessMM
		if packH > 0 && math.Abs(math.Mod(cfg.TargetPalletHeightMM, packH)) < stackTolMM {
			return n
		}
	}
	return nStart
}

// PacksPerPallet computes how many packs of the given height fit on a
// pallet: the better of the two axis-aligned footprint orientations times
// the number of full layers within the target content height.
func PacksPerPallet(cfg model.Config, packHeightMM float64) int {
	perLayerA := int(cfg.PalletLengthMM/cfg.SlabLengthMM) * int(cfg.PalletWidthMM/cfg.SlabWidthMM)
	perLayerB := int(cfg.PalletLengthMM/cfg.SlabWidthMM) * int(cfg.PalletWidthMM/cfg.SlabLengthMM)

	perLayer := perLayerA
	if perLayerB > perLayer {
		perLayer = perLayerB
	}
	if perLayer < 1 {
		perLayer = 1
	}

	layers := int(cfg.TargetPalletHeightMM / packHeightMM)
	if layers < 1 {
		layers = 1
	}
	return perLayer * layers
}
