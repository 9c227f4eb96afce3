package model

// ResultRow is one output row of a calculation run, fully derived from the
// configuration and a single density. Rows are never mutated after creation.
//
// Monetary and weight fields are rounded to 2 decimals at emission; volumes
// to 4 decimals.
type ResultRow struct {
	Density                float64 `json:"density"`                   // kg/m3
	CostPerTon             float64 `json:"cost_per_ton"`              // without packaging
	CostPerTonPacked       float64 `json:"cost_per_ton_packed"`       // with packaging
	WoolCostPerM3          float64 `json:"wool_cost_per_m3"`          // without packaging
	TotalCostPerM3         float64 `json:"total_cost_per_m3"`         // with packaging
	SlabsPerPack           int     `json:"slabs_per_pack"`
	PackHeightMM           float64 `json:"pack_height_mm"`
	PackVolumeM3           float64 `json:"pack_volume_m3"`
	PacksPerPallet         int     `json:"packs_per_pallet"`
	PalletHeightMM         float64 `json:"pallet_height_mm"` // real stacked height
	PackWeightKG           float64 `json:"pack_weight_kg"`
	PalletWeightKG         float64 `json:"pallet_weight_kg"`
	PalletVolumeM3         float64 `json:"pallet_volume_m3"`
	TruckWeightKG          float64 `json:"truck_weight_kg"`
	TruckVolumeM3          float64 `json:"truck_volume_m3"`
	PacksPerTon            float64 `json:"packs_per_ton"`
	PalletsPerTon          float64 `json:"pallets_per_ton"`
	PackagingCostPerPack   float64 `json:"packaging_cost_per_pack"`
	PackagingCostPerPallet float64 `json:"packaging_cost_per_pallet"`
	PackagingCostPerM3     float64 `json:"packaging_cost_per_m3"`
	PalletCostPacked       float64 `json:"pallet_cost_packed"` // wool + packaging
	TruckCost              float64 `json:"truck_cost"`
	PackPrice              float64 `json:"pack_price"`
}

// ResultColumns lists the column headers of the result table in the order
// tabular consumers (XLSX, CLI) must render them.
var ResultColumns = []string{
	"Density kg/m3",
	"Cost/t (no pkg)",
	"Cost/t (pkg)",
	"Cost/m3 (no pkg)",
	"Cost/m3 (pkg)",
	"Slabs per pack",
	"Pack height mm",
	"Pack volume m3",
	"Packs per pallet",
	"Pallet height mm",
	"Pack weight kg",
	"Pallet weight kg",
	"Pallet volume m3",
	"Truck weight kg",
	"Truck volume m3",
	"Packs per ton",
	"Pallets per ton",
	"Packaging per pack",
	"Packaging per pallet",
	"Packaging per m3",
	"Pallet cost (pkg)",
	"Truck cost",
	"Pack price",
}

// Cells returns the row values matching ResultColumns.
func (r ResultRow) Cells() []interface{} {
	return []interface{}{
		r.Density,
		r.CostPerTon,
		r.CostPerTonPacked,
		r.WoolCostPerM3,
		r.TotalCostPerM3,
		r.SlabsPerPack,
		r.PackHeightMM,
		r.PackVolumeM3,
		r.PacksPerPallet,
		r.PalletHeightMM,
		r.PackWeightKG,
		r.PalletWeightKG,
		r.PalletVolumeM3,
		r.TruckWeightKG,
		r.TruckVolumeM3,
		r.PacksPerTon,
		r.PalletsPerTon,
		r.PackagingCostPerPack,
		r.PackagingCostPerPallet,
		r.PackagingCostPerM3,
		r.PalletCostPacked,
		r.TruckCost,
		r.PackPrice,
	}
}
