package model

import "fmt"

// DensityEntry couples one product density with its pack sizing setting.
type DensityEntry struct {
	Density float64     `json:"density"` // kg/m3
	Pack    PackSetting `json:"pack"`
}

// DensityList is the ordered set of densities a run computes rows for.
// Values are distinct and positive; the result table follows the insertion
// order of this list, the engine never sorts it.
type DensityList []DensityEntry

// DefaultDensityList returns the standard density grid.
func DefaultDensityList() DensityList {
	densities := []float64{35, 50, 75, 100, 125, 150, 175, 200}
	list := make(DensityList, 0, len(densities))
	for _, d := range densities {
		list = append(list, DensityEntry{Density: d, Pack: DefaultPackSetting()})
	}
	return list
}

// Add appends a density with the default pack setting. Duplicates and
// non-positive values are rejected before any mutation.
func (dl *DensityList) Add(density float64) error {
	if density <= 0 {
		return fmt.Errorf("density must be positive, got %v", density)
	}
	if dl.Contains(density) {
		return fmt.Errorf("density %v already present", density)
	}
	*dl = append(*dl, DensityEntry{Density: density, Pack: DefaultPackSetting()})
	return nil
}

// Remove deletes a density and its pack setting. It reports whether the
// density was present.
func (dl *DensityList) Remove(density float64) bool {
	for i := range *dl {
		if (*dl)[i].Density == density {
			*dl = append((*dl)[:i], (*dl)[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the density is in the list.
func (dl DensityList) Contains(density float64) bool {
	for _, e := range dl {
		if e.Density == density {
			return true
		}
	}
	return false
}

// Setting returns the pack setting for a density, or the default when the
// density is not tracked.
func (dl DensityList) Setting(density float64) PackSetting {
	for _, e := range dl {
		if e.Density == density {
			return e.Pack
		}
	}
	return DefaultPackSetting()
}

// SetPack stores the pack setting for an existing density.
func (dl DensityList) SetPack(density float64, setting PackSetting) error {
	for i := range dl {
		if dl[i].Density == density {
			dl[i].Pack = setting
			return nil
		}
	}
	return fmt.Errorf("density %v not in list", density)
}

// Densities returns the density values in list order.
func (dl DensityList) Densities() []float64 {
	out := make([]float64, len(dl))
	for i, e := range dl {
		out[i] = e.Density
	}
	return out
}

// Clone returns an independent copy of the list.
func (dl DensityList) Clone() DensityList {
	out := make(DensityList, len(dl))
	copy(out, dl)
	return out
}
