package model

// FixedCostEntry is one named hourly cost category (payroll, energy, ...).
type FixedCostEntry struct {
	Category    string  `json:"category"`
	RatePerHour float64 `json:"rate_per_hour"`
}

// FixedCostLedger is an ordered list of hourly fixed-cost categories.
// Categories are free text and unique; entries keep their insertion order.
type FixedCostLedger []FixedCostEntry

// DefaultFixedCosts returns the reference fixed-cost categories.
func DefaultFixedCosts() FixedCostLedger {
	return FixedCostLedger{
		{Category: "Payroll", RatePerHour: 40000},
		{Category: "Energy", RatePerHour: 20000},
		{Category: "Depreciation", RatePerHour: 20000},
	}
}

// Sum folds the ledger into a single hourly rate. An empty ledger sums to 0.
func (l FixedCostLedger) Sum() float64 {
	var total float64
	for _, e := range l {
		total += e.RatePerHour
	}
	return total
}

// Set updates the rate of an existing category or appends a new one.
func (l *FixedCostLedger) Set(category string, ratePerHour float64) {
	for i := range *l {
		if (*l)[i].Category == category {
			(*l)[i].RatePerHour = ratePerHour
			return
		}
	}
	*l = append(*l, FixedCostEntry{Category: category, RatePerHour: ratePerHour})
}

// Remove deletes a category. It reports whether the category was present.
func (l *FixedCostLedger) Remove(category string) bool {
	for i := range *l {
		if (*l)[i].Category == category {
			*l = append((*l)[:i], (*l)[i+1:]...)
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the ledger.
func (l FixedCostLedger) Clone() FixedCostLedger {
	out := make(FixedCostLedger, len(l))
	copy(out, l)
	return out
}
