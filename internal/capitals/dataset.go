package capitals

import "time"

// Dataset is the immutable reconciliation context built once from the two
// source tables. It is shared read-only by every request.
type Dataset struct {
	capitals []ReconciledCapital
	cities   int
	sources  int
	loadedAt time.Time
}

// NewDataset reconciles cities against capitals and freezes the result.
func NewDataset(cities []CityRecord, capitals []CapitalRecord) *Dataset {
	return &Dataset{
		capitals: Reconcile(cities, capitals),
		cities:   len(cities),
		sources:  len(capitals),
		loadedAt: time.Now().UTC(),
	}
}

// ByLetter returns a new slice of the reconciled capitals whose state starts with letter.
func (d *Dataset) ByLetter(letter string) []ReconciledCapital {
	return FilterByLetter(d.capitals, letter)
}

// Stats describes the dataset for health reporting.
type Stats struct {
	Cities     int       `json:"cities"`
	Capitals   int       `json:"capitals"`
	Reconciled int       `json:"reconciled"`
	LoadedAt   time.Time `json:"loadedAt"`
}

// Stats returns row counts and the load time.
func (d *Dataset) Stats() Stats {
	return Stats{
		Cities:     d.cities,
		Capitals:   d.sources,
		Reconciled: len(d.capitals),
		LoadedAt:   d.loadedAt,
	}
}
