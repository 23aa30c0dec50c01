package capitals

// CityRecord is one row of the large world-cities reference table.
// City names are not unique across countries or states.
type CityRecord struct {
	City      string
	AdminName string // state or province
	Lat       float64
	Lng       float64
}

// CapitalRecord is one row of the authoritative US states/capitals table.
type CapitalRecord struct {
	State   string
	Capital string
}

// ReconciledCapital is a capital confirmed by both source tables.
type ReconciledCapital struct {
	City  string  `json:"city"`
	State string  `json:"state"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

// Label returns the "City, State" display label.
func (c ReconciledCapital) Label() string {
	return c.City + ", " + c.State
}

// TemperatureSample is the per-capital outcome of one enrichment pass.
// Celsius is nil when the temperature was unavailable.
type TemperatureSample struct {
	Label   string
	Celsius *float64
}

// AnalysisResult is the aggregated view handed to the presentation layer.
// Labels and Values are index-aligned; Average is nil exactly when Values is empty.
type AnalysisResult struct {
	Labels  []string  `json:"labels"`
	Values  []float64 `json:"values"`
	Average *float64  `json:"average"`
}

// Empty reports whether no temperature could be obtained.
func (r AnalysisResult) Empty() bool {
	return len(r.Values) == 0
}
