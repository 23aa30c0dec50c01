package capitals

// joinKey is the composite (state, city) key shared by both tables.
type joinKey struct {
	state string
	city  string
}

// Reconcile inner-joins cities against the authoritative capitals table on
// (AdminName, City) == (State, Capital). Comparison is exact and case-sensitive.
// Output follows the order of cities; the first matching city row per state wins.
func Reconcile(cities []CityRecord, capitals []CapitalRecord) []ReconciledCapital {
	if len(cities) == 0 || len(capitals) == 0 {
		return []ReconciledCapital{}
	}

	index := make(map[joinKey]struct{}, len(capitals))
	for _, c := range capitals {
		index[joinKey{state: c.State, city: c.Capital}] = struct{}{}
	}

	seen := make(map[string]struct{}, len(capitals))
	out := make([]ReconciledCapital, 0, len(capitals))

	for _, c := range cities {
		if _, ok := index[joinKey{state: c.AdminName, city: c.City}]; !ok {
			continue
		}
		if _, dup := seen[c.AdminName]; dup {
			continue
		}
		seen[c.AdminName] = struct{}{}

		out = append(out, ReconciledCapital{
			City:  c.City,
			State: c.AdminName,
			Lat:   c.Lat,
			Lng:   c.Lng,
		})
	}

	return out
}
