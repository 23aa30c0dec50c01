package capitals

import "github.com/i474232898/capitals-weather/internal/common"

// FilterByLetter keeps records whose State starts with letter, case-insensitively.
// The whole of letter is used as the prefix, so "ma" narrows further than "m".
// An empty letter yields no rows rather than every row.
func FilterByLetter(records []ReconciledCapital, letter string) []ReconciledCapital {
	out := make([]ReconciledCapital, 0)
	if letter == "" {
		return out
	}

	for _, r := range records {
		if common.HasPrefixFold(r.State, letter) {
			out = append(out, r)
		}
	}
	return out
}
