package capitals_test

import (
	"strings"
	"testing"

	"github.com/tj/assert"

	"github.com/i474232898/capitals-weather/internal/capitals"
)

var reconciled = []capitals.ReconciledCapital{
	{City: "Madison", State: "Wisconsin"},
	{City: "Montgomery", State: "Alabama"},
	{City: "Augusta", State: "Maine"},
	{City: "Boston", State: "Massachusetts"},
	{City: "Lansing", State: "Michigan"},
	{City: "Helena", State: "Montana"},
	{City: "Austin", State: "Texas"},
}

func TestFilterByLetter(t *testing.T) {
	cases := []struct {
		name   string
		letter string
		want   []string
	}{
		{name: "upper", letter: "M", want: []string{"Maine", "Massachusetts", "Michigan", "Montana"}},
		{name: "lower", letter: "m", want: []string{"Maine", "Massachusetts", "Michigan", "Montana"}},
		{name: "prefix narrows", letter: "ma", want: []string{"Maine", "Massachusetts"}},
		{name: "no match", letter: "Z", want: []string{}},
		{name: "empty letter", letter: "", want: []string{}},
		{name: "whitespace is not a wildcard", letter: " ", want: []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := capitals.FilterByLetter(reconciled, tc.letter)

			states := make([]string, 0, len(got))
			for _, r := range got {
				states = append(states, r.State)
				if tc.letter != "" {
					assert.True(t, strings.HasPrefix(strings.ToUpper(r.State), strings.ToUpper(tc.letter)))
				}
			}
			assert.Equal(t, tc.want, states)
		})
	}
}

func TestFilterByLetterDoesNotMutateInput(t *testing.T) {
	before := make([]capitals.ReconciledCapital, len(reconciled))
	copy(before, reconciled)

	_ = capitals.FilterByLetter(reconciled, "M")

	assert.Equal(t, before, reconciled)
}
