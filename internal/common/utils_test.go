package common

import (
	"testing"

	"github.com/tj/assert"
)

func TestHasPrefixFold(t *testing.T) {
	assert.True(t, HasPrefixFold("Maine", "m"))
	assert.True(t, HasPrefixFold("Maine", "MA"))
	assert.True(t, HasPrefixFold("Québec", "qué"))
	assert.False(t, HasPrefixFold("Maine", "mi"))
	assert.False(t, HasPrefixFold("Maine", ""))
	assert.False(t, HasPrefixFold("", "m"))
}
