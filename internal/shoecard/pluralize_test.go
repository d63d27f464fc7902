package shoecard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPluralize(t *testing.T) {
	assert.Equal(t, "1 Color", Pluralize("Color", 1))
	assert.Equal(t, "3 Colors", Pluralize("Color", 3))
	assert.Equal(t, "0 Colors", Pluralize("Color", 0))
	assert.Equal(t, "12 Sizes", Pluralize("Size", 12))
}
