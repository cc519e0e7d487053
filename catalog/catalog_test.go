package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	p, ok := ByID("tres-leches")
	require.True(t, ok)
	assert.Equal(t, "Tres Leches", p.Name)
	assert.True(t, p.Featured)
	require.Len(t, p.Sizes, 3)
	assert.Equal(t, SizeSmall, p.Sizes[0].Size)
	assert.Equal(t, 25.0, p.Sizes[0].Price)

	p, ok = ByID("flan")
	require.True(t, ok)
	assert.Equal(t, 25.0, p.FixedPrice)
	assert.Empty(t, p.Sizes)

	_, ok = ByID("croissant")
	assert.False(t, ok)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$25.00", FormatPrice(25))
	assert.Equal(t, "$35.50", FormatPrice(35.5))
}
