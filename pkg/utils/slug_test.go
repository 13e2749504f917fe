package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "grotesk-one", Slugify("Grotesk One"))
	assert.Equal(t, "summer-sale-50", Slugify("  Summer Sale 50%! "))
	assert.Equal(t, "fonts-pairing", Slugify("Fonts & Pairing"))
	assert.Equal(t, "st-design-2024", Slugify("ST Design 2024"))
	assert.Equal(t, "", Slugify("!!!"))
}
