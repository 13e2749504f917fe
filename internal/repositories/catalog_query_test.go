package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, CatalogPageSize))
	assert.Equal(t, 1, TotalPages(1, CatalogPageSize))
	assert.Equal(t, 1, TotalPages(32, CatalogPageSize))
	assert.Equal(t, 2, TotalPages(33, CatalogPageSize))
	assert.Equal(t, 4, TotalPages(100, CatalogPageSize))

	// blog grid pages at nine per page
	assert.Equal(t, 2, TotalPages(10, BlogPageSize))
}
