package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"stylishtype/internal/models/db_models"
)

func TestPriceViewWithoutDiscount(t *testing.T) {
	price, original := PriceView(19.99, nil)

	assert.Equal(t, 19.99, price)
	assert.Nil(t, original)
}

func TestPriceViewZeroPercentDiscountIsNotASale(t *testing.T) {
	price, original := PriceView(19.99, &db_models.Discount{Percentage: 0})

	assert.Equal(t, 19.99, price)
	assert.Nil(t, original)
}

func TestPriceViewAppliesPercentage(t *testing.T) {
	price, original := PriceView(40, &db_models.Discount{Percentage: 50})

	assert.Equal(t, 20.0, price)
	require.NotNil(t, original)
	assert.Equal(t, 40.0, *original)
}

func TestPriceViewRoundsToCents(t *testing.T) {
	// 33.33 - 10% = 29.997, which must surface as 30.00
	price, original := PriceView(33.33, &db_models.Discount{Percentage: 10})

	assert.Equal(t, 30.0, price)
	require.NotNil(t, original)
	assert.Equal(t, 33.33, *original)
}
