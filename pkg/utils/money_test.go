package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 19.99, RoundMoney(19.99))
	assert.Equal(t, 30.0, RoundMoney(29.997))
	assert.Equal(t, 0.1, RoundMoney(0.1+0.2-0.2))
	assert.Equal(t, -4.57, RoundMoney(-4.569))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "19.99", FormatAmount(19.99))
	assert.Equal(t, "40.00", FormatAmount(40))
	assert.Equal(t, "20.00", FormatAmount(19.9999))
	assert.Equal(t, "0.00", FormatAmount(0))
}
