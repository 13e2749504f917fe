package services

import (
	"stylishtype/internal/models/db_models"
	"stylishtype/pkg/utils"
)

// PriceView applies an optional discount at read time. The discounted price
// is never stored; it is always derived from the source price. When a
// discount applies, the pre-discount price is returned for the strikethrough
// rendering; otherwise the second value is nil.
func PriceView(price float64, discount *db_models.Discount) (float64, *float64) {
	if discount != nil && discount.Percentage > 0 {
		original := utils.RoundMoney(price)
		final := utils.RoundMoney(price - price*discount.Percentage/100)
		return final, &original
	}
	return utils.RoundMoney(price), nil
}
