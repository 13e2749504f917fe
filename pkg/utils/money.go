package utils

import (
	"fmt"
	"math"
)

// RoundMoney rounds to cents, half away from zero. Every price that leaves
// the service layer passes through here so floating-point noise never reaches
// a response payload or the payment gateway.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders an amount the way the payment gateway expects it:
// exactly two decimals, e.g. 19.99 -> "19.99", 40 -> "40.00".
func FormatAmount(v float64) string {
	return fmt.Sprintf("%.2f", RoundMoney(v))
}
