package utils

import "github.com/shopspring/decimal"

func RoundWithTwoDecimalPlace(f float64) float64 {
	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}
