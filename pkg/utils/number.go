package utils

import (
	"math"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percent devolve part/whole em porcentagem com duas casas, sem limite superior.
// Zero quando whole não é positivo.
func Percent(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return RoundWithTwoDecimalPlace(part.Div(whole).Mul(hundred).InexactFloat64())
}
