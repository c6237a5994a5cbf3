package utils

import "github.com/shopspring/decimal"

// RoundMoney arredonda valores monetários para centavos a partir da
// representação decimal mais curta do float, evitando que 12.345 vire 12.34
func RoundMoney(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}
