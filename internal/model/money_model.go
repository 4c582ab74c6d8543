package model

import "github.com/shopspring/decimal"

// Money is a fixed-point naira amount. The backend serializes DecimalField
// values as strings ("12000.00"); decimal.Decimal accepts both quoted and
// bare numbers, so client arithmetic stays exact.
type Money = decimal.Decimal

// Naira builds a Money from a whole-naira figure.
func Naira(amount int64) Money {
	return decimal.NewFromInt(amount)
}
