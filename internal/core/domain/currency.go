package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency and its rate to the base reporting currency.
type Currency struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string          `json:"symbol"`       // e.g., "$"
	Name         string          `json:"name"`         // e.g., "US Dollar"
	RateToBase   decimal.Decimal `json:"rateToBase"`   // 1 unit of this currency in base currency units
	IsBase       bool            `json:"isBase"`
	AuditFields
}

// EffectiveRate returns rate, or 1 when rate is zero or negative.
// A non-positive rate would otherwise zero out or flip a derived balance.
func EffectiveRate(rate decimal.Decimal) decimal.Decimal {
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.NewFromInt(1)
	}
	return rate
}

// ToBase converts a native amount to the base currency using the given rate.
func ToBase(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(EffectiveRate(rate))
}

// FromBase converts a base-currency amount back into a native amount.
func FromBase(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Div(EffectiveRate(rate))
}
