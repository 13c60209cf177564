package models

import "github.com/shopspring/decimal"

// Currency represents a supported currency.
type Currency struct {
	CurrencyCode string          `db:"currency_code"` // Primary Key (e.g., "USD")
	Symbol       string          `db:"symbol"`        // e.g., "$"
	Name         string          `db:"name"`          // e.g., "US Dollar"
	RateToBase   decimal.Decimal `db:"rate_to_base"`
	IsBase       bool            `db:"is_base"`
	AuditFields
}
