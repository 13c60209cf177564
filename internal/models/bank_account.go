package models

import "github.com/shopspring/decimal"

// BankAccount mirrors a row of bank_accounts.
type BankAccount struct {
	BankAccountID  string          `db:"bank_account_id"`
	Name           string          `db:"name"`
	CurrencyCode   string          `db:"currency_code"`
	OpeningBalance decimal.Decimal `db:"opening_balance"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
