package domain

import "github.com/shopspring/decimal"

// BankAccount is a bank account money flows in and out of.
// Its balance is never stored; see AccountBalance.
type BankAccount struct {
	BankAccountID  string          `json:"bankAccountID"`
	Name           string          `json:"name"`
	CurrencyCode   string          `json:"currencyCode"`
	OpeningBalance decimal.Decimal `json:"openingBalance"` // in the account's own currency
	IsActive       bool            `json:"isActive"`
	AuditFields
}

// AccountBalance is a derived balance for one bank account.
type AccountBalance struct {
	BankAccountID  string          `json:"accountId"`
	Name           string          `json:"name"`
	NativeBalance  decimal.Decimal `json:"nativeBalance"`
	BaseBalance    decimal.Decimal `json:"baseBalance"`
	CurrencyCode   string          `json:"currencyCode"`
	CurrencySymbol string          `json:"currencySymbol"`
}

// CurrencyTotal sums account balances held in one currency.
type CurrencyTotal struct {
	CurrencyCode   string          `json:"currencyCode"`
	CurrencySymbol string          `json:"currencySymbol"`
	NativeTotal    decimal.Decimal `json:"nativeTotal"`
	BaseTotal      decimal.Decimal `json:"baseTotal"`
	AccountCount   int             `json:"accountCount"`
}

// DeriveBalance replays active entries against the opening balance.
// Deposits add and withdrawals subtract their base amounts; the total is then
// expressed back in the account's native currency at rate.
func DeriveBalance(opening, rate decimal.Decimal, accountID string, entries []LedgerEntry) (native, base decimal.Decimal) {
	base = ToBase(opening, rate)
	for _, e := range entries {
		if !e.IsActive() || e.BankAccountID == nil || *e.BankAccountID != accountID {
			continue
		}
		switch {
		case e.Type.IsBankDeposit():
			base = base.Add(e.AmountInBaseCurrency)
		case e.Type.IsBankWithdrawal():
			base = base.Sub(e.AmountInBaseCurrency)
		}
	}
	return FromBase(base, rate), base
}
