package dto

import (
	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountBalanceResponse is one bank account's derived balance.
type AccountBalanceResponse struct {
	AccountID      string          `json:"accountId"`
	Name           string          `json:"name"`
	NativeBalance  decimal.Decimal `json:"nativeBalance"`
	BaseBalance    decimal.Decimal `json:"baseBalance"`
	CurrencyCode   string          `json:"currencyCode"`
	CurrencySymbol string          `json:"currencySymbol"`
}

// CurrencyTotalResponse sums derived balances per currency.
type CurrencyTotalResponse struct {
	CurrencyCode   string          `json:"currencyCode"`
	CurrencySymbol string          `json:"currencySymbol"`
	NativeTotal    decimal.Decimal `json:"nativeTotal"`
	BaseTotal      decimal.Decimal `json:"baseTotal"`
	AccountCount   int             `json:"accountCount"`
}

// ToAccountBalanceResponses converts derived balances to response DTOs.
func ToAccountBalanceResponses(balances []domain.AccountBalance) []AccountBalanceResponse {
	res := make([]AccountBalanceResponse, len(balances))
	for i, b := range balances {
		res[i] = AccountBalanceResponse{
			AccountID:      b.BankAccountID,
			Name:           b.Name,
			NativeBalance:  b.NativeBalance,
			BaseBalance:    b.BaseBalance,
			CurrencyCode:   b.CurrencyCode,
			CurrencySymbol: b.CurrencySymbol,
		}
	}
	return res
}

// ToCurrencyTotalResponses converts currency totals to response DTOs.
func ToCurrencyTotalResponses(totals []domain.CurrencyTotal) []CurrencyTotalResponse {
	res := make([]CurrencyTotalResponse, len(totals))
	for i, t := range totals {
		res[i] = CurrencyTotalResponse(t)
	}
	return res
}
