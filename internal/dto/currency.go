package dto

import (
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveCurrencyRequest defines the data needed to add a currency or update its rate.
type SaveCurrencyRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	Symbol       string          `json:"symbol" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	RateToBase   decimal.Decimal `json:"rateToBase"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string          `json:"currencyCode"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	RateToBase    decimal.Decimal `json:"rateToBase"`
	IsBase        bool            `json:"isBase"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy string          `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		Symbol:        curr.Symbol,
		Name:          curr.Name,
		RateToBase:    curr.RateToBase,
		IsBase:        curr.IsBase,
		CreatedAt:     curr.CreatedAt,
		CreatedBy:     curr.CreatedBy,
		LastUpdatedAt: curr.LastUpdatedAt,
		LastUpdatedBy: curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
