package services

import (
	"context"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/SscSPs/relief_ledger_app/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all available currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// SaveCurrency adds a currency or updates its symbol, name and rate to base.
	SaveCurrency(ctx context.Context, req dto.SaveCurrencyRequest, actorID string) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
