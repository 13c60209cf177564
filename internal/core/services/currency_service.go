package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/relief_ledger_app/internal/apperrors"
	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
)

type currencyService struct {
	BaseService
	currencyRepo     portsrepo.CurrencyRepositoryFacade
	baseCurrencyCode string
}

// NewCurrencyService creates the currency and rate table service. baseCurrencyCode is
// pinned to a rate of 1.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, baseCurrencyCode string, cache portssvc.ViewCache) portssvc.CurrencySvcFacade {
	svc := &currencyService{currencyRepo: currencyRepo, baseCurrencyCode: strings.ToUpper(baseCurrencyCode)}
	svc.cache = cache
	return svc
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) SaveCurrency(ctx context.Context, req dto.SaveCurrencyRequest, actorID string) (*domain.Currency, error) {
	if actorID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	isBase := req.CurrencyCode == s.baseCurrencyCode
	rate := req.RateToBase
	if isBase {
		rate = decimal.NewFromInt(1)
	} else if !rate.IsPositive() {
		return nil, apperrors.NewValidationError("rateToBase", "Rate to base must be greater than zero")
	}

	now := s.Now()
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Name:         req.Name,
		RateToBase:   rate,
		IsBase:       isBase,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		s.LogError(ctx, err, "Failed to save currency", slog.String("currency_code", req.CurrencyCode))
		return nil, fmt.Errorf("failed to save currency in service: %w", err)
	}
	// Account balances are re-expressed at the current rate.
	s.InvalidateViews(ctx, domain.ViewBankAccounts, domain.ViewDashboard)

	s.LogInfo(ctx, "Currency saved",
		slog.String("currency_code", currency.CurrencyCode),
		slog.String("rate_to_base", currency.RateToBase.String()))
	return &currency, nil
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get currency", slog.String("currency_code", currencyCode))
		}
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
