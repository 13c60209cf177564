package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"golang.org/x/sync/errgroup"
)

const balancesCacheField = "balances"

// balanceService derives balances from the active entry log on every uncached read.
// The cache only holds the derivation for the current bank accounts view generation,
// which every ledger mutation bumps.
type balanceService struct {
	BaseService
	accountRepo  portsrepo.BankAccountReader
	currencyRepo portsrepo.CurrencyReader
	entryRepo    portsrepo.LedgerEntryReader
}

// BalanceServiceOption configures the balance service.
type BalanceServiceOption func(*balanceService)

// WithBalanceViewCache caches derived balances under the bank accounts view.
func WithBalanceViewCache(cache portssvc.ViewCache) BalanceServiceOption {
	return func(s *balanceService) {
		s.cache = cache
	}
}

// NewBalanceService creates the balance aggregator.
func NewBalanceService(accountRepo portsrepo.BankAccountReader, currencyRepo portsrepo.CurrencyReader, entryRepo portsrepo.LedgerEntryReader, options ...BalanceServiceOption) portssvc.BalanceSvc {
	svc := &balanceService{
		accountRepo:  accountRepo,
		currencyRepo: currencyRepo,
		entryRepo:    entryRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.BalanceSvc = (*balanceService)(nil)

func (s *balanceService) GetBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	field, cacheable := s.balancesField(ctx)
	if cacheable {
		var cached []domain.AccountBalance
		found, err := s.cache.Get(ctx, domain.ViewBankAccounts, field, &cached)
		if err != nil {
			s.LogWarn(ctx, "Balance cache read failed; recomputing", slog.String("error", err.Error()))
		} else if found {
			return cached, nil
		}
	}

	balances, err := s.deriveBalances(ctx)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := s.cache.Set(ctx, domain.ViewBankAccounts, field, balances); err != nil {
			s.LogWarn(ctx, "Failed to cache balances", slog.String("error", err.Error()))
		}
	}
	return balances, nil
}

// balancesField keys cached balances by the view generation read before loading. A
// derivation that raced a ledger mutation lands under a stale generation no later read uses.
func (s *balanceService) balancesField(ctx context.Context) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	gen, err := s.cache.Generation(ctx, domain.ViewBankAccounts)
	if err != nil {
		s.LogWarn(ctx, "Balance cache generation unavailable; bypassing cache", slog.String("error", err.Error()))
		return "", false
	}
	return fmt.Sprintf("%s@%d", balancesCacheField, gen), true
}

func (s *balanceService) deriveBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	var (
		accounts   []domain.BankAccount
		currencies []domain.Currency
		entries    []domain.LedgerEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if accounts, err = s.accountRepo.ListBankAccounts(gctx); err != nil {
			return fmt.Errorf("failed to list bank accounts: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if currencies, err = s.currencyRepo.ListCurrencies(gctx); err != nil {
			return fmt.Errorf("failed to list currencies: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if entries, err = s.entryRepo.ListActiveBankEntries(gctx); err != nil {
			return fmt.Errorf("failed to list bank entries: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load balance inputs")
		return nil, err
	}

	byCode := make(map[string]domain.Currency, len(currencies))
	for _, c := range currencies {
		byCode[c.CurrencyCode] = c
	}

	// Group entries per account once rather than rescanning the whole log per account.
	perAccount := make(map[string][]domain.LedgerEntry)
	for _, e := range entries {
		if e.BankAccountID != nil {
			perAccount[*e.BankAccountID] = append(perAccount[*e.BankAccountID], e)
		}
	}

	balances := make([]domain.AccountBalance, 0, len(accounts))
	for _, a := range accounts {
		if !a.IsActive {
			continue
		}
		currency, ok := byCode[a.CurrencyCode]
		if !ok {
			s.LogWarn(ctx, "Bank account currency missing from rate table; using rate 1",
				slog.String("bank_account_id", a.BankAccountID),
				slog.String("currency_code", a.CurrencyCode))
			currency = domain.Currency{CurrencyCode: a.CurrencyCode, Symbol: a.CurrencyCode}
		}
		native, base := domain.DeriveBalance(a.OpeningBalance, currency.RateToBase, a.BankAccountID, perAccount[a.BankAccountID])
		balances = append(balances, domain.AccountBalance{
			BankAccountID:  a.BankAccountID,
			Name:           a.Name,
			NativeBalance:  native,
			BaseBalance:    base,
			CurrencyCode:   a.CurrencyCode,
			CurrencySymbol: currency.Symbol,
		})
	}
	return balances, nil
}

func (s *balanceService) GetCurrencyTotals(ctx context.Context) ([]domain.CurrencyTotal, error) {
	balances, err := s.GetBalances(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]*domain.CurrencyTotal)
	for _, b := range balances {
		t, ok := totals[b.CurrencyCode]
		if !ok {
			t = &domain.CurrencyTotal{CurrencyCode: b.CurrencyCode, CurrencySymbol: b.CurrencySymbol}
			totals[b.CurrencyCode] = t
		}
		t.NativeTotal = t.NativeTotal.Add(b.NativeBalance)
		t.BaseTotal = t.BaseTotal.Add(b.BaseBalance)
		t.AccountCount++
	}

	out := make([]domain.CurrencyTotal, 0, len(totals))
	for _, t := range totals {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out, nil
}
