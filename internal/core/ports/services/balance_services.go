package services

import (
	"context"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
)

// BalanceSvc derives bank balances from active ledger entries.
type BalanceSvc interface {
	GetBalances(ctx context.Context) ([]domain.AccountBalance, error)
	GetCurrencyTotals(ctx context.Context) ([]domain.CurrencyTotal, error)
}

// ReportSvc renders downloadable reports.
type ReportSvc interface {
	// BalancesWorkbook returns an XLSX workbook of the current derived balances.
	BalancesWorkbook(ctx context.Context) ([]byte, error)
}

// VerificationSvc answers public donation confirmation lookups.
type VerificationSvc interface {
	VerifyReference(ctx context.Context, clientKey, reference string) (*domain.VerificationResult, error)
}
