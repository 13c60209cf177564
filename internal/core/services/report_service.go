package services

import (
	"context"
	"fmt"
	"log/slog"

	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/xuri/excelize/v2"
)

const balancesSheet = "Balances"

type reportService struct {
	BaseService
	balances portssvc.BalanceSvc
}

// NewReportService creates the report renderer over the balance aggregator.
func NewReportService(balances portssvc.BalanceSvc) portssvc.ReportSvc {
	return &reportService{balances: balances}
}

var _ portssvc.ReportSvc = (*reportService)(nil)

func (s *reportService) BalancesWorkbook(ctx context.Context) ([]byte, error) {
	balances, err := s.balances.GetBalances(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.balances.GetCurrencyTotals(ctx)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.LogWarn(ctx, "Failed to close workbook", slog.String("error", err.Error()))
		}
	}()

	if err := f.SetSheetName("Sheet1", balancesSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	header := []any{"Account", "Currency", "Symbol", "Balance", "Balance (base)"}
	if err := f.SetSheetRow(balancesSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, b := range balances {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{b.Name, b.CurrencyCode, b.CurrencySymbol, b.NativeBalance.InexactFloat64(), b.BaseBalance.InexactFloat64()}
		if err := f.SetSheetRow(balancesSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write balance row: %w", err)
		}
	}

	totalsSheet := "By currency"
	if _, err := f.NewSheet(totalsSheet); err != nil {
		return nil, fmt.Errorf("failed to add sheet: %w", err)
	}
	totalsHeader := []any{"Currency", "Symbol", "Accounts", "Total", "Total (base)"}
	if err := f.SetSheetRow(totalsSheet, "A1", &totalsHeader); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	for i, t := range totals {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := []any{t.CurrencyCode, t.CurrencySymbol, t.AccountCount, t.NativeTotal.InexactFloat64(), t.BaseTotal.InexactFloat64()}
		if err := f.SetSheetRow(totalsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write total row: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to render workbook: %w", err)
	}
	return buf.Bytes(), nil
}
