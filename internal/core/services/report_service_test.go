package services_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/SscSPs/relief_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubBalances struct {
	mock.Mock
}

func (m *stubBalances) GetBalances(ctx context.Context) ([]domain.AccountBalance, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

func (m *stubBalances) GetCurrencyTotals(ctx context.Context) ([]domain.CurrencyTotal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CurrencyTotal), args.Error(1)
}

func TestBalancesWorkbook(t *testing.T) {
	ctx := context.Background()
	balances := new(stubBalances)
	balances.On("GetBalances", ctx).Return([]domain.AccountBalance{
		{BankAccountID: "a1", Name: "Main", CurrencyCode: "USD", CurrencySymbol: "$", NativeBalance: decimal.NewFromInt(500), BaseBalance: decimal.NewFromInt(500)},
		{BankAccountID: "a2", Name: "Ops", CurrencyCode: "EUR", CurrencySymbol: "€", NativeBalance: decimal.NewFromInt(20), BaseBalance: decimal.NewFromInt(40)},
	}, nil).Once()
	balances.On("GetCurrencyTotals", ctx).Return([]domain.CurrencyTotal{
		{CurrencyCode: "EUR", CurrencySymbol: "€", AccountCount: 1, NativeTotal: decimal.NewFromInt(20), BaseTotal: decimal.NewFromInt(40)},
		{CurrencyCode: "USD", CurrencySymbol: "$", AccountCount: 1, NativeTotal: decimal.NewFromInt(500), BaseTotal: decimal.NewFromInt(500)},
	}, nil).Once()

	data, err := services.NewReportService(balances).BalancesWorkbook(ctx)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Balances", "By currency"}, f.GetSheetList())

	header, err := f.GetCellValue("Balances", "E1")
	require.NoError(t, err)
	assert.Equal(t, "Balance (base)", header)

	name, _ := f.GetCellValue("Balances", "A3")
	assert.Equal(t, "Ops", name)
	base, _ := f.GetCellValue("Balances", "E3")
	assert.Equal(t, "40", base)

	code, _ := f.GetCellValue("By currency", "A2")
	assert.Equal(t, "EUR", code)
	count, _ := f.GetCellValue("By currency", "C3")
	assert.Equal(t, "1", count)
}

func TestBalancesWorkbook_PropagatesBalanceError(t *testing.T) {
	ctx := context.Background()
	balances := new(stubBalances)
	balances.On("GetBalances", ctx).Return(nil, errors.New("db down")).Once()

	data, err := services.NewReportService(balances).BalancesWorkbook(ctx)

	assert.Nil(t, data)
	assert.EqualError(t, err, "db down")
	balances.AssertNotCalled(t, "GetCurrencyTotals", mock.Anything)
}
