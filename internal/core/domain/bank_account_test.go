package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeriveBalance_ExcludesVoidedEntries(t *testing.T) {
	now := time.Now()
	entries := []domain.LedgerEntry{
		{Type: domain.DonationBank, BankAccountID: stringPtr("acc-1"), AmountInBaseCurrency: decimal.NewFromInt(500)},
		{Type: domain.DonationBank, BankAccountID: stringPtr("acc-1"), AmountInBaseCurrency: decimal.NewFromInt(2000), DeletedAt: &now},
	}

	native, base := domain.DeriveBalance(decimal.NewFromInt(1000), decimal.NewFromInt(1), "acc-1", entries)

	assert.True(t, decimal.NewFromInt(1500).Equal(native), "got %s", native)
	assert.True(t, decimal.NewFromInt(1500).Equal(base), "got %s", base)
}

func TestDeriveBalance_NonBaseCurrency(t *testing.T) {
	entries := []domain.LedgerEntry{
		{Type: domain.CashDeposit, BankAccountID: stringPtr("acc-lkr"), AmountInBaseCurrency: decimal.NewFromInt(600)},
	}

	native, _ := domain.DeriveBalance(decimal.NewFromInt(100), decimal.NewFromInt(300), "acc-lkr", entries)

	assert.True(t, decimal.NewFromInt(102).Equal(native), "got %s", native)
}

func TestDeriveBalance_WithdrawalsAndOtherAccounts(t *testing.T) {
	entries := []domain.LedgerEntry{
		{Type: domain.ExpenseBank, BankAccountID: stringPtr("acc-1"), AmountInBaseCurrency: decimal.NewFromInt(250)},
		{Type: domain.DonationBank, BankAccountID: stringPtr("acc-2"), AmountInBaseCurrency: decimal.NewFromInt(900)},
		{Type: domain.ExpenseCash, AmountInBaseCurrency: decimal.NewFromInt(40)},
		{Type: domain.BankWithdrawal, BankAccountID: stringPtr("acc-1"), AmountInBaseCurrency: decimal.NewFromInt(75)},
	}

	native, _ := domain.DeriveBalance(decimal.NewFromInt(1000), decimal.NewFromInt(1), "acc-1", entries)

	assert.True(t, decimal.NewFromInt(750).Equal(native), "got %s", native)
}

func TestDeriveBalance_NonPositiveRateTreatedAsOne(t *testing.T) {
	entries := []domain.LedgerEntry{
		{Type: domain.DonationBank, BankAccountID: stringPtr("acc-1"), AmountInBaseCurrency: decimal.NewFromInt(50)},
	}

	zero, _ := domain.DeriveBalance(decimal.NewFromInt(100), decimal.Zero, "acc-1", entries)
	negative, _ := domain.DeriveBalance(decimal.NewFromInt(100), decimal.NewFromInt(-5), "acc-1", entries)

	assert.True(t, decimal.NewFromInt(150).Equal(zero))
	assert.True(t, decimal.NewFromInt(150).Equal(negative))
}
