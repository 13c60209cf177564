package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string {
	return &s
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func TestLedgerEntry_IsInventoryBacked(t *testing.T) {
	tests := []struct {
		name  string
		entry domain.LedgerEntry
		want  bool
	}{
		{
			name:  "in-kind donation with item",
			entry: domain.LedgerEntry{Type: domain.DonationInKind, ItemName: stringPtr("Rice")},
			want:  true,
		},
		{
			name:  "cash expense with item",
			entry: domain.LedgerEntry{Type: domain.ExpenseCash, ItemName: stringPtr("Blankets")},
			want:  true,
		},
		{
			name:  "bank expense with item",
			entry: domain.LedgerEntry{Type: domain.ExpenseBank, ItemName: stringPtr("Tarps")},
			want:  true,
		},
		{
			name:  "in-kind donation earmarked for a cause",
			entry: domain.LedgerEntry{Type: domain.DonationInKind, ItemName: stringPtr("Rice"), CauseID: stringPtr("drive-1")},
			want:  false,
		},
		{
			name:  "expense without item",
			entry: domain.LedgerEntry{Type: domain.ExpenseBank},
			want:  false,
		},
		{
			name:  "bank donation with item name",
			entry: domain.LedgerEntry{Type: domain.DonationBank, ItemName: stringPtr("Rice")},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.IsInventoryBacked())
		})
	}
}

func TestLedgerEntry_InventorySource(t *testing.T) {
	assert.Equal(t, domain.SourceDonation, (&domain.LedgerEntry{Type: domain.DonationInKind}).InventorySource())
	assert.Equal(t, domain.SourceExpense, (&domain.LedgerEntry{Type: domain.ExpenseCash}).InventorySource())
	assert.Equal(t, domain.SourceExpense, (&domain.LedgerEntry{Type: domain.ExpenseBank}).InventorySource())
}

func TestLedgerEntry_VoidRestoreRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	original := domain.LedgerEntry{
		EntryID:              "entry-1",
		Type:                 domain.DonationInKind,
		Amount:               decimal.Zero,
		AmountInBaseCurrency: decimal.Zero,
		ExchangeRate:         decimal.NewFromInt(1),
		CurrencyCode:         "USD",
		ItemName:             stringPtr("Rice Bags"),
		Quantity:             decimalPtr(decimal.NewFromInt(10)),
		AuditFields: domain.AuditFields{
			CreatedAt: created, CreatedBy: "u1", LastUpdatedAt: created, LastUpdatedBy: "u1",
		},
	}

	entry := original
	voidedAt := created.Add(time.Hour)
	entry.MarkVoided(voidedAt, "u2", "duplicate")

	assert.False(t, entry.IsActive())
	assert.Equal(t, domain.StateVoided, entry.State())
	assert.Equal(t, voidedAt, *entry.DeletedAt)
	assert.Equal(t, "u2", *entry.VoidedBy)
	assert.Equal(t, "duplicate", *entry.VoidReason)
	assert.Nil(t, entry.RestoredAt)

	restoredAt := voidedAt.Add(time.Hour)
	entry.MarkRestored(restoredAt, "u3")

	assert.True(t, entry.IsActive())
	assert.Nil(t, entry.VoidedAt)
	assert.Nil(t, entry.VoidedBy)
	assert.Nil(t, entry.VoidReason)
	assert.Equal(t, restoredAt, *entry.RestoredAt)
	assert.Equal(t, "u3", *entry.RestoredBy)

	// Apart from restore metadata and the last-updated stamp the entry is unchanged.
	entry.RestoredAt, entry.RestoredBy = nil, nil
	entry.LastUpdatedAt, entry.LastUpdatedBy = original.LastUpdatedAt, original.LastUpdatedBy
	assert.Equal(t, original, entry)
}

func TestLedgerEntry_MarkVoidedClearsStaleRestore(t *testing.T) {
	now := time.Now()
	entry := domain.LedgerEntry{RestoredAt: &now, RestoredBy: stringPtr("u1")}

	entry.MarkVoided(now.Add(time.Minute), "u2", "wrong amount")

	assert.Nil(t, entry.RestoredAt)
	assert.Nil(t, entry.RestoredBy)
	assert.NotNil(t, entry.VoidedAt)
}

func TestEntryType_BankDirection(t *testing.T) {
	assert.True(t, domain.DonationBank.IsBankDeposit())
	assert.True(t, domain.CashDeposit.IsBankDeposit())
	assert.True(t, domain.ExpenseBank.IsBankWithdrawal())
	assert.False(t, domain.BankWithdrawal.IsBankWithdrawal())
	assert.False(t, domain.ExpenseCash.IsBankDeposit())
	assert.False(t, domain.EntryType("refund").IsValid())
}
