package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType identifies the kind of financial or inventory event a ledger entry records.
type EntryType string

const (
	DonationBank   EntryType = "donation_bank"
	DonationCash   EntryType = "donation_cash"
	DonationInKind EntryType = "donation_in_kind"
	CashTransfer   EntryType = "cash_transfer"
	CashDeposit    EntryType = "cash_deposit"
	BankWithdrawal EntryType = "bank_withdrawal"
	ExpenseBank    EntryType = "expense_bank"
	ExpenseCash    EntryType = "expense_cash"
)

// AllEntryTypes lists every supported entry type.
var AllEntryTypes = []EntryType{
	DonationBank, DonationCash, DonationInKind, CashTransfer,
	CashDeposit, BankWithdrawal, ExpenseBank, ExpenseCash,
}

// IsValid reports whether t is a known entry type.
func (t EntryType) IsValid() bool {
	for _, known := range AllEntryTypes {
		if t == known {
			return true
		}
	}
	return false
}

// IsExpense reports whether t records money or goods spent.
func (t EntryType) IsExpense() bool {
	return t == ExpenseBank || t == ExpenseCash
}

// IsBankDeposit reports whether t adds to the referenced bank account's balance.
func (t EntryType) IsBankDeposit() bool {
	return t == DonationBank || t == CashDeposit
}

// IsBankWithdrawal reports whether t subtracts from the referenced bank account's balance.
func (t EntryType) IsBankWithdrawal() bool {
	return t == ExpenseBank
}

// EntryState is the void/restore state of a ledger entry.
type EntryState string

const (
	StateActive EntryState = "active"
	StateVoided EntryState = "voided"
)

// LedgerEntry is one recorded financial or inventory event. It is never hard-deleted.
type LedgerEntry struct {
	EntryID              string           `json:"entryID"`
	Type                 EntryType        `json:"type"`
	Amount               decimal.Decimal  `json:"amount"`
	AmountInBaseCurrency decimal.Decimal  `json:"amountInBaseCurrency"`
	ExchangeRate         decimal.Decimal  `json:"exchangeRate"` // rate to base in effect at write time
	CurrencyCode         string           `json:"currencyCode"`
	Date                 time.Time        `json:"date"`
	Description          string           `json:"description"`
	CauseID              *string          `json:"causeID,omitempty"`
	ItemName             *string          `json:"itemName,omitempty"`
	Quantity             *decimal.Decimal `json:"quantity,omitempty"`
	DonorID              *string          `json:"donorID,omitempty"`
	DonorName            *string          `json:"donorName,omitempty"`
	BankAccountID        *string          `json:"bankAccountID,omitempty"`
	FromVolunteerID      *string          `json:"fromVolunteerID,omitempty"`
	ToVolunteerID        *string          `json:"toVolunteerID,omitempty"`
	CustodianID          *string          `json:"custodianID,omitempty"`
	ExternalReference    *string          `json:"externalReference,omitempty"`

	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
	VoidedAt   *time.Time `json:"voidedAt,omitempty"`
	VoidedBy   *string    `json:"voidedBy,omitempty"`
	VoidReason *string    `json:"voidReason,omitempty"`
	RestoredAt *time.Time `json:"restoredAt,omitempty"`
	RestoredBy *string    `json:"restoredBy,omitempty"`
	AuditFields
}

// IsActive reports whether the entry currently counts toward balances and inventory.
func (e *LedgerEntry) IsActive() bool {
	return e.DeletedAt == nil
}

// State returns the entry's current void/restore state.
func (e *LedgerEntry) State() EntryState {
	if e.IsActive() {
		return StateActive
	}
	return StateVoided
}

// IsInventoryBacked reports whether the entry represents physical goods tracked by quantity:
// it names an item, is not earmarked for a cause, and is an expense or in-kind donation.
func (e *LedgerEntry) IsInventoryBacked() bool {
	if e.ItemName == nil || e.CauseID != nil {
		return false
	}
	return e.Type == DonationInKind || e.Type.IsExpense()
}

// InventorySource classifies where the entry's goods came from for the inventory trail.
func (e *LedgerEntry) InventorySource() InventorySource {
	if e.Type == DonationInKind {
		return SourceDonation
	}
	return SourceExpense
}

// QuantityValue returns the entry quantity, or zero when none is recorded.
func (e *LedgerEntry) QuantityValue() decimal.Decimal {
	if e.Quantity == nil {
		return decimal.Zero
	}
	return *e.Quantity
}

// MarkVoided moves the entry to the voided state, clearing stale restore metadata.
func (e *LedgerEntry) MarkVoided(at time.Time, actorID, reason string) {
	e.DeletedAt = &at
	e.VoidedAt = &at
	e.VoidedBy = &actorID
	e.VoidReason = &reason
	e.RestoredAt = nil
	e.RestoredBy = nil
	e.LastUpdatedAt = at
	e.LastUpdatedBy = actorID
}

// MarkRestored moves the entry back to the active state, clearing void metadata.
func (e *LedgerEntry) MarkRestored(at time.Time, actorID string) {
	e.DeletedAt = nil
	e.VoidedAt = nil
	e.VoidedBy = nil
	e.VoidReason = nil
	e.RestoredAt = &at
	e.RestoredBy = &actorID
	e.LastUpdatedAt = at
	e.LastUpdatedBy = actorID
}
