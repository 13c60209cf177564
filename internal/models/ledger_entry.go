package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry mirrors a row of ledger_entries. A non-null deleted_at marks the row voided.
type LedgerEntry struct {
	EntryID              string           `db:"entry_id"`
	EntryType            string           `db:"entry_type"`
	Amount               decimal.Decimal  `db:"amount"`
	AmountInBaseCurrency decimal.Decimal  `db:"amount_in_base_currency"`
	ExchangeRate         decimal.Decimal  `db:"exchange_rate"`
	CurrencyCode         string           `db:"currency_code"`
	EntryDate            time.Time        `db:"entry_date"`
	Description          string           `db:"description"`
	CauseID              *string          `db:"cause_id"`
	ItemName             *string          `db:"item_name"`
	Quantity             *decimal.Decimal `db:"quantity"`
	DonorID              *string          `db:"donor_id"`
	DonorName            *string          `db:"donor_name"`
	BankAccountID        *string          `db:"bank_account_id"`
	FromVolunteerID      *string          `db:"from_volunteer_id"`
	ToVolunteerID        *string          `db:"to_volunteer_id"`
	CustodianID          *string          `db:"custodian_id"`
	ExternalReference    *string          `db:"external_reference"`
	DeletedAt            *time.Time       `db:"deleted_at"`
	VoidedAt             *time.Time       `db:"voided_at"`
	VoidedBy             *string          `db:"voided_by"`
	VoidReason           *string          `db:"void_reason"`
	RestoredAt           *time.Time       `db:"restored_at"`
	RestoredBy           *string          `db:"restored_by"`
	AuditFields
}

// Verification is the joined projection used by the public reference lookup.
type Verification struct {
	EntryDate      time.Time       `db:"entry_date"`
	Amount         decimal.Decimal `db:"amount"`
	CurrencySymbol string          `db:"currency_symbol"`
	CauseName      *string         `db:"cause_name"`
}
