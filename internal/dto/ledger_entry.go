package dto

import (
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the data needed to record a donation, expense or cash movement.
type CreateLedgerEntryRequest struct {
	Type              domain.EntryType `json:"type" binding:"required"`
	Amount            decimal.Decimal  `json:"amount"`
	CurrencyCode      string           `json:"currencyCode" binding:"required,uppercase,len=3"`
	Date              time.Time        `json:"date" binding:"required"`
	Description       string           `json:"description" binding:"max=500"`
	CauseID           *string          `json:"causeId,omitempty"`
	ItemName          *string          `json:"itemName,omitempty" binding:"omitempty,max=200"`
	Quantity          *decimal.Decimal `json:"quantity,omitempty"`
	DonorID           *string          `json:"donorId,omitempty"`
	DonorName         *string          `json:"donorName,omitempty" binding:"omitempty,max=200"`
	BankAccountID     *string          `json:"bankAccountId,omitempty"`
	FromVolunteerID   *string          `json:"fromVolunteerId,omitempty"`
	ToVolunteerID     *string          `json:"toVolunteerId,omitempty"`
	CustodianID       *string          `json:"custodianId,omitempty"`
	ExternalReference *string          `json:"externalReference,omitempty"`
	ContextID         *string          `json:"contextId,omitempty"` // volunteer whose cash view should refresh
}

// VoidEntryRequest carries the mandatory reason for voiding an entry.
type VoidEntryRequest struct {
	Reason    string  `json:"reason" binding:"required"`
	ContextID *string `json:"contextId,omitempty"`
}

// RestoreEntryRequest carries an optional note for restoring an entry.
type RestoreEntryRequest struct {
	Reason    *string `json:"reason,omitempty"`
	ContextID *string `json:"contextId,omitempty"`
}

// IngestDonationRequest is a bank credit extracted upstream from a bank notification email.
type IngestDonationRequest struct {
	ExternalReference string          `json:"externalReference" binding:"required"`
	Amount            decimal.Decimal `json:"amount"`
	CurrencyCode      string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	SenderName        string          `json:"senderName" binding:"required,max=200"`
	Date              time.Time       `json:"date" binding:"required"`
	BankAccountID     string          `json:"bankAccountId" binding:"required"`
	CauseID           *string         `json:"causeId,omitempty"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID              string            `json:"entryId"`
	Type                 domain.EntryType  `json:"type"`
	State                domain.EntryState `json:"state"`
	Amount               decimal.Decimal   `json:"amount"`
	AmountInBaseCurrency decimal.Decimal   `json:"amountInBaseCurrency"`
	ExchangeRate         decimal.Decimal   `json:"exchangeRate"`
	CurrencyCode         string            `json:"currencyCode"`
	Date                 time.Time         `json:"date"`
	Description          string            `json:"description"`
	CauseID              *string           `json:"causeId,omitempty"`
	ItemName             *string           `json:"itemName,omitempty"`
	Quantity             *decimal.Decimal  `json:"quantity,omitempty"`
	DonorID              *string           `json:"donorId,omitempty"`
	DonorName            *string           `json:"donorName,omitempty"`
	BankAccountID        *string           `json:"bankAccountId,omitempty"`
	FromVolunteerID      *string           `json:"fromVolunteerId,omitempty"`
	ToVolunteerID        *string           `json:"toVolunteerId,omitempty"`
	CustodianID          *string           `json:"custodianId,omitempty"`
	ExternalReference    *string           `json:"externalReference,omitempty"`
	VoidedAt             *time.Time        `json:"voidedAt,omitempty"`
	VoidedBy             *string           `json:"voidedBy,omitempty"`
	VoidReason           *string           `json:"voidReason,omitempty"`
	RestoredAt           *time.Time        `json:"restoredAt,omitempty"`
	RestoredBy           *string           `json:"restoredBy,omitempty"`
	CreatedAt            time.Time         `json:"createdAt"`
	CreatedBy            string            `json:"createdBy"`
	LastUpdatedAt        time.Time         `json:"lastUpdatedAt"`
	LastUpdatedBy        string            `json:"lastUpdatedBy"`
}

// MutationResponse is returned by void and restore.
type MutationResponse struct {
	Success bool                `json:"success"`
	Entry   LedgerEntryResponse `json:"entry"`
}

// IngestDonationResponse reports whether ingestion created a new entry.
type IngestDonationResponse struct {
	Created bool                `json:"created"`
	Entry   LedgerEntryResponse `json:"entry"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to its response DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		EntryID:              e.EntryID,
		Type:                 e.Type,
		State:                e.State(),
		Amount:               e.Amount,
		AmountInBaseCurrency: e.AmountInBaseCurrency,
		ExchangeRate:         e.ExchangeRate,
		CurrencyCode:         e.CurrencyCode,
		Date:                 e.Date,
		Description:          e.Description,
		CauseID:              e.CauseID,
		ItemName:             e.ItemName,
		Quantity:             e.Quantity,
		DonorID:              e.DonorID,
		DonorName:            e.DonorName,
		BankAccountID:        e.BankAccountID,
		FromVolunteerID:      e.FromVolunteerID,
		ToVolunteerID:        e.ToVolunteerID,
		CustodianID:          e.CustodianID,
		ExternalReference:    e.ExternalReference,
		VoidedAt:             e.VoidedAt,
		VoidedBy:             e.VoidedBy,
		VoidReason:           e.VoidReason,
		RestoredAt:           e.RestoredAt,
		RestoredBy:           e.RestoredBy,
		CreatedAt:            e.CreatedAt,
		CreatedBy:            e.CreatedBy,
		LastUpdatedAt:        e.LastUpdatedAt,
		LastUpdatedBy:        e.LastUpdatedBy,
	}
}
