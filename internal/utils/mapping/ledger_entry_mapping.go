package mapping

import (
	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/SscSPs/relief_ledger_app/internal/models"
)

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:              d.EntryID,
		EntryType:            string(d.Type),
		Amount:               d.Amount,
		AmountInBaseCurrency: d.AmountInBaseCurrency,
		ExchangeRate:         d.ExchangeRate,
		CurrencyCode:         d.CurrencyCode,
		EntryDate:            d.Date,
		Description:          d.Description,
		CauseID:              d.CauseID,
		ItemName:             d.ItemName,
		Quantity:             d.Quantity,
		DonorID:              d.DonorID,
		DonorName:            d.DonorName,
		BankAccountID:        d.BankAccountID,
		FromVolunteerID:      d.FromVolunteerID,
		ToVolunteerID:        d.ToVolunteerID,
		CustodianID:          d.CustodianID,
		ExternalReference:    d.ExternalReference,
		DeletedAt:            d.DeletedAt,
		VoidedAt:             d.VoidedAt,
		VoidedBy:             d.VoidedBy,
		VoidReason:           d.VoidReason,
		RestoredAt:           d.RestoredAt,
		RestoredBy:           d.RestoredBy,
		AuditFields:          ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:              m.EntryID,
		Type:                 domain.EntryType(m.EntryType),
		Amount:               m.Amount,
		AmountInBaseCurrency: m.AmountInBaseCurrency,
		ExchangeRate:         m.ExchangeRate,
		CurrencyCode:         m.CurrencyCode,
		Date:                 m.EntryDate,
		Description:          m.Description,
		CauseID:              m.CauseID,
		ItemName:             m.ItemName,
		Quantity:             m.Quantity,
		DonorID:              m.DonorID,
		DonorName:            m.DonorName,
		BankAccountID:        m.BankAccountID,
		FromVolunteerID:      m.FromVolunteerID,
		ToVolunteerID:        m.ToVolunteerID,
		CustodianID:          m.CustodianID,
		ExternalReference:    m.ExternalReference,
		DeletedAt:            m.DeletedAt,
		VoidedAt:             m.VoidedAt,
		VoidedBy:             m.VoidedBy,
		VoidReason:           m.VoidReason,
		RestoredAt:           m.RestoredAt,
		RestoredBy:           m.RestoredBy,
		AuditFields:          ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedgerEntrySlice converts model ledger entries to domain ledger entries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

// ToDomainVerification converts the verification projection
func ToDomainVerification(m models.Verification) domain.VerificationRecord {
	return domain.VerificationRecord{
		Date:           m.EntryDate,
		Amount:         m.Amount,
		CurrencySymbol: m.CurrencySymbol,
		CauseName:      m.CauseName,
	}
}
