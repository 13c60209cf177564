package mapping

import (
	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/SscSPs/relief_ledger_app/internal/models"
)

// ToDomainBankAccount converts a model BankAccount to a domain BankAccount
func ToDomainBankAccount(m models.BankAccount) domain.BankAccount {
	return domain.BankAccount{
		BankAccountID:  m.BankAccountID,
		Name:           m.Name,
		CurrencyCode:   m.CurrencyCode,
		OpeningBalance: m.OpeningBalance,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
