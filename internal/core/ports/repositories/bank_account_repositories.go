package repositories

import (
	"context"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
)

// BankAccountReader defines read operations for bank accounts.
type BankAccountReader interface {
	ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error)
}
