package pgsql

import (
	portsrepo "github.com/SscSPs/relief_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:    newPgxCurrencyRepository(dbPool),
		LedgerEntryRepo: newPgxLedgerEntryRepository(dbPool),
		AuditRepo:       newPgxAuditRepository(dbPool),
		InventoryRepo:   newPgxInventoryRepository(dbPool),
		ConsumptionRepo: newPgxConsumptionRepository(dbPool),
		BankAccountRepo: newPgxBankAccountRepository(dbPool),
	}
}
