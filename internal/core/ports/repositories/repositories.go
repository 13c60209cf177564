package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CurrencyRepo    CurrencyRepositoryFacade
	LedgerEntryRepo LedgerEntryRepositoryFacade
	AuditRepo       AuditEventRepository
	InventoryRepo   InventoryHistoryRepository
	ConsumptionRepo InventoryConsumptionReader
	BankAccountRepo BankAccountReader
}
