package services

import (
	portsrepo "github.com/SscSPs/relief_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger_app/internal/platform/config"
)

// Infrastructure groups the cache, limiters and lock the services are wired with.
type Infrastructure struct {
	Cache         portssvc.ViewCache
	VerifyLimiter portssvc.RateLimiter
	IngestLimiter portssvc.RateLimiter
	Locker        portssvc.Locker
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, infra Infrastructure) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Trail services first since the ledger writes through them
	container.Audit = NewAuditService(repos.AuditRepo)
	container.Inventory = NewInventoryService(
		repos.InventoryRepo,
		WithInventoryAuditRecorder(container.Audit),
		WithInventoryViewCache(infra.Cache),
	)

	container.Currency = NewCurrencyService(repos.CurrencyRepo, cfg.BaseCurrencyCode, infra.Cache)

	container.Ledger = NewLedgerService(
		repos.LedgerEntryRepo,
		WithCurrencyReader(repos.CurrencyRepo),
		WithConsumptionGuard(NewConsumptionGuard(repos.ConsumptionRepo)),
		WithAuditRecorder(container.Audit),
		WithInventoryRecorder(container.Inventory),
		WithViewCache(infra.Cache),
		WithLocker(infra.Locker),
		WithSideEffectTimeout(cfg.SideEffectTimeout),
	)

	container.Balance = NewBalanceService(
		repos.BankAccountRepo,
		repos.CurrencyRepo,
		repos.LedgerEntryRepo,
		WithBalanceViewCache(infra.Cache),
	)
	container.Report = NewReportService(container.Balance)
	container.Verification = NewVerificationService(repos.LedgerEntryRepo, infra.VerifyLimiter)
	container.IngestLimiter = infra.IngestLimiter

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.LedgerSvcFacade    = (*ledgerService)(nil)
	_ portssvc.AuditSvcFacade     = (*auditService)(nil)
	_ portssvc.InventorySvcFacade = (*inventoryService)(nil)
)
