package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Repository mocks ---

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

var _ portsrepo.CurrencyRepositoryFacade = (*MockCurrencyRepository)(nil)

type MockLedgerEntryRepository struct {
	mock.Mock
}

func (m *MockLedgerEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) FindEntryByExternalReference(ctx context.Context, reference string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) ListActiveBankEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

func (m *MockLedgerEntryRepository) FindVerification(ctx context.Context, reference string) (*domain.VerificationRecord, error) {
	args := m.Called(ctx, reference)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VerificationRecord), args.Error(1)
}

func (m *MockLedgerEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLedgerEntryRepository) MarkEntryVoided(ctx context.Context, entry domain.LedgerEntry, requireUnconsumed bool) (bool, error) {
	args := m.Called(ctx, entry, requireUnconsumed)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerEntryRepository) MarkEntryRestored(ctx context.Context, entry domain.LedgerEntry) (bool, error) {
	args := m.Called(ctx, entry)
	return args.Bool(0), args.Error(1)
}

var _ portsrepo.LedgerEntryRepositoryFacade = (*MockLedgerEntryRepository)(nil)

type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) SaveAuditEvent(ctx context.Context, event domain.AuditEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAuditRepository) ListAuditEvents(ctx context.Context, tableName, recordID string, limit int, after *portsrepo.AuditEventCursor) ([]domain.AuditEvent, *portsrepo.AuditEventCursor, error) {
	args := m.Called(ctx, tableName, recordID, limit, after)
	var events []domain.AuditEvent
	if args.Get(0) != nil {
		events = args.Get(0).([]domain.AuditEvent)
	}
	var cursor *portsrepo.AuditEventCursor
	if args.Get(1) != nil {
		cursor = args.Get(1).(*portsrepo.AuditEventCursor)
	}
	return events, cursor, args.Error(2)
}

var _ portsrepo.AuditEventRepository = (*MockAuditRepository)(nil)

type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) SaveInventoryHistory(ctx context.Context, entry domain.InventoryHistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockInventoryRepository) ListInventoryHistory(ctx context.Context, filter domain.InventoryHistoryFilter) ([]domain.InventoryHistoryEntry, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryHistoryEntry), args.Error(1)
}

func (m *MockInventoryRepository) BaseQuantities(ctx context.Context, itemKeys []string) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, itemKeys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

var _ portsrepo.InventoryHistoryRepository = (*MockInventoryRepository)(nil)

type MockConsumptionRepository struct {
	mock.Mock
}

func (m *MockConsumptionRepository) HasConsumption(ctx context.Context, ledgerEntryID string) (bool, error) {
	args := m.Called(ctx, ledgerEntryID)
	return args.Bool(0), args.Error(1)
}

var _ portsrepo.InventoryConsumptionReader = (*MockConsumptionRepository)(nil)

type MockBankAccountRepository struct {
	mock.Mock
}

func (m *MockBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BankAccount), args.Error(1)
}

var _ portsrepo.BankAccountReader = (*MockBankAccountRepository)(nil)

// --- Service and infrastructure mocks ---

type MockAuditRecorder struct {
	mock.Mock
}

func (m *MockAuditRecorder) Record(ctx context.Context, event domain.AuditEvent) {
	m.Called(ctx, event)
}

type MockInventoryRecorder struct {
	mock.Mock
}

func (m *MockInventoryRecorder) RecordMovement(ctx context.Context, entry domain.InventoryHistoryEntry) {
	m.Called(ctx, entry)
}

type MockViewCache struct {
	mock.Mock
}

func (m *MockViewCache) Get(ctx context.Context, view, field string, dest any) (bool, error) {
	args := m.Called(ctx, view, field, dest)
	return args.Bool(0), args.Error(1)
}

func (m *MockViewCache) Set(ctx context.Context, view, field string, value any) error {
	args := m.Called(ctx, view, field, value)
	return args.Error(0)
}

func (m *MockViewCache) Generation(ctx context.Context, view string) (int64, error) {
	args := m.Called(ctx, view)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockViewCache) Invalidate(ctx context.Context, views ...string) error {
	args := m.Called(ctx, views)
	return args.Error(0)
}

type MockRateLimiter struct {
	mock.Mock
}

func (m *MockRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

type MockLocker struct {
	mock.Mock
	released int
}

func (m *MockLocker) Obtain(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	args := m.Called(ctx, key, ttl)
	if err := args.Error(0); err != nil {
		return nil, err
	}
	return func(context.Context) error {
		m.released++
		return nil
	}, nil
}

var (
	_ portssvc.AuditRecorderSvc     = (*MockAuditRecorder)(nil)
	_ portssvc.InventoryRecorderSvc = (*MockInventoryRecorder)(nil)
	_ portssvc.ViewCache            = (*MockViewCache)(nil)
	_ portssvc.RateLimiter          = (*MockRateLimiter)(nil)
	_ portssvc.Locker               = (*MockLocker)(nil)
)

func strPtr(s string) *string {
	return &s
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

var fixedNow = time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}
