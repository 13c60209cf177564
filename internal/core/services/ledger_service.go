package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/apperrors"
	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ingestLockTTL   = 10 * time.Second
	ingestModuleTag = "email_ingest"
)

// ledgerService implements the LedgerSvcFacade interface
type ledgerService struct {
	BaseService
	entryRepo    portsrepo.LedgerEntryRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	guard        portssvc.ConsumptionGuardSvc
	audit        portssvc.AuditRecorderSvc
	inventory    portssvc.InventoryRecorderSvc
	locker       portssvc.Locker
	effects      *sideEffects
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithCurrencyReader adds the currency lookup used to stamp exchange rates.
func WithCurrencyReader(repo portsrepo.CurrencyReader) LedgerServiceOption {
	return func(s *ledgerService) {
		s.currencyRepo = repo
	}
}

// WithConsumptionGuard adds the inventory consumption check used before voids.
func WithConsumptionGuard(guard portssvc.ConsumptionGuardSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.guard = guard
	}
}

// WithAuditRecorder adds the audit trail sink.
func WithAuditRecorder(audit portssvc.AuditRecorderSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.audit = audit
	}
}

// WithInventoryRecorder adds the inventory history sink.
func WithInventoryRecorder(inventory portssvc.InventoryRecorderSvc) LedgerServiceOption {
	return func(s *ledgerService) {
		s.inventory = inventory
	}
}

// WithViewCache adds the cache whose views are dropped after mutations.
func WithViewCache(cache portssvc.ViewCache) LedgerServiceOption {
	return func(s *ledgerService) {
		s.cache = cache
	}
}

// WithLocker adds the lock used to serialize ingestion per external reference.
func WithLocker(locker portssvc.Locker) LedgerServiceOption {
	return func(s *ledgerService) {
		s.locker = locker
	}
}

// WithSideEffectTimeout bounds how long mutations wait for trail writes.
func WithSideEffectTimeout(timeout time.Duration) LedgerServiceOption {
	return func(s *ledgerService) {
		s.effects = newSideEffects(timeout)
	}
}

// WithLedgerClock overrides the clock used for timestamps.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

// NewLedgerService creates a new ledger service with the provided options
func NewLedgerService(repo portsrepo.LedgerEntryRepositoryFacade, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		entryRepo: repo,
		effects:   newSideEffects(DefaultSideEffectTimeout),
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func (s *ledgerService) GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to find ledger entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to find ledger entry: %w", err)
	}
	return entry, nil
}

func (s *ledgerService) CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, actorID string) (*domain.LedgerEntry, error) {
	if actorID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	if req.ExternalReference != nil {
		ref := domain.NormalizeReference(*req.ExternalReference)
		if !domain.ValidReference(ref) {
			return nil, apperrors.NewValidationError("externalReference", "Reference must be 10-50 letters or digits")
		}
		req.ExternalReference = &ref
	}

	entry, err := s.buildEntry(ctx, req, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.SaveEntry(ctx, *entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save ledger entry", slog.String("entry_type", string(entry.Type)))
		return nil, fmt.Errorf("failed to save ledger entry: %w", err)
	}

	s.afterCreate(ctx, entry, actorID, moduleFor(*entry), req.ContextID)

	s.LogInfo(ctx, "Ledger entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("entry_type", string(entry.Type)))
	return entry, nil
}

// IngestExternalDonation records an upstream bank credit once per normalized reference.
func (s *ledgerService) IngestExternalDonation(ctx context.Context, req dto.IngestDonationRequest, actorID string) (*domain.LedgerEntry, bool, error) {
	if actorID == "" {
		return nil, false, apperrors.ErrUnauthenticated
	}
	ref := domain.NormalizeReference(req.ExternalReference)
	if !domain.ValidReference(ref) {
		return nil, false, apperrors.NewValidationError("externalReference", "Reference must be 10-50 letters or digits")
	}

	if s.locker != nil {
		release, err := s.locker.Obtain(ctx, "ingest:"+ref, ingestLockTTL)
		if err != nil {
			s.LogWarn(ctx, "Could not lock external reference for ingestion",
				slog.String("reference", ref),
				slog.String("error", err.Error()))
			return nil, false, err
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				s.LogWarn(ctx, "Failed to release ingestion lock", slog.String("error", err.Error()))
			}
		}()
	}

	if existing, err := s.findByReference(ctx, ref); err != nil || existing != nil {
		return existing, false, err
	}

	senderName := strings.TrimSpace(req.SenderName)
	bankAccountID := req.BankAccountID
	entry, err := s.buildEntry(ctx, dto.CreateLedgerEntryRequest{
		Type:              domain.DonationBank,
		Amount:            req.Amount,
		CurrencyCode:      req.CurrencyCode,
		Date:              req.Date,
		Description:       "Bank credit " + ref,
		CauseID:           req.CauseID,
		DonorName:         &senderName,
		BankAccountID:     &bankAccountID,
		ExternalReference: &ref,
	}, actorID)
	if err != nil {
		return nil, false, err
	}

	if err := s.entryRepo.SaveEntry(ctx, *entry); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// Another writer got there first without holding the lock.
			existing, findErr := s.findByReference(ctx, ref)
			if findErr == nil && existing != nil {
				return existing, false, nil
			}
		}
		s.LogError(ctx, err, "Failed to save ingested donation", slog.String("reference", ref))
		return nil, false, fmt.Errorf("failed to save ingested donation: %w", err)
	}

	s.afterCreate(ctx, entry, actorID, ingestModuleTag, nil)

	s.LogInfo(ctx, "External donation ingested",
		slog.String("entry_id", entry.EntryID),
		slog.String("reference", ref))
	return entry, true, nil
}

func (s *ledgerService) findByReference(ctx context.Context, ref string) (*domain.LedgerEntry, error) {
	existing, err := s.entryRepo.FindEntryByExternalReference(ctx, ref)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to look up external reference", slog.String("reference", ref))
		return nil, fmt.Errorf("failed to look up external reference: %w", err)
	}
	return existing, nil
}

// buildEntry validates req and stamps the exchange rate in effect now.
func (s *ledgerService) buildEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, actorID string) (*domain.LedgerEntry, error) {
	if err := validateEntryRequest(req); err != nil {
		return nil, err
	}

	rate := decimal.NewFromInt(1)
	if s.currencyRepo != nil {
		currency, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewValidationError("currencyCode", "Unknown currency")
			}
			s.LogError(ctx, err, "Failed to load currency", slog.String("currency_code", req.CurrencyCode))
			return nil, fmt.Errorf("failed to load currency: %w", err)
		}
		rate = domain.EffectiveRate(currency.RateToBase)
	}

	now := s.Now()
	entry := &domain.LedgerEntry{
		EntryID:              uuid.NewString(),
		Type:                 req.Type,
		Amount:               req.Amount,
		AmountInBaseCurrency: domain.ToBase(req.Amount, rate),
		ExchangeRate:         rate,
		CurrencyCode:         req.CurrencyCode,
		Date:                 req.Date,
		Description:          strings.TrimSpace(req.Description),
		CauseID:              trimmedOrNil(req.CauseID),
		ItemName:             trimmedOrNil(req.ItemName),
		Quantity:             req.Quantity,
		DonorID:              trimmedOrNil(req.DonorID),
		DonorName:            trimmedOrNil(req.DonorName),
		BankAccountID:        trimmedOrNil(req.BankAccountID),
		FromVolunteerID:      trimmedOrNil(req.FromVolunteerID),
		ToVolunteerID:        trimmedOrNil(req.ToVolunteerID),
		CustodianID:          trimmedOrNil(req.CustodianID),
		ExternalReference:    req.ExternalReference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	return entry, nil
}

func (s *ledgerService) afterCreate(ctx context.Context, entry *domain.LedgerEntry, actorID, module string, contextID *string) {
	snapshot := *entry
	tasks := []func(context.Context){
		func(ctx context.Context) {
			if s.audit == nil {
				return
			}
			s.audit.Record(ctx, domain.AuditEvent{
				ActorID:   actorID,
				TableName: domain.TableLedgerEntries,
				RecordID:  snapshot.EntryID,
				Action:    domain.AuditCreate,
				NewData:   snapshot,
				Metadata:  map[string]any{"module": module},
			})
		},
	}
	if snapshot.IsInventoryBacked() && s.inventory != nil {
		tasks = append(tasks, func(ctx context.Context) {
			s.inventory.RecordMovement(ctx, domain.InventoryHistoryEntry{
				ItemName:      *snapshot.ItemName,
				ChangeType:    domain.ChangeReceived,
				Source:        snapshot.InventorySource(),
				Delta:         snapshot.QuantityValue(),
				LedgerEntryID: &snapshot.EntryID,
				Notes:         snapshot.Description,
				CreatedBy:     actorID,
			})
		})
	}
	s.effects.Run(ctx, tasks...)
	s.InvalidateViews(ctx, domain.LedgerMutationViews(contextID)...)
}

// validateEntryRequest checks the party fields each entry type requires.
func validateEntryRequest(req dto.CreateLedgerEntryRequest) error {
	fields := map[string]string{}
	require := func(field string, v *string, msg string) {
		if v == nil || strings.TrimSpace(*v) == "" {
			fields[field] = msg
		}
	}

	if !req.Type.IsValid() {
		fields["type"] = "Unknown entry type"
		return apperrors.NewFieldsValidationError(fields)
	}

	if req.Amount.IsNegative() {
		fields["amount"] = "Amount cannot be negative"
	} else if req.Amount.IsZero() && req.Type != domain.DonationInKind {
		fields["amount"] = "Amount must be greater than zero"
	}
	if req.Quantity != nil && !req.Quantity.IsPositive() {
		fields["quantity"] = "Quantity must be greater than zero"
	}
	if req.Date.IsZero() {
		fields["date"] = "Date is required"
	}

	switch req.Type {
	case domain.DonationBank:
		require("bankAccountId", req.BankAccountID, "Bank account is required for bank donations")
	case domain.DonationCash:
		require("custodianId", req.CustodianID, "Custodian is required for cash donations")
	case domain.DonationInKind:
		require("itemName", req.ItemName, "Item name is required for in-kind donations")
		if req.Quantity == nil {
			fields["quantity"] = "Quantity is required for in-kind donations"
		}
	case domain.CashTransfer:
		require("fromVolunteerId", req.FromVolunteerID, "Sending volunteer is required")
		require("toVolunteerId", req.ToVolunteerID, "Receiving volunteer is required")
		if req.FromVolunteerID != nil && req.ToVolunteerID != nil &&
			strings.TrimSpace(*req.FromVolunteerID) == strings.TrimSpace(*req.ToVolunteerID) {
			fields["toVolunteerId"] = "Cannot transfer cash to the same volunteer"
		}
	case domain.CashDeposit:
		require("fromVolunteerId", req.FromVolunteerID, "Depositing volunteer is required")
		require("bankAccountId", req.BankAccountID, "Bank account is required for deposits")
	case domain.BankWithdrawal:
		require("bankAccountId", req.BankAccountID, "Bank account is required for withdrawals")
		require("toVolunteerId", req.ToVolunteerID, "Receiving volunteer is required")
	case domain.ExpenseBank:
		require("bankAccountId", req.BankAccountID, "Bank account is required for bank expenses")
	case domain.ExpenseCash:
		require("custodianId", req.CustodianID, "Custodian is required for cash expenses")
	}

	if req.Type.IsExpense() && req.ItemName != nil && strings.TrimSpace(*req.ItemName) != "" && req.Quantity == nil {
		fields["quantity"] = "Quantity is required when an item is named"
	}

	if len(fields) > 0 {
		return apperrors.NewFieldsValidationError(fields)
	}
	return nil
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
