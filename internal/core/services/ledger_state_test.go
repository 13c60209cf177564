package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/apperrors"
	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger_app/internal/core/services"
	"github.com/SscSPs/relief_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type LedgerStateTestSuite struct {
	suite.Suite
	entryRepo       *MockLedgerEntryRepository
	consumptionRepo *MockConsumptionRepository
	audit           *MockAuditRecorder
	inventory       *MockInventoryRecorder
	cache           *MockViewCache
	service         portssvc.LedgerSvcFacade
}

func (s *LedgerStateTestSuite) SetupTest() {
	s.entryRepo = new(MockLedgerEntryRepository)
	s.consumptionRepo = new(MockConsumptionRepository)
	s.audit = new(MockAuditRecorder)
	s.inventory = new(MockInventoryRecorder)
	s.cache = new(MockViewCache)
	s.cache.On("Invalidate", mock.Anything, mock.Anything).Return(nil).Maybe()

	s.service = services.NewLedgerService(
		s.entryRepo,
		services.WithConsumptionGuard(services.NewConsumptionGuard(s.consumptionRepo)),
		services.WithAuditRecorder(s.audit),
		services.WithInventoryRecorder(s.inventory),
		services.WithViewCache(s.cache),
		services.WithLedgerClock(fixedClock),
		services.WithSideEffectTimeout(2*time.Second),
	)
}

func cashDonation(id string) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		EntryID:              id,
		Type:                 domain.DonationCash,
		Amount:               decimal.NewFromInt(500),
		AmountInBaseCurrency: decimal.NewFromInt(500),
		ExchangeRate:         decimal.NewFromInt(1),
		CurrencyCode:         "USD",
		CustodianID:          strPtr("vol-1"),
	}
}

func riceExpense(id string) *domain.LedgerEntry {
	return &domain.LedgerEntry{
		EntryID:              id,
		Type:                 domain.ExpenseCash,
		Amount:               decimal.NewFromInt(120),
		AmountInBaseCurrency: decimal.NewFromInt(120),
		ExchangeRate:         decimal.NewFromInt(1),
		CurrencyCode:         "USD",
		ItemName:             strPtr("Rice Bags"),
		Quantity:             decPtr("10"),
		CustodianID:          strPtr("vol-1"),
	}
}

func voided(e *domain.LedgerEntry) *domain.LedgerEntry {
	e.MarkVoided(fixedNow.Add(-time.Hour), "user-0", "earlier void")
	return e
}

func (s *LedgerStateTestSuite) TestVoidEntry_NonInventoryEntry() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "e-1").Return(cashDonation("e-1"), nil).Once()
	s.entryRepo.On("MarkEntryVoided", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.EntryID == "e-1" && !e.IsActive() && *e.VoidReason == "entered twice" && *e.VoidedBy == "user-1"
	}), false).Return(true, nil).Once()
	s.audit.On("Record", mock.Anything, mock.MatchedBy(func(ev domain.AuditEvent) bool {
		prev := ev.PreviousData.(domain.LedgerEntry)
		next := ev.NewData.(domain.LedgerEntry)
		return ev.Action == domain.AuditVoid &&
			ev.RecordID == "e-1" &&
			*ev.Reason == "entered twice" &&
			prev.IsActive() && !next.IsActive() &&
			ev.Metadata["module"] == "donations"
	})).Once()

	entry, err := s.service.VoidEntry(ctx, "e-1", dto.VoidEntryRequest{Reason: "  entered twice "}, "user-1")

	s.Require().NoError(err)
	s.Equal(domain.StateVoided, entry.State())
	s.Equal(fixedNow, *entry.DeletedAt)
	s.entryRepo.AssertExpectations(s.T())
	s.audit.AssertExpectations(s.T())
	s.consumptionRepo.AssertNotCalled(s.T(), "HasConsumption", mock.Anything, mock.Anything)
	s.inventory.AssertNotCalled(s.T(), "RecordMovement", mock.Anything, mock.Anything)
	s.cache.AssertCalled(s.T(), "Invalidate", mock.Anything, domain.LedgerMutationViews(nil))
}

func (s *LedgerStateTestSuite) TestVoidEntry_InventoryUnconsumedReversesStock() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "e-2").Return(riceExpense("e-2"), nil).Once()
	s.consumptionRepo.On("HasConsumption", ctx, "e-2").Return(false, nil).Once()
	s.entryRepo.On("MarkEntryVoided", ctx, mock.Anything, true).Return(true, nil).Once()
	s.audit.On("Record", mock.Anything, mock.Anything).Once()
	s.inventory.On("RecordMovement", mock.Anything, mock.MatchedBy(func(h domain.InventoryHistoryEntry) bool {
		return h.ChangeType == domain.ChangeVoidReversal &&
			h.Source == domain.SourceExpense &&
			h.Delta.Equal(decimal.NewFromInt(-10)) &&
			*h.LedgerEntryID == "e-2" &&
			h.ItemName == "Rice Bags"
	})).Once()

	_, err := s.service.VoidEntry(ctx, "e-2", dto.VoidEntryRequest{Reason: "wrong supplier"}, "user-1")

	s.Require().NoError(err)
	s.inventory.AssertNumberOfCalls(s.T(), "RecordMovement", 1)
	s.inventory.AssertExpectations(s.T())
	s.entryRepo.AssertExpectations(s.T())
}

func (s *LedgerStateTestSuite) TestVoidEntry_ConsumedInventoryBlocked() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "e-3").Return(riceExpense("e-3"), nil).Once()
	s.consumptionRepo.On("HasConsumption", ctx, "e-3").Return(true, nil).Once()

	entry, err := s.service.VoidEntry(ctx, "e-3", dto.VoidEntryRequest{Reason: "mistake"}, "user-1")

	s.Nil(entry)
	s.ErrorIs(err, apperrors.ErrInventoryAlreadyConsumed)
	s.entryRepo.AssertNotCalled(s.T(), "MarkEntryVoided", mock.Anything, mock.Anything, mock.Anything)
	s.audit.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
	s.inventory.AssertNotCalled(s.T(), "RecordMovement", mock.Anything, mock.Anything)
}

func (s *LedgerStateTestSuite) TestVoidEntry_GuardFailureBlocks() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "e-4").Return(riceExpense("e-4"), nil).Once()
	s.consumptionRepo.On("HasConsumption", ctx, "e-4").Return(false, errors.New("connection refused")).Once()

	_, err := s.service.VoidEntry(ctx, "e-4", dto.VoidEntryRequest{Reason: "mistake"}, "user-1")

	s.ErrorIs(err, apperrors.ErrGuardUnavailable)
	s.entryRepo.AssertNotCalled(s.T(), "MarkEntryVoided", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerStateTestSuite) TestVoidEntry_AlreadyVoided() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "e-5").Return(voided(cashDonation("e-5")), nil).Once()

	_, err := s.service.VoidEntry(ctx, "e-5", dto.VoidEntryRequest{Reason: "again"}, "user-1")

	s.ErrorIs(err, apperrors.ErrAlreadyVoided)
	s.entryRepo.AssertNotCalled(s.T(), "MarkEntryVoided", mock.Anything, mock.Anything, mock.Anything)
}

func (s *LedgerStateTestSuite) TestVoidEntry_NotFound() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.VoidEntry(ctx, "missing", dto.VoidEntryRequest{Reason: "x"}, "user-1")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerStateTestSuite) TestVoidEntry_RequiresActorAndReason() {
	ctx := context.Background()

	_, err := s.service.VoidEntry(ctx, "e-6", dto.VoidEntryRequest{Reason: "reason"}, "")
	s.ErrorIs(err, apperrors.ErrUnauthenticated)

	_, err = s.service.VoidEntry(ctx, "e-6", dto.VoidEntryRequest{Reason: "   "}, "user-1")
	s.ErrorIs(err, apperrors.ErrValidation)
	fields, ok := apperrors.FieldErrors(err)
	s.True(ok)
	s.Contains(fields, "reason")

	s.entryRepo.AssertNotCalled(s.T(), "FindEntryByID", mock.Anything, mock.Anything)
}

func (s *LedgerStateTestSuite) TestVoidEntry_ConcurrentVoidLoses() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "e-7").Return(cashDonation("e-7"), nil).Once()
	s.entryRepo.On("MarkEntryVoided", ctx, mock.Anything, false).Return(false, nil).Once()
	s.entryRepo.On("FindEntryByID", ctx, "e-7").Return(voided(cashDonation("e-7")), nil).Once()

	_, err := s.service.VoidEntry(ctx, "e-7", dto.VoidEntryRequest{Reason: "dup"}, "user-1")

	s.ErrorIs(err, apperrors.ErrAlreadyVoided)
	s.audit.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
}

func (s *LedgerStateTestSuite) TestVoidEntry_ConflictRereadFailureIsNotAStateConflict() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "e-7b").Return(cashDonation("e-7b"), nil).Once()
	s.entryRepo.On("MarkEntryVoided", ctx, mock.Anything, false).Return(false, nil).Once()
	s.entryRepo.On("FindEntryByID", ctx, "e-7b").Return(nil, errors.New("connection reset")).Once()

	entry, err := s.service.VoidEntry(ctx, "e-7b", dto.VoidEntryRequest{Reason: "dup"}, "user-1")

	s.Nil(entry)
	s.Require().Error(err)
	s.NotErrorIs(err, apperrors.ErrAlreadyVoided)
	s.ErrorContains(err, "connection reset")
	s.audit.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
}

func (s *LedgerStateTestSuite) TestVoidEntry_ConsumptionRecordedDuringVoid() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "e-8").Return(riceExpense("e-8"), nil).Once()
	s.consumptionRepo.On("HasConsumption", ctx, "e-8").Return(false, nil).Once()
	s.entryRepo.On("MarkEntryVoided", ctx, mock.Anything, true).Return(false, nil).Once()
	s.entryRepo.On("FindEntryByID", ctx, "e-8").Return(riceExpense("e-8"), nil).Once()
	s.consumptionRepo.On("HasConsumption", ctx, "e-8").Return(true, nil).Once()

	_, err := s.service.VoidEntry(ctx, "e-8", dto.VoidEntryRequest{Reason: "dup"}, "user-1")

	s.ErrorIs(err, apperrors.ErrInventoryAlreadyConsumed)
	s.inventory.AssertNotCalled(s.T(), "RecordMovement", mock.Anything, mock.Anything)
}

func (s *LedgerStateTestSuite) TestVoidEntry_ContextViewInvalidated() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "e-9").Return(cashDonation("e-9"), nil).Once()
	s.entryRepo.On("MarkEntryVoided", ctx, mock.Anything, false).Return(true, nil).Once()
	s.audit.On("Record", mock.Anything, mock.Anything).Once()

	_, err := s.service.VoidEntry(ctx, "e-9", dto.VoidEntryRequest{Reason: "dup", ContextID: strPtr("vol-7")}, "user-1")

	s.Require().NoError(err)
	s.cache.AssertCalled(s.T(), "Invalidate", mock.Anything, mock.MatchedBy(func(views []string) bool {
		for _, v := range views {
			if v == domain.CashLedgerView("vol-7") {
				return true
			}
		}
		return false
	}))
}

func (s *LedgerStateTestSuite) TestVoidEntry_AuditFailureDoesNotFailVoid() {
	ctx := context.Background()
	auditRepo := new(MockAuditRepository)
	auditRepo.On("SaveAuditEvent", mock.Anything, mock.Anything).Return(errors.New("audit table locked")).Once()
	svc := services.NewLedgerService(
		s.entryRepo,
		services.WithAuditRecorder(services.NewAuditService(auditRepo)),
		services.WithLedgerClock(fixedClock),
	)
	s.entryRepo.On("FindEntryByID", ctx, "e-10").Return(cashDonation("e-10"), nil).Once()
	s.entryRepo.On("MarkEntryVoided", ctx, mock.Anything, false).Return(true, nil).Once()

	entry, err := svc.VoidEntry(ctx, "e-10", dto.VoidEntryRequest{Reason: "dup"}, "user-1")

	s.Require().NoError(err)
	s.False(entry.IsActive())
	auditRepo.AssertExpectations(s.T())
}

func (s *LedgerStateTestSuite) TestRestoreEntry_ReappliesInventory() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "e-11").Return(voided(riceExpense("e-11")), nil).Once()
	s.entryRepo.On("MarkEntryRestored", ctx, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.IsActive() && e.VoidReason == nil && *e.RestoredBy == "user-2"
	})).Return(true, nil).Once()
	s.audit.On("Record", mock.Anything, mock.MatchedBy(func(ev domain.AuditEvent) bool {
		return ev.Action == domain.AuditRestore && ev.Reason == nil && ev.Metadata["module"] == "expenses"
	})).Once()
	s.inventory.On("RecordMovement", mock.Anything, mock.MatchedBy(func(h domain.InventoryHistoryEntry) bool {
		return h.ChangeType == domain.ChangeRestored &&
			h.Delta.Equal(decimal.NewFromInt(10)) &&
			h.Notes == "Ledger entry restored"
	})).Once()

	entry, err := s.service.RestoreEntry(ctx, "e-11", dto.RestoreEntryRequest{}, "user-2")

	s.Require().NoError(err)
	s.Equal(domain.StateActive, entry.State())
	s.Nil(entry.VoidedAt)
	s.Equal(fixedNow, *entry.RestoredAt)
	s.audit.AssertExpectations(s.T())
	s.inventory.AssertExpectations(s.T())
}

func (s *LedgerStateTestSuite) TestRestoreEntry_UsesSuppliedNote() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "e-12").Return(voided(riceExpense("e-12")), nil).Once()
	s.entryRepo.On("MarkEntryRestored", ctx, mock.Anything).Return(true, nil).Once()
	s.audit.On("Record", mock.Anything, mock.MatchedBy(func(ev domain.AuditEvent) bool {
		return ev.Reason != nil && *ev.Reason == "void was a mistake"
	})).Once()
	s.inventory.On("RecordMovement", mock.Anything, mock.MatchedBy(func(h domain.InventoryHistoryEntry) bool {
		return h.Notes == "void was a mistake"
	})).Once()

	_, err := s.service.RestoreEntry(ctx, "e-12", dto.RestoreEntryRequest{Reason: strPtr(" void was a mistake ")}, "user-2")

	s.Require().NoError(err)
	s.audit.AssertExpectations(s.T())
	s.inventory.AssertExpectations(s.T())
}

func (s *LedgerStateTestSuite) TestRestoreEntry_AlreadyActive() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "e-13").Return(cashDonation("e-13"), nil).Once()

	_, err := s.service.RestoreEntry(ctx, "e-13", dto.RestoreEntryRequest{}, "user-2")

	s.ErrorIs(err, apperrors.ErrAlreadyActive)
	s.entryRepo.AssertNotCalled(s.T(), "MarkEntryRestored", mock.Anything, mock.Anything)
}

func (s *LedgerStateTestSuite) TestRestoreEntry_ConcurrentRestoreLoses() {
	ctx := context.Background()
	s.entryRepo.On("FindEntryByID", ctx, "e-14").Return(voided(cashDonation("e-14")), nil).Once()
	s.entryRepo.On("MarkEntryRestored", ctx, mock.Anything).Return(false, nil).Once()

	_, err := s.service.RestoreEntry(ctx, "e-14", dto.RestoreEntryRequest{}, "user-2")

	s.ErrorIs(err, apperrors.ErrAlreadyActive)
	s.audit.AssertNotCalled(s.T(), "Record", mock.Anything, mock.Anything)
}

func (s *LedgerStateTestSuite) TestRestoreEntry_RequiresActor() {
	_, err := s.service.RestoreEntry(context.Background(), "e-15", dto.RestoreEntryRequest{}, "")
	s.ErrorIs(err, apperrors.ErrUnauthenticated)
}

func (s *LedgerStateTestSuite) TestVoidThenRestore_InventoryNetsToZero() {
	ctx := context.Background()
	var deltas []decimal.Decimal
	s.inventory.On("RecordMovement", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		deltas = append(deltas, args.Get(1).(domain.InventoryHistoryEntry).Delta)
	}).Twice()
	s.audit.On("Record", mock.Anything, mock.Anything).Twice()

	s.entryRepo.On("FindEntryByID", ctx, "e-16").Return(riceExpense("e-16"), nil).Once()
	s.consumptionRepo.On("HasConsumption", ctx, "e-16").Return(false, nil).Once()
	s.entryRepo.On("MarkEntryVoided", ctx, mock.Anything, true).Return(true, nil).Once()
	_, err := s.service.VoidEntry(ctx, "e-16", dto.VoidEntryRequest{Reason: "dup"}, "user-1")
	s.Require().NoError(err)

	s.entryRepo.On("FindEntryByID", ctx, "e-16").Return(voided(riceExpense("e-16")), nil).Once()
	s.entryRepo.On("MarkEntryRestored", ctx, mock.Anything).Return(true, nil).Once()
	_, err = s.service.RestoreEntry(ctx, "e-16", dto.RestoreEntryRequest{}, "user-1")
	s.Require().NoError(err)

	s.Require().Len(deltas, 2)
	s.True(deltas[0].Add(deltas[1]).IsZero())
}

func TestLedgerStateTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerStateTestSuite))
}
