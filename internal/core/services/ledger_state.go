package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/relief_ledger_app/internal/apperrors"
	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/SscSPs/relief_ledger_app/internal/dto"
)

const defaultRestoreNote = "Ledger entry restored"

// VoidEntry soft-deletes an active entry. Inventory-backed entries whose stock has been
// consumed or transferred cannot be voided. The state change is authoritative; the audit
// and inventory trail writes that follow are best effort.
func (s *ledgerService) VoidEntry(ctx context.Context, entryID string, req dto.VoidEntryRequest, actorID string) (*domain.LedgerEntry, error) {
	if actorID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, apperrors.NewValidationError("reason", "A reason is required to void an entry")
	}

	entry, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if !entry.IsActive() {
		s.LogWarn(ctx, "Attempted to void an entry that is already voided", slog.String("entry_id", entryID))
		return nil, apperrors.ErrAlreadyVoided
	}

	inventoryBacked := entry.IsInventoryBacked()
	if inventoryBacked {
		if err := s.ensureUnconsumed(ctx, entryID); err != nil {
			return nil, err
		}
	}

	previous := *entry
	entry.MarkVoided(s.Now(), actorID, reason)

	// The store re-checks the state (and consumption) at write time so two concurrent
	// voids, or a consumption recorded since the check above, cannot both win.
	applied, err := s.entryRepo.MarkEntryVoided(ctx, *entry, inventoryBacked)
	if err != nil {
		s.LogError(ctx, err, "Failed to void ledger entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to void ledger entry: %w", err)
	}
	if !applied {
		return nil, s.voidConflict(ctx, entryID, inventoryBacked)
	}

	voided := *entry
	tasks := []func(context.Context){
		func(ctx context.Context) {
			s.recordAudit(ctx, domain.AuditEvent{
				ActorID:      actorID,
				TableName:    domain.TableLedgerEntries,
				RecordID:     entryID,
				Action:       domain.AuditVoid,
				Reason:       &reason,
				PreviousData: previous,
				NewData:      voided,
				Metadata:     map[string]any{"module": moduleFor(previous)},
			})
		},
	}
	if inventoryBacked && s.inventory != nil {
		tasks = append(tasks, func(ctx context.Context) {
			s.inventory.RecordMovement(ctx, domain.InventoryHistoryEntry{
				ItemName:      *previous.ItemName,
				ChangeType:    domain.ChangeVoidReversal,
				Source:        previous.InventorySource(),
				Delta:         previous.QuantityValue().Neg(),
				LedgerEntryID: &previous.EntryID,
				Notes:         reason,
				CreatedBy:     actorID,
			})
		})
	}
	s.effects.Run(ctx, tasks...)
	s.InvalidateViews(ctx, domain.LedgerMutationViews(req.ContextID)...)

	s.LogInfo(ctx, "Ledger entry voided",
		slog.String("entry_id", entryID),
		slog.Bool("inventory_backed", inventoryBacked))
	return entry, nil
}

// RestoreEntry reinstates a voided entry and re-applies its inventory contribution.
func (s *ledgerService) RestoreEntry(ctx context.Context, entryID string, req dto.RestoreEntryRequest, actorID string) (*domain.LedgerEntry, error) {
	if actorID == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	entry, err := s.GetEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.IsActive() {
		s.LogWarn(ctx, "Attempted to restore an entry that is already active", slog.String("entry_id", entryID))
		return nil, apperrors.ErrAlreadyActive
	}

	var reason *string
	note := defaultRestoreNote
	if req.Reason != nil && strings.TrimSpace(*req.Reason) != "" {
		trimmed := strings.TrimSpace(*req.Reason)
		reason = &trimmed
		note = trimmed
	}

	previous := *entry
	entry.MarkRestored(s.Now(), actorID)

	applied, err := s.entryRepo.MarkEntryRestored(ctx, *entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to restore ledger entry", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to restore ledger entry: %w", err)
	}
	if !applied {
		s.LogWarn(ctx, "Entry was restored concurrently", slog.String("entry_id", entryID))
		return nil, apperrors.ErrAlreadyActive
	}

	restored := *entry
	inventoryBacked := restored.IsInventoryBacked()
	tasks := []func(context.Context){
		func(ctx context.Context) {
			s.recordAudit(ctx, domain.AuditEvent{
				ActorID:      actorID,
				TableName:    domain.TableLedgerEntries,
				RecordID:     entryID,
				Action:       domain.AuditRestore,
				Reason:       reason,
				PreviousData: previous,
				NewData:      restored,
				Metadata:     map[string]any{"module": moduleFor(previous)},
			})
		},
	}
	if inventoryBacked && s.inventory != nil {
		tasks = append(tasks, func(ctx context.Context) {
			s.inventory.RecordMovement(ctx, domain.InventoryHistoryEntry{
				ItemName:      *restored.ItemName,
				ChangeType:    domain.ChangeRestored,
				Source:        restored.InventorySource(),
				Delta:         restored.QuantityValue(),
				LedgerEntryID: &restored.EntryID,
				Notes:         note,
				CreatedBy:     actorID,
			})
		})
	}
	s.effects.Run(ctx, tasks...)
	s.InvalidateViews(ctx, domain.LedgerMutationViews(req.ContextID)...)

	s.LogInfo(ctx, "Ledger entry restored",
		slog.String("entry_id", entryID),
		slog.Bool("inventory_backed", inventoryBacked))
	return entry, nil
}

// ensureUnconsumed blocks the void when stock has moved or the check itself fails.
func (s *ledgerService) ensureUnconsumed(ctx context.Context, entryID string) error {
	if s.guard == nil {
		return fmt.Errorf("%w: no consumption guard configured", apperrors.ErrGuardUnavailable)
	}
	consumed, err := s.guard.HasConsumption(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrGuardUnavailable) {
			return err
		}
		return fmt.Errorf("%w: %v", apperrors.ErrGuardUnavailable, err)
	}
	if consumed {
		s.LogWarn(ctx, "Void blocked: inventory already consumed", slog.String("entry_id", entryID))
		return apperrors.ErrInventoryAlreadyConsumed
	}
	return nil
}

// voidConflict explains why the conditional void matched no row.
func (s *ledgerService) voidConflict(ctx context.Context, entryID string, inventoryBacked bool) error {
	current, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.ErrNotFound
		}
		s.LogError(ctx, err, "Failed to re-read ledger entry after void conflict", slog.String("entry_id", entryID))
		return fmt.Errorf("failed to re-read ledger entry: %w", err)
	}
	if !current.IsActive() {
		s.LogWarn(ctx, "Entry was voided concurrently", slog.String("entry_id", entryID))
		return apperrors.ErrAlreadyVoided
	}
	if inventoryBacked {
		if guardErr := s.ensureUnconsumed(ctx, entryID); guardErr != nil {
			return guardErr
		}
	}
	return apperrors.ErrAlreadyVoided
}

func (s *ledgerService) recordAudit(ctx context.Context, event domain.AuditEvent) {
	if s.audit == nil {
		return
	}
	s.audit.Record(ctx, event)
}

// moduleFor names the screen an entry belongs to, for audit metadata.
func moduleFor(e domain.LedgerEntry) string {
	switch {
	case e.Type.IsExpense():
		return "expenses"
	case e.Type == domain.DonationBank, e.Type == domain.DonationCash, e.Type == domain.DonationInKind:
		return "donations"
	case e.Type == domain.BankWithdrawal, e.Type == domain.CashDeposit:
		return "bank_accounts"
	default:
		return "cash_ledger"
	}
}
