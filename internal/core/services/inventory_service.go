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

type inventoryService struct {
	BaseService
	inventoryRepo portsrepo.InventoryHistoryRepository
	audit         portssvc.AuditRecorderSvc
}

// InventoryServiceOption configures the inventory service.
type InventoryServiceOption func(*inventoryService)

// WithInventoryAuditRecorder records manual adjustments in the audit trail.
func WithInventoryAuditRecorder(audit portssvc.AuditRecorderSvc) InventoryServiceOption {
	return func(s *inventoryService) {
		s.audit = audit
	}
}

// WithInventoryViewCache drops the inventory views after adjustments.
func WithInventoryViewCache(cache portssvc.ViewCache) InventoryServiceOption {
	return func(s *inventoryService) {
		s.cache = cache
	}
}

// WithInventoryClock overrides the clock used to stamp rows.
func WithInventoryClock(now func() time.Time) InventoryServiceOption {
	return func(s *inventoryService) {
		s.now = now
	}
}

// NewInventoryService creates the inventory history recorder and query service.
func NewInventoryService(repo portsrepo.InventoryHistoryRepository, options ...InventoryServiceOption) portssvc.InventorySvcFacade {
	svc := &inventoryService{inventoryRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.InventorySvcFacade = (*inventoryService)(nil)

// RecordMovement appends a movement keyed by the normalized item name. Failures are logged only.
func (s *inventoryService) RecordMovement(ctx context.Context, entry domain.InventoryHistoryEntry) {
	if err := s.save(ctx, &entry); err != nil {
		attrs := []any{
			slog.String("item_key", entry.ItemKey),
			slog.String("change_type", string(entry.ChangeType)),
		}
		if entry.LedgerEntryID != nil {
			attrs = append(attrs, slog.String("entry_id", *entry.LedgerEntryID))
		}
		s.LogError(ctx, err, "Failed to write inventory history", attrs...)
	}
}

func (s *inventoryService) save(ctx context.Context, entry *domain.InventoryHistoryEntry) error {
	if entry.HistoryID == "" {
		entry.HistoryID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.Now()
	}
	entry.ItemName = strings.TrimSpace(entry.ItemName)
	entry.ItemKey = domain.NormalizeItemKey(entry.ItemName)
	return s.inventoryRepo.SaveInventoryHistory(ctx, *entry)
}

// GetHistory returns matching rows with the on-hand quantity after each one.
// No filter, or a log that has not been provisioned, yields an empty result.
func (s *inventoryService) GetHistory(ctx context.Context, filter domain.InventoryHistoryFilter) ([]domain.InventoryHistoryItem, error) {
	filter = normalizeHistoryFilter(filter)
	if filter.IsEmpty() {
		return []domain.InventoryHistoryItem{}, nil
	}

	rows, err := s.inventoryRepo.ListInventoryHistory(ctx, filter)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotProvisioned) {
			s.LogWarn(ctx, "Inventory history store not provisioned; returning empty history")
			return []domain.InventoryHistoryItem{}, nil
		}
		s.LogError(ctx, err, "Failed to list inventory history")
		return nil, fmt.Errorf("failed to list inventory history: %w", err)
	}
	if len(rows) == 0 {
		return []domain.InventoryHistoryItem{}, nil
	}

	keys := make([]string, 0)
	seen := make(map[string]struct{})
	for _, r := range rows {
		if _, ok := seen[r.ItemKey]; !ok {
			seen[r.ItemKey] = struct{}{}
			keys = append(keys, r.ItemKey)
		}
	}
	base, err := s.inventoryRepo.BaseQuantities(ctx, keys)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotProvisioned) {
			s.LogError(ctx, err, "Failed to load base quantities")
			return nil, fmt.Errorf("failed to load base inventory quantities: %w", err)
		}
		base = map[string]decimal.Decimal{}
	}

	replayed := domain.WithQuantityAfter(rows, base)
	out := make([]domain.InventoryHistoryItem, 0, len(replayed))
	for _, item := range replayed {
		if matchesHistoryFilter(item.InventoryHistoryEntry, filter) {
			out = append(out, item)
		}
	}
	return out, nil
}

// normalizeHistoryFilter drops blank criteria and folds the item name to its key, so a
// query string like ?ledgerEntryId=&itemName=rice filters by item alone.
func normalizeHistoryFilter(filter domain.InventoryHistoryFilter) domain.InventoryHistoryFilter {
	filter.LedgerEntryID = trimmedOrNil(filter.LedgerEntryID)
	if name := trimmedOrNil(filter.ItemName); name != nil {
		key := domain.NormalizeItemKey(*name)
		filter.ItemName = &key
	} else {
		filter.ItemName = nil
	}
	return filter
}

// matchesHistoryFilter requires every criterion that is set, as the store query does.
func matchesHistoryFilter(row domain.InventoryHistoryEntry, filter domain.InventoryHistoryFilter) bool {
	if filter.LedgerEntryID != nil {
		if row.LedgerEntryID == nil || *row.LedgerEntryID != *filter.LedgerEntryID {
			return false
		}
	}
	if filter.ItemName != nil && row.ItemKey != *filter.ItemName {
		return false
	}
	return true
}

// AdjustInventory records a manual stock correction. Unlike trail writes made on behalf of
// a ledger mutation, the adjustment row is the primary record here and its failure is returned.
func (s *inventoryService) AdjustInventory(ctx context.Context, req dto.AdjustInventoryRequest, actorID string) (*domain.InventoryHistoryEntry, error) {
	if actorID == "" {
		return nil, apperrors.ErrUnauthenticated
	}
	fields := map[string]string{}
	if strings.TrimSpace(req.ItemName) == "" {
		fields["itemName"] = "Item name is required"
	}
	if strings.TrimSpace(req.Reason) == "" {
		fields["reason"] = "A reason is required for manual adjustments"
	}
	if req.Delta.IsZero() {
		fields["delta"] = "Adjustment must change the quantity"
	}
	if len(fields) > 0 {
		return nil, apperrors.NewFieldsValidationError(fields)
	}

	entry := domain.InventoryHistoryEntry{
		ItemName:   req.ItemName,
		ChangeType: domain.ChangeAdjusted,
		Source:     domain.SourceManual,
		Delta:      req.Delta,
		Notes:      strings.TrimSpace(req.Reason),
		CreatedBy:  actorID,
	}
	if err := s.save(ctx, &entry); err != nil {
		s.LogError(ctx, err, "Failed to save inventory adjustment", slog.String("item_key", entry.ItemKey))
		return nil, fmt.Errorf("failed to save inventory adjustment: %w", err)
	}

	if s.audit != nil {
		reason := entry.Notes
		s.audit.Record(ctx, domain.AuditEvent{
			ActorID:   actorID,
			TableName: domain.TableInventoryHistory,
			RecordID:  entry.HistoryID,
			Action:    domain.AuditAdjust,
			Reason:    &reason,
			NewData:   entry,
			Metadata:  map[string]any{"module": "inventory"},
		})
	}
	s.InvalidateViews(ctx, domain.ViewInventory, domain.ViewDashboard)

	s.LogInfo(ctx, "Inventory adjusted",
		slog.String("item_key", entry.ItemKey),
		slog.String("delta", entry.Delta.String()))
	return &entry, nil
}
