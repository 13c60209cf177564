package repositories

import (
	"context"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InventoryHistoryRepository appends and reads the inventory movement log.
type InventoryHistoryRepository interface {
	SaveInventoryHistory(ctx context.Context, entry domain.InventoryHistoryEntry) error

	// ListInventoryHistory returns, in insertion order, the full history of every item key
	// the filter touches, so running quantities can be replayed. Callers narrow the
	// result to the matching rows. Returns apperrors.ErrNotProvisioned when the log
	// table does not exist.
	ListInventoryHistory(ctx context.Context, filter domain.InventoryHistoryFilter) ([]domain.InventoryHistoryEntry, error)

	// BaseQuantities returns the opening stock per item key. Missing keys are absent from the map.
	BaseQuantities(ctx context.Context, itemKeys []string) (map[string]decimal.Decimal, error)
}

// InventoryConsumptionReader reads the consumption and transfer log owned by the
// drive and distribution workflows.
type InventoryConsumptionReader interface {
	HasConsumption(ctx context.Context, ledgerEntryID string) (bool, error)
}
