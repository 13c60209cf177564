package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InventoryChangeType describes why an inventory line moved.
type InventoryChangeType string

const (
	ChangeReceived     InventoryChangeType = "received"
	ChangeUsed         InventoryChangeType = "used"
	ChangeAdjusted     InventoryChangeType = "adjusted"
	ChangeVoidReversal InventoryChangeType = "void_reversal"
	ChangeRestored     InventoryChangeType = "restored"
	ChangeTransfer     InventoryChangeType = "transfer"
)

// InventorySource describes where an inventory movement originated.
type InventorySource string

const (
	SourceDonation         InventorySource = "donation"
	SourceExpense          InventorySource = "expense"
	SourceDriveConsumption InventorySource = "drive_consumption"
	SourceManual           InventorySource = "manual"
)

// NormalizeItemKey folds an item name to the key its inventory line is tracked under.
// "Rice Bags", "rice  bags" and " RICE BAGS " all map to "rice bags".
func NormalizeItemKey(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// InventoryHistoryEntry is an immutable quantity movement for one inventory line.
type InventoryHistoryEntry struct {
	HistoryID     string              `json:"historyID"`
	ItemKey       string              `json:"itemKey"`
	ItemName      string              `json:"itemName"` // display name as entered
	ChangeType    InventoryChangeType `json:"changeType"`
	Source        InventorySource     `json:"source"`
	Delta         decimal.Decimal     `json:"delta"`
	LedgerEntryID *string             `json:"ledgerEntryID,omitempty"`
	Notes         string              `json:"notes"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
}

// InventoryHistoryFilter selects history rows. At least one field must be set
// for a query to return anything.
type InventoryHistoryFilter struct {
	LedgerEntryID *string
	ItemName      *string
}

// IsEmpty reports whether no filter criteria were supplied.
func (f InventoryHistoryFilter) IsEmpty() bool {
	empty := func(s *string) bool { return s == nil || strings.TrimSpace(*s) == "" }
	return empty(f.LedgerEntryID) && empty(f.ItemName)
}

// InventoryHistoryItem is a history row together with the on-hand quantity right after it.
type InventoryHistoryItem struct {
	InventoryHistoryEntry
	QuantityAfter decimal.Decimal `json:"quantityAfter"`
}

// InventoryConsumption links a ledger entry to stock a drive consumed or a custodian transferred.
// Rows are written by the drive and distribution workflows; the ledger only reads them.
type InventoryConsumption struct {
	ConsumptionID string          `json:"consumptionID"`
	LedgerEntryID string          `json:"ledgerEntryID"`
	CauseID       *string         `json:"causeID,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	Kind          string          `json:"kind"` // consume or transfer
	CreatedAt     time.Time       `json:"createdAt"`
}

// WithQuantityAfter replays deltas in order on top of base and annotates each row
// with the running on-hand quantity for its item key.
func WithQuantityAfter(rows []InventoryHistoryEntry, base map[string]decimal.Decimal) []InventoryHistoryItem {
	running := make(map[string]decimal.Decimal, len(base))
	for k, v := range base {
		running[k] = v
	}
	out := make([]InventoryHistoryItem, len(rows))
	for i, row := range rows {
		running[row.ItemKey] = running[row.ItemKey].Add(row.Delta)
		out[i] = InventoryHistoryItem{InventoryHistoryEntry: row, QuantityAfter: running[row.ItemKey]}
	}
	return out
}
