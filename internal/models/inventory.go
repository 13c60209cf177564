package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryHistory mirrors a row of inventory_history.
type InventoryHistory struct {
	HistoryID     string          `db:"history_id"`
	HistorySeq    int64           `db:"history_seq"`
	ItemKey       string          `db:"item_key"`
	ItemName      string          `db:"item_name"`
	ChangeType    string          `db:"change_type"`
	Source        string          `db:"source"`
	Delta         decimal.Decimal `db:"delta"`
	LedgerEntryID *string         `db:"ledger_entry_id"`
	Notes         string          `db:"notes"`
	CreatedAt     time.Time       `db:"created_at"`
	CreatedBy     string          `db:"created_by"`
}
