package dto

import (
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// InventoryHistoryParams are the query filters for the inventory history view.
type InventoryHistoryParams struct {
	LedgerEntryID *string `form:"ledgerEntryId"`
	ItemName      *string `form:"itemName"`
}

// AdjustInventoryRequest records a manual stock correction.
type AdjustInventoryRequest struct {
	ItemName string          `json:"itemName" binding:"required,max=200"`
	Delta    decimal.Decimal `json:"delta"`
	Reason   string          `json:"reason" binding:"required"`
}

// InventoryHistoryResponse is one row of the inventory history view.
type InventoryHistoryResponse struct {
	HistoryID     string                     `json:"historyId"`
	ItemName      string                     `json:"itemName"`
	ChangeType    domain.InventoryChangeType `json:"changeType"`
	Source        domain.InventorySource     `json:"source"`
	Delta         decimal.Decimal            `json:"delta"`
	QuantityAfter decimal.Decimal            `json:"quantityAfter"`
	LedgerEntryID *string                    `json:"ledgerEntryId,omitempty"`
	Notes         string                     `json:"notes,omitempty"`
	CreatedAt     time.Time                  `json:"createdAt"`
}

// ToInventoryHistoryResponse converts a history item to its response DTO.
func ToInventoryHistoryResponse(item domain.InventoryHistoryItem) InventoryHistoryResponse {
	return InventoryHistoryResponse{
		HistoryID:     item.HistoryID,
		ItemName:      item.ItemName,
		ChangeType:    item.ChangeType,
		Source:        item.Source,
		Delta:         item.Delta,
		QuantityAfter: item.QuantityAfter,
		LedgerEntryID: item.LedgerEntryID,
		Notes:         item.Notes,
		CreatedAt:     item.CreatedAt,
	}
}
