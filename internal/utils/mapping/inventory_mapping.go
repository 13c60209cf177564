package mapping

import (
	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/SscSPs/relief_ledger_app/internal/models"
)

// ToModelInventoryHistory converts a domain history row to its model
func ToModelInventoryHistory(d domain.InventoryHistoryEntry) models.InventoryHistory {
	return models.InventoryHistory{
		HistoryID:     d.HistoryID,
		ItemKey:       d.ItemKey,
		ItemName:      d.ItemName,
		ChangeType:    string(d.ChangeType),
		Source:        string(d.Source),
		Delta:         d.Delta,
		LedgerEntryID: d.LedgerEntryID,
		Notes:         d.Notes,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToDomainInventoryHistory converts a model history row to its domain form
func ToDomainInventoryHistory(m models.InventoryHistory) domain.InventoryHistoryEntry {
	return domain.InventoryHistoryEntry{
		HistoryID:     m.HistoryID,
		ItemKey:       m.ItemKey,
		ItemName:      m.ItemName,
		ChangeType:    domain.InventoryChangeType(m.ChangeType),
		Source:        domain.InventorySource(m.Source),
		Delta:         m.Delta,
		LedgerEntryID: m.LedgerEntryID,
		Notes:         m.Notes,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}
