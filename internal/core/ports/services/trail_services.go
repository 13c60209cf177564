package services

import (
	"context"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/SscSPs/relief_ledger_app/internal/dto"
)

// AuditRecorderSvc appends audit events. Record never fails its caller; write errors
// are logged and dropped.
type AuditRecorderSvc interface {
	Record(ctx context.Context, event domain.AuditEvent)
}

// AuditReaderSvc reads the audit trail.
type AuditReaderSvc interface {
	ListAuditEvents(ctx context.Context, entryID string, params dto.ListAuditEventsParams) (*dto.ListAuditEventsResponse, error)
}

// AuditSvcFacade combines audit recording and reading.
type AuditSvcFacade interface {
	AuditRecorderSvc
	AuditReaderSvc
}

// InventoryRecorderSvc appends inventory movements with the same best-effort contract
// as AuditRecorderSvc.
type InventoryRecorderSvc interface {
	RecordMovement(ctx context.Context, entry domain.InventoryHistoryEntry)
}

// InventorySvc is the inventory history view plus manual adjustments.
type InventorySvc interface {
	GetHistory(ctx context.Context, filter domain.InventoryHistoryFilter) ([]domain.InventoryHistoryItem, error)
	AdjustInventory(ctx context.Context, req dto.AdjustInventoryRequest, actorID string) (*domain.InventoryHistoryEntry, error)
}

// InventorySvcFacade combines inventory recording and querying.
type InventorySvcFacade interface {
	InventoryRecorderSvc
	InventorySvc
}
