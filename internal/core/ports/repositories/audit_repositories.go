package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
)

// AuditEventCursor positions a page of audit events.
type AuditEventCursor struct {
	CreatedAt time.Time
	Seq       int64
}

// AuditEventRepository appends and reads audit events. There is no update or delete.
type AuditEventRepository interface {
	SaveAuditEvent(ctx context.Context, event domain.AuditEvent) error

	// ListAuditEvents returns events for one record in insertion order, starting after
	// the cursor when one is given, together with the cursor of the last row returned.
	ListAuditEvents(ctx context.Context, tableName, recordID string, limit int, after *AuditEventCursor) ([]domain.AuditEvent, *AuditEventCursor, error)
}
