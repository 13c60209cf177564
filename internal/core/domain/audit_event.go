package domain

import "time"

// AuditAction is the kind of state change an audit event records.
type AuditAction string

const (
	AuditCreate   AuditAction = "create"
	AuditUpdate   AuditAction = "update"
	AuditVoid     AuditAction = "void"
	AuditRestore  AuditAction = "restore"
	AuditConsume  AuditAction = "consume"
	AuditTransfer AuditAction = "transfer"
	AuditAdjust   AuditAction = "adjust"
)

// Audit target tables.
const (
	TableLedgerEntries    = "ledger_entries"
	TableInventoryHistory = "inventory_history"
)

// AuditEvent is an append-only record of a state-changing action.
type AuditEvent struct {
	AuditEventID string         `json:"auditEventID"`
	ActorID      string         `json:"actorID"`
	TableName    string         `json:"tableName"`
	RecordID     string         `json:"recordID"`
	Action       AuditAction    `json:"action"`
	Reason       *string        `json:"reason,omitempty"`
	PreviousData any            `json:"previousData,omitempty"`
	NewData      any            `json:"newData,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
}
