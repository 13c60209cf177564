package models

import (
	"encoding/json"
	"time"
)

// AuditEvent mirrors a row of audit_events. Snapshots are stored as jsonb.
type AuditEvent struct {
	AuditEventID string          `db:"audit_event_id"`
	EventSeq     int64           `db:"event_seq"`
	ActorID      string          `db:"actor_id"`
	TableName    string          `db:"table_name"`
	RecordID     string          `db:"record_id"`
	Action       string          `db:"action"`
	Reason       *string         `db:"reason"`
	PreviousData json.RawMessage `db:"previous_data"`
	NewData      json.RawMessage `db:"new_data"`
	Metadata     json.RawMessage `db:"metadata"`
	CreatedAt    time.Time       `db:"created_at"`
}
