package dto

import (
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
)

// ListAuditEventsParams defines the query parameters for listing an entry's audit trail.
type ListAuditEventsParams struct {
	Limit     int    `form:"limit,default=50" binding:"min=1,max=200"`
	NextToken string `form:"nextToken"`
}

// AuditEventResponse defines the data returned for an audit event.
type AuditEventResponse struct {
	AuditEventID string             `json:"auditEventId"`
	ActorID      string             `json:"actorId"`
	TableName    string             `json:"tableName"`
	RecordID     string             `json:"recordId"`
	Action       domain.AuditAction `json:"action"`
	Reason       *string            `json:"reason,omitempty"`
	PreviousData any                `json:"previousData,omitempty"`
	NewData      any                `json:"newData,omitempty"`
	Metadata     map[string]any     `json:"metadata,omitempty"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// ListAuditEventsResponse is a page of audit events.
type ListAuditEventsResponse struct {
	Events    []AuditEventResponse `json:"events"`
	NextToken *string              `json:"nextToken,omitempty"`
}

// ToAuditEventResponse converts a domain.AuditEvent to its response DTO.
func ToAuditEventResponse(e domain.AuditEvent) AuditEventResponse {
	return AuditEventResponse{
		AuditEventID: e.AuditEventID,
		ActorID:      e.ActorID,
		TableName:    e.TableName,
		RecordID:     e.RecordID,
		Action:       e.Action,
		Reason:       e.Reason,
		PreviousData: e.PreviousData,
		NewData:      e.NewData,
		Metadata:     e.Metadata,
		CreatedAt:    e.CreatedAt,
	}
}
