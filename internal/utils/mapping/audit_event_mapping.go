package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/SscSPs/relief_ledger_app/internal/models"
)

// ToModelAuditEvent converts a domain AuditEvent to a model AuditEvent, encoding
// the snapshots and metadata as JSON. Nil snapshots stay NULL.
func ToModelAuditEvent(d domain.AuditEvent) (models.AuditEvent, error) {
	prev, err := encodeSnapshot(d.PreviousData)
	if err != nil {
		return models.AuditEvent{}, fmt.Errorf("encode previous data: %w", err)
	}
	next, err := encodeSnapshot(d.NewData)
	if err != nil {
		return models.AuditEvent{}, fmt.Errorf("encode new data: %w", err)
	}
	var meta json.RawMessage
	if len(d.Metadata) > 0 {
		if meta, err = json.Marshal(d.Metadata); err != nil {
			return models.AuditEvent{}, fmt.Errorf("encode metadata: %w", err)
		}
	}
	return models.AuditEvent{
		AuditEventID: d.AuditEventID,
		ActorID:      d.ActorID,
		TableName:    d.TableName,
		RecordID:     d.RecordID,
		Action:       string(d.Action),
		Reason:       d.Reason,
		PreviousData: prev,
		NewData:      next,
		Metadata:     meta,
		CreatedAt:    d.CreatedAt,
	}, nil
}

// ToDomainAuditEvent converts a model AuditEvent to a domain AuditEvent.
// Snapshots decode into generic JSON values.
func ToDomainAuditEvent(m models.AuditEvent) (domain.AuditEvent, error) {
	d := domain.AuditEvent{
		AuditEventID: m.AuditEventID,
		ActorID:      m.ActorID,
		TableName:    m.TableName,
		RecordID:     m.RecordID,
		Action:       domain.AuditAction(m.Action),
		Reason:       m.Reason,
		CreatedAt:    m.CreatedAt,
	}
	if len(m.PreviousData) > 0 {
		if err := json.Unmarshal(m.PreviousData, &d.PreviousData); err != nil {
			return d, fmt.Errorf("decode previous data of %s: %w", m.AuditEventID, err)
		}
	}
	if len(m.NewData) > 0 {
		if err := json.Unmarshal(m.NewData, &d.NewData); err != nil {
			return d, fmt.Errorf("decode new data of %s: %w", m.AuditEventID, err)
		}
	}
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &d.Metadata); err != nil {
			return d, fmt.Errorf("decode metadata of %s: %w", m.AuditEventID, err)
		}
	}
	return d, nil
}

func encodeSnapshot(v any) (json.RawMessage, error) {
	if v == nil {
		return nil, nil
	}
	return json.Marshal(v)
}
