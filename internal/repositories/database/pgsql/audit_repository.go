package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/relief_ledger_app/internal/models"
	"github.com/SscSPs/relief_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAuditRepository struct {
	BaseRepository
}

func newPgxAuditRepository(pool *pgxpool.Pool) portsrepo.AuditEventRepository {
	return &PgxAuditRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AuditEventRepository = (*PgxAuditRepository)(nil)

// SaveAuditEvent appends one event. event_seq is assigned by the database.
func (r *PgxAuditRepository) SaveAuditEvent(ctx context.Context, event domain.AuditEvent) error {
	m, err := mapping.ToModelAuditEvent(event)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO audit_events (audit_event_id, actor_id, table_name, record_id, action, reason,
			previous_data, new_data, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err = r.Pool.Exec(ctx, query,
		m.AuditEventID, m.ActorID, m.TableName, m.RecordID, m.Action, m.Reason,
		m.PreviousData, m.NewData, m.Metadata, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert audit event: %w", translatePgError(err))
	}
	return nil
}

// ListAuditEvents pages through the events of one record in insertion order.
func (r *PgxAuditRepository) ListAuditEvents(ctx context.Context, tableName, recordID string, limit int, after *portsrepo.AuditEventCursor) ([]domain.AuditEvent, *portsrepo.AuditEventCursor, error) {
	query := `
		SELECT audit_event_id, event_seq, actor_id, table_name, record_id, action, reason,
			previous_data, new_data, metadata, created_at
		FROM audit_events
		WHERE table_name = $1 AND record_id = $2
	`
	args := []any{tableName, recordID}
	if after != nil {
		query += ` AND (created_at, event_seq) > ($3, $4)`
		args = append(args, after.CreatedAt, after.Seq)
	}
	query += fmt.Sprintf(` ORDER BY created_at, event_seq LIMIT $%d;`, len(args)+1)
	args = append(args, limit)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query audit events: %w", translatePgError(err))
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AuditEvent, error) {
		var m models.AuditEvent
		err := row.Scan(&m.AuditEventID, &m.EventSeq, &m.ActorID, &m.TableName, &m.RecordID, &m.Action, &m.Reason,
			&m.PreviousData, &m.NewData, &m.Metadata, &m.CreatedAt)
		return m, err
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan audit events: %w", translatePgError(err))
	}

	events := make([]domain.AuditEvent, 0, len(ms))
	for _, m := range ms {
		d, err := mapping.ToDomainAuditEvent(m)
		if err != nil {
			return nil, nil, err
		}
		events = append(events, d)
	}

	var last *portsrepo.AuditEventCursor
	if n := len(ms); n > 0 {
		last = &portsrepo.AuditEventCursor{CreatedAt: ms[n-1].CreatedAt, Seq: ms[n-1].EventSeq}
	}
	return events, last, nil
}
