package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/apperrors"
	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/relief_ledger_app/internal/dto"
	"github.com/SscSPs/relief_ledger_app/internal/utils/pagination"
	"github.com/google/uuid"
)

type auditService struct {
	BaseService
	auditRepo portsrepo.AuditEventRepository
}

// AuditServiceOption configures the audit service.
type AuditServiceOption func(*auditService)

// WithAuditClock overrides the clock used to stamp events.
func WithAuditClock(now func() time.Time) AuditServiceOption {
	return func(s *auditService) {
		s.now = now
	}
}

// NewAuditService creates the audit trail recorder and reader.
func NewAuditService(repo portsrepo.AuditEventRepository, options ...AuditServiceOption) portssvc.AuditSvcFacade {
	svc := &auditService{auditRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AuditSvcFacade = (*auditService)(nil)

// Record appends event, filling in its id and timestamp when missing.
func (s *auditService) Record(ctx context.Context, event domain.AuditEvent) {
	if event.AuditEventID == "" {
		event.AuditEventID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = s.Now()
	}
	if err := s.auditRepo.SaveAuditEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to write audit event",
			slog.String("table", event.TableName),
			slog.String("record_id", event.RecordID),
			slog.String("action", string(event.Action)))
		return
	}
	s.LogDebug(ctx, "Audit event recorded",
		slog.String("record_id", event.RecordID),
		slog.String("action", string(event.Action)))
}

func (s *auditService) ListAuditEvents(ctx context.Context, entryID string, params dto.ListAuditEventsParams) (*dto.ListAuditEventsResponse, error) {
	var after *portsrepo.AuditEventCursor
	if params.NextToken != "" {
		createdAt, seq, err := pagination.DecodeSeqToken(params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationError("nextToken", "Invalid pagination token")
		}
		after = &portsrepo.AuditEventCursor{CreatedAt: createdAt, Seq: seq}
	}

	events, last, err := s.auditRepo.ListAuditEvents(ctx, domain.TableLedgerEntries, entryID, params.Limit, after)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotProvisioned) {
			return &dto.ListAuditEventsResponse{Events: []dto.AuditEventResponse{}}, nil
		}
		s.LogError(ctx, err, "Failed to list audit events", slog.String("entry_id", entryID))
		return nil, fmt.Errorf("failed to list audit events: %w", err)
	}

	resp := &dto.ListAuditEventsResponse{Events: make([]dto.AuditEventResponse, len(events))}
	for i, e := range events {
		resp.Events[i] = dto.ToAuditEventResponse(e)
	}
	if last != nil && params.Limit > 0 && len(events) == params.Limit {
		token := pagination.EncodeSeqToken(last.CreatedAt, last.Seq)
		resp.NextToken = &token
	}
	return resp, nil
}
