package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditEventMapping_SnapshotsSurviveStorage(t *testing.T) {
	reason := "duplicate entry"
	in := domain.AuditEvent{
		AuditEventID: "evt-1",
		ActorID:      "user-1",
		TableName:    domain.TableLedgerEntries,
		RecordID:     "entry-1",
		Action:       domain.AuditVoid,
		Reason:       &reason,
		PreviousData: map[string]any{"state": "active"},
		NewData:      map[string]any{"state": "voided"},
		Metadata:     map[string]any{"module": "donations"},
		CreatedAt:    time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	m, err := ToModelAuditEvent(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"active"}`, string(m.PreviousData))
	assert.Equal(t, "void", m.Action)

	out, err := ToDomainAuditEvent(m)
	require.NoError(t, err)
	assert.Equal(t, in.PreviousData, out.PreviousData)
	assert.Equal(t, in.NewData, out.NewData)
	assert.Equal(t, in.Metadata, out.Metadata)
	assert.Equal(t, &reason, out.Reason)
}

func TestAuditEventMapping_NilSnapshotsStayNull(t *testing.T) {
	m, err := ToModelAuditEvent(domain.AuditEvent{AuditEventID: "evt-2", Action: domain.AuditCreate})
	require.NoError(t, err)
	assert.Nil(t, m.PreviousData)
	assert.Nil(t, m.Metadata)

	out, err := ToDomainAuditEvent(m)
	require.NoError(t, err)
	assert.Nil(t, out.PreviousData)
	assert.Nil(t, out.NewData)
}
