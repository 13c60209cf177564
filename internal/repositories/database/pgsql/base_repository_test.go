package pgsql

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/relief_ledger_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslatePgError(t *testing.T) {
	dup := fmt.Errorf("exec: %w", &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "ux_ledger_entries_external_reference"})
	assert.True(t, errors.Is(translatePgError(dup), apperrors.ErrDuplicate))

	missing := &pgconn.PgError{Code: pgUndefinedTable, Message: `relation "inventory_history" does not exist`}
	assert.True(t, errors.Is(translatePgError(missing), apperrors.ErrNotProvisioned))

	other := &pgconn.PgError{Code: "23503"}
	assert.Same(t, other, translatePgError(other))

	plain := errors.New("connection refused")
	assert.Equal(t, plain, translatePgError(plain))
}
