package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/relief_ledger_app/internal/apperrors"
	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/relief_ledger_app/internal/models"
	"github.com/SscSPs/relief_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerEntryRepository struct {
	BaseRepository
}

func newPgxLedgerEntryRepository(pool *pgxpool.Pool) portsrepo.LedgerEntryRepositoryFacade {
	return &PgxLedgerEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerEntryRepositoryFacade = (*PgxLedgerEntryRepository)(nil)

const ledgerEntryColumns = `entry_id, entry_type, amount, amount_in_base_currency, exchange_rate, currency_code,
	entry_date, description, cause_id, item_name, quantity, donor_id, donor_name, bank_account_id,
	from_volunteer_id, to_volunteer_id, custodian_id, external_reference,
	deleted_at, voided_at, voided_by, void_reason, restored_at, restored_by,
	created_at, created_by, last_updated_at, last_updated_by`

func scanLedgerEntry(row pgx.Row) (models.LedgerEntry, error) {
	var m models.LedgerEntry
	err := row.Scan(
		&m.EntryID, &m.EntryType, &m.Amount, &m.AmountInBaseCurrency, &m.ExchangeRate, &m.CurrencyCode,
		&m.EntryDate, &m.Description, &m.CauseID, &m.ItemName, &m.Quantity, &m.DonorID, &m.DonorName, &m.BankAccountID,
		&m.FromVolunteerID, &m.ToVolunteerID, &m.CustodianID, &m.ExternalReference,
		&m.DeletedAt, &m.VoidedAt, &m.VoidedBy, &m.VoidReason, &m.RestoredAt, &m.RestoredBy,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveEntry inserts a new ledger entry.
func (r *PgxLedgerEntryRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (` + ledgerEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.EntryID, m.EntryType, m.Amount, m.AmountInBaseCurrency, m.ExchangeRate, m.CurrencyCode,
		m.EntryDate, m.Description, m.CauseID, m.ItemName, m.Quantity, m.DonorID, m.DonorName, m.BankAccountID,
		m.FromVolunteerID, m.ToVolunteerID, m.CustodianID, m.ExternalReference,
		m.DeletedAt, m.VoidedAt, m.VoidedBy, m.VoidReason, m.RestoredAt, m.RestoredBy,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert ledger entry %s: %w", m.EntryID, translatePgError(err))
	}
	return nil
}

func (r *PgxLedgerEntryRepository) findOne(ctx context.Context, where string, arg any) (*domain.LedgerEntry, error) {
	query := `SELECT ` + ledgerEntryColumns + ` FROM ledger_entries WHERE ` + where + ` LIMIT 1;`
	m, err := scanLedgerEntry(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	d := mapping.ToDomainLedgerEntry(m)
	return &d, nil
}

// FindEntryByID retrieves an entry whether it is active or voided.
func (r *PgxLedgerEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error) {
	entry, err := r.findOne(ctx, "entry_id = $1", entryID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	return entry, err
}

// FindEntryByExternalReference retrieves the entry carrying a normalized external reference.
func (r *PgxLedgerEntryRepository) FindEntryByExternalReference(ctx context.Context, reference string) (*domain.LedgerEntry, error) {
	entry, err := r.findOne(ctx, "external_reference = $1", reference)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find ledger entry by reference: %w", err)
	}
	return entry, err
}

// ListActiveBankEntries returns active entries that touch a bank account.
func (r *PgxLedgerEntryRepository) ListActiveBankEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + ledgerEntryColumns + `
		FROM ledger_entries
		WHERE deleted_at IS NULL AND bank_account_id IS NOT NULL
		ORDER BY entry_date, created_at;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank entries: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.LedgerEntry, error) {
		return scanLedgerEntry(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan bank entries: %w", err)
	}
	return mapping.ToDomainLedgerEntrySlice(ms), nil
}

// FindVerification returns the public confirmation for an active donation.
func (r *PgxLedgerEntryRepository) FindVerification(ctx context.Context, reference string) (*domain.VerificationRecord, error) {
	query := `
		SELECT le.entry_date, le.amount, COALESCE(c.symbol, le.currency_code), ca.name
		FROM ledger_entries le
		LEFT JOIN currencies c ON c.currency_code = le.currency_code
		LEFT JOIN causes ca ON ca.cause_id = le.cause_id
		WHERE le.external_reference = $1
		  AND le.deleted_at IS NULL
		  AND le.entry_type IN ('donation_bank', 'donation_cash')
		LIMIT 1;
	`
	var m models.Verification
	err := r.Pool.QueryRow(ctx, query, reference).Scan(&m.EntryDate, &m.Amount, &m.CurrencySymbol, &m.CauseName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up reference: %w", err)
	}
	rec := mapping.ToDomainVerification(m)
	return &rec, nil
}

// MarkEntryVoided applies the void only while the row is active. With requireUnconsumed the
// same statement also refuses rows referenced by the consumption log.
func (r *PgxLedgerEntryRepository) MarkEntryVoided(ctx context.Context, entry domain.LedgerEntry, requireUnconsumed bool) (bool, error) {
	query := `
		UPDATE ledger_entries SET
			deleted_at = $2,
			voided_at = $2,
			voided_by = $3,
			void_reason = $4,
			restored_at = NULL,
			restored_by = NULL,
			last_updated_at = $2,
			last_updated_by = $3
		WHERE entry_id = $1
		  AND deleted_at IS NULL
		  AND (NOT $5::boolean OR NOT EXISTS (
			SELECT 1 FROM inventory_consumptions ic WHERE ic.ledger_entry_id = $1
		  ));
	`
	tag, err := r.Pool.Exec(ctx, query, entry.EntryID, entry.VoidedAt, entry.VoidedBy, entry.VoidReason, requireUnconsumed)
	if err != nil {
		return false, fmt.Errorf("failed to void ledger entry %s: %w", entry.EntryID, err)
	}
	return tag.RowsAffected() == 1, nil
}

// MarkEntryRestored clears the void only while the row is voided.
func (r *PgxLedgerEntryRepository) MarkEntryRestored(ctx context.Context, entry domain.LedgerEntry) (bool, error) {
	query := `
		UPDATE ledger_entries SET
			deleted_at = NULL,
			voided_at = NULL,
			voided_by = NULL,
			void_reason = NULL,
			restored_at = $2,
			restored_by = $3,
			last_updated_at = $2,
			last_updated_by = $3
		WHERE entry_id = $1
		  AND deleted_at IS NOT NULL;
	`
	tag, err := r.Pool.Exec(ctx, query, entry.EntryID, entry.RestoredAt, entry.RestoredBy)
	if err != nil {
		return false, fmt.Errorf("failed to restore ledger entry %s: %w", entry.EntryID, err)
	}
	return tag.RowsAffected() == 1, nil
}
