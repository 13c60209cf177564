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
	"github.com/shopspring/decimal"
)

type PgxInventoryRepository struct {
	BaseRepository
}

func newPgxInventoryRepository(pool *pgxpool.Pool) portsrepo.InventoryHistoryRepository {
	return &PgxInventoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryHistoryRepository = (*PgxInventoryRepository)(nil)

// SaveInventoryHistory appends one movement.
func (r *PgxInventoryRepository) SaveInventoryHistory(ctx context.Context, entry domain.InventoryHistoryEntry) error {
	m := mapping.ToModelInventoryHistory(entry)
	query := `
		INSERT INTO inventory_history (history_id, item_key, item_name, change_type, source, delta,
			ledger_entry_id, notes, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.HistoryID, m.ItemKey, m.ItemName, m.ChangeType, m.Source, m.Delta,
		m.LedgerEntryID, m.Notes, m.CreatedAt, m.CreatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert inventory history: %w", translatePgError(err))
	}
	return nil
}

// ListInventoryHistory returns every row of the item keys the filter touches. Set criteria
// are ANDed; unset ones must be nil, not empty.
func (r *PgxInventoryRepository) ListInventoryHistory(ctx context.Context, filter domain.InventoryHistoryFilter) ([]domain.InventoryHistoryEntry, error) {
	query := `
		SELECT history_id, history_seq, item_key, item_name, change_type, source, delta,
			ledger_entry_id, notes, created_at, created_by
		FROM inventory_history
		WHERE item_key IN (
			SELECT DISTINCT item_key FROM inventory_history
			WHERE ($1::text IS NULL OR ledger_entry_id = $1)
			  AND ($2::text IS NULL OR item_key = $2)
		)
		ORDER BY history_seq;
	`
	rows, err := r.Pool.Query(ctx, query, filter.LedgerEntryID, filter.ItemName)
	if err != nil {
		return nil, fmt.Errorf("failed to query inventory history: %w", translatePgError(err))
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InventoryHistory, error) {
		var m models.InventoryHistory
		err := row.Scan(&m.HistoryID, &m.HistorySeq, &m.ItemKey, &m.ItemName, &m.ChangeType, &m.Source, &m.Delta,
			&m.LedgerEntryID, &m.Notes, &m.CreatedAt, &m.CreatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan inventory history: %w", translatePgError(err))
	}

	out := make([]domain.InventoryHistoryEntry, len(ms))
	for i, m := range ms {
		out[i] = mapping.ToDomainInventoryHistory(m)
	}
	return out, nil
}

// BaseQuantities reads the opening stock recorded for each item key.
func (r *PgxInventoryRepository) BaseQuantities(ctx context.Context, itemKeys []string) (map[string]decimal.Decimal, error) {
	base := make(map[string]decimal.Decimal, len(itemKeys))
	if len(itemKeys) == 0 {
		return base, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT item_key, base_quantity FROM inventory_items WHERE item_key = ANY($1);`, itemKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to query base quantities: %w", translatePgError(err))
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var qty decimal.Decimal
		if err := rows.Scan(&key, &qty); err != nil {
			return nil, fmt.Errorf("failed to scan base quantity: %w", err)
		}
		base[key] = qty
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read base quantities: %w", translatePgError(err))
	}
	return base, nil
}
