package pgsql

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/relief_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxConsumptionRepository reads the consumption and transfer log written by the drive workflows.
type PgxConsumptionRepository struct {
	BaseRepository
}

func newPgxConsumptionRepository(pool *pgxpool.Pool) portsrepo.InventoryConsumptionReader {
	return &PgxConsumptionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InventoryConsumptionReader = (*PgxConsumptionRepository)(nil)

func (r *PgxConsumptionRepository) HasConsumption(ctx context.Context, ledgerEntryID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM inventory_consumptions WHERE ledger_entry_id = $1);`,
		ledgerEntryID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check consumption for %s: %w", ledgerEntryID, err)
	}
	return exists, nil
}
