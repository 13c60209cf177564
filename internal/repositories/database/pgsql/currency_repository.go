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

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

const currencyColumns = `currency_code, symbol, name, rate_to_base, is_base, created_at, created_by, last_updated_at, last_updated_by`

// SaveCurrency inserts a currency or updates its display fields and rate.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(currency)

	query := `
		INSERT INTO currencies (` + currencyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (currency_code) DO UPDATE SET
			symbol = EXCLUDED.symbol,
			name = EXCLUDED.name,
			rate_to_base = EXCLUDED.rate_to_base,
			is_base = EXCLUDED.is_base,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.Pool.Exec(ctx, query,
		modelCurr.CurrencyCode,
		modelCurr.Symbol,
		modelCurr.Name,
		modelCurr.RateToBase,
		modelCurr.IsBase,
		modelCurr.CreatedAt,
		modelCurr.CreatedBy,
		modelCurr.LastUpdatedAt,
		modelCurr.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save currency %s: %w", modelCurr.CurrencyCode, err)
	}
	return nil
}

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.CurrencyCode,
		&c.Symbol,
		&c.Name,
		&c.RateToBase,
		&c.IsBase,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_code = $1;`

	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, currencyCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", currencyCode, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies ORDER BY currency_code;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
