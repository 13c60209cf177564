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

type PgxBankAccountRepository struct {
	BaseRepository
}

func newPgxBankAccountRepository(pool *pgxpool.Pool) portsrepo.BankAccountReader {
	return &PgxBankAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.BankAccountReader = (*PgxBankAccountRepository)(nil)

// ListBankAccounts returns every bank account, active or not, by name.
func (r *PgxBankAccountRepository) ListBankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	query := `
		SELECT bank_account_id, name, currency_code, opening_balance, is_active,
			created_at, created_by, last_updated_at, last_updated_by
		FROM bank_accounts
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query bank accounts: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.BankAccount, error) {
		var m models.BankAccount
		err := row.Scan(&m.BankAccountID, &m.Name, &m.CurrencyCode, &m.OpeningBalance, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan bank accounts: %w", err)
	}

	accounts := make([]domain.BankAccount, len(ms))
	for i, m := range ms {
		accounts[i] = mapping.ToDomainBankAccount(m)
	}
	return accounts, nil
}
