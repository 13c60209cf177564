package repositories

import (
	"context"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
)

// LedgerEntryReader defines read operations for ledger entries.
type LedgerEntryReader interface {
	// FindEntryByID retrieves an entry regardless of its void state.
	FindEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// FindEntryByExternalReference retrieves the entry tagged with a normalized external reference.
	FindEntryByExternalReference(ctx context.Context, reference string) (*domain.LedgerEntry, error)

	// ListActiveBankEntries returns every active entry that references a bank account.
	ListActiveBankEntries(ctx context.Context) ([]domain.LedgerEntry, error)

	// FindVerification looks up the public confirmation for an active entry by reference.
	FindVerification(ctx context.Context, reference string) (*domain.VerificationRecord, error)
}

// LedgerEntryWriter defines write operations for ledger entries.
type LedgerEntryWriter interface {
	// SaveEntry inserts a new entry. A clashing external reference yields apperrors.ErrDuplicate.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	// MarkEntryVoided persists the void metadata carried by entry, but only while the stored
	// row is still active and, when requireUnconsumed is set, has no consumption rows.
	// It reports whether the row was updated.
	MarkEntryVoided(ctx context.Context, entry domain.LedgerEntry, requireUnconsumed bool) (bool, error)

	// MarkEntryRestored persists the restore metadata carried by entry, but only while the
	// stored row is still voided. It reports whether the row was updated.
	MarkEntryRestored(ctx context.Context, entry domain.LedgerEntry) (bool, error)
}

// LedgerEntryRepositoryFacade combines all ledger entry repository interfaces.
type LedgerEntryRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
}
