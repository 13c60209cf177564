package services

import (
	"context"

	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	"github.com/SscSPs/relief_ledger_app/internal/dto"
)

// LedgerEntrySvc records and reads ledger entries.
type LedgerEntrySvc interface {
	CreateEntry(ctx context.Context, req dto.CreateLedgerEntryRequest, actorID string) (*domain.LedgerEntry, error)
	GetEntryByID(ctx context.Context, entryID string) (*domain.LedgerEntry, error)

	// IngestExternalDonation records a bank credit from the email pipeline at most once per
	// external reference. created is false when an entry already carried the reference.
	IngestExternalDonation(ctx context.Context, req dto.IngestDonationRequest, actorID string) (entry *domain.LedgerEntry, created bool, err error)
}

// LedgerStateSvc moves entries between the active and voided states.
type LedgerStateSvc interface {
	VoidEntry(ctx context.Context, entryID string, req dto.VoidEntryRequest, actorID string) (*domain.LedgerEntry, error)
	RestoreEntry(ctx context.Context, entryID string, req dto.RestoreEntryRequest, actorID string) (*domain.LedgerEntry, error)
}

// LedgerSvcFacade combines all ledger entry service interfaces.
type LedgerSvcFacade interface {
	LedgerEntrySvc
	LedgerStateSvc
}

// ConsumptionGuardSvc reports whether stock from a ledger entry has already been consumed
// or transferred. Errors mean the answer is unknown and must be treated as a block.
type ConsumptionGuardSvc interface {
	HasConsumption(ctx context.Context, ledgerEntryID string) (bool, error)
}
