package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/relief_ledger_app/internal/apperrors"
	portsrepo "github.com/SscSPs/relief_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
)

type consumptionGuard struct {
	BaseService
	consumptionRepo portsrepo.InventoryConsumptionReader
}

// NewConsumptionGuard creates a guard over the consumption and transfer log.
func NewConsumptionGuard(repo portsrepo.InventoryConsumptionReader) portssvc.ConsumptionGuardSvc {
	return &consumptionGuard{consumptionRepo: repo}
}

var _ portssvc.ConsumptionGuardSvc = (*consumptionGuard)(nil)

// HasConsumption fails closed: any lookup error becomes ErrGuardUnavailable.
func (g *consumptionGuard) HasConsumption(ctx context.Context, ledgerEntryID string) (bool, error) {
	consumed, err := g.consumptionRepo.HasConsumption(ctx, ledgerEntryID)
	if err != nil {
		g.LogError(ctx, err, "Inventory consumption check failed",
			slog.String("entry_id", ledgerEntryID))
		return false, fmt.Errorf("%w: %v", apperrors.ErrGuardUnavailable, err)
	}
	return consumed, nil
}
