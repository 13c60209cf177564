package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/relief_ledger_app/internal/apperrors"
	"github.com/SscSPs/relief_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/relief_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/relief_ledger_app/internal/core/ports/services"
)

type verificationService struct {
	BaseService
	entryRepo portsrepo.LedgerEntryReader
	limiter   portssvc.RateLimiter
}

// NewVerificationService creates the public reference lookup. Every call consumes one
// unit of the caller's limiter budget before anything else happens.
func NewVerificationService(entryRepo portsrepo.LedgerEntryReader, limiter portssvc.RateLimiter) portssvc.VerificationSvc {
	return &verificationService{entryRepo: entryRepo, limiter: limiter}
}

var _ portssvc.VerificationSvc = (*verificationService)(nil)

func (s *verificationService) VerifyReference(ctx context.Context, clientKey, reference string) (*domain.VerificationResult, error) {
	allowed, err := s.limiter.Allow(ctx, clientKey)
	if err != nil {
		s.LogError(ctx, err, "Verification rate limit check failed", slog.String("client", clientKey))
		return nil, fmt.Errorf("rate limit check failed: %w", err)
	}
	if !allowed {
		s.LogWarn(ctx, "Verification rate limit exceeded", slog.String("client", clientKey))
		return nil, apperrors.ErrRateLimited
	}

	ref := domain.NormalizeReference(reference)
	if !domain.ValidReference(ref) {
		return &domain.VerificationResult{Found: false}, nil
	}

	record, err := s.entryRepo.FindVerification(ctx, ref)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return &domain.VerificationResult{Found: false}, nil
		}
		s.LogError(ctx, err, "Verification lookup failed")
		return nil, fmt.Errorf("verification lookup failed: %w", err)
	}

	causeName := domain.GeneralCauseName
	if record.CauseName != nil && *record.CauseName != "" {
		causeName = *record.CauseName
	}
	date := record.Date
	amount := record.Amount
	return &domain.VerificationResult{
		Found:          true,
		Date:           &date,
		Amount:         &amount,
		CurrencySymbol: record.CurrencySymbol,
		CauseName:      causeName,
	}, nil
}
