package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
)

type monthlyGenerationService struct {
	BaseService
	obligationRepo  portsrepo.ObligationReader
	transactionRepo portsrepo.GeneratedTransactionRepository
	txManager       portsrepo.TransactionManager
}

// NewMonthlyGenerationService creates a new generation service.
func NewMonthlyGenerationService(obligationRepo portsrepo.ObligationReader, transactionRepo portsrepo.GeneratedTransactionRepository, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.MonthlyGenerationSvc {
	return &monthlyGenerationService{
		BaseService:     newBaseService(options...),
		obligationRepo:  obligationRepo,
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

var _ portssvc.MonthlyGenerationSvc = (*monthlyGenerationService)(nil)

// generationOutcome is what happened to one obligation. Exactly one field is set.
type generationOutcome struct {
	generated *domain.GeneratedEntry
	skipped   *domain.SkippedEntry
	failed    *domain.FailedEntry
}

// GenerateForMonth materializes every obligation active in month. Obligations whose stored
// allocations no longer reconcile are reported as failed and the rest still generate.
// Storage errors abort the run; obligations already committed stay committed.
func (s *monthlyGenerationService) GenerateForMonth(ctx context.Context, ownerID string, month string) (*domain.GenerationReport, error) {
	target, err := domain.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	obligations, err := s.obligationRepo.ListObligations(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list obligations for generation", slog.String("owner_id", ownerID))
		return nil, err
	}

	report := domain.NewGenerationReport(ownerID, target)
	for _, obligation := range obligations {
		if !obligation.IsActiveIn(target) {
			continue
		}
		outcome, err := s.generateOne(ctx, obligation, target)
		if err != nil {
			s.LogError(ctx, err, "Generation aborted",
				slog.String("owner_id", ownerID),
				slog.String("month", target.String()),
				slog.String("obligation_id", obligation.ObligationID))
			return nil, err
		}
		switch {
		case outcome.generated != nil:
			report.Generated = append(report.Generated, *outcome.generated)
		case outcome.skipped != nil:
			report.Skipped = append(report.Skipped, *outcome.skipped)
		case outcome.failed != nil:
			report.Failed = append(report.Failed, *outcome.failed)
		}
	}

	s.LogInfo(ctx, "Generation finished",
		slog.String("owner_id", ownerID),
		slog.String("month", target.String()),
		slog.Int("generated", len(report.Generated)),
		slog.Int("skipped", len(report.Skipped)),
		slog.Int("failed", len(report.Failed)))
	return report, nil
}

// generateOne handles a single obligation in its own storage transaction.
func (s *monthlyGenerationService) generateOne(ctx context.Context, obligation domain.RecurringObligation, target domain.Month) (generationOutcome, error) {
	var outcome generationOutcome
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		existingID, err := s.transactionRepo.FindGeneratedTransaction(ctx, obligation.OwnerID, obligation.ObligationID, target)
		if err != nil {
			return err
		}
		if existingID != nil {
			outcome = generationOutcome{skipped: &domain.SkippedEntry{
				ObligationID:          obligation.ObligationID,
				ExistingTransactionID: *existingID,
			}}
			return nil
		}

		allocations, err := s.obligationRepo.GetAllocations(ctx, obligation.ObligationID)
		if err != nil {
			return err
		}
		if err := allocations.Validate(obligation.Amount); err != nil {
			integrityErr := apperrors.NewDataIntegrityError("obligation %s: %v", obligation.ObligationID, err)
			s.LogError(ctx, integrityErr, "Stored allocations do not reconcile",
				slog.String("obligation_id", obligation.ObligationID),
				slog.Int64("amount", obligation.Amount),
				slog.Int64("allocated", allocations.Sum()))
			outcome = generationOutcome{failed: &domain.FailedEntry{
				ObligationID: obligation.ObligationID,
				Reason:       integrityErr.Error(),
			}}
			return nil
		}
		obligation.Allocations = allocations

		txn := domain.NewGeneratedTransaction(s.NewID(), obligation, target, s.Now())
		inserted, err := s.transactionRepo.InsertGeneratedTransaction(ctx, txn)
		if err != nil {
			return err
		}
		if !inserted {
			// A concurrent run got there first.
			outcome = generationOutcome{skipped: &domain.SkippedEntry{ObligationID: obligation.ObligationID}}
			return nil
		}
		outcome = generationOutcome{generated: &domain.GeneratedEntry{
			ObligationID:  obligation.ObligationID,
			TransactionID: txn.TransactionID,
			OccurredOn:    txn.OccurredOn.Format(time.DateOnly),
		}}
		return nil
	})
	return outcome, err
}

func (s *monthlyGenerationService) ListGenerationOwners(ctx context.Context) ([]string, error) {
	owners, err := s.obligationRepo.ListObligationOwners(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list obligation owners")
		return nil, err
	}
	return owners, nil
}
