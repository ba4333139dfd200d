package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
)

type obligationClosureService struct {
	BaseService
	obligationRepo portsrepo.ObligationRepositoryFacade
	txManager      portsrepo.TransactionManager
}

// NewObligationClosureService creates a new closure service.
func NewObligationClosureService(obligationRepo portsrepo.ObligationRepositoryFacade, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.ObligationClosureSvc {
	return &obligationClosureService{
		BaseService:    newBaseService(options...),
		obligationRepo: obligationRepo,
		txManager:      txManager,
	}
}

var _ portssvc.ObligationClosureSvc = (*obligationClosureService)(nil)

// CloseOrDeleteObligation ends an Open obligation at the month before currentMonth, never
// before its own start. A Closed obligation is already inert and is deleted with its allocations.
func (s *obligationClosureService) CloseOrDeleteObligation(ctx context.Context, obligationID, ownerID string, currentMonth domain.Month) (domain.ClosureOutcome, error) {
	var outcome domain.ClosureOutcome
	err := s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.obligationRepo.FindObligation(ctx, obligationID, ownerID)
		if err != nil {
			return err
		}

		if !existing.IsOpen() {
			if err := s.obligationRepo.DeleteObligation(ctx, obligationID, ownerID); err != nil {
				return err
			}
			outcome = domain.ClosureDeleted
			return nil
		}

		closeMonth := currentMonth.Previous().LaterOf(existing.ActiveFromMonth)
		existing.ActiveToMonth = &closeMonth
		existing.Touch(ownerID, s.Now())
		if err := s.obligationRepo.UpdateObligation(ctx, *existing); err != nil {
			return err
		}
		outcome = domain.ClosureClosed
		return nil
	})
	if err != nil {
		if isClientError(err) {
			s.LogWarn(ctx, err, "Obligation not closed", slog.String("obligation_id", obligationID))
		} else {
			s.LogError(ctx, err, "Failed to close obligation", slog.String("obligation_id", obligationID))
		}
		return "", err
	}

	s.LogInfo(ctx, "Obligation retired",
		slog.String("obligation_id", obligationID),
		slog.String("outcome", string(outcome)))
	return outcome, nil
}
