package services

import (
	"errors"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
)

// obligationService joins the obligation use cases behind one facade.
type obligationService struct {
	portssvc.ObligationVersioningSvc
	portssvc.ObligationClosureSvc
	portssvc.ObligationReaderSvc
}

// NewObligationService wires the versioning, closure and read use cases together.
func NewObligationService(repo portsrepo.ObligationRepositoryFacade, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.ObligationSvcFacade {
	return &obligationService{
		ObligationVersioningSvc: NewObligationVersioningService(repo, txManager, options...),
		ObligationClosureSvc:    NewObligationClosureService(repo, txManager, options...),
		ObligationReaderSvc:     NewObligationReaderService(repo, options...),
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Obligation:  NewObligationService(repos.ObligationRepo, repos.TxManager, options...),
		Generation:  NewMonthlyGenerationService(repos.ObligationRepo, repos.TransactionRepo, repos.TxManager, options...),
		Transaction: NewTransactionService(repos.TransactionRepo, repos.TxManager, options...),
	}
}

// isClientError reports errors caused by the request rather than the system.
func isClientError(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrFormat) ||
		errors.Is(err, apperrors.ErrNotFound)
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ObligationSvcFacade  = (*obligationService)(nil)
	_ portssvc.MonthlyGenerationSvc = (*monthlyGenerationService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
)
