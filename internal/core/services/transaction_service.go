package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// transactionService records ad-hoc transactions and lists a month's transactions.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	txManager       portsrepo.TransactionManager
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo portsrepo.TransactionRepositoryFacade, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.TransactionSvcFacade {
	return &transactionService{
		BaseService:     newBaseService(options...),
		transactionRepo: transactionRepo,
		txManager:       txManager,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	occurredOn, err := time.Parse(time.DateOnly, req.OccurredOn)
	if err != nil {
		return nil, apperrors.NewFormatError("occurred on %q is not a YYYY-MM-DD date", req.OccurredOn)
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPaid
	}

	txn := domain.Transaction{
		TransactionID:   s.NewID(),
		OwnerID:         ownerID,
		Kind:            req.Kind,
		Description:     strings.TrimSpace(req.Description),
		Notes:           req.Notes,
		Amount:          req.Amount,
		Status:          status,
		OccurredOn:      occurredOn,
		OccurredMonth:   domain.MonthOf(occurredOn),
		PaymentMethodID: nonEmpty(req.PaymentMethodID),
		Allocations:     dto.ToDomainAllocations(req.Categories),
		AuditFields:     domain.NewAuditFields(ownerID, s.Now()),
	}
	txn.StampSettlement()

	if err := txn.Validate(); err != nil {
		s.LogWarn(ctx, err, "Rejected transaction create", slog.String("owner_id", ownerID))
		return nil, err
	}

	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		return s.transactionRepo.SaveTransaction(ctx, txn)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to save transaction", slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction created", slog.String("transaction_id", txn.TransactionID))
	return &txn, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, month string) ([]domain.Transaction, error) {
	m, err := domain.ParseMonth(month)
	if err != nil {
		return nil, err
	}
	txns, err := s.transactionRepo.ListTransactionsByMonth(ctx, ownerID, m)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions", slog.String("owner_id", ownerID), slog.String("month", month))
		return nil, err
	}
	return txns, nil
}
