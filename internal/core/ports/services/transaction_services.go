package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// TransactionWriterSvc defines write operations for ad-hoc transactions.
type TransactionWriterSvc interface {
	// CreateTransaction records an ad-hoc transaction with at least one category allocation.
	CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
}

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// ListTransactions lists the owner's transactions in month (YYYY-MM).
	ListTransactions(ctx context.Context, ownerID string, month string) ([]domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionWriterSvc
	TransactionReaderSvc
}
