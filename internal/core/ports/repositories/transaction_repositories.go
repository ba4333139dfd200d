package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// GeneratedTransactionRepository is the storage surface used by monthly generation.
type GeneratedTransactionRepository interface {
	// FindGeneratedTransaction returns the id of the transaction generated from obligationID
	// for month, or nil when there is none.
	FindGeneratedTransaction(ctx context.Context, ownerID, obligationID string, month domain.Month) (*string, error)

	// InsertGeneratedTransaction stores the transaction and its allocations. It reports
	// false without error when a transaction for the same (owner, obligation, month)
	// already exists.
	InsertGeneratedTransaction(ctx context.Context, txn domain.Transaction) (bool, error)
}

// TransactionWriter defines write operations for ad-hoc transactions.
type TransactionWriter interface {
	// SaveTransaction stores the transaction and its allocations.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
}

// TransactionReader defines read operations for transactions.
type TransactionReader interface {
	// ListTransactionsByMonth retrieves the owner's transactions that occurred in month, ordered by date.
	ListTransactionsByMonth(ctx context.Context, ownerID string, month domain.Month) ([]domain.Transaction, error)
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	GeneratedTransactionRepository
	TransactionWriter
	TransactionReader
}
