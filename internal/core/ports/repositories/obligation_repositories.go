package repositories

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// ObligationReader defines read operations for recurring obligations.
// Returned obligations carry their allocation set.
type ObligationReader interface {
	// ListObligations retrieves every obligation version owned by ownerID, ordered by activeFromMonth.
	ListObligations(ctx context.Context, ownerID string) ([]domain.RecurringObligation, error)

	// FindObligation retrieves one version. It returns apperrors.ErrNotFound when the id is
	// unknown or belongs to another owner.
	FindObligation(ctx context.Context, obligationID, ownerID string) (*domain.RecurringObligation, error)

	// GetAllocations reads the stored allocation set of an obligation.
	GetAllocations(ctx context.Context, obligationID string) (domain.AllocationSet, error)

	// ListObligationLineage retrieves every version sharing lineageID, ordered by activeFromMonth.
	ListObligationLineage(ctx context.Context, lineageID, ownerID string) ([]domain.RecurringObligation, error)

	// ListObligationOwners returns the distinct owners that have at least one obligation.
	ListObligationOwners(ctx context.Context) ([]string, error)
}

// ObligationWriter defines write operations for recurring obligations.
type ObligationWriter interface {
	// CreateObligation inserts the obligation row. Allocations are written with SetAllocations.
	CreateObligation(ctx context.Context, obligation domain.RecurringObligation) error

	// UpdateObligation overwrites the mutable columns of an existing row.
	UpdateObligation(ctx context.Context, obligation domain.RecurringObligation) error

	// DeleteObligation hard-deletes the row; its allocations cascade.
	DeleteObligation(ctx context.Context, obligationID, ownerID string) error

	// SetAllocations replaces the allocation set of an obligation.
	SetAllocations(ctx context.Context, obligationID string, allocations domain.AllocationSet) error
}

// ObligationRepositoryFacade combines all obligation-related repository interfaces
type ObligationRepositoryFacade interface {
	ObligationReader
	ObligationWriter
}
