package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// ObligationVersioningSvc creates obligations and applies copy-on-write edits.
type ObligationVersioningSvc interface {
	// CreateObligation persists a new obligation and its allocations. activeFromMonth
	// defaults to currentMonth.
	CreateObligation(ctx context.Context, ownerID string, req dto.CreateObligationRequest, currentMonth domain.Month) (*domain.RecurringObligation, error)

	// UpdateObligation edits an obligation. Changing an Open version closes it and returns
	// the new version that replaces it; otherwise the row is edited in place.
	UpdateObligation(ctx context.Context, obligationID, ownerID string, req dto.UpdateObligationRequest, currentMonth domain.Month) (*domain.RecurringObligation, error)
}

// ObligationClosureSvc retires obligations.
type ObligationClosureSvc interface {
	// CloseOrDeleteObligation closes an Open version or hard-deletes a Closed one.
	CloseOrDeleteObligation(ctx context.Context, obligationID, ownerID string, currentMonth domain.Month) (domain.ClosureOutcome, error)
}

// ObligationReaderSvc defines read operations for obligations.
type ObligationReaderSvc interface {
	// GetObligation retrieves one obligation version.
	GetObligation(ctx context.Context, obligationID, ownerID string) (*domain.RecurringObligation, error)

	// ListObligations lists the owner's obligation versions, optionally only those active in activeIn (YYYY-MM).
	ListObligations(ctx context.Context, ownerID string, activeIn *string) ([]domain.RecurringObligation, error)

	// GetObligationHistory lists every version in the obligation's lineage, oldest first.
	GetObligationHistory(ctx context.Context, obligationID, ownerID string) ([]domain.RecurringObligation, error)
}

// ObligationSvcFacade combines all obligation-related service interfaces
// This is a facade for clients that need access to all operations
type ObligationSvcFacade interface {
	ObligationVersioningSvc
	ObligationClosureSvc
	ObligationReaderSvc
}
