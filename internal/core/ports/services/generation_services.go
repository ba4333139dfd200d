package services

import (
	"context"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
)

// MonthlyGenerationSvc materializes obligations into transactions.
type MonthlyGenerationSvc interface {
	// GenerateForMonth creates at most one transaction per obligation active in month (YYYY-MM).
	// It is safe to call repeatedly for the same owner and month.
	GenerateForMonth(ctx context.Context, ownerID string, month string) (*domain.GenerationReport, error)

	// ListGenerationOwners returns every owner that has obligations to generate from.
	ListGenerationOwners(ctx context.Context) ([]string, error)
}
