package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
)

type obligationReaderService struct {
	BaseService
	obligationRepo portsrepo.ObligationReader
}

// NewObligationReaderService creates a new read-only obligation service.
func NewObligationReaderService(obligationRepo portsrepo.ObligationReader, options ...ServiceOption) portssvc.ObligationReaderSvc {
	return &obligationReaderService{
		BaseService:    newBaseService(options...),
		obligationRepo: obligationRepo,
	}
}

var _ portssvc.ObligationReaderSvc = (*obligationReaderService)(nil)

func (s *obligationReaderService) GetObligation(ctx context.Context, obligationID, ownerID string) (*domain.RecurringObligation, error) {
	obligation, err := s.obligationRepo.FindObligation(ctx, obligationID, ownerID)
	if err != nil {
		if !isClientError(err) {
			s.LogError(ctx, err, "Failed to get obligation", slog.String("obligation_id", obligationID))
		}
		return nil, err
	}
	return obligation, nil
}

func (s *obligationReaderService) ListObligations(ctx context.Context, ownerID string, activeIn *string) ([]domain.RecurringObligation, error) {
	filter, err := parseOptionalMonth(activeIn)
	if err != nil {
		return nil, err
	}

	obligations, err := s.obligationRepo.ListObligations(ctx, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list obligations", slog.String("owner_id", ownerID))
		return nil, err
	}
	if filter == nil {
		return obligations, nil
	}

	active := make([]domain.RecurringObligation, 0, len(obligations))
	for _, o := range obligations {
		if o.IsActiveIn(*filter) {
			active = append(active, o)
		}
	}
	return active, nil
}

func (s *obligationReaderService) GetObligationHistory(ctx context.Context, obligationID, ownerID string) ([]domain.RecurringObligation, error) {
	obligation, err := s.GetObligation(ctx, obligationID, ownerID)
	if err != nil {
		return nil, err
	}
	history, err := s.obligationRepo.ListObligationLineage(ctx, obligation.LineageID, ownerID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list obligation lineage", slog.String("lineage_id", obligation.LineageID))
		return nil, err
	}
	return history, nil
}
