package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
)

// obligationVersioningService creates obligations and re-versions them on edit.
type obligationVersioningService struct {
	BaseService
	obligationRepo portsrepo.ObligationRepositoryFacade
	txManager      portsrepo.TransactionManager
}

// NewObligationVersioningService creates a new versioning service.
func NewObligationVersioningService(obligationRepo portsrepo.ObligationRepositoryFacade, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.ObligationVersioningSvc {
	return &obligationVersioningService{
		BaseService:    newBaseService(options...),
		obligationRepo: obligationRepo,
		txManager:      txManager,
	}
}

var _ portssvc.ObligationVersioningSvc = (*obligationVersioningService)(nil)

// CreateObligation persists a new Open obligation, or a pre-closed one when an end month is given.
func (s *obligationVersioningService) CreateObligation(ctx context.Context, ownerID string, req dto.CreateObligationRequest, currentMonth domain.Month) (*domain.RecurringObligation, error) {
	activeFrom := currentMonth
	if req.ActiveFromMonth != nil {
		m, err := domain.ParseMonth(*req.ActiveFromMonth)
		if err != nil {
			return nil, err
		}
		activeFrom = m
	}
	activeTo, err := parseOptionalMonth(req.ActiveToMonth)
	if err != nil {
		return nil, err
	}

	status := req.DefaultStatus
	if status == "" {
		status = domain.StatusPending
	}

	now := s.Now()
	obligationID := s.NewID()
	obligation := domain.RecurringObligation{
		ObligationID:    obligationID,
		OwnerID:         ownerID,
		LineageID:       obligationID,
		Title:           strings.TrimSpace(req.Title),
		Description:     req.Description,
		Amount:          req.Amount,
		Kind:            req.Kind,
		DayOfMonth:      req.DayOfMonth,
		DefaultStatus:   status,
		PaymentMethodID: nonEmpty(req.PaymentMethodID),
		ActiveFromMonth: activeFrom,
		ActiveToMonth:   activeTo,
		Allocations:     dto.ToDomainAllocations(req.Categories),
		AuditFields:     domain.NewAuditFields(ownerID, now),
	}

	if err := obligation.Validate(); err != nil {
		s.LogWarn(ctx, err, "Rejected obligation create", slog.String("owner_id", ownerID))
		return nil, err
	}

	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		return s.insertVersion(ctx, obligation)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create obligation", slog.String("owner_id", ownerID))
		return nil, err
	}

	s.LogInfo(ctx, "Obligation created",
		slog.String("obligation_id", obligation.ObligationID),
		slog.String("active_from_month", obligation.ActiveFromMonth.String()))
	return &obligation, nil
}

// UpdateObligation applies a patch. An Open version whose generated output would change is
// closed and replaced by a new version starting at currentMonth; anything else is edited in place.
func (s *obligationVersioningService) UpdateObligation(ctx context.Context, obligationID, ownerID string, req dto.UpdateObligationRequest, currentMonth domain.Month) (*domain.RecurringObligation, error) {
	patch, err := toObligationPatch(req)
	if err != nil {
		return nil, err
	}

	var result *domain.RecurringObligation
	err = s.txManager.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.obligationRepo.FindObligation(ctx, obligationID, ownerID)
		if err != nil {
			return err
		}
		stored, err := s.obligationRepo.GetAllocations(ctx, existing.ObligationID)
		if err != nil {
			return err
		}
		existing.Allocations = stored

		allocations := stored
		if patch.Categories != nil {
			allocations = *patch.Categories
		}
		if err := allocations.Validate(patch.EffectiveAmount(*existing)); err != nil {
			return err
		}

		if existing.IsOpen() && patch.HasSemanticChanges(*existing) {
			result, err = s.supersede(ctx, *existing, patch, currentMonth)
		} else {
			result, err = s.editInPlace(ctx, *existing, patch)
		}
		return err
	})
	if err != nil {
		if isClientError(err) {
			s.LogWarn(ctx, err, "Rejected obligation update", slog.String("obligation_id", obligationID))
		} else {
			s.LogError(ctx, err, "Failed to update obligation", slog.String("obligation_id", obligationID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Obligation updated",
		slog.String("obligation_id", obligationID),
		slog.String("live_obligation_id", result.ObligationID))
	return result, nil
}

// supersede closes existing and appends the version that replaces it. When existing starts in or
// after currentMonth both versions cover its start month, so that month can generate from each.
func (s *obligationVersioningService) supersede(ctx context.Context, existing domain.RecurringObligation, patch domain.ObligationPatch, currentMonth domain.Month) (*domain.RecurringObligation, error) {
	closeMonth := currentMonth.Previous().LaterOf(existing.ActiveFromMonth)
	newStart := currentMonth.LaterOf(existing.ActiveFromMonth)
	if patch.ActiveToMonth != nil && patch.ActiveToMonth.Before(newStart) {
		return nil, apperrors.NewValidationError("active to month %s precedes new version start %s", patch.ActiveToMonth, newStart)
	}

	now := s.Now()
	closed := existing
	closed.ActiveToMonth = &closeMonth
	closed.Touch(existing.OwnerID, now)
	if err := s.obligationRepo.UpdateObligation(ctx, closed); err != nil {
		return nil, err
	}

	supersededID := existing.ObligationID
	next := patch.Apply(existing)
	next.ObligationID = s.NewID()
	next.LineageID = existing.LineageID
	next.SupersedesID = &supersededID
	next.ActiveFromMonth = newStart
	next.ActiveToMonth = patch.ActiveToMonth
	next.AuditFields = domain.NewAuditFields(existing.OwnerID, now)
	if err := next.Validate(); err != nil {
		return nil, err
	}
	if err := s.insertVersion(ctx, next); err != nil {
		return nil, err
	}

	s.LogDebug(ctx, "Obligation superseded",
		slog.String("closed_obligation_id", existing.ObligationID),
		slog.String("closed_at_month", closeMonth.String()),
		slog.String("new_obligation_id", next.ObligationID))
	return &next, nil
}

// editInPlace mutates the row without creating a version.
func (s *obligationVersioningService) editInPlace(ctx context.Context, existing domain.RecurringObligation, patch domain.ObligationPatch) (*domain.RecurringObligation, error) {
	updated := patch.Apply(existing)
	if patch.ActiveToMonth != nil {
		updated.ActiveToMonth = patch.ActiveToMonth
	}
	updated.Touch(existing.OwnerID, s.Now())
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	if err := s.obligationRepo.UpdateObligation(ctx, updated); err != nil {
		return nil, err
	}
	if patch.Categories != nil {
		if err := s.obligationRepo.SetAllocations(ctx, updated.ObligationID, updated.Allocations); err != nil {
			return nil, err
		}
	}
	return &updated, nil
}

func (s *obligationVersioningService) insertVersion(ctx context.Context, obligation domain.RecurringObligation) error {
	if err := s.obligationRepo.CreateObligation(ctx, obligation); err != nil {
		return err
	}
	if len(obligation.Allocations) == 0 {
		return nil
	}
	return s.obligationRepo.SetAllocations(ctx, obligation.ObligationID, obligation.Allocations)
}

// toObligationPatch converts the request body, parsing months.
func toObligationPatch(req dto.UpdateObligationRequest) (domain.ObligationPatch, error) {
	activeTo, err := parseOptionalMonth(req.ActiveToMonth)
	if err != nil {
		return domain.ObligationPatch{}, err
	}
	patch := domain.ObligationPatch{
		Title:           req.Title,
		Description:     req.Description,
		Amount:          req.Amount,
		Kind:            req.Kind,
		DayOfMonth:      req.DayOfMonth,
		DefaultStatus:   req.DefaultStatus,
		PaymentMethodID: req.PaymentMethodID,
		ActiveToMonth:   activeTo,
	}
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		patch.Title = &title
	}
	if req.Categories != nil {
		set := dto.ToDomainAllocations(*req.Categories)
		if set == nil {
			set = domain.AllocationSet{}
		}
		patch.Categories = &set
	}
	return patch, nil
}

func parseOptionalMonth(s *string) (*domain.Month, error) {
	if s == nil {
		return nil, nil
	}
	m, err := domain.ParseMonth(*s)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	v := *s
	return &v
}
