package pgsql

import (
	"context"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/SscSPs/finance_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

var obligationColumns = []string{
	"obligation_id", "owner_id", "lineage_id", "supersedes_id", "title", "description",
	"amount", "kind", "day_of_month", "default_status", "payment_method_id",
	"active_from_month", "active_to_month",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

type PgxObligationRepository struct {
	BaseRepository
}

func newPgxObligationRepository(base BaseRepository) portsrepo.ObligationRepositoryFacade {
	return &PgxObligationRepository{BaseRepository: base}
}

var _ portsrepo.ObligationRepositoryFacade = (*PgxObligationRepository)(nil)

func scanObligation(row pgx.Row) (models.RecurringObligation, error) {
	var m models.RecurringObligation
	err := row.Scan(
		&m.ObligationID,
		&m.OwnerID,
		&m.LineageID,
		&m.SupersedesID,
		&m.Title,
		&m.Description,
		&m.Amount,
		&m.Kind,
		&m.DayOfMonth,
		&m.DefaultStatus,
		&m.PaymentMethodID,
		&m.ActiveFromMonth,
		&m.ActiveToMonth,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// listWhere runs a select over recurring_obligations and attaches allocations.
func (r *PgxObligationRepository) listWhere(ctx context.Context, where squirrel.Sqlizer) ([]domain.RecurringObligation, error) {
	rows, err := r.query(ctx, psql.
		Select(obligationColumns...).
		From("recurring_obligations").
		Where(where).
		OrderBy("active_from_month", "created_at", "obligation_id"))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query obligations", err)
	}
	defer rows.Close()

	var modelRows []models.RecurringObligation
	for rows.Next() {
		m, err := scanObligation(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan obligation row", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating obligation rows", err)
	}

	ids := make([]string, len(modelRows))
	for i, m := range modelRows {
		ids[i] = m.ObligationID
	}
	allocations, err := r.loadAllocations(ctx, obligationAllocations, ids)
	if err != nil {
		return nil, err
	}

	obligations := make([]domain.RecurringObligation, 0, len(modelRows))
	for _, m := range modelRows {
		o, err := mapping.ToDomainObligation(m)
		if err != nil {
			return nil, err
		}
		o.Allocations = mapping.ToDomainAllocations(allocations[m.ObligationID])
		obligations = append(obligations, o)
	}
	return obligations, nil
}

// ListObligations retrieves every obligation version of an owner.
func (r *PgxObligationRepository) ListObligations(ctx context.Context, ownerID string) ([]domain.RecurringObligation, error) {
	return r.listWhere(ctx, squirrel.Eq{"owner_id": ownerID})
}

// ListObligationLineage retrieves every version of one rule.
func (r *PgxObligationRepository) ListObligationLineage(ctx context.Context, lineageID, ownerID string) ([]domain.RecurringObligation, error) {
	return r.listWhere(ctx, squirrel.Eq{"lineage_id": lineageID, "owner_id": ownerID})
}

// FindObligation retrieves one version scoped to its owner.
func (r *PgxObligationRepository) FindObligation(ctx context.Context, obligationID, ownerID string) (*domain.RecurringObligation, error) {
	row, err := r.queryRow(ctx, psql.
		Select(obligationColumns...).
		From("recurring_obligations").
		Where(squirrel.Eq{"obligation_id": obligationID, "owner_id": ownerID}))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to build obligation query", err)
	}

	m, err := scanObligation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("obligation " + obligationID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find obligation by ID "+obligationID, err)
	}

	o, err := mapping.ToDomainObligation(m)
	if err != nil {
		return nil, err
	}
	o.Allocations, err = r.GetAllocations(ctx, obligationID)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetAllocations reads the stored allocation set of an obligation.
func (r *PgxObligationRepository) GetAllocations(ctx context.Context, obligationID string) (domain.AllocationSet, error) {
	grouped, err := r.loadAllocations(ctx, obligationAllocations, []string{obligationID})
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainAllocations(grouped[obligationID]), nil
}

// ListObligationOwners returns the distinct owners of stored obligations.
func (r *PgxObligationRepository) ListObligationOwners(ctx context.Context) ([]string, error) {
	rows, err := r.query(ctx, psql.
		Select("owner_id").
		Distinct().
		From("recurring_obligations").
		OrderBy("owner_id"))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query obligation owners", err)
	}
	defer rows.Close()

	owners, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to scan obligation owners", err)
	}
	return owners, nil
}

// CreateObligation inserts the obligation row.
func (r *PgxObligationRepository) CreateObligation(ctx context.Context, obligation domain.RecurringObligation) error {
	m := mapping.ToModelObligation(obligation)
	_, err := r.exec(ctx, psql.
		Insert("recurring_obligations").
		Columns(obligationColumns...).
		Values(
			m.ObligationID, m.OwnerID, m.LineageID, m.SupersedesID, m.Title, m.Description,
			m.Amount, m.Kind, m.DayOfMonth, m.DefaultStatus, m.PaymentMethodID,
			m.ActiveFromMonth, m.ActiveToMonth,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		))
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert obligation "+m.ObligationID, err)
	}
	return nil
}

// UpdateObligation overwrites the mutable columns. Identity, lineage and start month never change.
func (r *PgxObligationRepository) UpdateObligation(ctx context.Context, obligation domain.RecurringObligation) error {
	m := mapping.ToModelObligation(obligation)
	tag, err := r.exec(ctx, psql.
		Update("recurring_obligations").
		SetMap(map[string]any{
			"title":             m.Title,
			"description":       m.Description,
			"amount":            m.Amount,
			"kind":              m.Kind,
			"day_of_month":      m.DayOfMonth,
			"default_status":    m.DefaultStatus,
			"payment_method_id": m.PaymentMethodID,
			"active_to_month":   m.ActiveToMonth,
			"last_updated_at":   m.LastUpdatedAt,
			"last_updated_by":   m.LastUpdatedBy,
		}).
		Where(squirrel.Eq{"obligation_id": m.ObligationID, "owner_id": m.OwnerID}))
	if err != nil {
		return apperrors.NewAppError(500, "failed to update obligation "+m.ObligationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("obligation " + m.ObligationID + " not found")
	}
	return nil
}

// DeleteObligation hard-deletes the row; allocation rows cascade.
func (r *PgxObligationRepository) DeleteObligation(ctx context.Context, obligationID, ownerID string) error {
	tag, err := r.exec(ctx, psql.
		Delete("recurring_obligations").
		Where(squirrel.Eq{"obligation_id": obligationID, "owner_id": ownerID}))
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete obligation "+obligationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("obligation " + obligationID + " not found")
	}
	return nil
}

// SetAllocations replaces the allocation rows of an obligation atomically.
func (r *PgxObligationRepository) SetAllocations(ctx context.Context, obligationID string, allocations domain.AllocationSet) error {
	return r.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := r.exec(ctx, psql.
			Delete(obligationAllocations.name).
			Where(squirrel.Eq{obligationAllocations.parentCol: obligationID})); err != nil {
			return apperrors.NewAppError(500, "failed to clear allocations of obligation "+obligationID, err)
		}
		return r.insertAllocations(ctx, obligationAllocations, mapping.ToModelAllocations(obligationID, allocations))
	})
}
