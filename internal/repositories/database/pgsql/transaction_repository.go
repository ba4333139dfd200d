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

var transactionColumns = []string{
	"transaction_id", "owner_id", "kind", "description", "notes", "amount", "status",
	"occurred_on", "occurred_month", "due_on", "paid_on", "payment_method_id", "source_obligation_id",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

// generatedConflictClause targets the partial unique index on generated transactions.
const generatedConflictClause = "ON CONFLICT (owner_id, source_obligation_id, occurred_month) WHERE source_obligation_id IS NOT NULL DO NOTHING"

type PgxTransactionRepository struct {
	BaseRepository
}

func newPgxTransactionRepository(base BaseRepository) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: base}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func transactionInsert(m models.Transaction) squirrel.InsertBuilder {
	return psql.
		Insert("transactions").
		Columns(transactionColumns...).
		Values(
			m.TransactionID, m.OwnerID, m.Kind, m.Description, m.Notes, m.Amount, m.Status,
			m.OccurredOn, m.OccurredMonth, m.DueOn, m.PaidOn, m.PaymentMethodID, m.SourceObligationID,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
}

// FindGeneratedTransaction returns the id of the transaction generated from an obligation in month.
func (r *PgxTransactionRepository) FindGeneratedTransaction(ctx context.Context, ownerID, obligationID string, month domain.Month) (*string, error) {
	row, err := r.queryRow(ctx, psql.
		Select("transaction_id").
		From("transactions").
		Where(squirrel.Eq{
			"owner_id":             ownerID,
			"source_obligation_id": obligationID,
			"occurred_month":       month.String(),
		}).
		Limit(1))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to build generated transaction query", err)
	}

	var transactionID string
	if err := row.Scan(&transactionID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperrors.NewAppError(500, "failed to find generated transaction for obligation "+obligationID, err)
	}
	return &transactionID, nil
}

// InsertGeneratedTransaction inserts unless the (owner, obligation, month) slot is taken.
func (r *PgxTransactionRepository) InsertGeneratedTransaction(ctx context.Context, txn domain.Transaction) (bool, error) {
	m := mapping.ToModelTransaction(txn)
	inserted := false
	err := r.RunInTx(ctx, func(ctx context.Context) error {
		tag, err := r.exec(ctx, transactionInsert(m).Suffix(generatedConflictClause))
		if err != nil {
			return apperrors.NewAppError(500, "failed to insert generated transaction "+m.TransactionID, err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}
		inserted = true
		return r.insertAllocations(ctx, transactionAllocations, mapping.ToModelAllocations(m.TransactionID, txn.Allocations))
	})
	if err != nil {
		return false, err
	}
	return inserted, nil
}

// SaveTransaction stores an ad-hoc transaction with its allocations.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	return r.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := r.exec(ctx, transactionInsert(m)); err != nil {
			return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
		}
		return r.insertAllocations(ctx, transactionAllocations, mapping.ToModelAllocations(m.TransactionID, txn.Allocations))
	})
}

// ListTransactionsByMonth retrieves the owner's transactions in month.
func (r *PgxTransactionRepository) ListTransactionsByMonth(ctx context.Context, ownerID string, month domain.Month) ([]domain.Transaction, error) {
	rows, err := r.query(ctx, psql.
		Select(transactionColumns...).
		From("transactions").
		Where(squirrel.Eq{"owner_id": ownerID, "occurred_month": month.String()}).
		OrderBy("occurred_on", "created_at", "transaction_id"))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transactions", err)
	}
	defer rows.Close()

	var modelRows []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID,
			&m.OwnerID,
			&m.Kind,
			&m.Description,
			&m.Notes,
			&m.Amount,
			&m.Status,
			&m.OccurredOn,
			&m.OccurredMonth,
			&m.DueOn,
			&m.PaidOn,
			&m.PaymentMethodID,
			&m.SourceObligationID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		modelRows = append(modelRows, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating transaction rows", err)
	}

	ids := make([]string, len(modelRows))
	for i, m := range modelRows {
		ids[i] = m.TransactionID
	}
	allocations, err := r.loadAllocations(ctx, transactionAllocations, ids)
	if err != nil {
		return nil, err
	}

	txns := make([]domain.Transaction, 0, len(modelRows))
	for _, m := range modelRows {
		txn, err := mapping.ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		txn.Allocations = mapping.ToDomainAllocations(allocations[m.TransactionID])
		txns = append(txns, txn)
	}
	return txns, nil
}
