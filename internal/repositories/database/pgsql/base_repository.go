package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// psql builds Postgres-flavoured statements with $n placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

type txCtxKey struct{}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// db returns the transaction carried by ctx, or the pool when there is none.
func (r *BaseRepository) db(ctx context.Context) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return tx
	}
	return r.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// RunInTx runs fn inside a transaction stored on the context. Nested calls join it.
func (r *BaseRepository) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txCtxKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Ignored once the transaction is committed.
	defer r.Rollback(ctx, tx)

	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

// exec renders and executes a write statement.
func (r *BaseRepository) exec(ctx context.Context, stmt squirrel.Sqlizer) (pgconn.CommandTag, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return r.db(ctx).Exec(ctx, query, args...)
}

// query renders and runs a read statement.
func (r *BaseRepository) query(ctx context.Context, stmt squirrel.Sqlizer) (pgx.Rows, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}
	return r.db(ctx).Query(ctx, query, args...)
}

// queryRow renders and runs a single-row read statement.
func (r *BaseRepository) queryRow(ctx context.Context, stmt squirrel.Sqlizer) (pgx.Row, error) {
	query, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}
	return r.db(ctx).QueryRow(ctx, query, args...), nil
}

// allocationTable describes one of the category allocation child tables.
type allocationTable struct {
	name      string
	parentCol string
}

var (
	obligationAllocations  = allocationTable{name: "obligation_category_allocations", parentCol: "obligation_id"}
	transactionAllocations = allocationTable{name: "transaction_category_allocations", parentCol: "transaction_id"}
)

// insertAllocations writes rows in one multi-row INSERT. It is a no-op for an empty set.
func (r *BaseRepository) insertAllocations(ctx context.Context, table allocationTable, rows []models.CategoryAllocation) error {
	if len(rows) == 0 {
		return nil
	}
	stmt := psql.Insert(table.name).Columns(table.parentCol, "category_id", "allocated_amount")
	for _, row := range rows {
		stmt = stmt.Values(row.ParentID, row.CategoryID, row.AllocatedAmount)
	}
	if _, err := r.exec(ctx, stmt); err != nil {
		return apperrors.NewAppError(500, "failed to insert "+table.name, err)
	}
	return nil
}

// loadAllocations reads the allocation rows of every parent id, grouped by parent.
func (r *BaseRepository) loadAllocations(ctx context.Context, table allocationTable, parentIDs []string) (map[string][]models.CategoryAllocation, error) {
	grouped := make(map[string][]models.CategoryAllocation, len(parentIDs))
	if len(parentIDs) == 0 {
		return grouped, nil
	}

	rows, err := r.query(ctx, psql.
		Select(table.parentCol, "category_id", "allocated_amount").
		From(table.name).
		Where(squirrel.Eq{table.parentCol: parentIDs}).
		OrderBy(table.parentCol, "category_id"))
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query "+table.name, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row models.CategoryAllocation
		if err := rows.Scan(&row.ParentID, &row.CategoryID, &row.AllocatedAmount); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan "+table.name+" row", err)
		}
		grouped[row.ParentID] = append(grouped[row.ParentID], row)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating "+table.name+" rows", err)
	}
	return grouped, nil
}
