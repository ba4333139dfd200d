package pgsql

import (
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository over one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	base := BaseRepository{Pool: dbPool}

	return portsrepo.RepositoryProvider{
		ObligationRepo:  newPgxObligationRepository(base),
		TransactionRepo: newPgxTransactionRepository(base),
		TxManager:       &base,
	}
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)
