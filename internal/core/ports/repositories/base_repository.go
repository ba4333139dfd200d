package repositories

import (
	"context"
)

// TransactionManager runs work inside one storage transaction.
type TransactionManager interface {
	// RunInTx executes fn inside a transaction, committing when fn returns nil and
	// rolling back otherwise. Calls made with a ctx that already carries a
	// transaction join it instead of starting a new one.
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
