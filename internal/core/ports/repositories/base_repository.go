package repositories

import (
	"context"
)

// TransactionManager scopes work to a single database transaction.
type TransactionManager interface {
	// WithinTransaction runs fn inside a transaction. The context passed to fn carries the
	// transaction; repositories called with that context join it. The transaction commits
	// when fn returns nil and rolls back otherwise. Calls nested inside an existing
	// transaction reuse it.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
