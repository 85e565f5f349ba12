package ports

import (
	"context"
)

// UnitOfWorkFactory hands out a fresh UnitOfWork per command so concurrent
// commands never share a transaction.
type UnitOfWorkFactory interface {
	// Create returns a UnitOfWork with no transaction started.
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of a command. Orders written through
// its repositories become visible to other readers only after Commit.
type UnitOfWork interface {
	// Begin opens the transaction. Repositories returned afterwards run inside it.
	Begin(ctx context.Context) error

	// Commit makes the tracked order changes durable and then announces them.
	// Fails when no transaction is open.
	Commit(ctx context.Context) error

	// Rollback discards the open transaction and the tracked changes.
	// After Commit it only reports that no transaction is open, so callers
	// defer it right after Begin.
	Rollback(ctx context.Context) error

	// DriverRepository returns the driver lookup bound to the open
	// transaction, or to the database when none is open.
	DriverRepository() DriverRepository

	// OrderRepository returns the order storage bound to the open
	// transaction, or to the database when none is open.
	OrderRepository() OrderRepository
}
