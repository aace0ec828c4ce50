package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each flush/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage the transaction lifecycle.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	if err := uow.OrderArchive().Add(ctx, placed); err != nil {
//	    uow.Rollback(ctx)
//	    return err
//	}
//	return uow.Commit(ctx)
type UnitOfWork interface {
	// Begin starts a new database transaction. Calling Begin with a
	// transaction already open is a no-op.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderArchive returns an OrderArchive bound to the current
	// transaction, or to the main connection if none is active.
	OrderArchive() OrderArchive
}
