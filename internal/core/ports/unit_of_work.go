package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Repositories
// obtained after Begin run inside the transaction.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if there is no active transaction.
	Rollback(ctx context.Context) error

	MenuRepository() MenuRepository
	CustomerRepository() CustomerRepository
	OrderRepository() OrderRepository
}
