package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per request/command.
// This keeps concurrent operations isolated from each other.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents one business transaction boundary: either all writes
// within the operation commit, or none do. Client code manages the transaction
// lifecycle explicitly.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns an error if no transaction is active or the rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current
	// transaction, or to the base connection when none is active.
	OrderRepository() OrderRepository

	// OutboxRepository returns an OutboxRepository bound to the current
	// transaction, or to the base connection when none is active.
	OutboxRepository() OutboxRepository
}
