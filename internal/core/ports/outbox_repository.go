package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
)

// OutboxMessage is a pending integration event, committed in the same
// transaction as the state change that produced it and published to the
// broker afterwards (at-least-once).
type OutboxMessage struct {
	ID          kernel.UUID
	EventType   string
	Payload     []byte
	CreatedAt   time.Time
	PublishedAt *time.Time
}

// OutboxRepository persists pending integration events alongside the
// aggregates that produced them.
type OutboxRepository interface {
	// Add stores a new outbox message within the current unit of work.
	Add(ctx context.Context, message OutboxMessage) error

	// GetUnpublished returns up to limit messages that have not been
	// published yet, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished records that a message reached the broker. Marking an
	// already published message is a no-op.
	MarkPublished(ctx context.Context, id kernel.UUID) error
}
