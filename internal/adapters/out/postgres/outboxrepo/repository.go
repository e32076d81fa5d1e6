// Package outboxrepo persists pending integration events. Outbox rows commit
// in the same transaction as the state change that produced them; a row stays
// unpublished until the event provably reached the broker.
package outboxrepo

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MessageDTO is the database representation of one pending integration event.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	EventType   string
	Payload     []byte `gorm:"type:jsonb"`
	CreatedAt   time.Time
	PublishedAt *time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "outbox_messages".
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

// NewGormOutboxRepository creates a new GORM outbox repository.
func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stores a new outbox message.
func (r *GormOutboxRepository) Add(ctx context.Context, message ports.OutboxMessage) error {
	if err := message.ID.Validate(); err != nil {
		return err
	}

	dto := MessageDTO{
		ID:          message.ID.Bytes(),
		EventType:   message.EventType,
		Payload:     message.Payload,
		CreatedAt:   message.CreatedAt,
		PublishedAt: message.PublishedAt,
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetUnpublished returns up to limit unpublished messages, oldest first.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	if err := r.db.WithContext(ctx).
		Where("published_at IS NULL").
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}

		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			EventType:   dto.EventType,
			Payload:     dto.Payload,
			CreatedAt:   dto.CreatedAt,
			PublishedAt: dto.PublishedAt,
		})
	}

	return messages, nil
}

// MarkPublished stamps the message as delivered. Already published messages
// are left untouched, so a concurrent dispatcher run is harmless.
func (r *GormOutboxRepository) MarkPublished(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	return r.db.WithContext(ctx).Model(&MessageDTO{}).
		Where("id = ? AND published_at IS NULL", id.Bytes()).
		Update("published_at", &now).Error
}
