package postgres

import (
	"context"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *eventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.GameEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) GetByGameID(ctx context.Context, gameID uuid.UUID, limit int) ([]*domain.GameEvent, error) {
	var events []*domain.GameEvent
	err := r.db.WithContext(ctx).
		Preload("Actor").
		Where("game_id = ?", gameID).
		Order("created_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
