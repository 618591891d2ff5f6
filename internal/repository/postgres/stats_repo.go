package postgres

import (
	"context"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *statsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetByGameID(ctx context.Context, gameID uuid.UUID) ([]*domain.DeathStatistic, error) {
	var stats []*domain.DeathStatistic
	err := r.db.WithContext(ctx).
		Preload("Player").
		Where("game_id = ?", gameID).
		Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statsRepository) GetByGameAndPlayer(ctx context.Context, gameID, playerID uuid.UUID) (*domain.DeathStatistic, error) {
	var stat domain.DeathStatistic
	err := r.db.WithContext(ctx).
		First(&stat, "game_id = ? AND player_id = ?", gameID, playerID).Error
	if err != nil {
		return nil, err
	}
	return &stat, nil
}

func (r *statsRepository) GetByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*domain.DeathStatistic, error) {
	var stats []*domain.DeathStatistic
	err := r.db.WithContext(ctx).
		Where("player_id = ?", playerID).
		Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statsRepository) GetByGameIDs(ctx context.Context, gameIDs []uuid.UUID) ([]*domain.DeathStatistic, error) {
	if len(gameIDs) == 0 {
		return nil, nil
	}
	var stats []*domain.DeathStatistic
	err := r.db.WithContext(ctx).
		Preload("Player").
		Where("game_id IN ?", gameIDs).
		Find(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func (r *statsRepository) IncrementDeathCount(ctx context.Context, gameID, playerID uuid.UUID, event *domain.GameEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.DeathStatistic{}).
			Where("game_id = ? AND player_id = ?", gameID, playerID).
			Update("death_count", gorm.Expr("death_count + 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Create(event).Error
	})
}
