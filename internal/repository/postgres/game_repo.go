package postgres

import (
	"context"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gameRepository struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) *gameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) CreateWithStats(ctx context.Context, game *domain.Game, event *domain.GameEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(game).Error; err != nil {
			return err
		}
		stats := []*domain.DeathStatistic{
			{ID: uuid.New(), GameID: game.ID, PlayerID: game.Player1ID, DeathCount: 0},
			{ID: uuid.New(), GameID: game.ID, PlayerID: game.Player2ID, DeathCount: 0},
		}
		if err := tx.Create(&stats).Error; err != nil {
			return err
		}
		return tx.Create(event).Error
	})
}

func (r *gameRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error) {
	var game domain.Game
	err := r.db.WithContext(ctx).
		Preload("Player1").
		Preload("Player2").
		First(&game, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) GetByPlayerID(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]*domain.Game, error) {
	var games []*domain.Game
	query := r.db.WithContext(ctx).
		Preload("Player1").
		Preload("Player2").
		Where("player1_id = ? OR player2_id = ?", playerID, playerID).
		Order("created_at DESC").
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gameRepository) CountByPlayerID(ctx context.Context, playerID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.Game{}).
		Where("player1_id = ? OR player2_id = ?", playerID, playerID).
		Count(&count).Error
	return count, err
}
