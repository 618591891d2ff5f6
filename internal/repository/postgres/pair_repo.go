package postgres

import (
	"context"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type pairRepository struct {
	db *gorm.DB
}

func NewPairRepository(db *gorm.DB) *pairRepository {
	return &pairRepository{db: db}
}

func (r *pairRepository) Create(ctx context.Context, pair *domain.PokemonPair, event *domain.GameEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(pair).Error; err != nil {
			return err
		}
		return tx.Create(event).Error
	})
}

func (r *pairRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.PokemonPair, error) {
	var pair domain.PokemonPair
	err := r.db.WithContext(ctx).
		Preload("ResponsiblePlayer").
		First(&pair, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pair, nil
}

func (r *pairRepository) GetByGameID(ctx context.Context, gameID uuid.UUID) ([]*domain.PokemonPair, error) {
	var pairs []*domain.PokemonPair
	err := r.db.WithContext(ctx).
		Preload("ResponsiblePlayer").
		Where("game_id = ?", gameID).
		Order("created_at DESC").
		Find(&pairs).Error
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

func (r *pairRepository) UpdateNicknames(ctx context.Context, pair *domain.PokemonPair, event *domain.GameEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.PokemonPair{}).
			Where("id = ? AND is_dead = false", pair.ID).
			Updates(map[string]interface{}{
				"pokemon1_nickname": pair.Pokemon1Nickname,
				"pokemon2_nickname": pair.Pokemon2Nickname,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrPairDead
		}
		return tx.Create(event).Error
	})
}

func (r *pairRepository) MarkDead(ctx context.Context, pair *domain.PokemonPair, event *domain.GameEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Conditional update doubles as the double-marking guard: a pair
		// that is already dead matches zero rows.
		res := tx.Model(&domain.PokemonPair{}).
			Where("id = ? AND is_dead = false", pair.ID).
			Updates(map[string]interface{}{
				"is_dead":               true,
				"responsible_player_id": pair.ResponsiblePlayerID,
				"died_at":               pair.DiedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrPairAlreadyDead
		}
		return tx.Create(event).Error
	})
}
