package postgres

import (
	"context"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *requestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *domain.GameRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.GameRequest, error) {
	var request domain.GameRequest
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Preload("Receiver").
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) GetBySenderID(ctx context.Context, senderID uuid.UUID) ([]*domain.GameRequest, error) {
	var requests []*domain.GameRequest
	err := r.db.WithContext(ctx).
		Preload("Receiver").
		Where("sender_id = ?", senderID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) GetByReceiverID(ctx context.Context, receiverID uuid.UUID) ([]*domain.GameRequest, error) {
	var requests []*domain.GameRequest
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("receiver_id = ?", receiverID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) HasPendingBetween(ctx context.Context, senderID, receiverID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.GameRequest{}).
		Where("sender_id = ? AND receiver_id = ? AND status = ?", senderID, receiverID, domain.RequestStatusPending).
		Count(&count).Error
	return count > 0, err
}

func (r *requestRepository) CountPendingForReceiver(ctx context.Context, receiverID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.GameRequest{}).
		Where("receiver_id = ? AND status = ?", receiverID, domain.RequestStatusPending).
		Count(&count).Error
	return count, err
}

func (r *requestRepository) Decline(ctx context.Context, request *domain.GameRequest) error {
	res := r.db.WithContext(ctx).
		Model(&domain.GameRequest{}).
		Where("id = ? AND status = ?", request.ID, domain.RequestStatusPending).
		Update("status", domain.RequestStatusDeclined)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRequestNotPending
	}
	request.Status = domain.RequestStatusDeclined
	return nil
}

func (r *requestRepository) Accept(ctx context.Context, request *domain.GameRequest, game *domain.Game, event *domain.GameEvent) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Conditional flip guards against a second response re-creating the
		// game: losing the race rolls the whole transaction back.
		res := tx.Model(&domain.GameRequest{}).
			Where("id = ? AND status = ?", request.ID, domain.RequestStatusPending).
			Update("status", domain.RequestStatusAccepted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrRequestNotPending
		}
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
	if err != nil {
		return err
	}
	request.Status = domain.RequestStatusAccepted
	return nil
}
