package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/alex/soul-link-tracker/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventHistoryLimit caps the timeline entries returned per game.
const EventHistoryLimit = 100

type GameService struct {
	gameRepo    repository.GameRepository
	profileRepo repository.ProfileRepository
	eventRepo   repository.EventRepository
	broadcaster EventBroadcaster
}

func NewGameService(gameRepo repository.GameRepository, profileRepo repository.ProfileRepository, eventRepo repository.EventRepository, broadcaster EventBroadcaster) *GameService {
	return &GameService{
		gameRepo:    gameRepo,
		profileRepo: profileRepo,
		eventRepo:   eventRepo,
		broadcaster: broadcaster,
	}
}

type CreateGameInput struct {
	Name      string
	CreatorID uuid.UUID
	PartnerID uuid.UUID
}

// CreateGame starts a soul link run directly with a chosen partner. The game,
// both zeroed death statistics and the opening timeline event are written in
// one transaction.
func (s *GameService) CreateGame(ctx context.Context, input CreateGameInput) (*domain.Game, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domain.ErrEmptyGameName
	}
	if input.CreatorID == input.PartnerID {
		return nil, domain.ErrSelfPartner
	}

	partner, err := s.profileRepo.GetByID(ctx, input.PartnerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	game := &domain.Game{
		ID:        uuid.New(),
		Name:      name,
		Player1ID: input.CreatorID,
		Player2ID: partner.ID,
		CreatedAt: time.Now(),
	}

	event := domain.NewGameEvent(game.ID, input.CreatorID, domain.EventGameCreated, map[string]string{
		"name": name,
	})

	if err := s.gameRepo.CreateWithStats(ctx, game, event); err != nil {
		return nil, err
	}

	s.broadcaster.BroadcastEvent(event)
	return game, nil
}

func (s *GameService) ListGames(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]*domain.Game, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.gameRepo.GetByPlayerID(ctx, playerID, limit, offset)
}

// GetGame loads a game for one of its participants. Missing games report
// not-found before the participant check.
func (s *GameService) GetGame(ctx context.Context, id, requesterID uuid.UUID) (*domain.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGameNotFound
		}
		return nil, err
	}
	if !game.HasParticipant(requesterID) {
		return nil, domain.ErrNotParticipant
	}
	return game, nil
}

// ListEvents returns the game timeline, newest first. Participant only.
func (s *GameService) ListEvents(ctx context.Context, gameID, requesterID uuid.UUID) ([]*domain.GameEvent, error) {
	if _, err := s.GetGame(ctx, gameID, requesterID); err != nil {
		return nil, err
	}
	return s.eventRepo.GetByGameID(ctx, gameID, EventHistoryLimit)
}
