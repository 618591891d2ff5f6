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

type PairService struct {
	pairRepo    repository.PairRepository
	gameRepo    repository.GameRepository
	broadcaster EventBroadcaster
}

func NewPairService(pairRepo repository.PairRepository, gameRepo repository.GameRepository, broadcaster EventBroadcaster) *PairService {
	return &PairService{
		pairRepo:    pairRepo,
		gameRepo:    gameRepo,
		broadcaster: broadcaster,
	}
}

type CreatePairInput struct {
	GameID           uuid.UUID
	RequesterID      uuid.UUID
	Pokemon1Name     string
	Pokemon1Nickname string
	Pokemon2Name     string
	Pokemon2Nickname string
}

// PairList partitions a game's pairs into alive and dead, newest first.
type PairList struct {
	Alive []*domain.PokemonPair
	Dead  []*domain.PokemonPair
}

func (s *PairService) CreatePair(ctx context.Context, input CreatePairInput) (*domain.PokemonPair, error) {
	game, err := s.authorizeGame(ctx, input.GameID, input.RequesterID)
	if err != nil {
		return nil, err
	}

	name1 := strings.TrimSpace(input.Pokemon1Name)
	name2 := strings.TrimSpace(input.Pokemon2Name)
	if name1 == "" || name2 == "" {
		return nil, domain.ErrEmptySpeciesName
	}

	pair := &domain.PokemonPair{
		ID:               uuid.New(),
		GameID:           game.ID,
		Pokemon1Name:     name1,
		Pokemon1Nickname: domain.NormalizeNickname(input.Pokemon1Nickname),
		Pokemon2Name:     name2,
		Pokemon2Nickname: domain.NormalizeNickname(input.Pokemon2Nickname),
		IsDead:           false,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	event := domain.NewGameEvent(game.ID, input.RequesterID, domain.EventPairAdded, map[string]string{
		"pairId":   pair.ID.String(),
		"pokemon1": pair.Pokemon1Display(),
		"pokemon2": pair.Pokemon2Display(),
	})

	if err := s.pairRepo.Create(ctx, pair, event); err != nil {
		return nil, err
	}

	s.broadcaster.BroadcastEvent(event)
	return pair, nil
}

type UpdateNicknamesInput struct {
	PairID           uuid.UUID
	RequesterID      uuid.UUID
	Pokemon1Nickname string
	Pokemon2Nickname string
}

// UpdateNicknames renames a living pair. Dead pairs are frozen, the rename
// is rejected with a conflict.
func (s *PairService) UpdateNicknames(ctx context.Context, input UpdateNicknamesInput) (*domain.PokemonPair, error) {
	pair, err := s.getAuthorizedPair(ctx, input.PairID, input.RequesterID)
	if err != nil {
		return nil, err
	}
	if pair.IsDead {
		return nil, domain.ErrPairDead
	}

	pair.Pokemon1Nickname = domain.NormalizeNickname(input.Pokemon1Nickname)
	pair.Pokemon2Nickname = domain.NormalizeNickname(input.Pokemon2Nickname)
	pair.UpdatedAt = time.Now()

	event := domain.NewGameEvent(pair.GameID, input.RequesterID, domain.EventNicknamesUpdated, map[string]string{
		"pairId":   pair.ID.String(),
		"pokemon1": pair.Pokemon1Display(),
		"pokemon2": pair.Pokemon2Display(),
	})

	if err := s.pairRepo.UpdateNicknames(ctx, pair, event); err != nil {
		return nil, err
	}

	s.broadcaster.BroadcastEvent(event)
	return pair, nil
}

type MarkDeadInput struct {
	PairID              uuid.UUID
	RequesterID         uuid.UUID
	ResponsiblePlayerID uuid.UUID
}

// MarkDead performs the one-way alive -> dead transition. The responsible
// player must be one of the game's two participants, and a pair can only die
// once.
func (s *PairService) MarkDead(ctx context.Context, input MarkDeadInput) (*domain.PokemonPair, error) {
	pair, err := s.getAuthorizedPair(ctx, input.PairID, input.RequesterID)
	if err != nil {
		return nil, err
	}

	game, err := s.gameRepo.GetByID(ctx, pair.GameID)
	if err != nil {
		return nil, err
	}
	if !game.HasParticipant(input.ResponsiblePlayerID) {
		return nil, domain.ErrResponsibleNotInGame
	}
	if pair.IsDead {
		return nil, domain.ErrPairAlreadyDead
	}

	now := time.Now()
	pair.IsDead = true
	pair.ResponsiblePlayerID = &input.ResponsiblePlayerID
	pair.DiedAt = &now

	event := domain.NewGameEvent(pair.GameID, input.RequesterID, domain.EventPairDied, map[string]string{
		"pairId":              pair.ID.String(),
		"pokemon1":            pair.Pokemon1Display(),
		"pokemon2":            pair.Pokemon2Display(),
		"responsiblePlayerId": input.ResponsiblePlayerID.String(),
	})

	if err := s.pairRepo.MarkDead(ctx, pair, event); err != nil {
		return nil, err
	}

	s.broadcaster.BroadcastEvent(event)
	return pair, nil
}

func (s *PairService) ListPairs(ctx context.Context, gameID, requesterID uuid.UUID) (*PairList, error) {
	if _, err := s.authorizeGame(ctx, gameID, requesterID); err != nil {
		return nil, err
	}

	pairs, err := s.pairRepo.GetByGameID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	list := &PairList{
		Alive: []*domain.PokemonPair{},
		Dead:  []*domain.PokemonPair{},
	}
	for _, pair := range pairs {
		if pair.IsDead {
			list.Dead = append(list.Dead, pair)
		} else {
			list.Alive = append(list.Alive, pair)
		}
	}
	return list, nil
}

func (s *PairService) GetPair(ctx context.Context, pairID, requesterID uuid.UUID) (*domain.PokemonPair, error) {
	return s.getAuthorizedPair(ctx, pairID, requesterID)
}

func (s *PairService) authorizeGame(ctx context.Context, gameID, requesterID uuid.UUID) (*domain.Game, error) {
	game, err := s.gameRepo.GetByID(ctx, gameID)
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

func (s *PairService) getAuthorizedPair(ctx context.Context, pairID, requesterID uuid.UUID) (*domain.PokemonPair, error) {
	pair, err := s.pairRepo.GetByID(ctx, pairID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPairNotFound
		}
		return nil, err
	}
	if _, err := s.authorizeGame(ctx, pair.GameID, requesterID); err != nil {
		return nil, err
	}
	return pair, nil
}
