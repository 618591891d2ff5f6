package repository

import (
	"context"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/google/uuid"
)

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	GetByUsername(ctx context.Context, username string) (*domain.Profile, error)
	Update(ctx context.Context, profile *domain.Profile) error
	Search(ctx context.Context, term string, excludeID uuid.UUID, limit int) ([]*domain.Profile, error)
	Count(ctx context.Context) (int64, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.UserSession) error
	GetByProfileID(ctx context.Context, profileID uuid.UUID) (*domain.UserSession, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByProfileID(ctx context.Context, profileID uuid.UUID) error
}

type GameRepository interface {
	// CreateWithStats inserts the game, its two zeroed death statistics and
	// the game_created event in a single transaction.
	CreateWithStats(ctx context.Context, game *domain.Game, event *domain.GameEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Game, error)
	GetByPlayerID(ctx context.Context, playerID uuid.UUID, limit, offset int) ([]*domain.Game, error)
	CountByPlayerID(ctx context.Context, playerID uuid.UUID) (int64, error)
}

type PairRepository interface {
	Create(ctx context.Context, pair *domain.PokemonPair, event *domain.GameEvent) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PokemonPair, error)
	GetByGameID(ctx context.Context, gameID uuid.UUID) ([]*domain.PokemonPair, error)
	// UpdateNicknames overwrites both nickname columns while the pair is
	// alive. Returns domain.ErrPairDead when the guard rejects the write.
	UpdateNicknames(ctx context.Context, pair *domain.PokemonPair, event *domain.GameEvent) error
	// MarkDead flips the pair to dead exactly once. Returns
	// domain.ErrPairAlreadyDead when the pair was dead already.
	MarkDead(ctx context.Context, pair *domain.PokemonPair, event *domain.GameEvent) error
}

type RequestRepository interface {
	Create(ctx context.Context, request *domain.GameRequest) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GameRequest, error)
	GetBySenderID(ctx context.Context, senderID uuid.UUID) ([]*domain.GameRequest, error)
	GetByReceiverID(ctx context.Context, receiverID uuid.UUID) ([]*domain.GameRequest, error)
	HasPendingBetween(ctx context.Context, senderID, receiverID uuid.UUID) (bool, error)
	CountPendingForReceiver(ctx context.Context, receiverID uuid.UUID) (int64, error)
	// Decline flips a pending request to declined. Returns
	// domain.ErrRequestNotPending when the request was already responded to.
	Decline(ctx context.Context, request *domain.GameRequest) error
	// Accept flips a pending request to accepted and creates the game, its
	// two zeroed death statistics and the game_created event, all in one
	// transaction. The status flip is conditional on the request still being
	// pending, so a concurrent double-accept creates exactly one game.
	Accept(ctx context.Context, request *domain.GameRequest, game *domain.Game, event *domain.GameEvent) error
}

type StatsRepository interface {
	GetByGameID(ctx context.Context, gameID uuid.UUID) ([]*domain.DeathStatistic, error)
	GetByGameAndPlayer(ctx context.Context, gameID, playerID uuid.UUID) (*domain.DeathStatistic, error)
	GetByPlayerID(ctx context.Context, playerID uuid.UUID) ([]*domain.DeathStatistic, error)
	GetByGameIDs(ctx context.Context, gameIDs []uuid.UUID) ([]*domain.DeathStatistic, error)
	// IncrementDeathCount adds one to the counter with an atomic SQL update.
	IncrementDeathCount(ctx context.Context, gameID, playerID uuid.UUID, event *domain.GameEvent) error
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.GameEvent) error
	GetByGameID(ctx context.Context, gameID uuid.UUID, limit int) ([]*domain.GameEvent, error)
}

type Repositories struct {
	Profile ProfileRepository
	Session SessionRepository
	Game    GameRepository
	Pair    PairRepository
	Request RequestRepository
	Stats   StatsRepository
	Event   EventRepository
}
