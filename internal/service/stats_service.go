package service

import (
	"context"
	"errors"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/alex/soul-link-tracker/internal/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DashboardRecentGames is how many games the dashboard shows.
const DashboardRecentGames = 3

type StatsService struct {
	statsRepo   repository.StatsRepository
	gameRepo    repository.GameRepository
	requestRepo repository.RequestRepository
	broadcaster EventBroadcaster
}

func NewStatsService(statsRepo repository.StatsRepository, gameRepo repository.GameRepository, requestRepo repository.RequestRepository, broadcaster EventBroadcaster) *StatsService {
	return &StatsService{
		statsRepo:   statsRepo,
		gameRepo:    gameRepo,
		requestRepo: requestRepo,
		broadcaster: broadcaster,
	}
}

// GetDeathStats returns both players' counters for a game. Participant only.
func (s *StatsService) GetDeathStats(ctx context.Context, gameID, requesterID uuid.UUID) ([]*domain.DeathStatistic, error) {
	if _, err := s.authorizeGame(ctx, gameID, requesterID); err != nil {
		return nil, err
	}
	return s.statsRepo.GetByGameID(ctx, gameID)
}

type RecordDeathInput struct {
	GameID      uuid.UUID
	PlayerID    uuid.UUID
	RequesterID uuid.UUID
}

// RecordDeath adds one to a player's death tally. Counters are maintained by
// the trainers themselves, independently of pair deaths.
func (s *StatsService) RecordDeath(ctx context.Context, input RecordDeathInput) (*domain.DeathStatistic, error) {
	game, err := s.authorizeGame(ctx, input.GameID, input.RequesterID)
	if err != nil {
		return nil, err
	}
	if !game.HasParticipant(input.PlayerID) {
		return nil, domain.ErrResponsibleNotInGame
	}

	event := domain.NewGameEvent(game.ID, input.RequesterID, domain.EventDeathRecorded, map[string]string{
		"playerId": input.PlayerID.String(),
	})

	if err := s.statsRepo.IncrementDeathCount(ctx, input.GameID, input.PlayerID, event); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrGameNotFound
		}
		return nil, err
	}

	s.broadcaster.BroadcastEvent(event)
	return s.statsRepo.GetByGameAndPlayer(ctx, input.GameID, input.PlayerID)
}

// TotalDeaths sums a player's death counters across all their games.
func (s *StatsService) TotalDeaths(ctx context.Context, playerID uuid.UUID) (int, error) {
	stats, err := s.statsRepo.GetByPlayerID(ctx, playerID)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, stat := range stats {
		total += stat.DeathCount
	}
	return total, nil
}

// Dashboard is the landing-page summary for a trainer.
type Dashboard struct {
	TotalGames      int64          `json:"totalGames"`
	TotalDeaths     int            `json:"totalDeaths"`
	PendingRequests int64          `json:"pendingRequests"`
	RecentGames     []*domain.Game `json:"recentGames"`
}

func (s *StatsService) GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error) {
	totalGames, err := s.gameRepo.CountByPlayerID(ctx, userID)
	if err != nil {
		return nil, err
	}

	totalDeaths, err := s.TotalDeaths(ctx, userID)
	if err != nil {
		return nil, err
	}

	pending, err := s.requestRepo.CountPendingForReceiver(ctx, userID)
	if err != nil {
		return nil, err
	}

	recent, err := s.gameRepo.GetByPlayerID(ctx, userID, DashboardRecentGames, 0)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		TotalGames:      totalGames,
		TotalDeaths:     totalDeaths,
		PendingRequests: pending,
		RecentGames:     recent,
	}, nil
}

// GameAnalytics is one per-game row of the analytics view.
type GameAnalytics struct {
	GameID         uuid.UUID          `json:"gameId"`
	GameName       string             `json:"gameName"`
	Opponent       string             `json:"opponent"`
	UserDeaths     int                `json:"userDeaths"`
	OpponentDeaths int                `json:"opponentDeaths"`
	Outcome        domain.GameOutcome `json:"outcome"`
}

// Analytics compares a trainer against their opponents across all games.
type Analytics struct {
	TotalUserDeaths     int             `json:"totalUserDeaths"`
	TotalOpponentDeaths int             `json:"totalOpponentDeaths"`
	Games               []GameAnalytics `json:"games"`
}

func (s *StatsService) GetAnalytics(ctx context.Context, userID uuid.UUID) (*Analytics, error) {
	games, err := s.gameRepo.GetByPlayerID(ctx, userID, 0, 0)
	if err != nil {
		return nil, err
	}

	gameIDs := make([]uuid.UUID, len(games))
	for i, game := range games {
		gameIDs[i] = game.ID
	}

	stats, err := s.statsRepo.GetByGameIDs(ctx, gameIDs)
	if err != nil {
		return nil, err
	}

	// Index counters by (game, player)
	counts := make(map[uuid.UUID]map[uuid.UUID]int, len(games))
	for _, stat := range stats {
		if counts[stat.GameID] == nil {
			counts[stat.GameID] = make(map[uuid.UUID]int, 2)
		}
		counts[stat.GameID][stat.PlayerID] = stat.DeathCount
	}

	analytics := &Analytics{Games: make([]GameAnalytics, 0, len(games))}
	for _, game := range games {
		userDeaths := counts[game.ID][userID]
		opponentDeaths := counts[game.ID][game.OpponentID(userID)]
		analytics.TotalUserDeaths += userDeaths
		analytics.TotalOpponentDeaths += opponentDeaths
		analytics.Games = append(analytics.Games, GameAnalytics{
			GameID:         game.ID,
			GameName:       game.Name,
			Opponent:       game.OpponentUsername(userID),
			UserDeaths:     userDeaths,
			OpponentDeaths: opponentDeaths,
			Outcome:        domain.Outcome(userDeaths, opponentDeaths),
		})
	}
	return analytics, nil
}

func (s *StatsService) authorizeGame(ctx context.Context, gameID, requesterID uuid.UUID) (*domain.Game, error) {
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
