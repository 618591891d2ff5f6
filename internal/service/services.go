package service

import (
	"github.com/alex/soul-link-tracker/internal/config"
	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/alex/soul-link-tracker/internal/repository"
)

// EventBroadcaster pushes persisted game events to live subscribers.
type EventBroadcaster interface {
	BroadcastEvent(event *domain.GameEvent)
}

// NopBroadcaster drops events. Used when no hub is wired, e.g. in tests.
type NopBroadcaster struct{}

func (NopBroadcaster) BroadcastEvent(*domain.GameEvent) {}

type Services struct {
	Auth    *AuthService
	Profile *ProfileService
	Game    *GameService
	Pair    *PairService
	Request *RequestService
	Stats   *StatsService
}

func NewServices(repos *repository.Repositories, cfg *config.Config, broadcaster EventBroadcaster) *Services {
	if broadcaster == nil {
		broadcaster = NopBroadcaster{}
	}
	return &Services{
		Auth:    NewAuthService(repos.Profile, repos.Session, cfg),
		Profile: NewProfileService(repos.Profile),
		Game:    NewGameService(repos.Game, repos.Profile, repos.Event, broadcaster),
		Pair:    NewPairService(repos.Pair, repos.Game, broadcaster),
		Request: NewRequestService(repos.Request, repos.Profile, broadcaster),
		Stats:   NewStatsService(repos.Stats, repos.Game, repos.Request, broadcaster),
	}
}
