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

type RequestService struct {
	requestRepo repository.RequestRepository
	profileRepo repository.ProfileRepository
	broadcaster EventBroadcaster
}

func NewRequestService(requestRepo repository.RequestRepository, profileRepo repository.ProfileRepository, broadcaster EventBroadcaster) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		profileRepo: profileRepo,
		broadcaster: broadcaster,
	}
}

type SendRequestInput struct {
	SenderID        uuid.UUID
	ReceiverID      uuid.UUID
	GameName        string
	GameDescription string
}

// SendRequest invites another trainer to start a soul link game. Only one
// pending request per (sender, receiver) is allowed at a time.
func (s *RequestService) SendRequest(ctx context.Context, input SendRequestInput) (*domain.GameRequest, error) {
	gameName := strings.TrimSpace(input.GameName)
	if gameName == "" {
		return nil, domain.ErrEmptyGameName
	}
	if input.SenderID == input.ReceiverID {
		return nil, domain.ErrSelfPartner
	}

	if _, err := s.profileRepo.GetByID(ctx, input.ReceiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}

	pending, err := s.requestRepo.HasPendingBetween(ctx, input.SenderID, input.ReceiverID)
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, domain.ErrDuplicateRequest
	}

	var description *string
	if d := strings.TrimSpace(input.GameDescription); d != "" {
		description = &d
	}

	request := &domain.GameRequest{
		ID:              uuid.New(),
		SenderID:        input.SenderID,
		ReceiverID:      input.ReceiverID,
		GameName:        gameName,
		GameDescription: description,
		Status:          domain.RequestStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *RequestService) ListReceived(ctx context.Context, userID uuid.UUID) ([]*domain.GameRequest, error) {
	return s.requestRepo.GetByReceiverID(ctx, userID)
}

func (s *RequestService) ListSent(ctx context.Context, userID uuid.UUID) ([]*domain.GameRequest, error) {
	return s.requestRepo.GetBySenderID(ctx, userID)
}

type RespondInput struct {
	RequestID   uuid.UUID
	ResponderID uuid.UUID
	Decision    domain.RequestDecision
}

// RespondResult carries the created game when the decision was accepted.
type RespondResult struct {
	Request *domain.GameRequest
	Game    *domain.Game
}

// Respond resolves a pending request. Declines only flip the status.
// Accepts additionally create the game with its zeroed death statistics,
// atomically with the status flip, so a second response can never create a
// second game.
func (s *RequestService) Respond(ctx context.Context, input RespondInput) (*RespondResult, error) {
	if !input.Decision.IsValid() {
		return nil, domain.ErrInvalidDecision
	}

	request, err := s.requestRepo.GetByID(ctx, input.RequestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	if request.ReceiverID != input.ResponderID {
		return nil, domain.ErrNotRequestReceiver
	}
	if !request.IsPending() {
		return nil, domain.ErrRequestNotPending
	}

	if input.Decision == domain.DecisionDeclined {
		if err := s.requestRepo.Decline(ctx, request); err != nil {
			return nil, err
		}
		return &RespondResult{Request: request}, nil
	}

	game := &domain.Game{
		ID:        uuid.New(),
		Name:      request.GameName,
		Player1ID: request.SenderID,
		Player2ID: request.ReceiverID,
		CreatedAt: time.Now(),
	}

	event := domain.NewGameEvent(game.ID, input.ResponderID, domain.EventGameCreated, map[string]string{
		"name":      game.Name,
		"requestId": request.ID.String(),
	})

	if err := s.requestRepo.Accept(ctx, request, game, event); err != nil {
		return nil, err
	}

	s.broadcaster.BroadcastEvent(event)
	return &RespondResult{Request: request, Game: game}, nil
}
