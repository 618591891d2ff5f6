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

// SearchResultLimit caps player search results.
const SearchResultLimit = 10

type ProfileService struct {
	profileRepo repository.ProfileRepository
}

func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

func (s *ProfileService) GetProfile(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// UpdateUsername renames the profile. The caller owns the profile; the
// handler enforces that before calling.
func (s *ProfileService) UpdateUsername(ctx context.Context, id uuid.UUID, username string) (*domain.Profile, error) {
	trimmed, err := domain.ValidateUsername(username)
	if err != nil {
		return nil, err
	}

	profile, err := s.GetProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if profile.Username == trimmed {
		return profile, nil
	}

	existing, err := s.profileRepo.GetByUsername(ctx, trimmed)
	if err == nil && existing != nil && existing.ID != id {
		return nil, domain.ErrUsernameTaken
	}

	profile.Username = trimmed
	profile.UpdatedAt = time.Now()
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Search finds other trainers by case-insensitive username substring,
// excluding the caller. Results are capped at SearchResultLimit.
func (s *ProfileService) Search(ctx context.Context, term string, excludeID uuid.UUID) ([]*domain.Profile, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return nil, domain.ErrEmptySearchTerm
	}
	return s.profileRepo.Search(ctx, trimmed, excludeID, SearchResultLimit)
}

// PlayerCount returns the number of registered trainers.
func (s *ProfileService) PlayerCount(ctx context.Context) (int64, error) {
	return s.profileRepo.Count(ctx)
}
