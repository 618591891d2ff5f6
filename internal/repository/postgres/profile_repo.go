package postgres

import (
	"context"
	"errors"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *profileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(ctx context.Context, profile *domain.Profile) error {
	err := r.db.WithContext(ctx).Create(profile).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrUsernameTaken
	}
	return err
}

func (r *profileRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.db.WithContext(ctx).First(&profile, "username = ?", username).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Update persists the profile. The unique index on username is the last
// word on renames racing past the service's pre-check.
func (r *profileRepository) Update(ctx context.Context, profile *domain.Profile) error {
	err := r.db.WithContext(ctx).Save(profile).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrUsernameTaken
	}
	return err
}

func (r *profileRepository) Search(ctx context.Context, term string, excludeID uuid.UUID, limit int) ([]*domain.Profile, error) {
	var profiles []*domain.Profile
	err := r.db.WithContext(ctx).
		Where("username ILIKE ?", "%"+term+"%").
		Where("id <> ?", excludeID).
		Limit(limit).
		Find(&profiles).Error
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *profileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Profile{}).Count(&count).Error
	return count, err
}
