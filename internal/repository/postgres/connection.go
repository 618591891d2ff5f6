package postgres

import (
	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/alex/soul-link-tracker/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates all tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Profile{},
		&domain.UserSession{},
		&domain.Game{},
		&domain.PokemonPair{},
		&domain.DeathStatistic{},
		&domain.GameRequest{},
		&domain.GameEvent{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Profile: NewProfileRepository(db),
		Session: NewSessionRepository(db),
		Game:    NewGameRepository(db),
		Pair:    NewPairRepository(db),
		Request: NewRequestRepository(db),
		Stats:   NewStatsRepository(db),
		Event:   NewEventRepository(db),
	}
}
