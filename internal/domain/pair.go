package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// PokemonPair links one Pokemon per trainer to a shared fate. The only state
// transition is alive -> dead and it is never reversed.
type PokemonPair struct {
	ID                  uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GameID              uuid.UUID  `json:"gameId" gorm:"type:uuid;not null;index"`
	Pokemon1Name        string     `json:"pokemon1Name" gorm:"not null"`
	Pokemon1Nickname    *string    `json:"pokemon1Nickname"`
	Pokemon2Name        string     `json:"pokemon2Name" gorm:"not null"`
	Pokemon2Nickname    *string    `json:"pokemon2Nickname"`
	IsDead              bool       `json:"isDead" gorm:"not null;default:false"`
	ResponsiblePlayerID *uuid.UUID `json:"responsiblePlayerId" gorm:"type:uuid"`
	DiedAt              *time.Time `json:"diedAt"`
	CreatedAt           time.Time  `json:"createdAt"`
	UpdatedAt           time.Time  `json:"updatedAt"`

	// Relations
	Game              *Game    `json:"-" gorm:"foreignKey:GameID"`
	ResponsiblePlayer *Profile `json:"responsiblePlayer,omitempty" gorm:"foreignKey:ResponsiblePlayerID"`
}

func (PokemonPair) TableName() string {
	return "pokemon_pairs"
}

// NormalizeNickname trims the nickname and collapses blank input to nil,
// so "no nickname" is stored as NULL rather than an empty string.
func NormalizeNickname(nickname string) *string {
	trimmed := strings.TrimSpace(nickname)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Pokemon1Display returns the nickname when set, otherwise the species name.
func (p *PokemonPair) Pokemon1Display() string {
	if p.Pokemon1Nickname != nil {
		return *p.Pokemon1Nickname
	}
	return p.Pokemon1Name
}

// Pokemon2Display returns the nickname when set, otherwise the species name.
func (p *PokemonPair) Pokemon2Display() string {
	if p.Pokemon2Nickname != nil {
		return *p.Pokemon2Nickname
	}
	return p.Pokemon2Name
}
