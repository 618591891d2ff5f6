package domain

import (
	"time"

	"github.com/google/uuid"
)

// DeathStatistic is a per-(game, player) death counter. A pair of zeroed rows
// is created in the same transaction as its game. Counters are a manual tally
// independent of pair deaths.
type DeathStatistic struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GameID     uuid.UUID `json:"gameId" gorm:"type:uuid;not null;uniqueIndex:idx_game_player"`
	PlayerID   uuid.UUID `json:"playerId" gorm:"type:uuid;not null;uniqueIndex:idx_game_player"`
	DeathCount int       `json:"deathCount" gorm:"not null;default:0"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Relations
	Game   *Game    `json:"-" gorm:"foreignKey:GameID"`
	Player *Profile `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
}

func (DeathStatistic) TableName() string {
	return "death_statistics"
}

// GameOutcome labels a player's standing in a game. Fewer deaths wins.
type GameOutcome string

const (
	OutcomeWinning GameOutcome = "Winning"
	OutcomeLosing  GameOutcome = "Losing"
	OutcomeTied    GameOutcome = "Tied"
)

// Outcome compares a player's death count against the opponent's.
func Outcome(ownDeaths, opponentDeaths int) GameOutcome {
	switch {
	case ownDeaths < opponentDeaths:
		return OutcomeWinning
	case ownDeaths > opponentDeaths:
		return OutcomeLosing
	default:
		return OutcomeTied
	}
}
