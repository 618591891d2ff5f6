package domain

import (
	"time"

	"github.com/google/uuid"
)

// Game is a soul link run shared by two trainers. Immutable after creation.
type Game struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string    `json:"name" gorm:"not null"`
	Player1ID uuid.UUID `json:"player1Id" gorm:"type:uuid;not null;index"`
	Player2ID uuid.UUID `json:"player2Id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt"`

	// Relations
	Player1 *Profile `json:"player1,omitempty" gorm:"foreignKey:Player1ID"`
	Player2 *Profile `json:"player2,omitempty" gorm:"foreignKey:Player2ID"`
}

func (Game) TableName() string {
	return "soul_link_games"
}

// HasParticipant reports whether the user is one of the two players.
func (g *Game) HasParticipant(userID uuid.UUID) bool {
	return g.Player1ID == userID || g.Player2ID == userID
}

// OpponentID returns the other player's ID. The caller must already be a
// participant.
func (g *Game) OpponentID(userID uuid.UUID) uuid.UUID {
	if g.Player1ID == userID {
		return g.Player2ID
	}
	return g.Player1ID
}

// OpponentUsername returns the other player's username when relations are
// preloaded, or "" otherwise.
func (g *Game) OpponentUsername(userID uuid.UUID) string {
	if g.Player1ID == userID {
		if g.Player2 != nil {
			return g.Player2.Username
		}
		return ""
	}
	if g.Player1 != nil {
		return g.Player1.Username
	}
	return ""
}
