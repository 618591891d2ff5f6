package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GameEventType identifies what happened in a game's timeline.
type GameEventType string

const (
	EventGameCreated      GameEventType = "game_created"
	EventPairAdded        GameEventType = "pair_added"
	EventNicknamesUpdated GameEventType = "nicknames_updated"
	EventPairDied         GameEventType = "pair_died"
	EventDeathRecorded    GameEventType = "death_recorded"
)

// GameEvent is one entry in a game's timeline. Events are append-only and
// mirror every mutation so both trainers can follow the run.
type GameEvent struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	GameID    uuid.UUID      `json:"gameId" gorm:"type:uuid;not null;index"`
	ActorID   uuid.UUID      `json:"actorId" gorm:"type:uuid;not null"`
	EventType GameEventType  `json:"eventType" gorm:"type:varchar(30);not null"`
	Payload   datatypes.JSON `json:"payload"`
	CreatedAt time.Time      `json:"createdAt"`

	// Relations
	Game  *Game    `json:"-" gorm:"foreignKey:GameID"`
	Actor *Profile `json:"actor,omitempty" gorm:"foreignKey:ActorID"`
}

func (GameEvent) TableName() string {
	return "game_events"
}

// NewGameEvent builds an event with the payload marshalled to JSON. A payload
// that cannot be marshalled is stored as an empty object rather than failing
// the mutation it describes.
func NewGameEvent(gameID, actorID uuid.UUID, eventType GameEventType, payload any) *GameEvent {
	data, err := json.Marshal(payload)
	if err != nil {
		data = []byte("{}")
	}
	return &GameEvent{
		ID:        uuid.New(),
		GameID:    gameID,
		ActorID:   actorID,
		EventType: eventType,
		Payload:   datatypes.JSON(data),
		CreatedAt: time.Now(),
	}
}
