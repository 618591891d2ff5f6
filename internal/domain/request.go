package domain

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is a game request's lifecycle state.
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusAccepted RequestStatus = "accepted"
	RequestStatusDeclined RequestStatus = "declined"
)

// RequestDecision is the receiver's answer to a pending request.
type RequestDecision string

const (
	DecisionAccepted RequestDecision = "accepted"
	DecisionDeclined RequestDecision = "declined"
)

func (d RequestDecision) IsValid() bool {
	return d == DecisionAccepted || d == DecisionDeclined
}

// GameRequest is an invitation from one trainer to another to start a soul
// link game. Only the receiver may move it out of pending, and accepted and
// declined are terminal.
type GameRequest struct {
	ID              uuid.UUID     `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	SenderID        uuid.UUID     `json:"senderId" gorm:"type:uuid;not null;index"`
	ReceiverID      uuid.UUID     `json:"receiverId" gorm:"type:uuid;not null;index"`
	GameName        string        `json:"gameName" gorm:"not null"`
	GameDescription *string       `json:"gameDescription"`
	Status          RequestStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`

	// Relations
	Sender   *Profile `json:"sender,omitempty" gorm:"foreignKey:SenderID"`
	Receiver *Profile `json:"receiver,omitempty" gorm:"foreignKey:ReceiverID"`
}

func (GameRequest) TableName() string {
	return "game_requests"
}

// IsPending reports whether the request can still be responded to.
func (r *GameRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}
