package domain

import "errors"

// Not-found errors
var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrGameNotFound    = errors.New("game not found")
	ErrPairNotFound    = errors.New("pokemon pair not found")
	ErrRequestNotFound = errors.New("game request not found")
)

// Authorization errors
var (
	ErrNotParticipant     = errors.New("user is not a participant of this game")
	ErrNotRequestReceiver = errors.New("only the receiver can respond to a request")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Validation errors
var (
	ErrUsernameTooShort     = errors.New("username must be at least 3 characters")
	ErrPasswordTooShort     = errors.New("password must be at least 6 characters")
	ErrEmptyGameName        = errors.New("game name is required")
	ErrEmptySearchTerm      = errors.New("search term is required")
	ErrEmptySpeciesName     = errors.New("both pokemon species names are required")
	ErrSelfPartner          = errors.New("cannot start a soul link with yourself")
	ErrResponsibleNotInGame = errors.New("responsible player is not part of this game")
	ErrInvalidDecision      = errors.New("decision must be accepted or declined")
)

// Conflict errors
var (
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrPairAlreadyDead   = errors.New("pokemon pair is already dead")
	ErrPairDead          = errors.New("pokemon pair is dead")
	ErrRequestNotPending = errors.New("request has already been responded to")
	ErrDuplicateRequest  = errors.New("a pending request to this player already exists")
)
