package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MinUsernameLength is the shortest username other trainers can search for.
const MinUsernameLength = 3

// MinPasswordLength matches the identity provider's password policy.
const MinPasswordLength = 6

// Profile is a registered trainer. It doubles as the identity record:
// the password hash lives here and sessions reference it.
type Profile struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Username     string    `json:"username" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ValidateUsername trims the candidate and reports whether it is usable.
func ValidateUsername(username string) (string, error) {
	trimmed := strings.TrimSpace(username)
	if utf8.RuneCountInString(trimmed) < MinUsernameLength {
		return "", ErrUsernameTooShort
	}
	return trimmed, nil
}

type UserSession struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProfileID        uuid.UUID `json:"profileId" gorm:"type:uuid;not null;index"`
	RefreshTokenHash string    `json:"-" gorm:"not null"`
	ExpiresAt        time.Time `json:"expiresAt" gorm:"not null"`
	CreatedAt        time.Time `json:"createdAt"`
}
