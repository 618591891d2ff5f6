package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ProfileBuilder creates test profiles with a builder pattern
type ProfileBuilder struct {
	username string
	password string
}

// NewProfileBuilder creates a new ProfileBuilder with default values
func NewProfileBuilder() *ProfileBuilder {
	return &ProfileBuilder{
		username: fmt.Sprintf("trainer_%s", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithUsername sets the username
func (b *ProfileBuilder) WithUsername(username string) *ProfileBuilder {
	b.username = username
	return b
}

// WithPassword sets the password
func (b *ProfileBuilder) WithPassword(password string) *ProfileBuilder {
	b.password = password
	return b
}

// Build creates the profile in the database and returns it with the raw password
func (b *ProfileBuilder) Build(t *testing.T, db *gorm.DB) (*domain.Profile, string) {
	t.Helper()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	profile := &domain.Profile{
		ID:           uuid.New(),
		Username:     b.username,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := db.Create(profile).Error; err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}

	return profile, b.password
}

// AuthResponse matches the API auth response
type AuthResponse struct {
	Profile struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"profile"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// BuildAndAuthenticate creates a profile via the API and returns it with an access token
func (b *ProfileBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.Profile, string) {
	t.Helper()

	reqBody := map[string]string{
		"username": b.username,
		"password": b.password,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/register"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to register profile: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var authResp AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	profileID, _ := uuid.Parse(authResp.Profile.ID)
	profile := &domain.Profile{
		ID:       profileID,
		Username: authResp.Profile.Username,
	}

	return profile, authResp.AccessToken
}

// GameBuilder creates test games with a builder pattern
type GameBuilder struct {
	name    string
	player1 *domain.Profile
	player2 *domain.Profile
}

// NewGameBuilder creates a new GameBuilder with default values
func NewGameBuilder() *GameBuilder {
	return &GameBuilder{
		name: "Soul Link Run",
	}
}

// WithName sets the game name
func (b *GameBuilder) WithName(name string) *GameBuilder {
	b.name = name
	return b
}

// WithPlayers sets both participants
func (b *GameBuilder) WithPlayers(p1, p2 *domain.Profile) *GameBuilder {
	b.player1 = p1
	b.player2 = p2
	return b
}

// Build creates the game with zeroed death statistics for both players
func (b *GameBuilder) Build(t *testing.T, db *gorm.DB) *domain.Game {
	t.Helper()

	if b.player1 == nil {
		profile, _ := NewProfileBuilder().Build(t, db)
		b.player1 = profile
	}
	if b.player2 == nil {
		profile, _ := NewProfileBuilder().Build(t, db)
		b.player2 = profile
	}

	game := &domain.Game{
		ID:        uuid.New(),
		Name:      b.name,
		Player1ID: b.player1.ID,
		Player2ID: b.player2.ID,
		CreatedAt: time.Now(),
	}

	if err := db.Create(game).Error; err != nil {
		t.Fatalf("failed to create game: %v", err)
	}

	for _, playerID := range []uuid.UUID{game.Player1ID, game.Player2ID} {
		stat := &domain.DeathStatistic{
			ID:       uuid.New(),
			GameID:   game.ID,
			PlayerID: playerID,
		}
		if err := db.Create(stat).Error; err != nil {
			t.Fatalf("failed to create death statistic: %v", err)
		}
	}

	return game
}

// PairBuilder creates test pokemon pairs with a builder pattern
type PairBuilder struct {
	game     *domain.Game
	species1 string
	species2 string
	nick1    *string
	nick2    *string
}

// NewPairBuilder creates a new PairBuilder with default values
func NewPairBuilder(game *domain.Game) *PairBuilder {
	return &PairBuilder{
		game:     game,
		species1: "Charmander",
		species2: "Squirtle",
	}
}

// WithSpecies sets both species names
func (b *PairBuilder) WithSpecies(s1, s2 string) *PairBuilder {
	b.species1 = s1
	b.species2 = s2
	return b
}

// WithNicknames sets both nicknames
func (b *PairBuilder) WithNicknames(n1, n2 string) *PairBuilder {
	b.nick1 = domain.NormalizeNickname(n1)
	b.nick2 = domain.NormalizeNickname(n2)
	return b
}

// Build creates the pair in the database
func (b *PairBuilder) Build(t *testing.T, db *gorm.DB) *domain.PokemonPair {
	t.Helper()

	pair := &domain.PokemonPair{
		ID:               uuid.New(),
		GameID:           b.game.ID,
		Pokemon1Name:     b.species1,
		Pokemon1Nickname: b.nick1,
		Pokemon2Name:     b.species2,
		Pokemon2Nickname: b.nick2,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := db.Create(pair).Error; err != nil {
		t.Fatalf("failed to create pair: %v", err)
	}

	return pair
}

// RequestBuilder creates pending game requests with a builder pattern
type RequestBuilder struct {
	sender      *domain.Profile
	receiver    *domain.Profile
	gameName    string
	description *string
}

// NewRequestBuilder creates a new RequestBuilder with default values
func NewRequestBuilder() *RequestBuilder {
	return &RequestBuilder{
		gameName: "HeartGold Soul Link",
	}
}

// WithSender sets the sender
func (b *RequestBuilder) WithSender(p *domain.Profile) *RequestBuilder {
	b.sender = p
	return b
}

// WithReceiver sets the receiver
func (b *RequestBuilder) WithReceiver(p *domain.Profile) *RequestBuilder {
	b.receiver = p
	return b
}

// WithGameName sets the proposed game name
func (b *RequestBuilder) WithGameName(name string) *RequestBuilder {
	b.gameName = name
	return b
}

// WithDescription sets the proposed game description
func (b *RequestBuilder) WithDescription(desc string) *RequestBuilder {
	b.description = &desc
	return b
}

// Build creates the pending request in the database
func (b *RequestBuilder) Build(t *testing.T, db *gorm.DB) *domain.GameRequest {
	t.Helper()

	if b.sender == nil {
		profile, _ := NewProfileBuilder().Build(t, db)
		b.sender = profile
	}
	if b.receiver == nil {
		profile, _ := NewProfileBuilder().Build(t, db)
		b.receiver = profile
	}

	request := &domain.GameRequest{
		ID:              uuid.New(),
		SenderID:        b.sender.ID,
		ReceiverID:      b.receiver.ID,
		GameName:        b.gameName,
		GameDescription: b.description,
		Status:          domain.RequestStatusPending,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := db.Create(request).Error; err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	return request
}

// CreateAuthenticatedRequest creates an HTTP request with auth token
func CreateAuthenticatedRequest(t *testing.T, method, url string, body interface{}, token string) *http.Request {
	t.Helper()

	var bodyReader *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	} else {
		bodyReader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, url, bodyReader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req
}
