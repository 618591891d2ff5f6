package service_test

import (
	"context"
	"testing"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/alex/soul-link-tracker/internal/repository/postgres"
	"github.com/alex/soul-link-tracker/internal/service"
	"github.com/alex/soul-link-tracker/internal/testutil"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameService_CreateGame(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig(), nil)
	ctx := context.Background()

	creator, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	partner, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.CreateGameInput
		wantErr error
	}{
		{
			name: "successful creation",
			input: service.CreateGameInput{
				Name:      "FireRed Run",
				CreatorID: creator.ID,
				PartnerID: partner.ID,
			},
		},
		{
			name: "empty name",
			input: service.CreateGameInput{
				Name:      "   ",
				CreatorID: creator.ID,
				PartnerID: partner.ID,
			},
			wantErr: domain.ErrEmptyGameName,
		},
		{
			name: "partner is self",
			input: service.CreateGameInput{
				Name:      "Solo Run",
				CreatorID: creator.ID,
				PartnerID: creator.ID,
			},
			wantErr: domain.ErrSelfPartner,
		},
		{
			name: "unknown partner",
			input: service.CreateGameInput{
				Name:      "Ghost Run",
				CreatorID: creator.ID,
				PartnerID: uuid.New(),
			},
			wantErr: domain.ErrProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, err := services.Game.CreateGame(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "FireRed Run", game.Name)

			// Both players start with zeroed counters
			stats, err := repos.Stats.GetByGameID(ctx, game.ID)
			require.NoError(t, err)
			assert.Len(t, stats, 2)
		})
	}
}

func TestGameService_GetGame(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig(), nil)
	ctx := context.Background()

	player1, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	player2, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	outsider, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	game := testutil.NewGameBuilder().WithPlayers(player1, player2).Build(t, testDB.DB)

	tests := []struct {
		name        string
		gameID      uuid.UUID
		requesterID uuid.UUID
		wantErr     error
	}{
		{
			name:        "player one can view",
			gameID:      game.ID,
			requesterID: player1.ID,
		},
		{
			name:        "player two can view",
			gameID:      game.ID,
			requesterID: player2.ID,
		},
		{
			name:        "outsider is rejected",
			gameID:      game.ID,
			requesterID: outsider.ID,
			wantErr:     domain.ErrNotParticipant,
		},
		{
			name:        "missing game reports not found even for outsiders",
			gameID:      uuid.New(),
			requesterID: outsider.ID,
			wantErr:     domain.ErrGameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := services.Game.GetGame(ctx, tt.gameID, tt.requesterID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, game.ID, got.ID)
		})
	}
}

func TestGameService_ListEvents(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig(), nil)
	ctx := context.Background()

	creator, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	partner, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	outsider, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)

	game, err := services.Game.CreateGame(ctx, service.CreateGameInput{
		Name:      "Timeline Run",
		CreatorID: creator.ID,
		PartnerID: partner.ID,
	})
	require.NoError(t, err)

	events, err := services.Game.ListEvents(ctx, game.ID, partner.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.EventGameCreated, events[0].EventType)

	_, err = services.Game.ListEvents(ctx, game.ID, outsider.ID)
	assert.ErrorIs(t, err, domain.ErrNotParticipant)
}
