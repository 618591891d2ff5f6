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

func TestPairService_CreatePair(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig(), nil)
	ctx := context.Background()

	player1, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	player2, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	outsider, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	game := testutil.NewGameBuilder().WithPlayers(player1, player2).Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.CreatePairInput
		check   func(t *testing.T, pair *domain.PokemonPair)
		wantErr error
	}{
		{
			name: "successful creation with nicknames",
			input: service.CreatePairInput{
				GameID:           game.ID,
				RequesterID:      player1.ID,
				Pokemon1Name:     "Torchic",
				Pokemon1Nickname: "Blaze",
				Pokemon2Name:     "Mudkip",
				Pokemon2Nickname: "Puddle",
			},
			check: func(t *testing.T, pair *domain.PokemonPair) {
				require.NotNil(t, pair.Pokemon1Nickname)
				assert.Equal(t, "Blaze", *pair.Pokemon1Nickname)
				assert.False(t, pair.IsDead)
			},
		},
		{
			name: "blank nickname is stored as nil",
			input: service.CreatePairInput{
				GameID:           game.ID,
				RequesterID:      player2.ID,
				Pokemon1Name:     "Zigzagoon",
				Pokemon1Nickname: "   ",
				Pokemon2Name:     "Poochyena",
			},
			check: func(t *testing.T, pair *domain.PokemonPair) {
				assert.Nil(t, pair.Pokemon1Nickname)
				assert.Nil(t, pair.Pokemon2Nickname)
			},
		},
		{
			name: "blank species is rejected",
			input: service.CreatePairInput{
				GameID:       game.ID,
				RequesterID:  player1.ID,
				Pokemon1Name: "  ",
				Pokemon2Name: "Wurmple",
			},
			wantErr: domain.ErrEmptySpeciesName,
		},
		{
			name: "outsider cannot add pairs",
			input: service.CreatePairInput{
				GameID:       game.ID,
				RequesterID:  outsider.ID,
				Pokemon1Name: "Taillow",
				Pokemon2Name: "Wingull",
			},
			wantErr: domain.ErrNotParticipant,
		},
		{
			name: "unknown game",
			input: service.CreatePairInput{
				GameID:       uuid.New(),
				RequesterID:  player1.ID,
				Pokemon1Name: "Ralts",
				Pokemon2Name: "Slakoth",
			},
			wantErr: domain.ErrGameNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := services.Pair.CreatePair(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.check != nil {
				tt.check(t, pair)
			}
		})
	}
}

func TestPairService_UpdateNicknames(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig(), nil)
	ctx := context.Background()

	player1, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	player2, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	game := testutil.NewGameBuilder().WithPlayers(player1, player2).Build(t, testDB.DB)
	pair := testutil.NewPairBuilder(game).WithNicknames("Before1", "Before2").Build(t, testDB.DB)

	updated, err := services.Pair.UpdateNicknames(ctx, service.UpdateNicknamesInput{
		PairID:           pair.ID,
		RequesterID:      player2.ID,
		Pokemon1Nickname: "After1",
		Pokemon2Nickname: "",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Pokemon1Nickname)
	assert.Equal(t, "After1", *updated.Pokemon1Nickname)
	assert.Nil(t, updated.Pokemon2Nickname)

	// A dead pair's nicknames are frozen
	_, err = services.Pair.MarkDead(ctx, service.MarkDeadInput{
		PairID:              pair.ID,
		RequesterID:         player1.ID,
		ResponsiblePlayerID: player1.ID,
	})
	require.NoError(t, err)

	_, err = services.Pair.UpdateNicknames(ctx, service.UpdateNicknamesInput{
		PairID:           pair.ID,
		RequesterID:      player1.ID,
		Pokemon1Nickname: "TooLate",
	})
	assert.ErrorIs(t, err, domain.ErrPairDead)
}

func TestPairService_MarkDead(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig(), nil)
	ctx := context.Background()

	player1, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	player2, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	outsider, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	game := testutil.NewGameBuilder().WithPlayers(player1, player2).Build(t, testDB.DB)
	pair := testutil.NewPairBuilder(game).Build(t, testDB.DB)

	// The responsible player must participate in the game, and a failed
	// attempt leaves the pair alive
	_, err := services.Pair.MarkDead(ctx, service.MarkDeadInput{
		PairID:              pair.ID,
		RequesterID:         player1.ID,
		ResponsiblePlayerID: outsider.ID,
	})
	assert.ErrorIs(t, err, domain.ErrResponsibleNotInGame)

	got, err := services.Pair.GetPair(ctx, pair.ID, player1.ID)
	require.NoError(t, err)
	assert.False(t, got.IsDead)

	dead, err := services.Pair.MarkDead(ctx, service.MarkDeadInput{
		PairID:              pair.ID,
		RequesterID:         player1.ID,
		ResponsiblePlayerID: player2.ID,
	})
	require.NoError(t, err)
	assert.True(t, dead.IsDead)
	require.NotNil(t, dead.ResponsiblePlayerID)
	assert.Equal(t, player2.ID, *dead.ResponsiblePlayerID)
	assert.NotNil(t, dead.DiedAt)

	// Death is one-way
	_, err = services.Pair.MarkDead(ctx, service.MarkDeadInput{
		PairID:              pair.ID,
		RequesterID:         player2.ID,
		ResponsiblePlayerID: player1.ID,
	})
	assert.ErrorIs(t, err, domain.ErrPairAlreadyDead)
}

func TestPairService_ListPairs(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig(), nil)
	ctx := context.Background()

	player1, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	player2, _ := testutil.NewProfileBuilder().Build(t, testDB.DB)
	game := testutil.NewGameBuilder().WithPlayers(player1, player2).Build(t, testDB.DB)

	alive := testutil.NewPairBuilder(game).WithSpecies("Treecko", "Torchic").Build(t, testDB.DB)
	doomed := testutil.NewPairBuilder(game).WithSpecies("Lotad", "Seedot").Build(t, testDB.DB)

	_, err := services.Pair.MarkDead(ctx, service.MarkDeadInput{
		PairID:              doomed.ID,
		RequesterID:         player1.ID,
		ResponsiblePlayerID: player1.ID,
	})
	require.NoError(t, err)

	list, err := services.Pair.ListPairs(ctx, game.ID, player2.ID)
	require.NoError(t, err)
	require.Len(t, list.Alive, 1)
	require.Len(t, list.Dead, 1)
	assert.Equal(t, alive.ID, list.Alive[0].ID)
	assert.Equal(t, doomed.ID, list.Dead[0].ID)
}
