package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/alex/soul-link-tracker/internal/repository/postgres"
	"github.com/alex/soul-link-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPairRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	game := testutil.NewGameBuilder().Build(t, testDB.DB)

	pair := &domain.PokemonPair{
		GameID:           game.ID,
		Pokemon1Name:     "Pidgey",
		Pokemon1Nickname: domain.NormalizeNickname("Wings"),
		Pokemon2Name:     "Rattata",
	}
	event := domain.NewGameEvent(game.ID, game.Player1ID, domain.EventPairAdded, nil)

	err := repos.Pair.Create(ctx, pair, event)
	require.NoError(t, err)

	got, err := repos.Pair.GetByID(ctx, pair.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pidgey", got.Pokemon1Name)
	require.NotNil(t, got.Pokemon1Nickname)
	assert.Equal(t, "Wings", *got.Pokemon1Nickname)
	assert.Nil(t, got.Pokemon2Nickname)
	assert.False(t, got.IsDead)

	events, err := repos.Event.GetByGameID(ctx, game.ID, 10)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestPairRepository_UpdateNicknames(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	game := testutil.NewGameBuilder().Build(t, testDB.DB)
	pair := testutil.NewPairBuilder(game).WithNicknames("Old1", "Old2").Build(t, testDB.DB)

	pair.Pokemon1Nickname = domain.NormalizeNickname("New1")
	pair.Pokemon2Nickname = domain.NormalizeNickname("")
	event := domain.NewGameEvent(game.ID, game.Player1ID, domain.EventNicknamesUpdated, nil)

	err := repos.Pair.UpdateNicknames(ctx, pair, event)
	require.NoError(t, err)

	got, err := repos.Pair.GetByID(ctx, pair.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Pokemon1Nickname)
	assert.Equal(t, "New1", *got.Pokemon1Nickname)
	// Clearing a nickname stores NULL, not an empty string
	assert.Nil(t, got.Pokemon2Nickname)
}

func TestPairRepository_UpdateNicknames_DeadPair(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	game := testutil.NewGameBuilder().Build(t, testDB.DB)
	pair := testutil.NewPairBuilder(game).Build(t, testDB.DB)

	diedAt := time.Now()
	pair.ResponsiblePlayerID = &game.Player1ID
	pair.DiedAt = &diedAt
	err := repos.Pair.MarkDead(ctx, pair, domain.NewGameEvent(game.ID, game.Player1ID, domain.EventPairDied, nil))
	require.NoError(t, err)

	pair.Pokemon1Nickname = domain.NormalizeNickname("TooLate")
	err = repos.Pair.UpdateNicknames(ctx, pair, domain.NewGameEvent(game.ID, game.Player1ID, domain.EventNicknamesUpdated, nil))
	assert.ErrorIs(t, err, domain.ErrPairDead)
}

func TestPairRepository_MarkDead(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	game := testutil.NewGameBuilder().Build(t, testDB.DB)
	pair := testutil.NewPairBuilder(game).Build(t, testDB.DB)

	diedAt := time.Now()
	pair.ResponsiblePlayerID = &game.Player2ID
	pair.DiedAt = &diedAt

	err := repos.Pair.MarkDead(ctx, pair, domain.NewGameEvent(game.ID, game.Player2ID, domain.EventPairDied, nil))
	require.NoError(t, err)

	got, err := repos.Pair.GetByID(ctx, pair.ID)
	require.NoError(t, err)
	assert.True(t, got.IsDead)
	require.NotNil(t, got.ResponsiblePlayerID)
	assert.Equal(t, game.Player2ID, *got.ResponsiblePlayerID)
	assert.NotNil(t, got.DiedAt)

	// Marking the same pair dead again is rejected
	err = repos.Pair.MarkDead(ctx, pair, domain.NewGameEvent(game.ID, game.Player2ID, domain.EventPairDied, nil))
	assert.ErrorIs(t, err, domain.ErrPairAlreadyDead)
}

func TestPairRepository_GetByGameID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	ctx := context.Background()

	game := testutil.NewGameBuilder().Build(t, testDB.DB)
	other := testutil.NewGameBuilder().Build(t, testDB.DB)

	testutil.NewPairBuilder(game).WithSpecies("Abra", "Machop").Build(t, testDB.DB)
	testutil.NewPairBuilder(game).WithSpecies("Geodude", "Zubat").Build(t, testDB.DB)
	testutil.NewPairBuilder(other).Build(t, testDB.DB)

	pairs, err := repos.Pair.GetByGameID(ctx, game.ID)
	require.NoError(t, err)
	assert.Len(t, pairs, 2)
}
