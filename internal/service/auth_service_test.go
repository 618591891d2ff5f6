package service_test

import (
	"context"
	"testing"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/alex/soul-link-tracker/internal/repository/postgres"
	"github.com/alex/soul-link-tracker/internal/service"
	"github.com/alex/soul-link-tracker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.Profile, repos.Session, cfg)
	ctx := context.Background()

	tests := []struct {
		name         string
		input        service.RegisterInput
		setup        func()
		wantErr      error
		checkProfile bool
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Username: "newtrainer",
				Password: "password123",
			},
			checkProfile: true,
		},
		{
			name: "username is trimmed",
			input: service.RegisterInput{
				Username: "  padded  ",
				Password: "password123",
			},
			checkProfile: true,
		},
		{
			name: "username too short",
			input: service.RegisterInput{
				Username: "ab",
				Password: "password123",
			},
			wantErr: domain.ErrUsernameTooShort,
		},
		{
			name: "password too short",
			input: service.RegisterInput{
				Username: "shortpw",
				Password: "12345",
			},
			wantErr: domain.ErrPasswordTooShort,
		},
		{
			name: "duplicate username",
			input: service.RegisterInput{
				Username: "existing",
				Password: "password123",
			},
			setup: func() {
				testutil.NewProfileBuilder().
					WithUsername("existing").
					Build(t, testDB.DB)
			},
			wantErr: domain.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clean up between tests
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			result, err := authService.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			if tt.checkProfile {
				assert.NotNil(t, result.Profile)
				assert.NotEmpty(t, result.AccessToken)
				assert.NotEmpty(t, result.RefreshToken)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.Profile, repos.Session, cfg)
	ctx := context.Background()

	profile, rawPassword := testutil.NewProfileBuilder().
		WithUsername("logintrainer").
		WithPassword("correctpassword").
		Build(t, testDB.DB)

	tests := []struct {
		name    string
		input   service.LoginInput
		wantErr error
	}{
		{
			name: "successful login",
			input: service.LoginInput{
				Username: "logintrainer",
				Password: rawPassword,
			},
		},
		{
			name: "wrong password",
			input: service.LoginInput{
				Username: "logintrainer",
				Password: "wrongpassword",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
		{
			name: "unknown username",
			input: service.LoginInput{
				Username: "nobody",
				Password: "whatever",
			},
			wantErr: domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := authService.Login(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, profile.ID, result.Profile.ID)
			assert.NotEmpty(t, result.AccessToken)
		})
	}
}

func TestAuthService_ValidateToken(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.Profile, repos.Session, cfg)
	ctx := context.Background()

	result, err := authService.Register(ctx, service.RegisterInput{
		Username: "tokentrainer",
		Password: "password123",
	})
	require.NoError(t, err)

	claims, err := authService.ValidateToken(result.AccessToken)
	require.NoError(t, err)

	sub, err := claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, result.Profile.ID.String(), sub)

	_, err = authService.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestAuthService_UpdatePassword(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cfg := testutil.TestConfig()
	authService := service.NewAuthService(repos.Profile, repos.Session, cfg)
	ctx := context.Background()

	profile, oldPassword := testutil.NewProfileBuilder().
		WithUsername("pwtrainer").
		Build(t, testDB.DB)

	err := authService.UpdatePassword(ctx, profile.ID, "newpassword456")
	require.NoError(t, err)

	_, err = authService.Login(ctx, service.LoginInput{
		Username: "pwtrainer",
		Password: oldPassword,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = authService.Login(ctx, service.LoginInput{
		Username: "pwtrainer",
		Password: "newpassword456",
	})
	assert.NoError(t, err)
}
