package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stf-adrian/start-from-scratch/internal/domain"
	"github.com/stf-adrian/start-from-scratch/internal/repository/postgres"
	"github.com/stf-adrian/start-from-scratch/internal/service"
	"github.com/stf-adrian/start-from-scratch/internal/testutil"
)

func TestAuthService_Register(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig(), testutil.TestLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		input   service.RegisterInput
		setup   func()
		wantErr error
	}{
		{
			name: "successful registration",
			input: service.RegisterInput{
				Username: "newuser",
				Email:    "new@example.com",
				Password: "Password123",
			},
		},
		{
			name: "duplicate email",
			input: service.RegisterInput{
				Username: "otheruser",
				Email:    "taken@example.com",
				Password: "Password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					WithEmail("taken@example.com").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrEmailTaken,
		},
		{
			name: "duplicate username",
			input: service.RegisterInput{
				Username: "existinguser",
				Email:    "unused@example.com",
				Password: "Password123",
			},
			setup: func() {
				testutil.NewUserBuilder().
					WithUsername("existinguser").
					WithEmail("taken@example.com").
					Build(t, testDB.DB)
			},
			wantErr: service.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testDB.Truncate(t)

			if tt.setup != nil {
				tt.setup()
			}

			user, err := services.Auth.Register(ctx, tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.input.Username, user.Username)
			assert.Equal(t, tt.input.Email, user.Email)
			assert.NotEqual(t, tt.input.Password, user.PasswordHash)
			assert.Nil(t, user.LastLogin)

			stored, err := repos.User.GetByEmail(ctx, tt.input.Email)
			require.NoError(t, err)
			assert.Equal(t, user.ID, stored.ID)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig(), testutil.TestLogger())
	ctx := context.Background()

	t.Run("successful login", func(t *testing.T) {
		testDB.Truncate(t)
		user, rawPassword := testutil.NewUserBuilder().
			WithEmail("login@example.com").
			Build(t, testDB.DB)

		result, err := services.Auth.Login(ctx, service.LoginInput{
			Email:     "login@example.com",
			Password:  rawPassword,
			IPAddress: "203.0.113.7",
			UserAgent: "go-test",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, user.ID, result.User.ID)
		require.NotNil(t, result.User.LastLogin)

		// Token is verifiable and carries the right identity
		claims, err := services.Tokens.Verify(result.Token)
		require.NoError(t, err)
		assert.Equal(t, user.ID.String(), claims.UserID)
		assert.Equal(t, user.Email, claims.Email)

		// LastLogin persisted
		stored, err := repos.User.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.NotNil(t, stored.LastLogin)

		// One successful audit record tied to the user
		records, err := repos.LoginRecord.RecentByUserID(ctx, user.ID, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].Success)
		require.NotNil(t, records[0].IPAddress)
		assert.Equal(t, "203.0.113.7", *records[0].IPAddress)
	})

	t.Run("wrong password records failed attempt", func(t *testing.T) {
		testDB.Truncate(t)
		user, _ := testutil.NewUserBuilder().
			WithEmail("wrongpw@example.com").
			Build(t, testDB.DB)

		_, err := services.Auth.Login(ctx, service.LoginInput{
			Email:    "wrongpw@example.com",
			Password: "Incorrect123",
		})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)

		records, err := repos.LoginRecord.RecentByUserID(ctx, user.ID, 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.False(t, records[0].Success)
	})

	t.Run("unknown email records attempt with no user", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := services.Auth.Login(ctx, service.LoginInput{
			Email:    "nobody@example.com",
			Password: "Whatever123",
		})
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)

		var records []*domain.LoginRecord
		require.NoError(t, testDB.DB.Find(&records).Error)
		require.Len(t, records, 1)
		assert.Nil(t, records[0].UserID)
		assert.False(t, records[0].Success)
	})

	t.Run("unknown email and wrong password return the same error", func(t *testing.T) {
		testDB.Truncate(t)
		testutil.NewUserBuilder().
			WithEmail("real@example.com").
			Build(t, testDB.DB)

		_, errUnknown := services.Auth.Login(ctx, service.LoginInput{
			Email:    "fake@example.com",
			Password: "Whatever123",
		})
		_, errWrongPw := services.Auth.Login(ctx, service.LoginInput{
			Email:    "real@example.com",
			Password: "Whatever123",
		})

		assert.ErrorIs(t, errUnknown, service.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPw, service.ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
	})
}

func TestAuthService_GetUserByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	services := service.NewServices(repos, testutil.TestConfig(), testutil.TestLogger())
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	found, err := services.Auth.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, found.Username)

	testDB.Truncate(t)
	_, err = services.Auth.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, service.ErrUserNotFound)
}
