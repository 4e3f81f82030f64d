//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"mentorsync/internal/domain/user"
	"mentorsync/internal/handler/dto/request"
	"mentorsync/internal/infra"
	"mentorsync/internal/pkg/jwt"
	"mentorsync/internal/pkg/password"
	"mentorsync/internal/pkg/ptr"
	"mentorsync/internal/usecase/commands"
	"mentorsync/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserReadStore struct {
	byID       *queries.AuthorizedUserView
	byIDErr    error
	byEmail    *queries.AuthorizedUserView
	byEmailErr error
	hash       string
}

func (f *fakeUserReadStore) FindByID(_ context.Context, _ uuid.UUID) (*queries.AuthorizedUserView, error) {
	return f.byID, f.byIDErr
}

func (f *fakeUserReadStore) FindByEmail(_ context.Context, _ string) (*queries.AuthorizedUserView, string, error) {
	return f.byEmail, f.hash, f.byEmailErr
}

func testJWTService() *jwt.Service {
	return jwt.NewService("unit-test-secret", 15*time.Minute, 24*time.Hour)
}

func activeUserView(role string, hash string) (*fakeUserReadStore, *queries.AuthorizedUserView) {
	view := &queries.AuthorizedUserView{
		ID:       uuid.New(),
		Email:    "dana@example.com",
		Role:     role,
		IsActive: true,
	}
	return &fakeUserReadStore{byID: view, byEmail: view, hash: hash}, view
}

func TestRegister(t *testing.T) {
	t.Run("mentor registration creates profile", func(t *testing.T) {
		u := newFakeUoW()
		u.tx.users.createID = uuid.New()
		u.tx.mentors.createID = uuid.New()
		auth := commands.NewAuthCommands(u, &fakeUserReadStore{}, testJWTService())

		positionID := uuid.New()
		result, err := auth.Register(context.Background(), request.RegisterRequest{
			Email:           "dana@example.com",
			Password:        "s3cret-pass",
			Role:            "mentor",
			FirstName:       "Dana",
			LastName:        "Mentor",
			SessionRate:     ptr.To(90.0),
			MeetingLocation: ptr.To("Office 12B"),
			PositionID:      &positionID,
		})

		require.NoError(t, err)
		assert.Equal(t, u.tx.users.createID, result.UserID)
		assert.Equal(t, u.tx.mentors.createID, result.ProfileID)
		require.NotNil(t, u.tx.mentors.created)
		assert.Equal(t, "Dana Mentor", u.tx.mentors.created.FullName())
	})

	t.Run("acc_user registration creates profile", func(t *testing.T) {
		u := newFakeUoW()
		u.tx.users.createID = uuid.New()
		u.tx.accUsers.createID = uuid.New()
		auth := commands.NewAuthCommands(u, &fakeUserReadStore{}, testJWTService())

		result, err := auth.Register(context.Background(), request.RegisterRequest{
			Email:     "alex@example.com",
			Password:  "s3cret-pass",
			Role:      "acc_user",
			FirstName: "Alex",
			LastName:  "Seeker",
		})

		require.NoError(t, err)
		assert.Equal(t, u.tx.accUsers.createID, result.ProfileID)
		assert.Nil(t, u.tx.mentors.created)
	})

	t.Run("duplicate email", func(t *testing.T) {
		u := newFakeUoW()
		u.tx.users.createErr = infra.NewRepoErr("duplicate", infra.KindDuplicateKey)
		auth := commands.NewAuthCommands(u, &fakeUserReadStore{}, testJWTService())

		_, err := auth.Register(context.Background(), request.RegisterRequest{
			Email:     "dana@example.com",
			Password:  "s3cret-pass",
			Role:      "mentor",
			FirstName: "Dana",
			LastName:  "Mentor",
		})

		assert.ErrorIs(t, err, commands.ErrEmailTaken)
	})

	t.Run("unknown role", func(t *testing.T) {
		auth := commands.NewAuthCommands(newFakeUoW(), &fakeUserReadStore{}, testJWTService())

		_, err := auth.Register(context.Background(), request.RegisterRequest{
			Email:     "dana@example.com",
			Password:  "s3cret-pass",
			Role:      "superuser",
			FirstName: "Dana",
			LastName:  "Mentor",
		})

		assert.ErrorIs(t, err, commands.ErrInvalidRole)
	})
}

func TestLogin(t *testing.T) {
	const plain = "s3cret-pass"
	hash, err := password.HashPassword(plain)
	if err != nil {
		t.Fatalf("hash fixture: %v", err)
	}

	t.Run("returns token pair for valid credentials", func(t *testing.T) {
		store, view := activeUserView(string(user.RoleAccUser), hash)
		auth := commands.NewAuthCommands(newFakeUoW(), store, testJWTService())

		result, err := auth.Login(context.Background(), request.LoginRequest{
			Email:    view.Email,
			Password: plain,
		})

		require.NoError(t, err)
		assert.Equal(t, view.ID, result.UserID)
		assert.NotEmpty(t, result.TokenPair.AccessToken)
		assert.NotEmpty(t, result.TokenPair.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		store, view := activeUserView(string(user.RoleAccUser), hash)
		auth := commands.NewAuthCommands(newFakeUoW(), store, testJWTService())

		_, err := auth.Login(context.Background(), request.LoginRequest{
			Email:    view.Email,
			Password: "wrong-password",
		})

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email reads like a bad password", func(t *testing.T) {
		store := &fakeUserReadStore{byEmailErr: infra.NewRepoErr("user not found", infra.KindNotFound)}
		auth := commands.NewAuthCommands(newFakeUoW(), store, testJWTService())

		_, err := auth.Login(context.Background(), request.LoginRequest{
			Email:    "nobody@example.com",
			Password: plain,
		})

		assert.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		store, view := activeUserView(string(user.RoleMentor), hash)
		view.IsActive = false
		auth := commands.NewAuthCommands(newFakeUoW(), store, testJWTService())

		_, err := auth.Login(context.Background(), request.LoginRequest{
			Email:    view.Email,
			Password: plain,
		})

		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})
}

func TestRefreshToken(t *testing.T) {
	svc := testJWTService()

	t.Run("rotates both tokens", func(t *testing.T) {
		store, view := activeUserView(string(user.RoleMentor), "")
		refresh, err := svc.GenerateRefreshToken(view.ID, user.RoleMentor)
		require.NoError(t, err)
		auth := commands.NewAuthCommands(newFakeUoW(), store, svc)

		pair, err := auth.RefreshToken(context.Background(), refresh)

		require.NoError(t, err)
		assert.NotEmpty(t, pair.AccessToken)
		assert.NotEmpty(t, pair.RefreshToken)
	})

	t.Run("access token is not accepted as refresh", func(t *testing.T) {
		store, view := activeUserView(string(user.RoleMentor), "")
		access, err := svc.GenerateAccessToken(view.ID, user.RoleMentor)
		require.NoError(t, err)
		auth := commands.NewAuthCommands(newFakeUoW(), store, svc)

		_, err = auth.RefreshToken(context.Background(), access)

		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})

	t.Run("deactivated user cannot refresh", func(t *testing.T) {
		store, view := activeUserView(string(user.RoleMentor), "")
		view.IsActive = false
		refresh, err := svc.GenerateRefreshToken(view.ID, user.RoleMentor)
		require.NoError(t, err)
		auth := commands.NewAuthCommands(newFakeUoW(), store, svc)

		_, err = auth.RefreshToken(context.Background(), refresh)

		assert.ErrorIs(t, err, commands.ErrUserInactive)
	})

	t.Run("garbage token", func(t *testing.T) {
		auth := commands.NewAuthCommands(newFakeUoW(), &fakeUserReadStore{}, svc)

		_, err := auth.RefreshToken(context.Background(), "not-a-jwt")

		assert.ErrorIs(t, err, commands.ErrTokenValidation)
	})
}
