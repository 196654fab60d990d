package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/cookbook/backend/internal/logger"
	"github.com/pageza/cookbook/backend/internal/service"
	"github.com/pageza/cookbook/backend/internal/testhelpers"
	"github.com/pageza/cookbook/backend/internal/types"
)

func TestAuthService(t *testing.T) {
	db := testhelpers.SetupSQLite(t)
	tokens := service.NewTokenService("test-secret", time.Hour)
	svc := service.NewAuthService(db, tokens, logger.Nop())
	ctx := context.Background()

	user, token, err := svc.Register(ctx, &types.RegisterRequest{
		Username:  " chef ",
		FirstName: "Julia",
		Password:  "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "chef", user.Username)
	assert.Equal(t, "USER", user.Role)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	t.Run("duplicate username", func(t *testing.T) {
		_, _, err := svc.Register(ctx, &types.RegisterRequest{Username: "chef", Password: "another-pass"})
		assert.ErrorIs(t, err, service.ErrUsernameTaken)
	})

	t.Run("login", func(t *testing.T) {
		got, token, err := svc.Login(ctx, "chef", "correct-horse")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.NotEmpty(t, token)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "chef", "wrong-horse")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, _, err := svc.Login(ctx, "nobody", "correct-horse")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}
