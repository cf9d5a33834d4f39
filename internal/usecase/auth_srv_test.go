package usecase

import (
	"context"
	"testing"
	"time"

	"ecommerce-api/internal/data/entity"
	"ecommerce-api/internal/dto/request"
	"ecommerce-api/pkg/token"
	"ecommerce-api/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	resp, err := env.service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "ADMIN",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, "Alice", resp.Name)
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Equal(t, entity.RoleAdmin, resp.Role)

	stored, err := env.users.FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)

	// The stored credential must be a hash, never the plaintext
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
}

func TestRegister_EmailTaken(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	req := &request.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
		Role:     "USER",
	}

	_, err := env.service.Auth.Register(ctx, req)
	require.NoError(t, err)

	_, err = env.service.Auth.Register(ctx, req)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "hunter22",
		Role:     "USER",
	})
	require.NoError(t, err)

	resp, err := env.service.Auth.Login(ctx, &request.LoginRequest{
		Email:    "bob@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	// The token must carry the identity it was issued for
	claims, err := token.Parse(env.config.JWT, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, claims.Subject)
	assert.Equal(t, "bob@example.com", claims.Email)
	assert.Equal(t, entity.RoleUser, claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.service.Auth.Register(ctx, &request.RegisterRequest{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "hunter22",
		Role:     "USER",
	})
	require.NoError(t, err)

	_, err = env.service.Auth.Login(ctx, &request.LoginRequest{
		Email:    "bob@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	env := newTestEnv()

	_, err := env.service.Auth.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLogin_MalformedStoredHash(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	user := &entity.User{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:         "Carol",
		Email:        "carol@example.com",
		PasswordHash: "$2a$10$fakehash",
		Role:         entity.RoleUser,
	}
	require.NoError(t, env.users.Create(ctx, user))

	resp, err := env.service.Auth.Login(ctx, &request.LoginRequest{
		Email:    "carol@example.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, resp)
}
