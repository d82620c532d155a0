package auth_test

import (
	"context"
	"testing"
	"time"

	"teampoints/internal/models"
	repo "teampoints/internal/repository"
	"teampoints/internal/service/auth"
	"teampoints/internal/service/mocks"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

func hash(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()

	mockUsers := mocks.NewUserProvider(t)
	mockUsers.On("GetByEmail", ctx, "ana@example.com").Return(&models.User{
		ID:           7,
		Email:        "ana@example.com",
		Name:         "Ana",
		Role:         models.RoleAdmin,
		IsActive:     true,
		PasswordHash: hash(t, "secret123"),
	}, nil)

	service := auth.NewAuthService(mockUsers, testSecret, time.Hour)

	resp, err := service.Login(ctx, "ana@example.com", "secret123")

	assert.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)

	token, err := jwt.Parse(resp.Token, func(tok *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	assert.NoError(t, err)
	assert.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "7", claims["sub"])
	assert.Equal(t, models.RoleAdmin, claims["role"])
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()

	mockUsers := mocks.NewUserProvider(t)
	mockUsers.On("GetByEmail", ctx, "ana@example.com").Return(&models.User{
		ID:           7,
		Email:        "ana@example.com",
		IsActive:     true,
		PasswordHash: hash(t, "secret123"),
	}, nil)

	service := auth.NewAuthService(mockUsers, testSecret, time.Hour)

	resp, err := service.Login(ctx, "ana@example.com", "wrong")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	mockUsers := mocks.NewUserProvider(t)
	mockUsers.On("GetByEmail", ctx, "ghost@example.com").Return(nil, repo.ErrNotFound)

	service := auth.NewAuthService(mockUsers, testSecret, time.Hour)

	resp, err := service.Login(ctx, "ghost@example.com", "whatever")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	ctx := context.Background()

	mockUsers := mocks.NewUserProvider(t)
	mockUsers.On("GetByEmail", ctx, "ana@example.com").Return(&models.User{
		ID:           7,
		Email:        "ana@example.com",
		IsActive:     false,
		PasswordHash: hash(t, "secret123"),
	}, nil)

	service := auth.NewAuthService(mockUsers, testSecret, time.Hour)

	resp, err := service.Login(ctx, "ana@example.com", "secret123")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_NoPasswordSet(t *testing.T) {
	ctx := context.Background()

	mockUsers := mocks.NewUserProvider(t)
	mockUsers.On("GetByEmail", ctx, "ana@example.com").Return(&models.User{
		ID:       7,
		Email:    "ana@example.com",
		IsActive: true,
	}, nil)

	service := auth.NewAuthService(mockUsers, testSecret, time.Hour)

	resp, err := service.Login(ctx, "ana@example.com", "")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
