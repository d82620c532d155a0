package auth

import (
	"context"
	"errors"
	"strconv"
	"time"

	"teampoints/internal/http/api"
	"teampoints/internal/models"
	repo "teampoints/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is deliberately generic: it never reveals whether
// the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthService struct {
	userProvider UserProvider
	secret       []byte
	tokenTTL     time.Duration
}

func NewAuthService(userProvider UserProvider, secret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		userProvider: userProvider,
		secret:       []byte(secret),
		tokenTTL:     tokenTTL,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	user, err := s.userProvider.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !user.IsActive || user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  strconv.FormatInt(user.ID, 10),
		"role": user.Role,
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}

	return &api.LoginResponse{
		Token: signed,
		User: api.UserSchema{
			ID:       user.ID,
			Email:    user.Email,
			Name:     user.Name,
			Role:     user.Role,
			IsActive: user.IsActive,
			TeamID:   user.TeamID,
		},
	}, nil
}
