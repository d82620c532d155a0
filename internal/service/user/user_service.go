package user

import (
	"context"

	"teampoints/internal/http/api"
	"teampoints/internal/models"
	"teampoints/internal/service"
	"teampoints/internal/service/access"

	"golang.org/x/crypto/bcrypt"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=UserProvider
type UserProvider interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID int64) error
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]*models.UserWithTeam, error)
	Count(ctx context.Context) (int, error)
	SetIsActive(ctx context.Context, userID int64, isActive bool) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamProvider
type TeamProvider interface {
	GetByID(ctx context.Context, teamID int64) (*models.Team, error)
}

type UserService struct {
	trm          service.TransactionManager
	userProvider UserProvider
	teamProvider TeamProvider
}

func NewUserService(trm service.TransactionManager, userProvider UserProvider, teamProvider TeamProvider) *UserService {
	return &UserService{
		trm:          trm,
		userProvider: userProvider,
		teamProvider: teamProvider,
	}
}

type CreateInput struct {
	Email    string
	Name     string
	Role     string
	IsActive bool
	TeamID   *int64
	Password string
}

type UpdateInput struct {
	UserID   int64
	Email    string
	Name     string
	Role     string
	IsActive bool
	TeamID   *int64
	// Password is optional: blank means "leave unchanged", non-blank is
	// re-hashed and replaces the stored credential.
	Password string
}

func (s *UserService) Create(ctx context.Context, in CreateInput) (*api.UserSchema, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleMember
	}

	hash := ""
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(hashed)
	}

	resp := &api.UserSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if in.TeamID != nil {
			if _, err := s.teamProvider.GetByID(ctx, *in.TeamID); err != nil {
				return err
			}
		}

		user := &models.User{
			Email:        in.Email,
			Name:         in.Name,
			Role:         role,
			IsActive:     in.IsActive,
			TeamID:       in.TeamID,
			PasswordHash: hash,
		}

		userID, err := s.userProvider.Create(ctx, user)
		if err != nil {
			return err
		}

		resp.ID = userID
		resp.Email = user.Email
		resp.Name = user.Name
		resp.Role = user.Role
		resp.IsActive = user.IsActive
		resp.TeamID = user.TeamID

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *UserService) Update(ctx context.Context, in UpdateInput) (*api.UserSchema, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	resp := &api.UserSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		user, err := s.userProvider.GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}

		if in.TeamID != nil {
			if _, err := s.teamProvider.GetByID(ctx, *in.TeamID); err != nil {
				return err
			}
		}

		user.Email = in.Email
		user.Name = in.Name
		user.IsActive = in.IsActive
		user.TeamID = in.TeamID
		if in.Role != "" {
			user.Role = in.Role
		}
		if in.Password != "" {
			hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			user.PasswordHash = string(hashed)
		}

		if err := s.userProvider.Update(ctx, user); err != nil {
			return err
		}

		resp.ID = user.ID
		resp.Email = user.Email
		resp.Name = user.Name
		resp.Role = user.Role
		resp.IsActive = user.IsActive
		resp.TeamID = user.TeamID

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *UserService) Delete(ctx context.Context, userID int64) error {
	if _, err := access.RequireAdminNotSelf(ctx, userID); err != nil {
		return err
	}

	return s.userProvider.Delete(ctx, userID)
}

func (s *UserService) SetIsActive(ctx context.Context, userID int64, isActive bool) (*api.UserSchema, error) {
	if _, err := access.RequireAdminNotSelf(ctx, userID); err != nil {
		return nil, err
	}

	resp := &api.UserSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.userProvider.SetIsActive(ctx, userID, isActive); err != nil {
			return err
		}

		user, err := s.userProvider.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		resp.ID = user.ID
		resp.Email = user.Email
		resp.Name = user.Name
		resp.Role = user.Role
		resp.IsActive = user.IsActive
		resp.TeamID = user.TeamID

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (s *UserService) List(ctx context.Context, page, pageSize int) (*api.UserListResponse, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	resp := &api.UserListResponse{
		Users:    []api.UserSchema{},
		Page:     page,
		PageSize: pageSize,
	}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		users, err := s.userProvider.List(ctx, pageSize, (page-1)*pageSize)
		if err != nil {
			return err
		}

		total, err := s.userProvider.Count(ctx)
		if err != nil {
			return err
		}

		for _, u := range users {
			resp.Users = append(resp.Users, api.UserSchema{
				ID:       u.ID,
				Email:    u.Email,
				Name:     u.Name,
				Role:     u.Role,
				IsActive: u.IsActive,
				TeamID:   u.TeamID,
				TeamName: u.TeamName,
			})
		}
		resp.Total = total

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}
