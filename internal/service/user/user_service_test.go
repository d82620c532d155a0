package user_test

import (
	"context"
	"testing"

	"teampoints/internal/models"
	repo "teampoints/internal/repository"
	"teampoints/internal/service/access"
	"teampoints/internal/service/mocks"
	"teampoints/internal/service/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func adminCtx(userID int64) context.Context {
	return access.WithIdentity(context.Background(), access.Identity{UserID: userID, Role: models.RoleAdmin})
}

func memberCtx(userID int64) context.Context {
	return access.WithIdentity(context.Background(), access.Identity{UserID: userID, Role: models.RoleMember})
}

func newTRM(t *testing.T) *mocks.MockManager {
	trm := &mocks.MockManager{}
	trm.Test(t)
	t.Cleanup(func() { trm.AssertExpectations(t) })
	return trm
}

func TestUserService_Create_Success(t *testing.T) {
	ctx := adminCtx(1)

	mockUsers := mocks.NewUserProvider(t)
	mockTeams := mocks.NewTeamProvider(t)
	mockTRM := newTRM(t)

	teamID := int64(3)

	mockTeams.On("GetByID", ctx, teamID).Return(&models.Team{ID: teamID, Name: "Blue"}, nil)

	mockUsers.On("Create", ctx, mock.MatchedBy(func(u *models.User) bool {
		if u.Email != "ana@example.com" || u.Name != "Ana" || u.Role != models.RoleMember {
			return false
		}
		if u.TeamID == nil || *u.TeamID != teamID || !u.IsActive {
			return false
		}
		// password must be stored hashed, never in plaintext
		return u.PasswordHash != "secret" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")) == nil
	})).Return(int64(10), nil)

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	service := user.NewUserService(mockTRM, mockUsers, mockTeams)

	resp, err := service.Create(ctx, user.CreateInput{
		Email:    "ana@example.com",
		Name:     "Ana",
		IsActive: true,
		TeamID:   &teamID,
		Password: "secret",
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(10), resp.ID)
	assert.Equal(t, models.RoleMember, resp.Role)
}

func TestUserService_Create_Forbidden(t *testing.T) {
	ctx := memberCtx(2)

	mockTRM := newTRM(t)

	service := user.NewUserService(mockTRM, mocks.NewUserProvider(t), mocks.NewTeamProvider(t))

	resp, err := service.Create(ctx, user.CreateInput{Email: "x@example.com", Name: "X"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, access.ErrForbidden)
}

func TestUserService_Create_EmailExists(t *testing.T) {
	ctx := adminCtx(1)

	mockUsers := mocks.NewUserProvider(t)
	mockTRM := newTRM(t)

	mockUsers.On("Create", ctx, mock.Anything).Return(int64(0), repo.ErrEmailExists)

	mockTRM.On("Do", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), repo.ErrEmailExists)
		}).
		Return(repo.ErrEmailExists).Once()

	service := user.NewUserService(mockTRM, mockUsers, mocks.NewTeamProvider(t))

	resp, err := service.Create(ctx, user.CreateInput{Email: "dup@example.com", Name: "Dup"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrEmailExists)
}

func TestUserService_Update_BlankPasswordKeepsHash(t *testing.T) {
	ctx := adminCtx(1)

	mockUsers := mocks.NewUserProvider(t)
	mockTRM := newTRM(t)

	existing := &models.User{
		ID:           5,
		Email:        "old@example.com",
		Name:         "Old",
		Role:         models.RoleMember,
		IsActive:     true,
		PasswordHash: "$2a$10$existinghash",
	}

	mockUsers.On("GetByID", ctx, int64(5)).Return(existing, nil)
	mockUsers.On("Update", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.ID == 5 && u.Email == "new@example.com" && u.PasswordHash == "$2a$10$existinghash"
	})).Return(nil)

	mockTRM.On("Do", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	service := user.NewUserService(mockTRM, mockUsers, mocks.NewTeamProvider(t))

	resp, err := service.Update(ctx, user.UpdateInput{
		UserID:   5,
		Email:    "new@example.com",
		Name:     "New",
		IsActive: true,
	})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", resp.Email)
}

func TestUserService_Update_NewPasswordRehashed(t *testing.T) {
	ctx := adminCtx(1)

	mockUsers := mocks.NewUserProvider(t)
	mockTRM := newTRM(t)

	existing := &models.User{ID: 5, Email: "u@example.com", Name: "U", Role: models.RoleMember, PasswordHash: "oldhash"}

	mockUsers.On("GetByID", ctx, int64(5)).Return(existing, nil)
	mockUsers.On("Update", ctx, mock.MatchedBy(func(u *models.User) bool {
		return u.PasswordHash != "oldhash" && u.PasswordHash != "newpass" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("newpass")) == nil
	})).Return(nil)

	mockTRM.On("Do", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	service := user.NewUserService(mockTRM, mockUsers, mocks.NewTeamProvider(t))

	_, err := service.Update(ctx, user.UpdateInput{
		UserID:   5,
		Email:    "u@example.com",
		Name:     "U",
		IsActive: true,
		Password: "newpass",
	})

	assert.NoError(t, err)
}

func TestUserService_Update_NotFound(t *testing.T) {
	ctx := adminCtx(1)

	mockUsers := mocks.NewUserProvider(t)
	mockTRM := newTRM(t)

	mockUsers.On("GetByID", ctx, int64(99)).Return(nil, repo.ErrNotFound)

	mockTRM.On("Do", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), repo.ErrNotFound)
		}).
		Return(repo.ErrNotFound).Once()

	service := user.NewUserService(mockTRM, mockUsers, mocks.NewTeamProvider(t))

	resp, err := service.Update(ctx, user.UpdateInput{UserID: 99, Email: "x@example.com", Name: "X"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestUserService_Delete_Success(t *testing.T) {
	ctx := adminCtx(1)

	mockUsers := mocks.NewUserProvider(t)
	mockUsers.On("Delete", ctx, int64(5)).Return(nil)

	service := user.NewUserService(nil, mockUsers, nil)

	err := service.Delete(ctx, 5)

	assert.NoError(t, err)
}

func TestUserService_Delete_Self(t *testing.T) {
	ctx := adminCtx(1)

	mockUsers := mocks.NewUserProvider(t)

	service := user.NewUserService(nil, mockUsers, nil)

	err := service.Delete(ctx, 1)

	assert.ErrorIs(t, err, access.ErrSelfAction)
	mockUsers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserService_Delete_Forbidden(t *testing.T) {
	ctx := memberCtx(2)

	mockUsers := mocks.NewUserProvider(t)

	service := user.NewUserService(nil, mockUsers, nil)

	err := service.Delete(ctx, 5)

	assert.ErrorIs(t, err, access.ErrForbidden)
	mockUsers.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUserService_SetIsActive_Self(t *testing.T) {
	ctx := adminCtx(3)

	mockUsers := mocks.NewUserProvider(t)

	service := user.NewUserService(nil, mockUsers, nil)

	resp, err := service.SetIsActive(ctx, 3, false)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, access.ErrSelfAction)
	mockUsers.AssertNotCalled(t, "SetIsActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_SetIsActive_Success(t *testing.T) {
	ctx := adminCtx(1)

	mockUsers := mocks.NewUserProvider(t)
	mockTRM := newTRM(t)

	mockUsers.On("SetIsActive", ctx, int64(5), false).Return(nil)
	mockUsers.On("GetByID", ctx, int64(5)).Return(&models.User{
		ID: 5, Email: "u@example.com", Name: "U", Role: models.RoleMember, IsActive: false,
	}, nil)

	mockTRM.On("Do", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	service := user.NewUserService(mockTRM, mockUsers, nil)

	resp, err := service.SetIsActive(ctx, 5, false)

	assert.NoError(t, err)
	assert.False(t, resp.IsActive)
}

func TestUserService_List_Success(t *testing.T) {
	ctx := adminCtx(1)

	mockUsers := mocks.NewUserProvider(t)
	mockTRM := newTRM(t)

	teamName := "Blue"
	users := []*models.UserWithTeam{
		{User: models.User{ID: 1, Email: "a@example.com", Name: "Ana", Role: models.RoleAdmin, IsActive: true}, TeamName: &teamName},
		{User: models.User{ID: 2, Email: "b@example.com", Name: "Bo", Role: models.RoleMember, IsActive: true}},
	}

	// page 2 with size 25 starts at offset 25
	mockUsers.On("List", ctx, 25, 25).Return(users, nil)
	mockUsers.On("Count", ctx).Return(30, nil)

	mockTRM.On("Do", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	service := user.NewUserService(mockTRM, mockUsers, nil)

	resp, err := service.List(ctx, 2, 25)

	assert.NoError(t, err)
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, 30, resp.Total)
	assert.Equal(t, "Blue", *resp.Users[0].TeamName)
	assert.Nil(t, resp.Users[1].TeamName)
}

func TestUserService_List_Forbidden(t *testing.T) {
	ctx := memberCtx(2)

	service := user.NewUserService(nil, mocks.NewUserProvider(t), nil)

	resp, err := service.List(ctx, 1, 25)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, access.ErrForbidden)
}
