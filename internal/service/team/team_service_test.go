package team_test

import (
	"context"
	"errors"
	"testing"

	"teampoints/internal/models"
	repo "teampoints/internal/repository"
	"teampoints/internal/service/access"
	"teampoints/internal/service/mocks"
	"teampoints/internal/service/team"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func adminCtx(userID int64) context.Context {
	return access.WithIdentity(context.Background(), access.Identity{UserID: userID, Role: models.RoleAdmin})
}

func memberCtx(userID int64) context.Context {
	return access.WithIdentity(context.Background(), access.Identity{UserID: userID, Role: models.RoleMember})
}

func TestTeamService_Create_Success(t *testing.T) {
	ctx := adminCtx(1)

	mockTeams := mocks.NewTeamProvider(t)
	mockTeams.On("Create", ctx, "Blue").Return(int64(42), nil)

	service := team.NewTeamService(nil, mockTeams, nil)

	resp, err := service.Create(ctx, "Blue")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "Blue", resp.Name)
	assert.Empty(t, resp.Members)
}

func TestTeamService_Create_Forbidden(t *testing.T) {
	ctx := memberCtx(2)

	mockTeams := mocks.NewTeamProvider(t)

	service := team.NewTeamService(nil, mockTeams, nil)

	resp, err := service.Create(ctx, "Blue")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, access.ErrForbidden)
	mockTeams.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestTeamService_Create_TeamExists(t *testing.T) {
	ctx := adminCtx(1)

	mockTeams := mocks.NewTeamProvider(t)
	mockTeams.On("Create", ctx, "Blue").Return(int64(0), repo.ErrTeamExists)

	service := team.NewTeamService(nil, mockTeams, nil)

	resp, err := service.Create(ctx, "Blue")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrTeamExists)
}

func TestTeamService_Update_Success(t *testing.T) {
	ctx := adminCtx(1)

	mockTeams := mocks.NewTeamProvider(t)
	mockMembers := mocks.NewUserProvider(t)

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	mockTeams.On("Update", ctx, int64(3), "Indigo").Return(nil)
	mockMembers.On("GetUsersInTeam", ctx, int64(3)).Return([]*models.User{
		{ID: 7, Name: "Ana", IsActive: true},
	}, nil)

	mockTRM.On("Do", ctx, mock.AnythingOfType("func(context.Context) error")).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.NoError(t, fn(ctx))
		}).
		Return(nil).Once()

	service := team.NewTeamService(mockTRM, mockTeams, mockMembers)

	resp, err := service.Update(ctx, 3, "Indigo")

	assert.NoError(t, err)
	assert.Equal(t, "Indigo", resp.Name)
	assert.Len(t, resp.Members, 1)
	assert.Equal(t, "Ana", resp.Members[0].Name)
}

func TestTeamService_Delete_Forbidden(t *testing.T) {
	ctx := memberCtx(5)

	mockTeams := mocks.NewTeamProvider(t)

	service := team.NewTeamService(nil, mockTeams, nil)

	err := service.Delete(ctx, 3)

	assert.ErrorIs(t, err, access.ErrForbidden)
	mockTeams.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestTeamService_Delete_NotFound(t *testing.T) {
	ctx := adminCtx(1)

	mockTeams := mocks.NewTeamProvider(t)
	mockTeams.On("Delete", ctx, int64(9)).Return(repo.ErrNotFound)

	service := team.NewTeamService(nil, mockTeams, nil)

	err := service.Delete(ctx, 9)

	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTeamService_Get_Success(t *testing.T) {
	ctx := memberCtx(2)

	mockTeams := mocks.NewTeamProvider(t)
	mockMembers := mocks.NewUserProvider(t)

	mockTeams.On("GetByName", ctx, "Blue").Return(&models.Team{ID: 10, Name: "Blue"}, nil)
	mockMembers.On("GetUsersInTeam", ctx, int64(10)).Return([]*models.User{
		{ID: 1, Name: "Ana", IsActive: true},
		{ID: 2, Name: "Bo", IsActive: false},
	}, nil)

	service := team.NewTeamService(nil, mockTeams, mockMembers)

	resp, err := service.Get(ctx, "Blue")

	assert.NoError(t, err)
	assert.Equal(t, "Blue", resp.Name)
	assert.Len(t, resp.Members, 2)
	assert.False(t, resp.Members[1].IsActive)
}

func TestTeamService_Get_NotFound(t *testing.T) {
	ctx := memberCtx(2)

	mockTeams := mocks.NewTeamProvider(t)
	mockTeams.On("GetByName", ctx, "Ghost").Return(nil, repo.ErrNotFound)

	service := team.NewTeamService(nil, mockTeams, nil)

	resp, err := service.Get(ctx, "Ghost")

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestTeamService_List_MembersError(t *testing.T) {
	ctx := memberCtx(2)

	mockTeams := mocks.NewTeamProvider(t)
	mockMembers := mocks.NewUserProvider(t)

	mockTRM := &mocks.MockManager{}
	mockTRM.Test(t)
	t.Cleanup(func() { mockTRM.AssertExpectations(t) })

	fetchErr := errors.New("members fetch failed")

	mockTeams.On("List", ctx).Return([]*models.Team{{ID: 1, Name: "Blue"}}, nil)
	mockMembers.On("GetUsersInTeam", ctx, int64(1)).Return(nil, fetchErr)

	mockTRM.On("Do", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			fn := args.Get(1).(func(context.Context) error)
			assert.ErrorIs(t, fn(ctx), fetchErr)
		}).
		Return(fetchErr).Once()

	service := team.NewTeamService(mockTRM, mockTeams, mockMembers)

	resp, err := service.List(ctx)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, fetchErr)
}
