package team

import (
	"context"

	"teampoints/internal/http/api"
	"teampoints/internal/models"
	"teampoints/internal/service"
	"teampoints/internal/service/access"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TeamProvider
type TeamProvider interface {
	Create(ctx context.Context, teamName string) (int64, error)
	Update(ctx context.Context, teamID int64, teamName string) error
	Delete(ctx context.Context, teamID int64) error
	GetByName(ctx context.Context, teamName string) (*models.Team, error)
	List(ctx context.Context) ([]*models.Team, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=MemberProvider
type MemberProvider interface {
	GetUsersInTeam(ctx context.Context, teamID int64) ([]*models.User, error)
}

type TeamService struct {
	trm            service.TransactionManager
	teamProvider   TeamProvider
	memberProvider MemberProvider
}

func NewTeamService(
	trm service.TransactionManager,
	teamProvider TeamProvider,
	memberProvider MemberProvider,
) *TeamService {
	return &TeamService{
		trm:            trm,
		teamProvider:   teamProvider,
		memberProvider: memberProvider,
	}
}

func (s *TeamService) Create(ctx context.Context, teamName string) (*api.TeamSchema, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	teamID, err := s.teamProvider.Create(ctx, teamName)
	if err != nil {
		return nil, err
	}

	return &api.TeamSchema{
		ID:      teamID,
		Name:    teamName,
		Members: []api.TeamMember{},
	}, nil
}

func (s *TeamService) Update(ctx context.Context, teamID int64, teamName string) (*api.TeamSchema, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	resp := &api.TeamSchema{}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		if err := s.teamProvider.Update(ctx, teamID, teamName); err != nil {
			return err
		}

		members, err := s.memberProvider.GetUsersInTeam(ctx, teamID)
		if err != nil {
			return err
		}

		resp.ID = teamID
		resp.Name = teamName
		resp.Members = toMembers(members)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// Delete removes the team; members are detached, not deleted.
func (s *TeamService) Delete(ctx context.Context, teamID int64) error {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return err
	}

	return s.teamProvider.Delete(ctx, teamID)
}

func (s *TeamService) Get(ctx context.Context, teamName string) (*api.TeamSchema, error) {
	team, err := s.teamProvider.GetByName(ctx, teamName)
	if err != nil {
		return nil, err
	}

	members, err := s.memberProvider.GetUsersInTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	return &api.TeamSchema{
		ID:      team.ID,
		Name:    team.Name,
		Members: toMembers(members),
	}, nil
}

func (s *TeamService) List(ctx context.Context) (*api.TeamListResponse, error) {
	resp := &api.TeamListResponse{Teams: []api.TeamSchema{}}

	err := s.trm.Do(ctx, func(ctx context.Context) error {
		teams, err := s.teamProvider.List(ctx)
		if err != nil {
			return err
		}

		for _, t := range teams {
			members, err := s.memberProvider.GetUsersInTeam(ctx, t.ID)
			if err != nil {
				return err
			}

			resp.Teams = append(resp.Teams, api.TeamSchema{
				ID:      t.ID,
				Name:    t.Name,
				Members: toMembers(members),
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func toMembers(users []*models.User) []api.TeamMember {
	members := make([]api.TeamMember, 0, len(users))
	for _, u := range users {
		members = append(members, api.TeamMember{
			ID:       u.ID,
			Name:     u.Name,
			IsActive: u.IsActive,
		})
	}
	return members
}
