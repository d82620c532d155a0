// Package dashboard computes the leaderboard and KPI views. Totals are
// never stored: every call rescans the grouped ledger sum, so a point
// value edit on an activity type is reflected retroactively.
package dashboard

import (
	"context"
	"sort"

	"teampoints/internal/http/api"
	"teampoints/internal/models"
	"teampoints/internal/service/access"
)

const DefaultRecentLimit = 10

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=StatsProvider
type StatsProvider interface {
	GetUserPointTotals(ctx context.Context) ([]*models.UserPoints, error)
	GetRecentActivities(ctx context.Context, limit int) ([]*models.ActivityDetailed, error)
}

type DashboardService struct {
	statsProvider StatsProvider
}

func NewDashboardService(statsProvider StatsProvider) *DashboardService {
	return &DashboardService{
		statsProvider: statsProvider,
	}
}

// Leaderboard ranks active users by total points, descending. Tie-break
// is ascending user ID, which makes the order total and reproducible.
func (s *DashboardService) Leaderboard(ctx context.Context) (*api.LeaderboardResponse, error) {
	totals, err := s.statsProvider.GetUserPointTotals(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]api.LeaderboardEntry, 0, len(totals))
	for _, t := range totals {
		if !t.IsActive {
			continue
		}
		entries = append(entries, api.LeaderboardEntry{
			UserID:      t.UserID,
			Name:        t.Name,
			TotalPoints: t.TotalPoints,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].UserID < entries[j].UserID
	})

	return &api.LeaderboardResponse{Leaderboard: entries}, nil
}

// Kpis returns the global total across all users, inactive included,
// plus the caller's own total and activity count.
func (s *DashboardService) Kpis(ctx context.Context) (*api.KpiResponse, error) {
	id, err := access.RequireIdentity(ctx)
	if err != nil {
		return nil, err
	}

	totals, err := s.statsProvider.GetUserPointTotals(ctx)
	if err != nil {
		return nil, err
	}

	resp := &api.KpiResponse{}
	for _, t := range totals {
		resp.TotalPoints += t.TotalPoints
		if t.UserID == id.UserID {
			resp.MyPoints = t.TotalPoints
			resp.MyActivities = t.ActivityCount
		}
	}

	return resp, nil
}

func (s *DashboardService) RecentActivities(ctx context.Context, limit int) (*api.ActivityListResponse, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	activities, err := s.statsProvider.GetRecentActivities(ctx, limit)
	if err != nil {
		return nil, err
	}

	resp := &api.ActivityListResponse{Activities: []api.ActivitySchema{}}
	for _, a := range activities {
		resp.Activities = append(resp.Activities, api.ActivitySchema{
			ID:               a.ID,
			UserID:           a.UserID,
			UserName:         a.UserName,
			ActivityTypeID:   a.ActivityTypeID,
			ActivityTypeName: a.ActivityTypeName,
			Points:           a.Points,
			CreatedAt:        a.CreatedAt,
		})
	}

	return resp, nil
}
