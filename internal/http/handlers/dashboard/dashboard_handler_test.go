package dashboard_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"teampoints/internal/http/api"
	"teampoints/internal/http/handlers"
	dashboardhandler "teampoints/internal/http/handlers/dashboard"
	"teampoints/internal/http/handlers/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardHandler_Leaderboard_Success(t *testing.T) {
	mockService := mocks.NewMockDashboardService(t)
	mockService.On("Leaderboard", mock.Anything).Return(&api.LeaderboardResponse{
		Leaderboard: []api.LeaderboardEntry{
			{UserID: 7, Name: "Ana", TotalPoints: 40},
			{UserID: 8, Name: "Bo", TotalPoints: 20},
		},
	}, nil)

	handler := dashboardhandler.NewDashboardHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/leaderboard", nil)

	rr := httptest.NewRecorder()
	handler.Leaderboard(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.LeaderboardResponse
	handlers.DecodeJSONResponse(t, rr.Body, &resp)
	assert.Len(t, resp.Leaderboard, 2)
	assert.Equal(t, "Ana", resp.Leaderboard[0].Name)
	assert.Equal(t, 40, resp.Leaderboard[0].TotalPoints)
}

func TestDashboardHandler_Leaderboard_Error(t *testing.T) {
	mockService := mocks.NewMockDashboardService(t)
	mockService.On("Leaderboard", mock.Anything).Return(nil, errors.New("db down"))

	handler := dashboardhandler.NewDashboardHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/leaderboard", nil)

	rr := httptest.NewRecorder()
	handler.Leaderboard(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}

func TestDashboardHandler_Kpis_Success(t *testing.T) {
	mockService := mocks.NewMockDashboardService(t)
	mockService.On("Kpis", mock.Anything).Return(&api.KpiResponse{
		TotalPoints:  120,
		MyPoints:     40,
		MyActivities: 3,
	}, nil)

	handler := dashboardhandler.NewDashboardHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/kpis", nil)

	rr := httptest.NewRecorder()
	handler.Kpis(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.KpiResponse
	handlers.DecodeJSONResponse(t, rr.Body, &resp)
	assert.Equal(t, 120, resp.TotalPoints)
	assert.Equal(t, 40, resp.MyPoints)
	assert.Equal(t, 3, resp.MyActivities)
}

func TestDashboardHandler_RecentActivities_DefaultLimit(t *testing.T) {
	mockService := mocks.NewMockDashboardService(t)
	mockService.On("RecentActivities", mock.Anything, 0).Return(&api.ActivityListResponse{
		Activities: []api.ActivitySchema{
			{ID: 100, UserName: "Ana", ActivityTypeName: "Talk", Points: 20, CreatedAt: time.Now()},
		},
	}, nil)

	handler := dashboardhandler.NewDashboardHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/recent", nil)

	rr := httptest.NewRecorder()
	handler.RecentActivities(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.ActivityListResponse
	handlers.DecodeJSONResponse(t, rr.Body, &resp)
	assert.Len(t, resp.Activities, 1)
}

func TestDashboardHandler_RecentActivities_ExplicitLimit(t *testing.T) {
	mockService := mocks.NewMockDashboardService(t)
	mockService.On("RecentActivities", mock.Anything, 5).Return(&api.ActivityListResponse{
		Activities: []api.ActivitySchema{},
	}, nil)

	handler := dashboardhandler.NewDashboardHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/recent?limit=5", nil)

	rr := httptest.NewRecorder()
	handler.RecentActivities(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestDashboardHandler_RecentActivities_BadLimit(t *testing.T) {
	mockService := mocks.NewMockDashboardService(t)

	handler := dashboardhandler.NewDashboardHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/recent?limit=-1", nil)

	rr := httptest.NewRecorder()
	handler.RecentActivities(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
	mockService.AssertNotCalled(t, "RecentActivities", mock.Anything, mock.Anything)
}
