package dashboard

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"teampoints/internal/http/api"
	"teampoints/internal/lib/sl"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type dashboardService interface {
	Leaderboard(ctx context.Context) (*api.LeaderboardResponse, error)
	Kpis(ctx context.Context) (*api.KpiResponse, error)
	RecentActivities(ctx context.Context, limit int) (*api.ActivityListResponse, error)
}

type DashboardHandler struct {
	log     *slog.Logger
	service dashboardService
}

func NewDashboardHandler(log *slog.Logger, s dashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:     log,
		service: s,
	}
}

func (h *DashboardHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.Leaderboard"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	resp, err := h.service.Leaderboard(ctx)
	if err != nil {
		log.Error("error while computing leaderboard", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *DashboardHandler) Kpis(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.Kpis"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	resp, err := h.service.Kpis(ctx)
	if err != nil {
		log.Error("error while computing kpis", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}

func (h *DashboardHandler) RecentActivities(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.RecentActivities"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	resp, err := h.service.RecentActivities(ctx, limit)
	if err != nil {
		log.Error("error while retrieving recent activities", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
		return
	}

	render.JSON(w, r, resp)
}
