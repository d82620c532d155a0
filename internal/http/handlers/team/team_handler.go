package team

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"teampoints/internal/http/api"
	"teampoints/internal/lib/sl"
	repo "teampoints/internal/repository"
	"teampoints/internal/service/access"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type teamService interface {
	Create(ctx context.Context, teamName string) (*api.TeamSchema, error)
	Update(ctx context.Context, teamID int64, teamName string) (*api.TeamSchema, error)
	Delete(ctx context.Context, teamID int64) error
	Get(ctx context.Context, teamName string) (*api.TeamSchema, error)
	List(ctx context.Context) (*api.TeamListResponse, error)
}

type TeamHandler struct {
	log     *slog.Logger
	service teamService
}

func NewTeamHandler(log *slog.Logger, s teamService) *TeamHandler {
	return &TeamHandler{
		log:     log,
		service: s,
	}
}

type CreateRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type UpdateRequest struct {
	TeamID int64  `json:"team_id" validate:"required"`
	Name   string `json:"name"    validate:"required,max=100"`
}

type DeleteRequest struct {
	TeamID int64 `json:"team_id" validate:"required"`
}

func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Create"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input CreateRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.Create(ctx, input.Name)
	if err != nil {
		writeServiceError(w, r, log, err, "error while creating team")
		return
	}

	log.Info("team created successfully", slog.Int64("team_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.TeamResponse{Team: *resp})
}

func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Update"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input UpdateRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	resp, err := h.service.Update(ctx, input.TeamID, input.Name)
	if err != nil {
		writeServiceError(w, r, log, err, "error while updating team")
		return
	}

	log.Info("team updated", slog.Int64("team_id", resp.ID))
	render.JSON(w, r, api.TeamResponse{Team: *resp})
}

func (h *TeamHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Delete"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input DeleteRequest

	if err := render.DecodeJSON(r.Body, &input); err != nil {
		log.Error("failed to decode request body", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "bad request"))
		return
	}

	if err := validator.New().Struct(input); err != nil {
		validateError := err.(validator.ValidationErrors)

		log.Error("invalid request", sl.Err(err))

		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.ValidationError(validateError))
		return
	}

	if err := h.service.Delete(ctx, input.TeamID); err != nil {
		writeServiceError(w, r, log, err, "error while deleting team")
		return
	}

	log.Info("team deleted", slog.Int64("team_id", input.TeamID))
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.Get"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	teamName := r.URL.Query().Get("name")
	if teamName == "" {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrBadRequest, "name is required"))
		return
	}

	resp, err := h.service.Get(ctx, teamName)
	if err != nil {
		writeServiceError(w, r, log, err, "error while retrieving team")
		return
	}

	log.Info("team retrieved")
	render.JSON(w, r, api.TeamResponse{Team: *resp})
}

func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.team.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	resp, err := h.service.List(ctx)
	if err != nil {
		writeServiceError(w, r, log, err, "error while listing teams")
		return
	}

	log.Info("teams listed", slog.Int("count", len(resp.Teams)))
	render.JSON(w, r, resp)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, access.ErrForbidden):
		log.Info("forbidden", sl.Err(err))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, api.Error(api.ErrCodeForbidden, err.Error()))
	case errors.Is(err, repo.ErrTeamExists):
		log.Info("team exists", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrCodeTeamExists, err.Error()))
	case errors.Is(err, repo.ErrNotFound):
		log.Info("team not found", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
	default:
		log.Error(msg, sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
	}
}
