package activity

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"teampoints/internal/http/api"
	"teampoints/internal/lib/sl"
	repo "teampoints/internal/repository"
	"teampoints/internal/service/access"
	"teampoints/internal/service/activity"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type activityService interface {
	Create(ctx context.Context, in activity.CreateInput) (*api.ActivitySchema, error)
	Update(ctx context.Context, in activity.UpdateInput) (*api.ActivitySchema, error)
	Delete(ctx context.Context, activityID int64) error
	List(ctx context.Context) (*api.ActivityListResponse, error)
}

type ActivityHandler struct {
	log     *slog.Logger
	service activityService
}

func NewActivityHandler(log *slog.Logger, s activityService) *ActivityHandler {
	return &ActivityHandler{
		log:     log,
		service: s,
	}
}

type CreateRequest struct {
	UserID         int64      `json:"user_id"          validate:"required"`
	ActivityTypeID int64      `json:"activity_type_id" validate:"required"`
	CreatedAt      *time.Time `json:"created_at"`
}

type UpdateRequest struct {
	ActivityID     int64      `json:"activity_id"      validate:"required"`
	UserID         int64      `json:"user_id"          validate:"required"`
	ActivityTypeID int64      `json:"activity_type_id" validate:"required"`
	CreatedAt      *time.Time `json:"created_at"`
}

type DeleteRequest struct {
	ActivityID int64 `json:"activity_id" validate:"required"`
}

func (h *ActivityHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.activity.Create"
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

	resp, err := h.service.Create(ctx, activity.CreateInput{
		UserID:         input.UserID,
		ActivityTypeID: input.ActivityTypeID,
		CreatedAt:      input.CreatedAt,
	})
	if err != nil {
		writeServiceError(w, r, log, err, "error while recording activity")
		return
	}

	log.Info("activity recorded", slog.Int64("activity_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.ActivityResponse{Activity: *resp})
}

func (h *ActivityHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.activity.Update"
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

	resp, err := h.service.Update(ctx, activity.UpdateInput{
		ActivityID:     input.ActivityID,
		UserID:         input.UserID,
		ActivityTypeID: input.ActivityTypeID,
		CreatedAt:      input.CreatedAt,
	})
	if err != nil {
		writeServiceError(w, r, log, err, "error while updating activity")
		return
	}

	log.Info("activity updated", slog.Int64("activity_id", resp.ID))
	render.JSON(w, r, api.ActivityResponse{Activity: *resp})
}

func (h *ActivityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.activity.Delete"
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

	if err := h.service.Delete(ctx, input.ActivityID); err != nil {
		writeServiceError(w, r, log, err, "error while deleting activity")
		return
	}

	log.Info("activity deleted", slog.Int64("activity_id", input.ActivityID))
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.activity.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	resp, err := h.service.List(ctx)
	if err != nil {
		writeServiceError(w, r, log, err, "error while listing activities")
		return
	}

	log.Info("activities listed", slog.Int("count", len(resp.Activities)))
	render.JSON(w, r, resp)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, access.ErrForbidden):
		log.Info("forbidden", sl.Err(err))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, api.Error(api.ErrCodeForbidden, err.Error()))
	case errors.Is(err, repo.ErrNotFound):
		log.Info("referenced resource not found", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
	default:
		log.Error(msg, sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
	}
}
