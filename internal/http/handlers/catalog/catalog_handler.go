package catalog

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

type catalogService interface {
	Create(ctx context.Context, name string, points int) (*api.ActivityTypeSchema, error)
	Update(ctx context.Context, typeID int64, name string, points int) (*api.ActivityTypeSchema, error)
	Delete(ctx context.Context, typeID int64) error
	List(ctx context.Context) (*api.ActivityTypeListResponse, error)
}

type CatalogHandler struct {
	log     *slog.Logger
	service catalogService
}

func NewCatalogHandler(log *slog.Logger, s catalogService) *CatalogHandler {
	return &CatalogHandler{
		log:     log,
		service: s,
	}
}

type CreateRequest struct {
	Name   string `json:"name"   validate:"required,max=100"`
	Points *int   `json:"points" validate:"required,gte=0"`
}

type UpdateRequest struct {
	ActivityTypeID int64  `json:"activity_type_id" validate:"required"`
	Name           string `json:"name"             validate:"required,max=100"`
	Points         *int   `json:"points"           validate:"required,gte=0"`
}

type DeleteRequest struct {
	ActivityTypeID int64 `json:"activity_type_id" validate:"required"`
}

func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.Create"
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

	resp, err := h.service.Create(ctx, input.Name, *input.Points)
	if err != nil {
		writeServiceError(w, r, log, err, "error while creating activity type")
		return
	}

	log.Info("activity type created", slog.Int64("activity_type_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.ActivityTypeResponse{ActivityType: *resp})
}

func (h *CatalogHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.Update"
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

	resp, err := h.service.Update(ctx, input.ActivityTypeID, input.Name, *input.Points)
	if err != nil {
		writeServiceError(w, r, log, err, "error while updating activity type")
		return
	}

	log.Info("activity type updated", slog.Int64("activity_type_id", resp.ID))
	render.JSON(w, r, api.ActivityTypeResponse{ActivityType: *resp})
}

func (h *CatalogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.Delete"
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

	if err := h.service.Delete(ctx, input.ActivityTypeID); err != nil {
		writeServiceError(w, r, log, err, "error while deleting activity type")
		return
	}

	log.Info("activity type deleted", slog.Int64("activity_type_id", input.ActivityTypeID))
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	resp, err := h.service.List(ctx)
	if err != nil {
		writeServiceError(w, r, log, err, "error while listing activity types")
		return
	}

	log.Info("activity types listed", slog.Int("count", len(resp.ActivityTypes)))
	render.JSON(w, r, resp)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, access.ErrForbidden):
		log.Info("forbidden", sl.Err(err))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, api.Error(api.ErrCodeForbidden, err.Error()))
	case errors.Is(err, repo.ErrActivityTypeExists):
		log.Info("activity type exists", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrCodeTypeExists, err.Error()))
	case errors.Is(err, repo.ErrReferenced):
		log.Info("activity type in use", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrCodeTypeInUse, err.Error()))
	case errors.Is(err, repo.ErrNotFound):
		log.Info("activity type not found", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
	default:
		log.Error(msg, sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
	}
}
