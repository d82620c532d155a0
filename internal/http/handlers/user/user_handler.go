package user

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"teampoints/internal/http/api"
	"teampoints/internal/lib/sl"
	repo "teampoints/internal/repository"
	"teampoints/internal/service/access"
	"teampoints/internal/service/user"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

const defaultPageSize = 25

type userService interface {
	Create(ctx context.Context, in user.CreateInput) (*api.UserSchema, error)
	Update(ctx context.Context, in user.UpdateInput) (*api.UserSchema, error)
	Delete(ctx context.Context, userID int64) error
	SetIsActive(ctx context.Context, userID int64, isActive bool) (*api.UserSchema, error)
	List(ctx context.Context, page, pageSize int) (*api.UserListResponse, error)
}

type UserHandler struct {
	log     *slog.Logger
	service userService
}

func NewUserHandler(log *slog.Logger, s userService) *UserHandler {
	return &UserHandler{
		log:     log,
		service: s,
	}
}

type CreateRequest struct {
	Email    string `json:"email"     validate:"required,email"`
	Name     string `json:"name"      validate:"required,max=100"`
	Role     string `json:"role"      validate:"omitempty,oneof=ADMIN MEMBER"`
	IsActive *bool  `json:"is_active"`
	TeamID   *int64 `json:"team_id"`
	Password string `json:"password"`
}

type UpdateRequest struct {
	UserID   int64  `json:"user_id"   validate:"required"`
	Email    string `json:"email"     validate:"required,email"`
	Name     string `json:"name"      validate:"required,max=100"`
	Role     string `json:"role"      validate:"omitempty,oneof=ADMIN MEMBER"`
	IsActive bool   `json:"is_active"`
	TeamID   *int64 `json:"team_id"`
	Password string `json:"password"`
}

type DeleteRequest struct {
	UserID int64 `json:"user_id" validate:"required"`
}

type SetIsActiveRequest struct {
	UserID   int64 `json:"user_id"   validate:"required"`
	IsActive bool  `json:"is_active"`
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Create"
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

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	resp, err := h.service.Create(ctx, user.CreateInput{
		Email:    input.Email,
		Name:     input.Name,
		Role:     input.Role,
		IsActive: isActive,
		TeamID:   input.TeamID,
		Password: input.Password,
	})
	if err != nil {
		writeServiceError(w, r, log, err, "error while creating user")
		return
	}

	log.Info("user created", slog.Int64("user_id", resp.ID))
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, api.UserResponse{User: *resp})
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Update"
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

	resp, err := h.service.Update(ctx, user.UpdateInput{
		UserID:   input.UserID,
		Email:    input.Email,
		Name:     input.Name,
		Role:     input.Role,
		IsActive: input.IsActive,
		TeamID:   input.TeamID,
		Password: input.Password,
	})
	if err != nil {
		writeServiceError(w, r, log, err, "error while updating user")
		return
	}

	log.Info("user updated", slog.Int64("user_id", resp.ID))
	render.JSON(w, r, api.UserResponse{User: *resp})
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.Delete"
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

	if err := h.service.Delete(ctx, input.UserID); err != nil {
		writeServiceError(w, r, log, err, "error while deleting user")
		return
	}

	log.Info("user deleted", slog.Int64("user_id", input.UserID))
	render.JSON(w, r, map[string]string{"status": "ok"})
}

func (h *UserHandler) SetIsActive(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.SetIsActive"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	var input SetIsActiveRequest

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

	resp, err := h.service.SetIsActive(ctx, input.UserID, input.IsActive)
	if err != nil {
		writeServiceError(w, r, log, err, "error while changing user")
		return
	}

	log.Info("user changed successfully", slog.Int64("user_id", resp.ID))
	render.JSON(w, r, api.UserResponse{User: *resp})
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.user.List"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	ctx := r.Context()

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "page must be a positive integer"))
			return
		}
		page = parsed
	}

	pageSize := defaultPageSize
	if raw := r.URL.Query().Get("page_size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, api.Error(api.ErrBadRequest, "page_size must be a positive integer"))
			return
		}
		pageSize = parsed
	}

	resp, err := h.service.List(ctx, page, pageSize)
	if err != nil {
		writeServiceError(w, r, log, err, "error while listing users")
		return
	}

	log.Info("users listed", slog.Int("count", len(resp.Users)))
	render.JSON(w, r, resp)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, msg string) {
	switch {
	case errors.Is(err, access.ErrSelfAction):
		log.Info("self action rejected", sl.Err(err))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, api.Error(api.ErrCodeSelfAction, err.Error()))
	case errors.Is(err, access.ErrForbidden):
		log.Info("forbidden", sl.Err(err))
		render.Status(r, http.StatusForbidden)
		render.JSON(w, r, api.Error(api.ErrCodeForbidden, err.Error()))
	case errors.Is(err, repo.ErrEmailExists):
		log.Info("email exists", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, api.Error(api.ErrCodeEmailExists, err.Error()))
	case errors.Is(err, repo.ErrNotFound):
		log.Info("user not found", sl.Err(err))
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, api.Error(api.ErrCodeNotFound, err.Error()))
	default:
		log.Error(msg, sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, api.InternalError())
	}
}
