package user_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"teampoints/internal/http/api"
	"teampoints/internal/http/handlers"
	"teampoints/internal/http/handlers/mocks"
	userhandler "teampoints/internal/http/handlers/user"
	repo "teampoints/internal/repository"
	"teampoints/internal/service/access"
	usersvc "teampoints/internal/service/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserHandler_Create_Success(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	mockService.On("Create", mock.Anything, mock.MatchedBy(func(in usersvc.CreateInput) bool {
		return in.Email == "ana@example.com" && in.Name == "Ana" && in.IsActive
	})).Return(&api.UserSchema{
		ID:       7,
		Email:    "ana@example.com",
		Name:     "Ana",
		Role:     "MEMBER",
		IsActive: true,
	}, nil)

	handler := userhandler.NewUserHandler(handlers.NewLogger(), mockService)

	body := bytes.NewBufferString(`{"email": "ana@example.com", "name": "Ana", "password": "secret123"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/create", body)

	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)

	var resp api.UserResponse
	handlers.DecodeJSONResponse(t, rr.Body, &resp)
	assert.Equal(t, int64(7), resp.User.ID)
	assert.Equal(t, "ana@example.com", resp.User.Email)
}

func TestUserHandler_Create_InvalidEmail(t *testing.T) {
	mockService := mocks.NewMockUserService(t)

	handler := userhandler.NewUserHandler(handlers.NewLogger(), mockService)

	body := bytes.NewBufferString(`{"email": "not-an-email", "name": "Ana"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/create", body)

	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrValidationErr, resp.Error.Code)
	assert.Contains(t, resp.Error.Message, "Email")
	mockService.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserHandler_Create_Forbidden(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	mockService.On("Create", mock.Anything, mock.Anything).Return(nil, access.ErrForbidden)

	handler := userhandler.NewUserHandler(handlers.NewLogger(), mockService)

	body := bytes.NewBufferString(`{"email": "ana@example.com", "name": "Ana"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/create", body)

	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrCodeForbidden, resp.Error.Code)
}

func TestUserHandler_Create_EmailExists(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	mockService.On("Create", mock.Anything, mock.Anything).Return(nil, repo.ErrEmailExists)

	handler := userhandler.NewUserHandler(handlers.NewLogger(), mockService)

	body := bytes.NewBufferString(`{"email": "ana@example.com", "name": "Ana"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/create", body)

	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrCodeEmailExists, resp.Error.Code)
}

func TestUserHandler_Delete_SelfAction(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	mockService.On("Delete", mock.Anything, int64(1)).Return(access.ErrSelfAction)

	handler := userhandler.NewUserHandler(handlers.NewLogger(), mockService)

	body := bytes.NewBufferString(`{"user_id": 1}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/delete", body)

	rr := httptest.NewRecorder()
	handler.Delete(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrCodeSelfAction, resp.Error.Code)
}

func TestUserHandler_Delete_NotFound(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	mockService.On("Delete", mock.Anything, int64(99)).Return(repo.ErrNotFound)

	handler := userhandler.NewUserHandler(handlers.NewLogger(), mockService)

	body := bytes.NewBufferString(`{"user_id": 99}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/delete", body)

	rr := httptest.NewRecorder()
	handler.Delete(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrCodeNotFound, resp.Error.Code)
}

func TestUserHandler_SetIsActive_Success(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	mockService.On("SetIsActive", mock.Anything, int64(7), false).Return(&api.UserSchema{
		ID:       7,
		Email:    "ana@example.com",
		Name:     "Ana",
		Role:     "MEMBER",
		IsActive: false,
	}, nil)

	handler := userhandler.NewUserHandler(handlers.NewLogger(), mockService)

	body := bytes.NewBufferString(`{"user_id": 7, "is_active": false}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/set-is-active", body)

	rr := httptest.NewRecorder()
	handler.SetIsActive(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.UserResponse
	handlers.DecodeJSONResponse(t, rr.Body, &resp)
	assert.False(t, resp.User.IsActive)
}

func TestUserHandler_List_Defaults(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	mockService.On("List", mock.Anything, 1, 25).Return(&api.UserListResponse{
		Users:    []api.UserSchema{{ID: 7, Name: "Ana"}},
		Page:     1,
		PageSize: 25,
		Total:    1,
	}, nil)

	handler := userhandler.NewUserHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)

	rr := httptest.NewRecorder()
	handler.List(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp api.UserListResponse
	handlers.DecodeJSONResponse(t, rr.Body, &resp)
	assert.Len(t, resp.Users, 1)
	assert.Equal(t, 25, resp.PageSize)
}

func TestUserHandler_List_BadPage(t *testing.T) {
	mockService := mocks.NewMockUserService(t)

	handler := userhandler.NewUserHandler(handlers.NewLogger(), mockService)

	req := httptest.NewRequest(http.MethodGet, "/api/users?page=zero", nil)

	rr := httptest.NewRecorder()
	handler.List(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrBadRequest, resp.Error.Code)
	mockService.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserHandler_Update_InternalError(t *testing.T) {
	mockService := mocks.NewMockUserService(t)
	mockService.On("Update", mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	handler := userhandler.NewUserHandler(handlers.NewLogger(), mockService)

	body := bytes.NewBufferString(`{"user_id": 7, "email": "ana@example.com", "name": "Ana"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/users/update", body)

	rr := httptest.NewRecorder()
	handler.Update(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	resp := handlers.DecodeErrorResponse(t, rr.Body)
	assert.Equal(t, api.ErrInternalErr, resp.Error.Code)
}
