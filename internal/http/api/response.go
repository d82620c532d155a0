package api

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	ErrInternalErr         = "INTERNAL_ERROR"
	ErrValidationErr       = "VALIDATION_ERROR"
	ErrBadRequest          = "BAD_REQUEST"
	ErrCodeNotFound        = "NOT_FOUND"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeSelfAction      = "SELF_ACTION"
	ErrCodeInvalidCreds    = "INVALID_CREDENTIALS"
	ErrCodeEmailExists     = "EMAIL_EXISTS"
	ErrCodeTeamExists      = "TEAM_EXISTS"
	ErrCodeTypeExists      = "TYPE_EXISTS"
	ErrCodeTypeInUse       = "TYPE_IN_USE"
)

type UserResponse struct {
	User UserSchema `json:"user"`
}

type UserListResponse struct {
	Users    []UserSchema `json:"users"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
	Total    int          `json:"total"`
}

type TeamResponse struct {
	Team TeamSchema `json:"team"`
}

type TeamListResponse struct {
	Teams []TeamSchema `json:"teams"`
}

type ActivityTypeResponse struct {
	ActivityType ActivityTypeSchema `json:"activity_type"`
}

type ActivityTypeListResponse struct {
	ActivityTypes []ActivityTypeSchema `json:"activity_types"`
}

type ActivityResponse struct {
	Activity ActivitySchema `json:"activity"`
}

type ActivityListResponse struct {
	Activities []ActivitySchema `json:"activities"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  UserSchema `json:"user"`
}

type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

type KpiResponse struct {
	TotalPoints  int `json:"total_points"`
	MyPoints     int `json:"my_points"`
	MyActivities int `json:"my_activities"`
}

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func Error(code string, msg string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: msg,
		},
	}
}

func InternalError() ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrInternalErr,
			Message: "internal server error",
		},
	}
}

func ValidationError(errs validator.ValidationErrors) ErrorResponse {
	var errMsgs []string
	for _, err := range errs {
		switch err.ActualTag() {
		case "required":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is required", err.Field()))
		case "email":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be a valid email", err.Field()))
		case "max":
			errMsgs = append(
				errMsgs,
				fmt.Sprintf("field '%s' must be no more than %s characters", err.Field(), err.Param()),
			)
		case "gte":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be at least %s", err.Field(), err.Param()))
		case "oneof":
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' must be one of: %s", err.Field(), err.Param()))
		default:
			errMsgs = append(errMsgs, fmt.Sprintf("field '%s' is not valid", err.Field()))
		}
	}

	return ErrorResponse{
		Error: ErrorDetail{
			Code:    ErrValidationErr,
			Message: strings.Join(errMsgs, ", "),
		},
	}
}
