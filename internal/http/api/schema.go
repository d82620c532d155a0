package api

import "time"

type UserSchema struct {
	ID       int64   `json:"id"`
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Role     string  `json:"role"`
	IsActive bool    `json:"is_active"`
	TeamID   *int64  `json:"team_id,omitempty"`
	TeamName *string `json:"team_name,omitempty"`
}

type TeamSchema struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Members []TeamMember `json:"members"`
}

type TeamMember struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

type ActivityTypeSchema struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
}

type ActivitySchema struct {
	ID               int64     `json:"id"`
	UserID           int64     `json:"user_id"`
	UserName         string    `json:"user_name"`
	ActivityTypeID   int64     `json:"activity_type_id"`
	ActivityTypeName string    `json:"activity_type_name"`
	Points           int       `json:"points"`
	CreatedAt        time.Time `json:"created_at"`
}

type LeaderboardEntry struct {
	UserID      int64  `json:"user_id"`
	Name        string `json:"name"`
	TotalPoints int    `json:"total_points"`
}
