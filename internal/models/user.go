package models

import (
	"time"
)

const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

type User struct {
	ID           int64      `db:"id"`
	Email        string     `db:"email"`
	Name         string     `db:"name"`
	Role         string     `db:"role"`
	IsActive     bool       `db:"is_active"`
	TeamID       *int64     `db:"team_id"`
	PasswordHash string     `db:"password_hash"`
	CreatedAt    *time.Time `db:"created_at"`
}

// UserWithTeam is the listing projection: a user row joined to its
// team name, NULL for unassigned users.
type UserWithTeam struct {
	User
	TeamName *string `db:"team_name"`
}
