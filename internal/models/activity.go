package models

import "time"

// Activity is a ledger row: one user performed one activity type once.
type Activity struct {
	ID             int64     `db:"id"`
	UserID         int64     `db:"user_id"`
	ActivityTypeID int64     `db:"activity_type_id"`
	CreatedAt      time.Time `db:"created_at"`
}

// ActivityDetailed is an activity resolved to display names for the
// ledger listing and the recent feed.
type ActivityDetailed struct {
	ID               int64     `db:"id"`
	UserID           int64     `db:"user_id"`
	UserName         string    `db:"user_name"`
	ActivityTypeID   int64     `db:"activity_type_id"`
	ActivityTypeName string    `db:"activity_type_name"`
	Points           int       `db:"points"`
	CreatedAt        time.Time `db:"created_at"`
}
