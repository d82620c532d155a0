package models

// UserPoints is one row of the grouped ledger sum: every user appears
// exactly once, with zero totals for users without activities.
type UserPoints struct {
	UserID        int64  `db:"user_id"`
	Name          string `db:"name"`
	IsActive      bool   `db:"is_active"`
	TotalPoints   int    `db:"total_points"`
	ActivityCount int    `db:"activity_count"`
}
