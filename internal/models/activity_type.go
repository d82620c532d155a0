package models

import "time"

// ActivityType is a catalog entry. Its point value is resolved live at
// aggregation time, so editing it rewrites historical totals.
type ActivityType struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Points    int        `db:"points"`
	CreatedAt *time.Time `db:"created_at"`
}
