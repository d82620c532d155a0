package models

import "time"

type Team struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	CreatedAt *time.Time `db:"created_at"`
}
