package repo

import (
	"context"
	"database/sql"
	"errors"

	"teampoints/internal/lib"
	"teampoints/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
)

type StatsRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewStatsRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *StatsRepo {
	return &StatsRepo{
		db:     db,
		getter: c,
	}
}

// GetUserPointTotals is the single grouped sum over the ledger joined to
// the catalog. Every user appears exactly once; users without activities
// come back with zero totals via the LEFT JOINs.
func (r *StatsRepo) GetUserPointTotals(ctx context.Context) ([]*models.UserPoints, error) {
	const op = "stats_repo.GetUserPointTotals"

	query := `
		SELECT u.id AS user_id, u.name, u.is_active,
		       COALESCE(SUM(at.points), 0) AS total_points,
		       COUNT(a.id) AS activity_count
		FROM users u
		LEFT JOIN activities a ON a.user_id = u.id
		LEFT JOIN activity_types at ON a.activity_type_id = at.id
		GROUP BY u.id, u.name, u.is_active
		ORDER BY u.id ASC;
	`

	var totals []*models.UserPoints
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &totals, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.UserPoints{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return totals, nil
}

func (r *StatsRepo) GetRecentActivities(ctx context.Context, limit int) ([]*models.ActivityDetailed, error) {
	const op = "stats_repo.GetRecentActivities"

	query := `
		SELECT a.id, a.user_id, u.name AS user_name,
		       a.activity_type_id, at.name AS activity_type_name, at.points,
		       a.created_at
		FROM activities a
		JOIN users u ON a.user_id = u.id
		JOIN activity_types at ON a.activity_type_id = at.id
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $1;
	`

	var activities []*models.ActivityDetailed
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &activities, query, limit)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.ActivityDetailed{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return activities, nil
}
