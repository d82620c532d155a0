package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"teampoints/internal/lib"
	"teampoints/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) (int64, error)
	Update(ctx context.Context, activity *models.Activity) error
	Delete(ctx context.Context, activityID int64) error
	GetByID(ctx context.Context, activityID int64) (*models.Activity, error)
	List(ctx context.Context) ([]*models.ActivityDetailed, error)
}

type ActivityRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewActivityRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ActivityRepo {
	return &ActivityRepo{
		db:     db,
		getter: c,
	}
}

func (r *ActivityRepo) Create(ctx context.Context, activity *models.Activity) (int64, error) {
	const op = "activity_repo.Create"

	query := `
		INSERT INTO activities (user_id, activity_type_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id;
	`

	createdAt := activity.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	var activityID int64
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, activity.UserID, activity.ActivityTypeID, createdAt).
		Scan(&activityID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == fkViolationCode {
				return 0, ErrNotFound
			}
		}
		return 0, lib.Err(op, err)
	}

	return activityID, nil
}

func (r *ActivityRepo) Update(ctx context.Context, activity *models.Activity) error {
	const op = "activity_repo.Update"

	query := `
		UPDATE activities
		SET user_id = $1, activity_type_id = $2, created_at = $3
		WHERE id = $4;
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, query, activity.UserID, activity.ActivityTypeID, activity.CreatedAt, activity.ID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == fkViolationCode {
				return ErrNotFound
			}
		}
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *ActivityRepo) Delete(ctx context.Context, activityID int64) error {
	const op = "activity_repo.Delete"

	query := `DELETE FROM activities WHERE id = $1`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, activityID)
	if err != nil {
		return lib.Err(op, err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return lib.Err(op, err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *ActivityRepo) GetByID(ctx context.Context, activityID int64) (*models.Activity, error) {
	const op = "activity_repo.GetByID"

	query := `
		SELECT id, user_id, activity_type_id, created_at
		FROM activities
		WHERE id = $1;
	`

	var activity models.Activity
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &activity, query, activityID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &activity, nil
}

func (r *ActivityRepo) List(ctx context.Context) ([]*models.ActivityDetailed, error) {
	const op = "activity_repo.List"

	query := `
		SELECT a.id, a.user_id, u.name AS user_name,
		       a.activity_type_id, at.name AS activity_type_name, at.points,
		       a.created_at
		FROM activities a
		JOIN users u ON a.user_id = u.id
		JOIN activity_types at ON a.activity_type_id = at.id
		ORDER BY a.created_at DESC, a.id DESC;
	`

	var activities []*models.ActivityDetailed
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &activities, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.ActivityDetailed{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return activities, nil
}
