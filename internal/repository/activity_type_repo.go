package repo

import (
	"context"
	"database/sql"
	"errors"

	"teampoints/internal/lib"
	"teampoints/internal/models"

	trmsqlx "github.com/avito-tech/go-transaction-manager/drivers/sqlx/v2"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type ActivityTypeRepository interface {
	Create(ctx context.Context, name string, points int) (int64, error)
	Update(ctx context.Context, typeID int64, name string, points int) error
	Delete(ctx context.Context, typeID int64) error
	GetByID(ctx context.Context, typeID int64) (*models.ActivityType, error)
	List(ctx context.Context) ([]*models.ActivityType, error)
}

type ActivityTypeRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewActivityTypeRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *ActivityTypeRepo {
	return &ActivityTypeRepo{
		db:     db,
		getter: c,
	}
}

func (r *ActivityTypeRepo) Create(ctx context.Context, name string, points int) (int64, error) {
	const op = "activity_type_repo.Create"

	query := `
		INSERT INTO activity_types (name, points, created_at)
		VALUES ($1, $2, now())
		RETURNING id;
	`

	var typeID int64
	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, query, name, points).Scan(&typeID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return 0, ErrActivityTypeExists
			}
		}
		return 0, lib.Err(op, err)
	}

	return typeID, nil
}

func (r *ActivityTypeRepo) Update(ctx context.Context, typeID int64, name string, points int) error {
	const op = "activity_type_repo.Update"

	// Retroactive: totals are computed from the live point value, so this
	// changes every historical activity of the type.
	query := `UPDATE activity_types SET name = $1, points = $2 WHERE id = $3`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, name, points, typeID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return ErrActivityTypeExists
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

func (r *ActivityTypeRepo) Delete(ctx context.Context, typeID int64) error {
	const op = "activity_type_repo.Delete"

	// activities.activity_type_id is ON DELETE RESTRICT: a referenced type
	// cannot be deleted.
	query := `DELETE FROM activity_types WHERE id = $1`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, typeID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == fkViolationCode {
				return ErrReferenced
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

func (r *ActivityTypeRepo) GetByID(ctx context.Context, typeID int64) (*models.ActivityType, error) {
	const op = "activity_type_repo.GetByID"

	query := `
		SELECT id, name, points, created_at
		FROM activity_types
		WHERE id = $1;
	`

	var activityType models.ActivityType
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &activityType, query, typeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &activityType, nil
}

func (r *ActivityTypeRepo) List(ctx context.Context) ([]*models.ActivityType, error) {
	const op = "activity_type_repo.List"

	query := `
		SELECT id, name, points, created_at
		FROM activity_types
		ORDER BY name ASC;
	`

	var types []*models.ActivityType
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &types, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.ActivityType{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return types, nil
}
