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

type TeamRepository interface {
	Create(ctx context.Context, teamName string) (int64, error)
	Update(ctx context.Context, teamID int64, teamName string) error
	Delete(ctx context.Context, teamID int64) error
	GetByID(ctx context.Context, teamID int64) (*models.Team, error)
	GetByName(ctx context.Context, teamName string) (*models.Team, error)
	List(ctx context.Context) ([]*models.Team, error)
}

type TeamRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewTeamRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *TeamRepo {
	return &TeamRepo{
		db:     db,
		getter: c,
	}
}

func (r *TeamRepo) Create(ctx context.Context, teamName string) (int64, error) {
	const op = "team_repo.Create"

	query := `
		INSERT INTO teams (name, created_at)
		VALUES ($1, now())
		RETURNING id;
	`

	var teamID int64
	err := r.getter.DefaultTrOrDB(ctx, r.db).QueryRowContext(ctx, query, teamName).Scan(&teamID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return 0, ErrTeamExists
			}
		}
		return 0, lib.Err(op, err)
	}

	return teamID, nil
}

func (r *TeamRepo) Update(ctx context.Context, teamID int64, teamName string) error {
	const op = "team_repo.Update"

	query := `UPDATE teams SET name = $1 WHERE id = $2`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, teamName, teamID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			if pgErr.Code == uniqueViolationCode {
				return ErrTeamExists
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

func (r *TeamRepo) Delete(ctx context.Context, teamID int64) error {
	const op = "team_repo.Delete"

	// users.team_id is ON DELETE SET NULL: members survive the team.
	query := `DELETE FROM teams WHERE id = $1`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, teamID)
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

func (r *TeamRepo) GetByID(ctx context.Context, teamID int64) (*models.Team, error) {
	const op = "team_repo.GetByID"

	query := `
		SELECT id, name, created_at
		FROM teams
		WHERE id = $1;
	`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

func (r *TeamRepo) GetByName(ctx context.Context, teamName string) (*models.Team, error) {
	const op = "team_repo.GetByName"

	query := `
		SELECT id, name, created_at
		FROM teams
		WHERE name = $1;
	`

	var team models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &team, query, teamName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &team, nil
}

func (r *TeamRepo) List(ctx context.Context) ([]*models.Team, error) {
	const op = "team_repo.List"

	query := `
		SELECT id, name, created_at
		FROM teams
		ORDER BY name ASC;
	`

	var teams []*models.Team
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &teams, query)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.Team{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return teams, nil
}
