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

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, userID int64) error
	GetByID(ctx context.Context, userID int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context, limit, offset int) ([]*models.UserWithTeam, error)
	Count(ctx context.Context) (int, error)
	SetIsActive(ctx context.Context, userID int64, isActive bool) error
}

type UserRepo struct {
	db     *sqlx.DB
	getter *trmsqlx.CtxGetter
}

func NewUserRepo(db *sqlx.DB, c *trmsqlx.CtxGetter) *UserRepo {
	return &UserRepo{
		db:     db,
		getter: c,
	}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	const op = "user_repo.Create"

	query := `
		INSERT INTO users (email, name, role, is_active, team_id, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING id;
	`

	var userID int64
	err := r.getter.
		DefaultTrOrDB(ctx, r.db).
		QueryRowContext(ctx, query, user.Email, user.Name, user.Role, user.IsActive, user.TeamID, user.PasswordHash).
		Scan(&userID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolationCode:
				return 0, ErrEmailExists
			case fkViolationCode:
				return 0, ErrNotFound
			}
		}
		return 0, lib.Err(op, err)
	}

	return userID, nil
}

func (r *UserRepo) Update(ctx context.Context, user *models.User) error {
	const op = "user_repo.Update"

	query := `
		UPDATE users
		SET email = $1, name = $2, role = $3, is_active = $4, team_id = $5, password_hash = $6
		WHERE id = $7;
	`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).
		ExecContext(ctx, query, user.Email, user.Name, user.Role, user.IsActive, user.TeamID, user.PasswordHash, user.ID)
	if err != nil {
		pgErr := &pq.Error{}
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case uniqueViolationCode:
				return ErrEmailExists
			case fkViolationCode:
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

func (r *UserRepo) Delete(ctx context.Context, userID int64) error {
	const op = "user_repo.Delete"

	// activities.user_id is ON DELETE CASCADE: the user's ledger rows go
	// with the user.
	query := `DELETE FROM users WHERE id = $1`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, userID)
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

func (r *UserRepo) GetByID(ctx context.Context, userID int64) (*models.User, error) {
	const op = "user_repo.GetByID"

	query := `
		SELECT id, email, name, role, is_active, team_id, password_hash, created_at
		FROM users
		WHERE id = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "user_repo.GetByEmail"

	query := `
		SELECT id, email, name, role, is_active, team_id, password_hash, created_at
		FROM users
		WHERE email = $1;
	`

	var user models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, lib.Err(op, err)
	}

	return &user, nil
}

func (r *UserRepo) List(ctx context.Context, limit, offset int) ([]*models.UserWithTeam, error) {
	const op = "user_repo.List"

	query := `
		SELECT u.id, u.email, u.name, u.role, u.is_active, u.team_id, u.password_hash, u.created_at,
		       t.name AS team_name
		FROM users u
		LEFT JOIN teams t ON u.team_id = t.id
		ORDER BY u.id ASC
		LIMIT $1 OFFSET $2;
	`

	var users []*models.UserWithTeam
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query, limit, offset)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.UserWithTeam{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return users, nil
}

func (r *UserRepo) Count(ctx context.Context) (int, error) {
	const op = "user_repo.Count"

	var count int
	err := r.getter.DefaultTrOrDB(ctx, r.db).GetContext(ctx, &count, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, lib.Err(op, err)
	}

	return count, nil
}

func (r *UserRepo) SetIsActive(ctx context.Context, userID int64, isActive bool) error {
	const op = "user_repo.SetIsActive"

	query := `UPDATE users SET is_active = $1 WHERE id = $2`

	res, err := r.getter.DefaultTrOrDB(ctx, r.db).ExecContext(ctx, query, isActive, userID)
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

func (r *UserRepo) GetUsersInTeam(ctx context.Context, teamID int64) ([]*models.User, error) {
	const op = "user_repo.GetUsersInTeam"

	query := `
		SELECT u.id, u.email, u.name, u.role, u.is_active, u.team_id, u.password_hash, u.created_at
		FROM users u
		WHERE u.team_id = $1
		ORDER BY u.id ASC;
	`

	var users []*models.User
	err := r.getter.DefaultTrOrDB(ctx, r.db).SelectContext(ctx, &users, query, teamID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []*models.User{}, nil
		}
		return nil, lib.Err(op, err)
	}

	return users, nil
}
