package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const usersTable = "users"

const userFields = "id, name, email, avatar, team_id, role, created_at, updated_at"

type UserRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByIDInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.User, error)
	Create(ctx context.Context, user *entities.User) (string, error)
	Update(ctx context.Context, user *entities.User) error
	SetTeamIDInTx(ctx context.Context, tx pgx.Tx, id string, teamID null.String) error
}

type UserRepository struct {
	storage *pgxpool.Pool
}

func NewUserRepository(storage *pgxpool.Pool) UserRepositoryInterface {
	return &UserRepository{storage: storage}
}

func scanUser(row pgx.Row) (*entities.User, error) {
	var u entities.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Avatar, &u.TeamID, &u.Role, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetAll(ctx context.Context) ([]entities.User, error) {
	query, args, err := psql.Select(userFields).From(usersTable).OrderBy("created_at").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]entities.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	query, args, err := psql.Select(userFields).From(usersTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanUser(r.storage.QueryRow(ctx, query, args...))
}

func (r *UserRepository) FindByIDInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.User, error) {
	return scanUser(tx.QueryRow(ctx,
		"SELECT id, name, email, avatar, team_id, role, created_at, updated_at FROM users WHERE id = $1 FOR UPDATE", id))
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) (string, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	_, err := r.storage.Exec(ctx,
		"INSERT INTO users (id, name, email, avatar, team_id, role, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)",
		user.ID, user.Name, user.Email, user.Avatar, user.TeamID, user.Role, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	user.UpdatedAt = time.Now().UTC()

	result, err := r.storage.Exec(ctx,
		"UPDATE users SET name = $1, email = $2, avatar = $3, team_id = $4, role = $5, updated_at = $6 WHERE id = $7",
		user.Name, user.Email, user.Avatar, user.TeamID, user.Role, user.UpdatedAt, user.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetTeamIDInTx updates the denormalized back-reference; the membership
// service calls it in the same transaction as the member_ids change.
func (r *UserRepository) SetTeamIDInTx(ctx context.Context, tx pgx.Tx, id string, teamID null.String) error {
	result, err := tx.Exec(ctx,
		"UPDATE users SET team_id = $1, updated_at = $2 WHERE id = $3",
		teamID, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}
