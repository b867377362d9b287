package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const teamsTable = "teams"

const teamFields = "id, name, description, member_ids, created_at, updated_at"

type TeamRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindByID(ctx context.Context, id string) (*entities.MaintenanceTeam, error)
	FindByIDInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.MaintenanceTeam, error)
	Create(ctx context.Context, team *entities.MaintenanceTeam) (string, error)
	Update(ctx context.Context, team *entities.MaintenanceTeam) error
	SetMemberIDsInTx(ctx context.Context, tx pgx.Tx, id string, memberIDs []string) error
	Delete(ctx context.Context, id string) error
}

type TeamRepository struct {
	storage *pgxpool.Pool
}

func NewTeamRepository(storage *pgxpool.Pool) TeamRepositoryInterface {
	return &TeamRepository{storage: storage}
}

func scanTeam(row pgx.Row) (*entities.MaintenanceTeam, error) {
	var t entities.MaintenanceTeam
	err := row.Scan(&t.ID, &t.Name, &t.Description, &t.MemberIDs, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, err
	}
	if t.MemberIDs == nil {
		t.MemberIDs = []string{}
	}
	return &t, nil
}

func (r *TeamRepository) GetAll(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	query, args, err := psql.Select(teamFields).From(teamsTable).OrderBy("created_at").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	teams := make([]entities.MaintenanceTeam, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, *t)
	}
	return teams, rows.Err()
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (*entities.MaintenanceTeam, error) {
	query, args, err := psql.Select(teamFields).From(teamsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanTeam(r.storage.QueryRow(ctx, query, args...))
}

// FindByIDInTx reads a team with a row lock so membership updates cannot
// interleave.
func (r *TeamRepository) FindByIDInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.MaintenanceTeam, error) {
	return scanTeam(tx.QueryRow(ctx,
		"SELECT id, name, description, member_ids, created_at, updated_at FROM teams WHERE id = $1 FOR UPDATE", id))
}

func (r *TeamRepository) Create(ctx context.Context, team *entities.MaintenanceTeam) (string, error) {
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	if team.MemberIDs == nil {
		team.MemberIDs = []string{}
	}
	now := time.Now().UTC()
	team.CreatedAt = now
	team.UpdatedAt = now

	_, err := r.storage.Exec(ctx,
		"INSERT INTO teams (id, name, description, member_ids, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)",
		team.ID, team.Name, team.Description, team.MemberIDs, team.CreatedAt, team.UpdatedAt,
	)
	if err != nil {
		return "", err
	}
	return team.ID, nil
}

func (r *TeamRepository) Update(ctx context.Context, team *entities.MaintenanceTeam) error {
	team.UpdatedAt = time.Now().UTC()

	result, err := r.storage.Exec(ctx,
		"UPDATE teams SET name = $1, description = $2, member_ids = $3, updated_at = $4 WHERE id = $5",
		team.Name, team.Description, team.MemberIDs, team.UpdatedAt, team.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepository) SetMemberIDsInTx(ctx context.Context, tx pgx.Tx, id string, memberIDs []string) error {
	if memberIDs == nil {
		memberIDs = []string{}
	}
	result, err := tx.Exec(ctx,
		"UPDATE teams SET member_ids = $1, updated_at = $2 WHERE id = $3",
		memberIDs, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM teams WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrTeamNotFound
	}
	return nil
}
