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

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const requestsTable = "requests"

const requestFields = `id, subject, equipment_id, type, scheduled_date, duration,
	assigned_technician_id, status, created_at, updated_at`

type RequestRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entities.MaintenanceRequest, error)
	GetRequests(ctx context.Context, filter dto.RequestFilter) ([]entities.MaintenanceRequest, uint64, error)
	FindByID(ctx context.Context, id string) (*entities.MaintenanceRequest, error)
	FindForUpdateInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.MaintenanceRequest, error)
	Create(ctx context.Context, request *entities.MaintenanceRequest) (string, error)
	Update(ctx context.Context, request *entities.MaintenanceRequest) error
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id string, status entities.RequestStatus, duration null.Float64) error
	Delete(ctx context.Context, id string) error
}

type RequestRepository struct {
	storage *pgxpool.Pool
}

func NewRequestRepository(storage *pgxpool.Pool) RequestRepositoryInterface {
	return &RequestRepository{storage: storage}
}

func scanRequest(row pgx.Row) (*entities.MaintenanceRequest, error) {
	var req entities.MaintenanceRequest
	err := row.Scan(
		&req.ID, &req.Subject, &req.EquipmentID, &req.Type, &req.ScheduledDate,
		&req.Duration, &req.AssignedTechnicianID, &req.Status, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) GetAll(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	query, args, err := psql.Select(requestFields).From(requestsTable).OrderBy("created_at").ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryRequests(ctx, query, args)
}

func (r *RequestRepository) GetRequests(ctx context.Context, filter dto.RequestFilter) ([]entities.MaintenanceRequest, uint64, error) {
	conds := sq.And{}
	if filter.Status != "" {
		conds = append(conds, sq.Eq{"status": filter.Status})
	}
	if filter.Type != "" {
		conds = append(conds, sq.Eq{"type": filter.Type})
	}
	if filter.EquipmentID != "" {
		conds = append(conds, sq.Eq{"equipment_id": filter.EquipmentID})
	}

	builder := psql.Select(requestFields).From(requestsTable).OrderBy("created_at")
	var where sq.Sqlizer
	if len(conds) > 0 {
		where = conds
		builder = builder.Where(conds)
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit).Offset(filter.Offset)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}

	items, err := r.queryRequests(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}

	total, err := countRows(ctx, r.storage, requestsTable, where)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *RequestRepository) queryRequests(ctx context.Context, query string, args []any) ([]entities.MaintenanceRequest, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	requests := make([]entities.MaintenanceRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

func (r *RequestRepository) FindByID(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	query, args, err := psql.Select(requestFields).From(requestsTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanRequest(r.storage.QueryRow(ctx, query, args...))
}

// FindForUpdateInTx row-locks the request so concurrent transitions
// serialize instead of racing.
func (r *RequestRepository) FindForUpdateInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.MaintenanceRequest, error) {
	return scanRequest(tx.QueryRow(ctx, `
		SELECT id, subject, equipment_id, type, scheduled_date, duration,
			assigned_technician_id, status, created_at, updated_at
		FROM requests WHERE id = $1 FOR UPDATE`, id))
}

func (r *RequestRepository) Create(ctx context.Context, request *entities.MaintenanceRequest) (string, error) {
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	request.CreatedAt = now
	request.UpdatedAt = now
	if request.Status == "" {
		request.Status = entities.RequestStatusNew
	}

	query := `
		INSERT INTO requests (id, subject, equipment_id, type, scheduled_date, duration,
			assigned_technician_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.storage.Exec(ctx, query,
		request.ID, request.Subject, request.EquipmentID, request.Type, request.ScheduledDate,
		request.Duration, request.AssignedTechnicianID, request.Status, request.CreatedAt, request.UpdatedAt,
	)
	if err != nil {
		return "", err
	}
	return request.ID, nil
}

func (r *RequestRepository) Update(ctx context.Context, request *entities.MaintenanceRequest) error {
	request.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE requests
		SET subject = $1, scheduled_date = $2, duration = $3, assigned_technician_id = $4,
			status = $5, updated_at = $6
		WHERE id = $7
	`
	result, err := r.storage.Exec(ctx, query,
		request.Subject, request.ScheduledDate, request.Duration, request.AssignedTechnicianID,
		request.Status, request.UpdatedAt, request.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id string, status entities.RequestStatus, duration null.Float64) error {
	if duration.Valid {
		tag, err := tx.Exec(ctx,
			"UPDATE requests SET status = $1, duration = $2, updated_at = $3 WHERE id = $4",
			status, duration, time.Now().UTC(), id,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrRequestNotFound
		}
		return nil
	}

	tag, err := tx.Exec(ctx,
		"UPDATE requests SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepository) Delete(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM requests WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrRequestNotFound
	}
	return nil
}
