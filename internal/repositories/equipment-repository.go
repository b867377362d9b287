package repositories

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

const equipmentTable = "equipment"

const equipmentFields = `id, name, serial_number, purchase_date, warranty_info, location,
	department, assigned_employee, maintenance_team_id, default_technician_id,
	category, status, created_at, updated_at`

type EquipmentRepositoryInterface interface {
	GetAll(ctx context.Context) ([]entities.Equipment, error)
	GetEquipment(ctx context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, uint64, error)
	FindByID(ctx context.Context, id string) (*entities.Equipment, error)
	Create(ctx context.Context, equipment *entities.Equipment) (string, error)
	Update(ctx context.Context, equipment *entities.Equipment) error
	UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id string, status entities.EquipmentStatus) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (uint64, error)
}

type EquipmentRepository struct {
	storage *pgxpool.Pool
}

func NewEquipmentRepository(storage *pgxpool.Pool) EquipmentRepositoryInterface {
	return &EquipmentRepository{storage: storage}
}

func scanEquipment(row pgx.Row) (*entities.Equipment, error) {
	var e entities.Equipment
	err := row.Scan(
		&e.ID, &e.Name, &e.SerialNumber, &e.PurchaseDate, &e.WarrantyInfo, &e.Location,
		&e.Department, &e.AssignedEmployee, &e.MaintenanceTeamID, &e.DefaultTechnicianID,
		&e.Category, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEquipmentNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (r *EquipmentRepository) GetAll(ctx context.Context) ([]entities.Equipment, error) {
	query, args, err := psql.Select(equipmentFields).From(equipmentTable).OrderBy("created_at").ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryEquipment(ctx, query, args)
}

func (r *EquipmentRepository) GetEquipment(ctx context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, uint64, error) {
	conds := sq.And{}
	if filter.Name != "" {
		conds = append(conds, sq.ILike{"name": "%" + filter.Name + "%"})
	}
	if filter.Category != "" {
		conds = append(conds, sq.Eq{"category": filter.Category})
	}
	if filter.Status != "" {
		conds = append(conds, sq.Eq{"status": filter.Status})
	}

	builder := psql.Select(equipmentFields).From(equipmentTable).OrderBy("created_at")
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

	items, err := r.queryEquipment(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}

	total, err := countRows(ctx, r.storage, equipmentTable, where)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *EquipmentRepository) queryEquipment(ctx context.Context, query string, args []any) ([]entities.Equipment, error) {
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]entities.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	return items, rows.Err()
}

func (r *EquipmentRepository) FindByID(ctx context.Context, id string) (*entities.Equipment, error) {
	query, args, err := psql.Select(equipmentFields).From(equipmentTable).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, err
	}
	return scanEquipment(r.storage.QueryRow(ctx, query, args...))
}

func (r *EquipmentRepository) Create(ctx context.Context, equipment *entities.Equipment) (string, error) {
	if equipment.ID == "" {
		equipment.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	equipment.CreatedAt = now
	equipment.UpdatedAt = now
	if equipment.Status == "" {
		equipment.Status = entities.EquipmentStatusActive
	}

	query := `
		INSERT INTO equipment (id, name, serial_number, purchase_date, warranty_info, location,
			department, assigned_employee, maintenance_team_id, default_technician_id,
			category, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.storage.Exec(ctx, query,
		equipment.ID, equipment.Name, equipment.SerialNumber, equipment.PurchaseDate,
		equipment.WarrantyInfo, equipment.Location, equipment.Department, equipment.AssignedEmployee,
		equipment.MaintenanceTeamID, equipment.DefaultTechnicianID, equipment.Category,
		equipment.Status, equipment.CreatedAt, equipment.UpdatedAt,
	)
	if err != nil {
		return "", err
	}
	return equipment.ID, nil
}

func (r *EquipmentRepository) Update(ctx context.Context, equipment *entities.Equipment) error {
	equipment.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE equipment
		SET name = $1, serial_number = $2, purchase_date = $3, warranty_info = $4,
			location = $5, department = $6, assigned_employee = $7, maintenance_team_id = $8,
			default_technician_id = $9, category = $10, status = $11, updated_at = $12
		WHERE id = $13
	`
	result, err := r.storage.Exec(ctx, query,
		equipment.Name, equipment.SerialNumber, equipment.PurchaseDate, equipment.WarrantyInfo,
		equipment.Location, equipment.Department, equipment.AssignedEmployee,
		equipment.MaintenanceTeamID, equipment.DefaultTechnicianID, equipment.Category,
		equipment.Status, equipment.UpdatedAt, equipment.ID,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEquipmentNotFound
	}
	return nil
}

// UpdateStatusInTx flips the equipment status inside an already-open
// transaction; the scrap cascade uses it so both writes commit together.
func (r *EquipmentRepository) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id string, status entities.EquipmentStatus) error {
	result, err := tx.Exec(ctx,
		"UPDATE equipment SET status = $1, updated_at = $2 WHERE id = $3",
		status, time.Now().UTC(), id,
	)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEquipmentNotFound
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id string) error {
	result, err := r.storage.Exec(ctx, "DELETE FROM equipment WHERE id = $1", id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrEquipmentNotFound
	}
	return nil
}

func (r *EquipmentRepository) Count(ctx context.Context) (uint64, error) {
	return countRows(ctx, r.storage, equipmentTable, nil)
}
