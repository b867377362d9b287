package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/repositories"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/utils"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, uint64, error)
	FindByID(ctx context.Context, id string) (*entities.Equipment, error)
	CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, id string) error
}

type EquipmentService struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	bus           *eventbus.Bus
	logger        *zap.Logger
}

func NewEquipmentService(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepo: equipmentRepo,
		bus:           bus,
		logger:        logger,
	}
}

func (s *EquipmentService) GetEquipment(ctx context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, uint64, error) {
	return s.equipmentRepo.GetEquipment(ctx, filter)
}

func (s *EquipmentService) FindByID(ctx context.Context, id string) (*entities.Equipment, error) {
	return s.equipmentRepo.FindByID(ctx, id)
}

func (s *EquipmentService) CreateEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	equipment := &entities.Equipment{
		Name:                payload.Name,
		SerialNumber:        payload.SerialNumber,
		PurchaseDate:        payload.PurchaseDate,
		WarrantyInfo:        payload.WarrantyInfo,
		Location:            payload.Location,
		Department:          payload.Department,
		AssignedEmployee:    payload.AssignedEmployee,
		MaintenanceTeamID:   payload.MaintenanceTeamID,
		DefaultTechnicianID: payload.DefaultTechnicianID,
		Category:            entities.EquipmentCategory(payload.Category),
		Status:              entities.EquipmentStatusActive,
	}

	id, err := s.equipmentRepo.Create(ctx, equipment)
	if err != nil {
		return nil, err
	}
	equipment.ID = id

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionEquipment})
	s.logger.Info("equipment created", zap.String("id", id), zap.String("name", equipment.Name))
	return equipment, nil
}

func (s *EquipmentService) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	equipment, err := s.equipmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !utils.ApplyUpdates(equipment, &payload) {
		return equipment, nil
	}
	equipment.UpdatedAt = time.Now().UTC()

	if err := s.equipmentRepo.Update(ctx, equipment); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionEquipment})
	return equipment, nil
}

func (s *EquipmentService) DeleteEquipment(ctx context.Context, id string) error {
	if _, err := s.equipmentRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.equipmentRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionEquipment})
	s.logger.Info("equipment deleted", zap.String("id", id))
	return nil
}
