package services

import (
	"context"
	"errors"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/repositories"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/eventbus"
)

type RequestServiceInterface interface {
	GetRequests(ctx context.Context, filter dto.RequestFilter) ([]entities.MaintenanceRequest, uint64, error)
	FindByID(ctx context.Context, id string) (*entities.MaintenanceRequest, error)
	CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error)
	UpdateRequest(ctx context.Context, id string, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error)
	DeleteRequest(ctx context.Context, id string) error
	ApplyTransition(ctx context.Context, id string, newStatus string, duration *float64) (*entities.MaintenanceRequest, error)
}

type RequestService struct {
	requestRepo   repositories.RequestRepositoryInterface
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	txManager     repositories.TxManagerInterface
	bus           *eventbus.Bus
	logger        *zap.Logger
}

func NewRequestService(
	requestRepo repositories.RequestRepositoryInterface,
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) RequestServiceInterface {
	return &RequestService{
		requestRepo:   requestRepo,
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		txManager:     txManager,
		bus:           bus,
		logger:        logger,
	}
}

func (s *RequestService) GetRequests(ctx context.Context, filter dto.RequestFilter) ([]entities.MaintenanceRequest, uint64, error) {
	return s.requestRepo.GetRequests(ctx, filter)
}

func (s *RequestService) FindByID(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	return s.requestRepo.FindByID(ctx, id)
}

func (s *RequestService) CreateRequest(ctx context.Context, payload dto.CreateRequestDTO) (*entities.MaintenanceRequest, error) {
	equipment, err := s.equipmentRepo.FindByID(ctx, payload.EquipmentID)
	if err != nil {
		return nil, err
	}

	technicianID := null.StringFromPtr(payload.AssignedTechnicianID)
	if !technicianID.Valid && equipment.DefaultTechnicianID != "" {
		technicianID = null.StringFrom(equipment.DefaultTechnicianID)
	}
	if technicianID.Valid {
		if err := s.checkTechnicianOnTeam(ctx, equipment.MaintenanceTeamID, technicianID.String); err != nil {
			return nil, err
		}
	}

	request := &entities.MaintenanceRequest{
		Subject:              payload.Subject,
		EquipmentID:          payload.EquipmentID,
		Type:                 entities.RequestType(payload.Type),
		ScheduledDate:        null.StringFromPtr(payload.ScheduledDate),
		Duration:             null.Float64FromPtr(payload.Duration),
		AssignedTechnicianID: technicianID,
		Status:               entities.RequestStatusNew,
	}

	id, err := s.requestRepo.Create(ctx, request)
	if err != nil {
		return nil, err
	}
	request.ID = id

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionRequests})
	s.logger.Info("maintenance request created",
		zap.String("id", id),
		zap.String("equipmentId", payload.EquipmentID),
		zap.String("type", payload.Type))
	return request, nil
}

func (s *RequestService) UpdateRequest(ctx context.Context, id string, payload dto.UpdateRequestDTO) (*entities.MaintenanceRequest, error) {
	request, err := s.requestRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if payload.Subject != nil && *payload.Subject != request.Subject {
		request.Subject = *payload.Subject
		changed = true
	}
	if payload.ScheduledDate != nil {
		request.ScheduledDate = null.StringFrom(*payload.ScheduledDate)
		changed = true
	}
	if payload.Duration != nil {
		request.Duration = null.Float64From(*payload.Duration)
		changed = true
	}
	if payload.AssignedTechnicianID != nil {
		equipment, err := s.equipmentRepo.FindByID(ctx, request.EquipmentID)
		if err == nil {
			if err := s.checkTechnicianOnTeam(ctx, equipment.MaintenanceTeamID, *payload.AssignedTechnicianID); err != nil {
				return nil, err
			}
		}
		request.AssignedTechnicianID = null.StringFrom(*payload.AssignedTechnicianID)
		changed = true
	}
	if !changed {
		return request, nil
	}
	request.UpdatedAt = time.Now().UTC()

	if err := s.requestRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionRequests})
	return request, nil
}

func (s *RequestService) DeleteRequest(ctx context.Context, id string) error {
	if _, err := s.requestRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.requestRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionRequests})
	s.logger.Info("maintenance request deleted", zap.String("id", id))
	return nil
}

// ApplyTransition moves a request along the workflow inside a single
// transaction. Moving to Scrap marks the equipment Scrapped in the same
// transaction; a failure on either side rolls back both.
func (s *RequestService) ApplyTransition(ctx context.Context, id string, newStatus string, duration *float64) (*entities.MaintenanceRequest, error) {
	target := entities.RequestStatus(newStatus)
	if !target.Valid() {
		return nil, apperrors.NewInvalidInputError("unknown status %q", newStatus)
	}

	var updated *entities.MaintenanceRequest
	scrapped := false

	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		request, err := s.requestRepo.FindForUpdateInTx(ctx, tx, id)
		if err != nil {
			return err
		}

		if request.Status == target {
			updated = request
			return nil
		}
		if !request.Status.CanTransition(target) {
			return apperrors.ErrInvalidTransition
		}

		recorded := request.Duration
		if target == entities.RequestStatusRepaired {
			if duration != nil {
				recorded = null.Float64From(*duration)
			}
			if !recorded.Valid || recorded.Float64 <= 0 {
				return apperrors.ErrDurationRequired
			}
		}

		if err := s.requestRepo.UpdateStatusInTx(ctx, tx, id, target, recorded); err != nil {
			return err
		}

		if target == entities.RequestStatusScrap {
			err := s.equipmentRepo.UpdateStatusInTx(ctx, tx, request.EquipmentID, entities.EquipmentStatusScrapped)
			if err != nil && !errors.Is(err, apperrors.ErrEquipmentNotFound) {
				return err
			}
			scrapped = err == nil
		}

		request.Status = target
		request.Duration = recorded
		request.UpdatedAt = time.Now().UTC()
		updated = request
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionRequests})
	if scrapped {
		s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionEquipment})
	}
	s.logger.Info("request moved",
		zap.String("id", id),
		zap.String("status", newStatus),
		zap.Bool("equipmentScrapped", scrapped))
	return updated, nil
}

func (s *RequestService) checkTechnicianOnTeam(ctx context.Context, teamID, technicianID string) error {
	if teamID == "" {
		return apperrors.ErrTechnicianNotInTeam
	}
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return err
	}
	if !team.HasMember(technicianID) {
		return apperrors.ErrTechnicianNotInTeam
	}
	return nil
}
