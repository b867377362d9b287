package services

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/repositories"
	"gearguard/pkg/eventbus"
)

type TeamServiceInterface interface {
	GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error)
	FindByID(ctx context.Context, id string) (*entities.MaintenanceTeam, error)
	CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error)
	UpdateTeam(ctx context.Context, id string, payload dto.UpdateTeamDTO) (*entities.MaintenanceTeam, error)
	DeleteTeam(ctx context.Context, id string) error
	AddMember(ctx context.Context, teamID, userID string) error
	RemoveMember(ctx context.Context, teamID, userID string) error
}

type TeamService struct {
	teamRepo  repositories.TeamRepositoryInterface
	userRepo  repositories.UserRepositoryInterface
	txManager repositories.TxManagerInterface
	bus       *eventbus.Bus
	logger    *zap.Logger
}

func NewTeamService(
	teamRepo repositories.TeamRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	txManager repositories.TxManagerInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) TeamServiceInterface {
	return &TeamService{
		teamRepo:  teamRepo,
		userRepo:  userRepo,
		txManager: txManager,
		bus:       bus,
		logger:    logger,
	}
}

func (s *TeamService) GetTeams(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	return s.teamRepo.GetAll(ctx)
}

func (s *TeamService) FindByID(ctx context.Context, id string) (*entities.MaintenanceTeam, error) {
	return s.teamRepo.FindByID(ctx, id)
}

func (s *TeamService) CreateTeam(ctx context.Context, payload dto.CreateTeamDTO) (*entities.MaintenanceTeam, error) {
	team := &entities.MaintenanceTeam{
		Name:        payload.Name,
		Description: payload.Description,
		MemberIDs:   []string{},
	}

	id, err := s.teamRepo.Create(ctx, team)
	if err != nil {
		return nil, err
	}
	team.ID = id

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionTeams})

	// initial members go through the same path as later additions so both
	// sides of the link stay consistent
	for _, userID := range payload.MemberIDs {
		if err := s.AddMember(ctx, id, userID); err != nil {
			return nil, err
		}
	}
	if len(payload.MemberIDs) > 0 {
		team, err = s.teamRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
	}

	s.logger.Info("team created", zap.String("id", id), zap.String("name", payload.Name))
	return team, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, id string, payload dto.UpdateTeamDTO) (*entities.MaintenanceTeam, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if payload.Name != nil && *payload.Name != team.Name {
		team.Name = *payload.Name
		changed = true
	}
	if payload.Description != nil && *payload.Description != team.Description {
		team.Description = *payload.Description
		changed = true
	}
	if !changed {
		return team, nil
	}
	team.UpdatedAt = time.Now().UTC()

	if err := s.teamRepo.Update(ctx, team); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionTeams})
	return team, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	if _, err := s.teamRepo.FindByID(ctx, id); err != nil {
		return err
	}
	// users.team_id is cleared by the schema (ON DELETE SET NULL)
	if err := s.teamRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionTeams})
	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionUsers})
	s.logger.Info("team deleted", zap.String("id", id))
	return nil
}

// AddMember puts the user on the team, moving them off their previous team
// first. The roster and the user's back-reference change in one
// transaction, both or neither.
func (s *TeamService) AddMember(ctx context.Context, teamID, userID string) error {
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		team, err := s.teamRepo.FindByIDInTx(ctx, tx, teamID)
		if err != nil {
			return err
		}
		user, err := s.userRepo.FindByIDInTx(ctx, tx, userID)
		if err != nil {
			return err
		}

		if user.TeamID.Valid && user.TeamID.String != teamID {
			previous, err := s.teamRepo.FindByIDInTx(ctx, tx, user.TeamID.String)
			if err == nil {
				if err := s.teamRepo.SetMemberIDsInTx(ctx, tx, previous.ID, without(previous.MemberIDs, userID)); err != nil {
					return err
				}
			}
		}

		if !team.HasMember(userID) {
			if err := s.teamRepo.SetMemberIDsInTx(ctx, tx, teamID, append(team.MemberIDs, userID)); err != nil {
				return err
			}
		}
		return s.userRepo.SetTeamIDInTx(ctx, tx, userID, null.StringFrom(teamID))
	})
	if err != nil {
		return err
	}

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionTeams})
	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionUsers})
	return nil
}

// RemoveMember takes the user off the team and clears their back-reference
// when it still points here.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, userID string) error {
	err := s.txManager.RunInTransaction(ctx, func(tx pgx.Tx) error {
		team, err := s.teamRepo.FindByIDInTx(ctx, tx, teamID)
		if err != nil {
			return err
		}
		user, err := s.userRepo.FindByIDInTx(ctx, tx, userID)
		if err != nil {
			return err
		}

		if team.HasMember(userID) {
			if err := s.teamRepo.SetMemberIDsInTx(ctx, tx, teamID, without(team.MemberIDs, userID)); err != nil {
				return err
			}
		}
		if user.TeamID.Valid && user.TeamID.String == teamID {
			return s.userRepo.SetTeamIDInTx(ctx, tx, userID, null.String{})
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionTeams})
	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionUsers})
	return nil
}

func without(ids []string, drop string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}
