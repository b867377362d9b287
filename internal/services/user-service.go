package services

import (
	"context"
	"time"

	"github.com/aarondl/null/v8"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/repositories"
	"gearguard/pkg/eventbus"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context) ([]entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error)
	UpdateUser(ctx context.Context, id string, payload dto.UpdateUserDTO) (*entities.User, error)
	SetAvatar(ctx context.Context, id string, avatarURL string) (*entities.User, error)
}

type UserService struct {
	userRepo    repositories.UserRepositoryInterface
	teamService TeamServiceInterface
	bus         *eventbus.Bus
	logger      *zap.Logger
}

func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	teamService TeamServiceInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) UserServiceInterface {
	return &UserService{
		userRepo:    userRepo,
		teamService: teamService,
		bus:         bus,
		logger:      logger,
	}
}

func (s *UserService) GetUsers(ctx context.Context) ([]entities.User, error) {
	return s.userRepo.GetAll(ctx)
}

func (s *UserService) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

// CreateUser inserts the user unassigned; a requested team is then joined
// through the team service's transactional membership operation, so both
// sides of the link change together or not at all.
func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*entities.User, error) {
	if payload.TeamID != nil {
		if _, err := s.teamService.FindByID(ctx, *payload.TeamID); err != nil {
			return nil, err
		}
	}

	user := &entities.User{
		Name:   payload.Name,
		Email:  null.StringFromPtr(payload.Email),
		Avatar: null.StringFromPtr(payload.Avatar),
		Role:   entities.UserRole(payload.Role),
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	if payload.TeamID != nil {
		if err := s.teamService.AddMember(ctx, *payload.TeamID, id); err != nil {
			return nil, err
		}
		user.TeamID = null.StringFrom(*payload.TeamID)
	}

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionUsers})
	s.logger.Info("user created", zap.String("id", id), zap.String("role", payload.Role))
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, id string, payload dto.UpdateUserDTO) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	changed := false
	if payload.Name != nil && *payload.Name != user.Name {
		user.Name = *payload.Name
		changed = true
	}
	if payload.Email != nil {
		user.Email = null.StringFrom(*payload.Email)
		changed = true
	}
	if payload.Avatar != nil {
		user.Avatar = null.StringFrom(*payload.Avatar)
		changed = true
	}
	if payload.Role != nil && entities.UserRole(*payload.Role) != user.Role {
		user.Role = entities.UserRole(*payload.Role)
		changed = true
	}
	if !changed {
		return user, nil
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionUsers})
	return user, nil
}

// SetAvatar points the user at a freshly uploaded avatar file.
func (s *UserService) SetAvatar(ctx context.Context, id string, avatarURL string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Avatar = null.StringFrom(avatarURL)
	user.UpdatedAt = time.Now().UTC()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.CollectionChanged{Collection: events.CollectionUsers})
	return user, nil
}
