package seeders

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"gearguard/internal/repositories"
)

// Seeder inserts the demo dataset once. The check and the inserts go
// through the repositories, so the same code path serves the application
// startup and the standalone seed command.
type Seeder struct {
	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	logger        *zap.Logger
}

func NewSeeder(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		userRepo:      userRepo,
		requestRepo:   requestRepo,
		logger:        logger,
	}
}

// SeedIfEmpty populates the demo dataset when no equipment exists yet.
func (s *Seeder) SeedIfEmpty(ctx context.Context) error {
	count, err := s.equipmentRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("seed check: %w", err)
	}
	if count > 0 {
		s.logger.Debug("seed skipped, equipment already present", zap.Uint64("count", count))
		return nil
	}

	for _, team := range demoTeams() {
		team := team
		if _, err := s.teamRepo.Create(ctx, &team); err != nil {
			return fmt.Errorf("seed team %s: %w", team.ID, err)
		}
	}
	for _, user := range demoUsers() {
		user := user
		if _, err := s.userRepo.Create(ctx, &user); err != nil {
			return fmt.Errorf("seed user %s: %w", user.ID, err)
		}
	}
	for _, equipment := range demoEquipment() {
		equipment := equipment
		if _, err := s.equipmentRepo.Create(ctx, &equipment); err != nil {
			return fmt.Errorf("seed equipment %s: %w", equipment.ID, err)
		}
	}
	for _, request := range demoRequests() {
		request := request
		if _, err := s.requestRepo.Create(ctx, &request); err != nil {
			return fmt.Errorf("seed request %s: %w", request.ID, err)
		}
	}

	s.logger.Info("demo data seeded")
	return nil
}
