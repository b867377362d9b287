package seeders

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/repositories"
)

type countingEquipmentRepo struct {
	repositories.EquipmentRepositoryInterface
	count   uint64
	created []string
}

func (f *countingEquipmentRepo) Count(ctx context.Context) (uint64, error) {
	return f.count, nil
}

func (f *countingEquipmentRepo) Create(ctx context.Context, equipment *entities.Equipment) (string, error) {
	f.created = append(f.created, equipment.ID)
	return equipment.ID, nil
}

type countingTeamRepo struct {
	repositories.TeamRepositoryInterface
	created []string
}

func (f *countingTeamRepo) Create(ctx context.Context, team *entities.MaintenanceTeam) (string, error) {
	f.created = append(f.created, team.ID)
	return team.ID, nil
}

type countingUserRepo struct {
	repositories.UserRepositoryInterface
	created []string
}

func (f *countingUserRepo) Create(ctx context.Context, user *entities.User) (string, error) {
	f.created = append(f.created, user.ID)
	return user.ID, nil
}

type countingRequestRepo struct {
	repositories.RequestRepositoryInterface
	created []string
}

func (f *countingRequestRepo) Create(ctx context.Context, request *entities.MaintenanceRequest) (string, error) {
	f.created = append(f.created, request.ID)
	return request.ID, nil
}

func TestSeedIfEmptyInsertsDemoDataset(t *testing.T) {
	equipment := &countingEquipmentRepo{}
	teams := &countingTeamRepo{}
	users := &countingUserRepo{}
	requests := &countingRequestRepo{}

	s := NewSeeder(equipment, teams, users, requests, zap.NewNop())
	require.NoError(t, s.SeedIfEmpty(context.Background()))

	assert.Equal(t, []string{"team-a", "team-b"}, teams.created)
	assert.Equal(t, []string{"tech-1", "tech-2", "tech-3", "mgr-1"}, users.created)
	assert.Equal(t, []string{"eq-1", "eq-2"}, equipment.created)
	assert.Equal(t, []string{"req-1", "req-2"}, requests.created)
}

func TestSeedIfEmptySkipsPopulatedDatabase(t *testing.T) {
	equipment := &countingEquipmentRepo{count: 2}
	teams := &countingTeamRepo{}

	s := NewSeeder(equipment, teams, &countingUserRepo{}, &countingRequestRepo{}, zap.NewNop())
	require.NoError(t, s.SeedIfEmpty(context.Background()))

	assert.Empty(t, teams.created)
	assert.Empty(t, equipment.created)
}
