package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/utils"
)

func newEquipmentService(repo *fakeEquipmentRepo) EquipmentServiceInterface {
	return NewEquipmentService(repo, eventbus.New(zap.NewNop()), zap.NewNop())
}

func TestCreateEquipmentDefaultsToActive(t *testing.T) {
	repo := newFakeEquipmentRepo()
	s := newEquipmentService(repo)

	eq, err := s.CreateEquipment(context.Background(), dto.CreateEquipmentDTO{
		Name: "Forklift", SerialNumber: "FL-9", Location: "Warehouse",
		MaintenanceTeamID: "team-a", Category: "Transportation",
	})
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentStatusActive, eq.Status)
	assert.NotEmpty(t, eq.ID)
}

func TestUpdateEquipmentAppliesPartialPatch(t *testing.T) {
	repo := newFakeEquipmentRepo()
	s := newEquipmentService(repo)
	ctx := context.Background()

	created, err := s.CreateEquipment(ctx, dto.CreateEquipmentDTO{
		Name: "Forklift", SerialNumber: "FL-9", Location: "Warehouse",
		MaintenanceTeamID: "team-a", Category: "Transportation",
	})
	require.NoError(t, err)

	updated, err := s.UpdateEquipment(ctx, created.ID, dto.UpdateEquipmentDTO{
		Location: utils.Ptr("Loading Dock"),
		Status:   utils.Ptr("Scrapped"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Loading Dock", updated.Location)
	assert.Equal(t, entities.EquipmentStatusScrapped, updated.Status)
	assert.Equal(t, "FL-9", updated.SerialNumber)
}

func TestDeleteEquipmentUnknownID(t *testing.T) {
	s := newEquipmentService(newFakeEquipmentRepo())
	err := s.DeleteEquipment(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrEquipmentNotFound)
}
