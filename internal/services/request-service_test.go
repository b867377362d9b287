package services

import (
	"context"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
	"gearguard/pkg/eventbus"
	"gearguard/pkg/utils"
)

type requestFixture struct {
	service   RequestServiceInterface
	requests  *fakeRequestRepo
	equipment *fakeEquipmentRepo
	teams     *fakeTeamRepo
}

func newRequestFixture(t *testing.T) *requestFixture {
	t.Helper()
	requests := newFakeRequestRepo()
	equipment := newFakeEquipmentRepo()
	teams := newFakeTeamRepo()

	_, err := teams.Create(context.Background(), &entities.MaintenanceTeam{
		ID: "team-a", Name: "Mechanical Team", MemberIDs: []string{"tech-1", "tech-2"},
	})
	require.NoError(t, err)
	_, err = equipment.Create(context.Background(), &entities.Equipment{
		ID: "eq-1", Name: "CNC Milling Machine", MaintenanceTeamID: "team-a",
		DefaultTechnicianID: "tech-1", Category: entities.CategoryManufacturing,
	})
	require.NoError(t, err)

	service := NewRequestService(requests, equipment, teams, &fakeTxManager{}, eventbus.New(zap.NewNop()), zap.NewNop())
	return &requestFixture{service: service, requests: requests, equipment: equipment, teams: teams}
}

func (f *requestFixture) seedRequest(t *testing.T, status entities.RequestStatus, duration null.Float64) string {
	t.Helper()
	id, err := f.requests.Create(context.Background(), &entities.MaintenanceRequest{
		Subject:     "Hydraulic leak check",
		EquipmentID: "eq-1",
		Type:        entities.RequestTypePreventive,
		Status:      status,
		Duration:    duration,
	})
	require.NoError(t, err)
	return id
}

func TestCreateRequestDefaultsTechnicianFromEquipment(t *testing.T) {
	f := newRequestFixture(t)

	req, err := f.service.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:     "Spindle vibration",
		EquipmentID: "eq-1",
		Type:        "Corrective",
	})

	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusNew, req.Status)
	assert.Equal(t, "tech-1", req.AssignedTechnicianID.String)
}

func TestCreateRequestRejectsTechnicianOutsideTeam(t *testing.T) {
	f := newRequestFixture(t)

	_, err := f.service.CreateRequest(context.Background(), dto.CreateRequestDTO{
		Subject:              "Spindle vibration",
		EquipmentID:          "eq-1",
		Type:                 "Corrective",
		AssignedTechnicianID: utils.Ptr("tech-99"),
	})

	assert.ErrorIs(t, err, apperrors.ErrTechnicianNotInTeam)
}

func TestApplyTransitionHappyPath(t *testing.T) {
	f := newRequestFixture(t)
	id := f.seedRequest(t, entities.RequestStatusNew, null.Float64{})

	req, err := f.service.ApplyTransition(context.Background(), id, "In Progress", nil)
	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusInProgress, req.Status)

	stored, err := f.requests.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusInProgress, stored.Status)
}

func TestApplyTransitionRepairedRequiresDuration(t *testing.T) {
	f := newRequestFixture(t)
	id := f.seedRequest(t, entities.RequestStatusInProgress, null.Float64{})

	_, err := f.service.ApplyTransition(context.Background(), id, "Repaired", nil)
	assert.ErrorIs(t, err, apperrors.ErrDurationRequired)

	stored, err := f.requests.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusInProgress, stored.Status)
}

func TestApplyTransitionRepairedWithSuppliedDuration(t *testing.T) {
	f := newRequestFixture(t)
	id := f.seedRequest(t, entities.RequestStatusInProgress, null.Float64{})

	req, err := f.service.ApplyTransition(context.Background(), id, "Repaired", utils.Ptr(2.5))
	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusRepaired, req.Status)
	assert.Equal(t, 2.5, req.Duration.Float64)
}

func TestApplyTransitionRepairedUsesRecordedDuration(t *testing.T) {
	f := newRequestFixture(t)
	id := f.seedRequest(t, entities.RequestStatusInProgress, null.Float64From(4))

	req, err := f.service.ApplyTransition(context.Background(), id, "Repaired", nil)
	require.NoError(t, err)
	assert.Equal(t, 4.0, req.Duration.Float64)
}

func TestApplyTransitionScrapMarksEquipmentScrapped(t *testing.T) {
	f := newRequestFixture(t)
	id := f.seedRequest(t, entities.RequestStatusInProgress, null.Float64{})

	req, err := f.service.ApplyTransition(context.Background(), id, "Scrap", nil)
	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusScrap, req.Status)

	eq, err := f.equipment.FindByID(context.Background(), "eq-1")
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentStatusScrapped, eq.Status)
}

func TestApplyTransitionScrapSurvivesMissingEquipment(t *testing.T) {
	f := newRequestFixture(t)
	id := f.seedRequest(t, entities.RequestStatusNew, null.Float64{})
	require.NoError(t, f.equipment.Delete(context.Background(), "eq-1"))

	req, err := f.service.ApplyTransition(context.Background(), id, "Scrap", nil)
	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusScrap, req.Status)
}

func TestApplyTransitionRejectsForbiddenEdges(t *testing.T) {
	cases := []struct {
		name string
		from entities.RequestStatus
		to   string
	}{
		{"new to repaired", entities.RequestStatusNew, "Repaired"},
		{"repaired to scrap", entities.RequestStatusRepaired, "Scrap"},
		{"scrap to new", entities.RequestStatusScrap, "New"},
		{"in progress to new", entities.RequestStatusInProgress, "New"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newRequestFixture(t)
			id := f.seedRequest(t, tc.from, null.Float64From(1))

			_, err := f.service.ApplyTransition(context.Background(), id, tc.to, nil)
			assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)

			stored, err := f.requests.FindByID(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tc.from, stored.Status)
		})
	}
}

func TestApplyTransitionSameStatusIsNoop(t *testing.T) {
	f := newRequestFixture(t)
	id := f.seedRequest(t, entities.RequestStatusInProgress, null.Float64{})

	req, err := f.service.ApplyTransition(context.Background(), id, "In Progress", nil)
	require.NoError(t, err)
	assert.Equal(t, entities.RequestStatusInProgress, req.Status)
}

func TestApplyTransitionUnknownStatus(t *testing.T) {
	f := newRequestFixture(t)
	id := f.seedRequest(t, entities.RequestStatusNew, null.Float64{})

	_, err := f.service.ApplyTransition(context.Background(), id, "Done", nil)
	assert.Error(t, err)
}
