package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/repositories"
	"gearguard/pkg/eventbus"
)

type fakeEquipmentRepo struct {
	repositories.EquipmentRepositoryInterface
	mu    sync.Mutex
	items []entities.Equipment
	calls int
}

func (f *fakeEquipmentRepo) GetAll(ctx context.Context) ([]entities.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.items, nil
}

type fakeTeamRepo struct {
	repositories.TeamRepositoryInterface
	items []entities.MaintenanceTeam
}

func (f *fakeTeamRepo) GetAll(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	return f.items, nil
}

type fakeUserRepo struct {
	repositories.UserRepositoryInterface
	items []entities.User
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]entities.User, error) {
	return f.items, nil
}

type fakeRequestRepo struct {
	repositories.RequestRepositoryInterface
	items []entities.MaintenanceRequest
}

func (f *fakeRequestRepo) GetAll(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	return f.items, nil
}

type fakeSeeder struct {
	calls int
}

func (f *fakeSeeder) SeedIfEmpty(ctx context.Context) error {
	f.calls++
	return nil
}

func newTestStore(seeder SeederInterface) (*Store, *fakeEquipmentRepo, *fakeTeamRepo) {
	eqRepo := &fakeEquipmentRepo{items: []entities.Equipment{{ID: "eq-1", Name: "CNC Milling Machine"}}}
	teamRepo := &fakeTeamRepo{items: []entities.MaintenanceTeam{{ID: "team-a", Name: "Mechanical Team", MemberIDs: []string{"tech-1"}}}}
	userRepo := &fakeUserRepo{items: []entities.User{{ID: "tech-1", Name: "John Doe"}}}
	reqRepo := &fakeRequestRepo{items: []entities.MaintenanceRequest{{ID: "req-1", Status: entities.RequestStatusNew}}}
	bus := eventbus.New(zap.NewNop())
	return New(eqRepo, teamRepo, userRepo, reqRepo, seeder, bus, zap.NewNop()), eqRepo, teamRepo
}

func TestInitializeLoadsAllCollections(t *testing.T) {
	seeder := &fakeSeeder{}
	s, _, _ := newTestStore(seeder)

	require.NoError(t, s.Initialize(context.Background()))

	snap := s.Snapshot()
	assert.Len(t, snap.Equipment, 1)
	assert.Len(t, snap.Teams, 1)
	assert.Len(t, snap.Users, 1)
	assert.Len(t, snap.Requests, 1)
	assert.Equal(t, 1, seeder.calls)
}

func TestInitializeIsIdempotent(t *testing.T) {
	seeder := &fakeSeeder{}
	s, eqRepo, _ := newTestStore(seeder)

	require.NoError(t, s.Initialize(context.Background()))
	loadsAfterFirst := eqRepo.calls
	require.NoError(t, s.Initialize(context.Background()))

	assert.Equal(t, loadsAfterFirst, eqRepo.calls)
	assert.Equal(t, 1, seeder.calls)
}

func TestReloadRefreshesSingleCollection(t *testing.T) {
	s, eqRepo, _ := newTestStore(nil)
	require.NoError(t, s.Initialize(context.Background()))

	eqRepo.items = append(eqRepo.items, entities.Equipment{ID: "eq-2", Name: "Central Server Rack"})
	require.NoError(t, s.Reload(context.Background(), events.CollectionEquipment))

	snap := s.Snapshot()
	assert.Len(t, snap.Equipment, 2)
	assert.Len(t, snap.Requests, 1)
}

func TestReloadUnknownCollection(t *testing.T) {
	s, _, _ := newTestStore(nil)
	assert.Error(t, s.Reload(context.Background(), "widgets"))
}

func TestSubscribeToDataReloadsOnEvents(t *testing.T) {
	eqRepo := &fakeEquipmentRepo{}
	bus := eventbus.New(zap.NewNop())
	s := New(eqRepo,
		&fakeTeamRepo{}, &fakeUserRepo{}, &fakeRequestRepo{},
		nil, bus, zap.NewNop())

	unsubscribe := s.SubscribeToData()
	bus.Publish(context.Background(), events.CollectionChanged{Collection: events.CollectionEquipment})

	require.Eventually(t, func() bool {
		eqRepo.mu.Lock()
		defer eqRepo.mu.Unlock()
		return eqRepo.calls == 1
	}, time.Second, 10*time.Millisecond)

	unsubscribe()
	bus.Publish(context.Background(), events.CollectionChanged{Collection: events.CollectionEquipment})
	time.Sleep(50 * time.Millisecond)

	eqRepo.mu.Lock()
	defer eqRepo.mu.Unlock()
	assert.Equal(t, 1, eqRepo.calls)
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _, _ := newTestStore(nil)
	require.NoError(t, s.Initialize(context.Background()))

	snap := s.Snapshot()
	snap.Equipment[0].Name = "changed"
	snap.Teams[0].MemberIDs[0] = "someone-else"

	fresh := s.Snapshot()
	assert.Equal(t, "CNC Milling Machine", fresh.Equipment[0].Name)
	assert.Equal(t, "tech-1", fresh.Teams[0].MemberIDs[0])
}
