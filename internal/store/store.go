package store

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"gearguard/internal/entities"
	"gearguard/internal/events"
	"gearguard/internal/repositories"
	"gearguard/pkg/eventbus"
)

// SeederInterface is the one-time demo-data hook Initialize runs before the
// first load. Implementations must be idempotent.
type SeederInterface interface {
	SeedIfEmpty(ctx context.Context) error
}

// Snapshot is a point-in-time copy of all four collections. Readers derive
// every view from it; it is never mutated in place.
type Snapshot struct {
	Equipment []entities.Equipment
	Teams     []entities.MaintenanceTeam
	Users     []entities.User
	Requests  []entities.MaintenanceRequest
}

// Store holds the latest known state of every collection, reconciled from
// change events. Mutations never patch the snapshot directly; they go
// through the services and come back around via the event bus.
type Store struct {
	mu          sync.RWMutex
	equipment   []entities.Equipment
	teams       []entities.MaintenanceTeam
	users       []entities.User
	requests    []entities.MaintenanceRequest
	initialized bool

	equipmentRepo repositories.EquipmentRepositoryInterface
	teamRepo      repositories.TeamRepositoryInterface
	userRepo      repositories.UserRepositoryInterface
	requestRepo   repositories.RequestRepositoryInterface
	seeder        SeederInterface
	bus           *eventbus.Bus
	logger        *zap.Logger
}

func New(
	equipmentRepo repositories.EquipmentRepositoryInterface,
	teamRepo repositories.TeamRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	requestRepo repositories.RequestRepositoryInterface,
	seeder SeederInterface,
	bus *eventbus.Bus,
	logger *zap.Logger,
) *Store {
	return &Store{
		equipmentRepo: equipmentRepo,
		teamRepo:      teamRepo,
		userRepo:      userRepo,
		requestRepo:   requestRepo,
		seeder:        seeder,
		bus:           bus,
		logger:        logger,
	}
}

// Initialize runs the seed check and the initial full fetch of all four
// collections. Safe to call repeatedly; it no-ops once it has succeeded.
func (s *Store) Initialize(ctx context.Context) error {
	s.mu.RLock()
	done := s.initialized
	s.mu.RUnlock()
	if done {
		return nil
	}

	if s.seeder != nil {
		if err := s.seeder.SeedIfEmpty(ctx); err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
	}

	for _, collection := range events.Collections {
		if err := s.Reload(ctx, collection); err != nil {
			return err
		}
	}

	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()
	s.logger.Info("state store initialized")
	return nil
}

// SubscribeToData attaches a reload listener for every collection and
// returns one combined unsubscribe function tearing all of them down.
func (s *Store) SubscribeToData() func() {
	unsubs := make([]func(), 0, len(events.Collections))
	for _, collection := range events.Collections {
		c := collection
		unsubs = append(unsubs, s.bus.Subscribe(events.ChangedEventName(c), func(ctx context.Context, _ eventbus.Event) error {
			return s.Reload(ctx, c)
		}))
	}
	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}

// Reload replaces one collection with fresh repository state.
func (s *Store) Reload(ctx context.Context, collection string) error {
	switch collection {
	case events.CollectionEquipment:
		items, err := s.equipmentRepo.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("reload equipment: %w", err)
		}
		s.mu.Lock()
		s.equipment = items
		s.mu.Unlock()
	case events.CollectionTeams:
		items, err := s.teamRepo.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("reload teams: %w", err)
		}
		s.mu.Lock()
		s.teams = items
		s.mu.Unlock()
	case events.CollectionUsers:
		items, err := s.userRepo.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("reload users: %w", err)
		}
		s.mu.Lock()
		s.users = items
		s.mu.Unlock()
	case events.CollectionRequests:
		items, err := s.requestRepo.GetAll(ctx)
		if err != nil {
			return fmt.Errorf("reload requests: %w", err)
		}
		s.mu.Lock()
		s.requests = items
		s.mu.Unlock()
	default:
		return fmt.Errorf("unknown collection %q", collection)
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Equipment: make([]entities.Equipment, len(s.equipment)),
		Teams:     make([]entities.MaintenanceTeam, len(s.teams)),
		Users:     make([]entities.User, len(s.users)),
		Requests:  make([]entities.MaintenanceRequest, len(s.requests)),
	}
	copy(snap.Equipment, s.equipment)
	copy(snap.Users, s.users)
	copy(snap.Requests, s.requests)
	for i, team := range s.teams {
		team.MemberIDs = append([]string(nil), team.MemberIDs...)
		snap.Teams[i] = team
	}
	return snap
}

// Collection returns the current contents of one collection for pushing to
// websocket subscribers.
func (s *Store) Collection(name string) (interface{}, error) {
	snap := s.Snapshot()
	switch name {
	case events.CollectionEquipment:
		return snap.Equipment, nil
	case events.CollectionTeams:
		return snap.Teams, nil
	case events.CollectionUsers:
		return snap.Users, nil
	case events.CollectionRequests:
		return snap.Requests, nil
	default:
		return nil, fmt.Errorf("unknown collection %q", name)
	}
}
