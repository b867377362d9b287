package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"gearguard/internal/dto"
	"gearguard/internal/entities"
	apperrors "gearguard/pkg/errors"
)

// The fakes below keep everything in maps and accept a nil pgx.Tx; the
// fake transaction manager simply runs the callback and surfaces its
// error, which is enough to assert both-or-neither behavior since a
// returned error means the real manager would have rolled back.

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) RunInTransaction(ctx context.Context, fn func(tx pgx.Tx) error) error {
	f.calls++
	return fn(nil)
}

type fakeEquipmentRepo struct {
	mu    sync.Mutex
	items map[string]entities.Equipment
}

func newFakeEquipmentRepo() *fakeEquipmentRepo {
	return &fakeEquipmentRepo{items: map[string]entities.Equipment{}}
}

func (f *fakeEquipmentRepo) GetAll(ctx context.Context) ([]entities.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entities.Equipment, 0, len(f.items))
	for _, eq := range f.items {
		out = append(out, eq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeEquipmentRepo) GetEquipment(ctx context.Context, filter dto.EquipmentFilter) ([]entities.Equipment, uint64, error) {
	all, _ := f.GetAll(ctx)
	return all, uint64(len(all)), nil
}

func (f *fakeEquipmentRepo) FindByID(ctx context.Context, id string) (*entities.Equipment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	eq, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrEquipmentNotFound
	}
	return &eq, nil
}

func (f *fakeEquipmentRepo) Create(ctx context.Context, equipment *entities.Equipment) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if equipment.ID == "" {
		equipment.ID = uuid.NewString()
	}
	if equipment.Status == "" {
		equipment.Status = entities.EquipmentStatusActive
	}
	f.items[equipment.ID] = *equipment
	return equipment.ID, nil
}

func (f *fakeEquipmentRepo) Update(ctx context.Context, equipment *entities.Equipment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[equipment.ID]; !ok {
		return apperrors.ErrEquipmentNotFound
	}
	f.items[equipment.ID] = *equipment
	return nil
}

func (f *fakeEquipmentRepo) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id string, status entities.EquipmentStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	eq, ok := f.items[id]
	if !ok {
		return apperrors.ErrEquipmentNotFound
	}
	eq.Status = status
	eq.UpdatedAt = time.Now().UTC()
	f.items[id] = eq
	return nil
}

func (f *fakeEquipmentRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrEquipmentNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeEquipmentRepo) Count(ctx context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint64(len(f.items)), nil
}

type fakeTeamRepo struct {
	mu                sync.Mutex
	items             map[string]entities.MaintenanceTeam
	failSetMembersFor string
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{items: map[string]entities.MaintenanceTeam{}}
}

func (f *fakeTeamRepo) GetAll(ctx context.Context) ([]entities.MaintenanceTeam, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entities.MaintenanceTeam, 0, len(f.items))
	for _, team := range f.items {
		out = append(out, team)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeTeamRepo) FindByID(ctx context.Context, id string) (*entities.MaintenanceTeam, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	team, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrTeamNotFound
	}
	team.MemberIDs = append([]string(nil), team.MemberIDs...)
	return &team, nil
}

func (f *fakeTeamRepo) FindByIDInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.MaintenanceTeam, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeTeamRepo) Create(ctx context.Context, team *entities.MaintenanceTeam) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if team.ID == "" {
		team.ID = uuid.NewString()
	}
	f.items[team.ID] = *team
	return team.ID, nil
}

func (f *fakeTeamRepo) Update(ctx context.Context, team *entities.MaintenanceTeam) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[team.ID]; !ok {
		return apperrors.ErrTeamNotFound
	}
	f.items[team.ID] = *team
	return nil
}

func (f *fakeTeamRepo) SetMemberIDsInTx(ctx context.Context, tx pgx.Tx, id string, memberIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id == f.failSetMembersFor {
		return apperrors.ErrTeamNotFound
	}
	team, ok := f.items[id]
	if !ok {
		return apperrors.ErrTeamNotFound
	}
	team.MemberIDs = append([]string(nil), memberIDs...)
	f.items[id] = team
	return nil
}

func (f *fakeTeamRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrTeamNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeUserRepo struct {
	mu         sync.Mutex
	items      map[string]entities.User
	failSetFor string
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{items: map[string]entities.User{}}
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entities.User, 0, len(f.items))
	for _, user := range f.items {
		out = append(out, user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*entities.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

func (f *fakeUserRepo) FindByIDInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.User, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entities.User) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	f.items[user.ID] = *user
	return user.ID, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entities.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	f.items[user.ID] = *user
	return nil
}

func (f *fakeUserRepo) SetTeamIDInTx(ctx context.Context, tx pgx.Tx, id string, teamID null.String) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id == f.failSetFor {
		return apperrors.ErrUserNotFound
	}
	user, ok := f.items[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.TeamID = teamID
	f.items[id] = user
	return nil
}

type fakeRequestRepo struct {
	mu    sync.Mutex
	items map[string]entities.MaintenanceRequest
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{items: map[string]entities.MaintenanceRequest{}}
}

func (f *fakeRequestRepo) GetAll(ctx context.Context) ([]entities.MaintenanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]entities.MaintenanceRequest, 0, len(f.items))
	for _, req := range f.items {
		out = append(out, req)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeRequestRepo) GetRequests(ctx context.Context, filter dto.RequestFilter) ([]entities.MaintenanceRequest, uint64, error) {
	all, _ := f.GetAll(ctx)
	return all, uint64(len(all)), nil
}

func (f *fakeRequestRepo) FindByID(ctx context.Context, id string) (*entities.MaintenanceRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.items[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	return &req, nil
}

func (f *fakeRequestRepo) FindForUpdateInTx(ctx context.Context, tx pgx.Tx, id string) (*entities.MaintenanceRequest, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeRequestRepo) Create(ctx context.Context, request *entities.MaintenanceRequest) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	if request.Status == "" {
		request.Status = entities.RequestStatusNew
	}
	request.CreatedAt = time.Now().UTC()
	f.items[request.ID] = *request
	return request.ID, nil
}

func (f *fakeRequestRepo) Update(ctx context.Context, request *entities.MaintenanceRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[request.ID]; !ok {
		return apperrors.ErrRequestNotFound
	}
	f.items[request.ID] = *request
	return nil
}

func (f *fakeRequestRepo) UpdateStatusInTx(ctx context.Context, tx pgx.Tx, id string, status entities.RequestStatus, duration null.Float64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	req, ok := f.items[id]
	if !ok {
		return apperrors.ErrRequestNotFound
	}
	req.Status = status
	if duration.Valid {
		req.Duration = duration
	}
	req.UpdatedAt = time.Now().UTC()
	f.items[id] = req
	return nil
}

func (f *fakeRequestRepo) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return apperrors.ErrRequestNotFound
	}
	delete(f.items, id)
	return nil
}
