package listeners

import (
	"context"

	"go.uber.org/zap"

	"gearguard/internal/events"
	"gearguard/internal/store"
	"gearguard/pkg/eventbus"
	ws "gearguard/pkg/websocket"
)

// SnapshotListener reacts to collection changes: it reloads the affected
// collection in the store and pushes the fresh contents to every connected
// websocket client. Due-maintenance sweeps are forwarded as-is.
type SnapshotListener struct {
	store  *store.Store
	hub    *ws.Hub
	bus    *eventbus.Bus
	logger *zap.Logger
}

func NewSnapshotListener(st *store.Store, hub *ws.Hub, bus *eventbus.Bus, logger *zap.Logger) *SnapshotListener {
	return &SnapshotListener{store: st, hub: hub, bus: bus, logger: logger}
}

// Register subscribes to every collection's change event plus the
// maintenance-due event and returns one disposer deregistering all of them.
func (l *SnapshotListener) Register() func() {
	unsubs := make([]func(), 0, len(events.Collections)+1)
	for _, collection := range events.Collections {
		c := collection
		unsubs = append(unsubs, l.bus.Subscribe(events.ChangedEventName(c), func(ctx context.Context, _ eventbus.Event) error {
			return l.pushCollection(ctx, c)
		}))
	}
	unsubs = append(unsubs, l.bus.Subscribe(events.MaintenanceDue{}.Name(), func(ctx context.Context, event eventbus.Event) error {
		due, ok := event.(events.MaintenanceDue)
		if !ok {
			return nil
		}
		return l.hub.Broadcast("maintenance.due", due.RequestIDs)
	}))

	return func() {
		for _, unsub := range unsubs {
			unsub()
		}
	}
}

func (l *SnapshotListener) pushCollection(ctx context.Context, collection string) error {
	if err := l.store.Reload(ctx, collection); err != nil {
		return err
	}
	payload, err := l.store.Collection(collection)
	if err != nil {
		return err
	}
	if err := l.hub.Broadcast(collection+".snapshot", payload); err != nil {
		l.logger.Warn("snapshot broadcast failed",
			zap.String("collection", collection), zap.Error(err))
		return err
	}
	return nil
}
