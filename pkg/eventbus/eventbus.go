package eventbus

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event is anything that can be published on the bus.
type Event interface {
	Name() string
}

// Listener handles a single event.
type Listener func(ctx context.Context, event Event) error

type subscription struct {
	id       uint64
	listener Listener
}

// Bus is a simple in-process publish/subscribe bus. Subscribe returns a
// disposer so callers can tear down their listener on every exit path.
type Bus struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners map[string][]subscription
	logger    *zap.Logger
}

func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]subscription),
		logger:    logger,
	}
}

// Subscribe registers a listener for the named event and returns a function
// that removes it again.
func (b *Bus) Subscribe(eventName string, listener Listener) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners[eventName] = append(b.listeners[eventName], subscription{id: id, listener: listener})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.listeners[eventName]
		for i, s := range subs {
			if s.id == id {
				b.listeners[eventName] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		if len(b.listeners[eventName]) == 0 {
			delete(b.listeners, eventName)
		}
	}
}

// Publish delivers the event to every subscriber. Listeners run in their own
// goroutines with a bounded context so a stuck handler cannot leak forever.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	subs := make([]subscription, len(b.listeners[event.Name()]))
	copy(subs, b.listeners[event.Name()])
	b.mu.RUnlock()

	for _, s := range subs {
		go func(l Listener) {
			handlerCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			if err := l(handlerCtx, event); err != nil {
				b.logger.Error("event listener failed",
					zap.String("event", event.Name()),
					zap.Error(err),
				)
			}
		}(s.listener)
	}
}
