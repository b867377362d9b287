package eventbus

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type testEvent struct{ name string }

func (e testEvent) Name() string { return e.name }

func TestSubscribeAndPublish(t *testing.T) {
	bus := New(zap.NewNop())

	var mu sync.Mutex
	var got []string
	done := make(chan struct{})

	bus.Subscribe("equipment.changed", func(ctx context.Context, event Event) error {
		mu.Lock()
		got = append(got, event.Name())
		mu.Unlock()
		close(done)
		return nil
	})

	bus.Publish(context.Background(), testEvent{name: "equipment.changed"})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("listener was not invoked")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"equipment.changed"}, got)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := New(zap.NewNop())

	calls := make(chan struct{}, 4)
	unsubscribe := bus.Subscribe("teams.changed", func(ctx context.Context, event Event) error {
		calls <- struct{}{}
		return nil
	})

	bus.Publish(context.Background(), testEvent{name: "teams.changed"})
	select {
	case <-calls:
	case <-time.After(time.Second):
		t.Fatal("listener was not invoked before unsubscribe")
	}

	unsubscribe()
	bus.Publish(context.Background(), testEvent{name: "teams.changed"})

	select {
	case <-calls:
		t.Fatal("listener invoked after unsubscribe")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestPublishWithoutListenersIsNoop(t *testing.T) {
	bus := New(zap.NewNop())
	assert.NotPanics(t, func() {
		bus.Publish(context.Background(), testEvent{name: "users.changed"})
	})
}
