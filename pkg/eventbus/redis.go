package eventbus

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RemoteEvent is an event replayed from another instance via Redis.
type RemoteEvent struct {
	EventName string `json:"event"`
	Origin    string `json:"origin"`
}

func (e RemoteEvent) Name() string { return e.EventName }

// RedisBridge fans events out across service instances over a Redis pub/sub
// channel, so every connected client converges on the same collection state
// no matter which instance handled the write.
type RedisBridge struct {
	bus      *Bus
	rdb      *redis.Client
	channel  string
	instance string
	logger   *zap.Logger
}

func NewRedisBridge(bus *Bus, rdb *redis.Client, channel string, logger *zap.Logger) *RedisBridge {
	return &RedisBridge{
		bus:      bus,
		rdb:      rdb,
		channel:  channel,
		instance: uuid.NewString(),
		logger:   logger,
	}
}

// Forward mirrors the named local events onto the Redis channel. It returns
// a disposer that detaches all forwarding listeners.
func (b *RedisBridge) Forward(eventNames ...string) func() {
	unsubs := make([]func(), 0, len(eventNames))
	for _, name := range eventNames {
		unsubs = append(unsubs, b.bus.Subscribe(name, func(ctx context.Context, event Event) error {
			if _, remote := event.(RemoteEvent); remote {
				return nil
			}
			payload, err := json.Marshal(RemoteEvent{EventName: event.Name(), Origin: b.instance})
			if err != nil {
				return err
			}
			return b.rdb.Publish(ctx, b.channel, payload).Err()
		}))
	}
	return func() {
		for _, u := range unsubs {
			u()
		}
	}
}

// Run consumes the Redis channel and republishes foreign events on the local
// bus. Blocks until ctx is cancelled.
func (b *RedisBridge) Run(ctx context.Context) {
	sub := b.rdb.Subscribe(ctx, b.channel)
	defer sub.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-sub.Channel():
			if !ok {
				return
			}
			var event RemoteEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warn("discarding malformed bridge message", zap.Error(err))
				continue
			}
			if event.Origin == b.instance {
				continue
			}
			b.bus.Publish(ctx, event)
		}
	}
}
