package realtime

import (
	"bytes"
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"compatron/internal/models"
)

const DefaultChannel = "compatron:events"

// RedisBus publishes events on a Redis channel and relays whatever arrives
// on it into the local hub, so every instance sees every event.
type RedisBus struct {
	rdb     *redis.Client
	channel string
	local   *Hub
	logger  Logger
}

func NewRedisBus(rdb *redis.Client, channel string, local *Hub, logger Logger) *RedisBus {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisBus{rdb: rdb, channel: channel, local: local, logger: logger}
}

func (b *RedisBus) Publish(ctx context.Context, ev models.Event) error {
	data, err := EncodeEvent(ev)
	if err != nil {
		return err
	}
	if err := b.rdb.Publish(ctx, b.channel, data).Err(); err != nil {
		return fmt.Errorf("redis publish: %w", err)
	}
	return nil
}

// Run relays subscribed events into the hub until ctx is cancelled.
func (b *RedisBus) Run(ctx context.Context) error {
	sub := b.rdb.Subscribe(ctx, b.channel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("redis subscribe %s: %w", b.channel, err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			ev, err := DecodeEvent([]byte(msg.Payload))
			if err != nil {
				if b.logger != nil {
					b.logger.Errorf("decode event from %s: %v", b.channel, err)
				}
				continue
			}
			if err := b.local.Publish(ctx, ev); err != nil {
				return nil
			}
		}
	}
}

func EncodeEvent(ev models.Event) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(ev); err != nil {
		return nil, fmt.Errorf("encode event: %w", err)
	}
	return buf.Bytes(), nil
}

func DecodeEvent(data []byte) (models.Event, error) {
	var ev models.Event
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(&ev); err != nil {
		return models.Event{}, fmt.Errorf("decode event: %w", err)
	}
	return ev, nil
}
