package cart

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "stamped:trip-cart:"

// RedisBackend stores one cart per session key. Save publishes a change
// signal on the key's channel so other sessions holding the same cart can
// refresh; no merge is attempted on conflict.
type RedisBackend struct {
	client  *redis.Client
	key     string
	channel string
}

func NewRedisBackend(client *redis.Client, sessionID string) *RedisBackend {
	key := keyPrefix + sessionID
	return &RedisBackend{
		client:  client,
		key:     key,
		channel: key + ":changed",
	}
}

func (b *RedisBackend) Load(ctx context.Context) ([]byte, bool, error) {
	payload, err := b.client.Get(ctx, b.key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cart load: %w", err)
	}
	return payload, true, nil
}

func (b *RedisBackend) Save(ctx context.Context, payload []byte) error {
	if err := b.client.Set(ctx, b.key, payload, 0).Err(); err != nil {
		return fmt.Errorf("cart save: %w", err)
	}
	// best effort, readers reload on next access anyway
	b.client.Publish(ctx, b.channel, "changed")
	return nil
}

func (b *RedisBackend) Watch(ctx context.Context) <-chan struct{} {
	out := make(chan struct{}, 1)
	sub := b.client.Subscribe(ctx, b.channel)

	go func() {
		defer close(out)
		defer sub.Close()

		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-ch:
				if !ok {
					return
				}
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()

	return out
}
