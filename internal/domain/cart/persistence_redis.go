// internal/domain/cart/persistence_redis.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisPersistence stores each cart as a JSON blob in Redis with a
// sliding TTL, so abandoned session carts expire on their own.
type RedisPersistence struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

// NewRedisPersistence creates a Redis-backed persistence adapter
func NewRedisPersistence(client *redis.Client, namespace string, ttl time.Duration) *RedisPersistence {
	return &RedisPersistence{
		client:    client,
		namespace: namespace,
		ttl:       ttl,
	}
}

func (p *RedisPersistence) Load(ctx context.Context, key string) (*State, error) {
	blob, err := p.client.Get(ctx, p.cartKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var state State
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (p *RedisPersistence) Save(ctx context.Context, key string, state State) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return p.client.Set(ctx, p.cartKey(key), blob, p.ttl).Err()
}

func (p *RedisPersistence) Delete(ctx context.Context, key string) error {
	return p.client.Del(ctx, p.cartKey(key)).Err()
}

func (p *RedisPersistence) cartKey(key string) string {
	return fmt.Sprintf("%s:%s", p.namespace, key)
}
