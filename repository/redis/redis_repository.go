package redis

import (
	"context"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// ErrNil is returned by Get when the key does not exist.
var ErrNil = errors.New("redis: key not found")

const (
	FeedCacheKey    = "feed:posts"
	listViewKeyBase = "listview:"
)

// ListViewKey is the key of a session list view.
func ListViewKey(sessionID string) string {
	return listViewKeyBase + sessionID
}

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation. A nil client
// turns every call into a miss so the service can run without Redis.
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

func (r *redis) Get(ctx context.Context, key string) (string, error) {
	if r.client == nil {
		return "", ErrNil
	}
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return "", ErrNil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redis) Delete(ctx context.Context, key string) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, key).Err()
}
