package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/you/fitbyte/domain"
)

// CachedActivityTypeRepository reads the catalog through Redis. The catalog
// is static at runtime, so entries only expire by TTL. Any Redis failure
// falls back to the wrapped repository.
type CachedActivityTypeRepository struct {
	next   domain.ActivityTypeRepository
	client *redis.Client
	prefix string
	ttl    time.Duration
	log    *slog.Logger
}

// NewCachedActivityTypeRepository wraps next with a Redis read-through cache
func NewCachedActivityTypeRepository(next domain.ActivityTypeRepository, client *redis.Client, ttl time.Duration, log *slog.Logger) domain.ActivityTypeRepository {
	return &CachedActivityTypeRepository{
		next:   next,
		client: client,
		prefix: "activity_type:",
		ttl:    ttl,
		log:    log,
	}
}

func (r *CachedActivityTypeRepository) FindByName(ctx context.Context, name string) (*domain.ActivityType, error) {
	return r.readThrough(ctx, r.prefix+"name:"+name, func() (*domain.ActivityType, error) {
		return r.next.FindByName(ctx, name)
	})
}

func (r *CachedActivityTypeRepository) FindByID(ctx context.Context, id uint) (*domain.ActivityType, error) {
	return r.readThrough(ctx, fmt.Sprintf("%sid:%d", r.prefix, id), func() (*domain.ActivityType, error) {
		return r.next.FindByID(ctx, id)
	})
}

func (r *CachedActivityTypeRepository) readThrough(ctx context.Context, key string, load func() (*domain.ActivityType, error)) (*domain.ActivityType, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var at domain.ActivityType
		if jsonErr := json.Unmarshal(data, &at); jsonErr == nil {
			return &at, nil
		}
		r.log.Warn("discarding corrupt catalog cache entry", "key", key)
	case !errors.Is(err, redis.Nil):
		r.log.Warn("catalog cache unavailable, reading database", "key", key, "error", err)
	}

	at, err := load()
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(at); err == nil {
		if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
			r.log.Warn("failed to populate catalog cache", "key", key, "error", err)
		}
	}
	return at, nil
}
