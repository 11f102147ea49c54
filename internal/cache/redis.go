package cache

import (
	"context"
	"errors"
	"time"

	"github.com/Rohith-kulkarni/qwipo-app/internal/model"
	"github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

type redisProfileCache struct {
	client     *redis.Client
	timeToLive time.Duration
}

// NewRedisProfileCache builds ProfileCache storing msgpack encoded state in redis
func NewRedisProfileCache(client *redis.Client, ttl time.Duration) ProfileCache {
	return &redisProfileCache{client: client, timeToLive: ttl}
}

func (r *redisProfileCache) FindByID(ctx context.Context, session string, customerID model.ID) (*model.ProfileState, error) {
	res, err := r.client.Get(ctx, profileKey(session, customerID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var s model.ProfileState
	if err := msgpack.Unmarshal(res, &s); err != nil {
		return nil, err
	}

	return &s, nil
}

func (r *redisProfileCache) Cache(ctx context.Context, session string, customerID model.ID, state *model.ProfileState) error {
	encoded, err := msgpack.Marshal(state)
	if err != nil {
		return err
	}

	if err := r.client.Set(ctx, profileKey(session, customerID), encoded, r.timeToLive).Err(); err != nil {
		return err
	}
	return nil
}

func (r *redisProfileCache) EvictByID(ctx context.Context, session string, customerID model.ID) error {
	if _, err := r.client.Del(ctx, profileKey(session, customerID)).Result(); err != nil {
		return err
	}
	return nil
}
