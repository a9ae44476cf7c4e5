package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	stockKeyPrefix    = "stock:"
	idempotencyKeyTTL = 24 * time.Hour
)

// reserveScript atomically moves qty from available to reserved; a plain
// read-then-write here would oversell under contention.
var reserveScript = redis.NewScript(`
local key = KEYS[1]
local qty = tonumber(ARGV[1])

local available = tonumber(redis.call('HGET', key, 'available'))
if not available or available < qty then
	return 0
end

redis.call('HINCRBY', key, 'available', -qty)
redis.call('HINCRBY', key, 'reserved', qty)
return 1
`)

var releaseScript = redis.NewScript(`
local key = KEYS[1]
local qty = tonumber(ARGV[1])

local reserved = tonumber(redis.call('HGET', key, 'reserved')) or 0
local back = math.min(qty, reserved)
if back > 0 then
	redis.call('HINCRBY', key, 'reserved', -back)
	redis.call('HINCRBY', key, 'available', back)
end
return back
`)

var commitScript = redis.NewScript(`
local key = KEYS[1]
local qty = tonumber(ARGV[1])

local reserved = tonumber(redis.call('HGET', key, 'reserved')) or 0
local done = math.min(qty, reserved)
if done > 0 then
	redis.call('HINCRBY', key, 'reserved', -done)
end
return done
`)

type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) Reserve(ctx context.Context, productID string, qty int) (bool, error) {
	result, err := reserveScript.Run(ctx, r.client, []string{stockKeyPrefix + productID}, qty).Int()
	if err != nil {
		return false, err
	}
	return result == 1, nil
}

func (r *RedisAdapter) Release(ctx context.Context, productID string, qty int) error {
	return releaseScript.Run(ctx, r.client, []string{stockKeyPrefix + productID}, qty).Err()
}

func (r *RedisAdapter) Commit(ctx context.Context, productID string, qty int) error {
	return commitScript.Run(ctx, r.client, []string{stockKeyPrefix + productID}, qty).Err()
}

func (r *RedisAdapter) SetAvailable(ctx context.Context, productID string, available int) error {
	return r.client.HSet(ctx, stockKeyPrefix+productID, "available", available).Err()
}

func (r *RedisAdapter) SetIdempotency(ctx context.Context, key string) (bool, error) {
	ok, err := r.client.SetNX(ctx, key, 1, idempotencyKeyTTL).Result()
	if err != nil {
		return false, err
	}

	return ok, nil
}
