package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisAttemptStore keeps the failure counters in redis so lockouts survive
// restarts and apply across replicas. Counter keys expire with the window.
type RedisAttemptStore struct {
	rdb      *redis.Client
	maxFails int
	window   time.Duration
}

const attemptKeyPrefix = "login:fails:"

func NewRedisAttemptStore(rdb *redis.Client, maxFails int, window time.Duration) *RedisAttemptStore {
	return &RedisAttemptStore{rdb: rdb, maxFails: maxFails, window: window}
}

func (s *RedisAttemptStore) Blocked(ctx context.Context, ip string) (bool, time.Duration, error) {
	key := attemptKeyPrefix + ip

	count, err := s.rdb.Get(ctx, key).Int()
	if err == redis.Nil {
		return false, 0, nil
	}
	if err != nil {
		return false, 0, err
	}
	if count < s.maxFails {
		return false, 0, nil
	}

	ttl, err := s.rdb.TTL(ctx, key).Result()
	if err != nil || ttl < 0 {
		ttl = s.window
	}
	return true, ttl, nil
}

func (s *RedisAttemptStore) RecordFailure(ctx context.Context, ip string) error {
	key := attemptKeyPrefix + ip

	count, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return err
	}
	// First failure opens the window; later ones do not extend it.
	if count == 1 {
		return s.rdb.Expire(ctx, key, s.window).Err()
	}
	return nil
}

func (s *RedisAttemptStore) Reset(ctx context.Context, ip string) error {
	return s.rdb.Del(ctx, attemptKeyPrefix+ip).Err()
}
