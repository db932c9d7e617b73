package lookup

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/verdict/pkg/validator"
)

// RedisClient is the subset of redis.Cmdable used by set lookups.
type RedisClient interface {
	SIsMember(ctx context.Context, key string, member any) *redis.BoolCmd
}

// InRedisSet passes when the value is a member of the set stored at key.
func InRedisSet[T any](c RedisClient, key string) validator.AsyncPredicate[T] {
	return redisMembership[T](c, key, true)
}

// NotInRedisSet passes when the value is not a member of the set stored at key.
// A missing key counts as an empty set.
func NotInRedisSet[T any](c RedisClient, key string) validator.AsyncPredicate[T] {
	return redisMembership[T](c, key, false)
}

func redisMembership[T any](c RedisClient, key string, want bool) validator.AsyncPredicate[T] {
	return func(ctx context.Context, _ T, value any) (bool, error) {
		m, ok := member(value)
		if !ok {
			return true, nil
		}
		found, err := c.SIsMember(ctx, key, m).Result()
		if err != nil {
			return false, errors.Join(ErrLookupFailed, ErrRedisLookup, err)
		}
		return found == want, nil
	}
}
