// Package lock keeps two requests from verifying the same digest at once.
package lock

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const keyPrefix = "donation:digest:"

// releaseScript deletes the key only if it still holds our token, so a guard
// that outlived its TTL never removes someone else's.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisDigestGuard claims digests with SET NX and a TTL
type RedisDigestGuard struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisDigestGuard(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisDigestGuard {
	return &RedisDigestGuard{client: client, ttl: ttl, logger: logger}
}

// Acquire claims digest. acquired is false when another request holds it.
// The returned release func is always safe to call.
func (g *RedisDigestGuard) Acquire(ctx context.Context, digest string) (release func(), acquired bool, err error) {
	key := keyPrefix + digest
	token := uuid.NewString()

	ok, err := g.client.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil {
		return func() {}, false, fmt.Errorf("failed to claim digest %s: %w", digest, err)
	}
	if !ok {
		return func() {}, false, nil
	}

	release = func() {
		// the request context may already be cancelled
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, g.client, []string{key}, token).Err(); err != nil {
			g.logger.Warn("failed to release digest guard", zap.String("digest", digest), zap.Error(err))
		}
	}
	return release, true, nil
}
