package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/99minutos/auction-marketplace/internal/core/ports"
)

const defaultIdempotencyTTL = 24 * time.Hour

// IdempotencyStore remembers the entity produced by a create request.
// Key format: idem:<scope>:<user_id>:<client_key>
type IdempotencyStore struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewIdempotencyStore wraps client. A non-positive ttl falls back to 24h.
func NewIdempotencyStore(client redis.Cmdable, ttl time.Duration) *IdempotencyStore {
	if ttl <= 0 {
		ttl = defaultIdempotencyTTL
	}
	return &IdempotencyStore{client: client, ttl: ttl}
}

var _ ports.IdempotencyStore = (*IdempotencyStore)(nil)

// Lookup returns the entity id stored for key, if any.
func (s *IdempotencyStore) Lookup(ctx context.Context, scope string, userID int64, key string) (int64, bool, error) {
	val, err := s.client.Get(ctx, s.key(scope, userID, key)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: %w", err)
	}

	id, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("idempotency lookup: corrupt value %q", val)
	}
	return id, true, nil
}

// Remember stores entityID under key. The first writer wins; a concurrent
// duplicate does not overwrite it.
func (s *IdempotencyStore) Remember(ctx context.Context, scope string, userID int64, key string, entityID int64) error {
	if err := s.client.SetNX(ctx, s.key(scope, userID, key), entityID, s.ttl).Err(); err != nil {
		return fmt.Errorf("idempotency remember: %w", err)
	}
	return nil
}

func (s *IdempotencyStore) key(scope string, userID int64, key string) string {
	return fmt.Sprintf("idem:%s:%d:%s", scope, userID, key)
}
