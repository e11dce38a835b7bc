package ports

import "context"

// IdempotencyStore remembers which entity a create request produced so that a
// replay with the same key returns it instead of creating another.
type IdempotencyStore interface {
	Lookup(ctx context.Context, scope string, userID int64, key string) (int64, bool, error)
	Remember(ctx context.Context, scope string, userID int64, key string, entityID int64) error
}
