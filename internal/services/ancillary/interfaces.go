package ancillary

import (
	"context"
	"time"

	"depositguard/internal/models"
)

// Source supplies encumbrance and neighborhood-fraud facts for an address.
// Results are advisory; the scorer never treats them as authoritative.
type Source interface {
	LienProfile(ctx context.Context, address string) (models.LienProfile, error)
	NearbyIncidentCount(ctx context.Context, address string) (int, error)
}

// Cache is the subset of the Redis cache service used for read-through caching.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}
