package ancillary

import (
	"context"
	"log"
	"time"

	"depositguard/internal/models"
	"depositguard/internal/services/district"
	"depositguard/internal/utils/cache"
)

// CachedSource is a read-through cache in front of another Source. Cache
// failures are logged and bypassed.
type CachedSource struct {
	next     Source
	resolver *district.Resolver
	cache    Cache
	ttl      time.Duration
}

func NewCachedSource(next Source, resolver *district.Resolver, c Cache, ttl time.Duration) *CachedSource {
	if resolver == nil {
		panic("district resolver is required")
	}
	return &CachedSource{next: next, resolver: resolver, cache: c, ttl: ttl}
}

func (s *CachedSource) LienProfile(ctx context.Context, address string) (models.LienProfile, error) {
	key := cache.AddressKey(cache.EntityLien, address)

	var p models.LienProfile
	if s.lookup(ctx, key, &p) {
		return p, nil
	}

	p, err := s.next.LienProfile(ctx, address)
	if err != nil {
		return models.LienProfile{}, err
	}
	s.store(ctx, key, p)
	return p, nil
}

// NearbyIncidentCount shares one entry per neighborhood, matching how the
// registry counts incidents.
func (s *CachedSource) NearbyIncidentCount(ctx context.Context, address string) (int, error) {
	addr := district.NormalizeAddress(address)
	key := cache.IncidentKey(s.resolver.Resolve(addr), district.Neighborhood(addr), addr)

	var n int
	if s.lookup(ctx, key, &n) {
		return n, nil
	}

	n, err := s.next.NearbyIncidentCount(ctx, address)
	if err != nil {
		return 0, err
	}
	s.store(ctx, key, n)
	return n, nil
}

func (s *CachedSource) lookup(ctx context.Context, key string, dest interface{}) bool {
	ok, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		log.Printf("ancillary cache read failed key=%s: %v", key, err)
		return false
	}
	return ok
}

func (s *CachedSource) store(ctx context.Context, key string, value interface{}) {
	if err := s.cache.SetWithTTL(ctx, key, value, s.ttl); err != nil {
		log.Printf("ancillary cache write failed key=%s: %v", key, err)
	}
}
