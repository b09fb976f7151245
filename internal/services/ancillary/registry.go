package ancillary

import (
	"context"
	"fmt"

	"depositguard/internal/models"
	"depositguard/internal/repositories"
	"depositguard/internal/services/district"
)

// RegistrySource reads lien and incident records maintained in Postgres.
// An address with no lien record has a clean profile.
type RegistrySource struct {
	repo     repositories.LienRepository
	resolver *district.Resolver
}

func NewRegistrySource(repo repositories.LienRepository, resolver *district.Resolver) *RegistrySource {
	if repo == nil {
		panic("lien repository is required")
	}
	if resolver == nil {
		panic("district resolver is required")
	}
	return &RegistrySource{repo: repo, resolver: resolver}
}

func (s *RegistrySource) LienProfile(ctx context.Context, address string) (models.LienProfile, error) {
	addr := district.NormalizeAddress(address)
	rec, err := s.repo.FindLien(ctx, s.resolver.Resolve(addr), addr)
	if err != nil {
		return models.LienProfile{}, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	if rec == nil {
		return models.LienProfile{}, nil
	}
	return rec.Profile(), nil
}

func (s *RegistrySource) NearbyIncidentCount(ctx context.Context, address string) (int, error) {
	addr := district.NormalizeAddress(address)
	n, err := s.repo.CountIncidents(ctx, s.resolver.Resolve(addr), district.Neighborhood(addr), addr)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSourceUnavailable, err)
	}
	return int(n), nil
}
