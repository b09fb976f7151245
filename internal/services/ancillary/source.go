package ancillary

import (
	"fmt"
	"time"

	"depositguard/internal/config"
	"depositguard/internal/repositories"
	"depositguard/internal/services/district"
)

const (
	KindEstimator = "estimator"
	KindRegistry  = "registry"
)

// Options selects and wires an ancillary source.
type Options struct {
	Kind     string
	Table    config.DistrictTable
	Resolver *district.Resolver
	Repo     repositories.LienRepository
	Cache    Cache
	CacheTTL time.Duration
}

// NewSource builds the source named by opts.Kind. The registry source is
// wrapped in a read-through cache when a cache is supplied.
func NewSource(opts Options) (Source, error) {
	switch opts.Kind {
	case "", KindEstimator:
		return NewEstimator(opts.Table), nil
	case KindRegistry:
		if opts.Repo == nil {
			return nil, fmt.Errorf("%s source requires a lien repository", KindRegistry)
		}
		resolver := opts.Resolver
		if resolver == nil {
			resolver = district.NewResolver(opts.Table)
		}
		var src Source = NewRegistrySource(opts.Repo, resolver)
		if opts.Cache != nil {
			src = NewCachedSource(src, resolver, opts.Cache, opts.CacheTTL)
		}
		return src, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, opts.Kind)
	}
}
