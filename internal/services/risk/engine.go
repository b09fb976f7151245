package risk

import (
	"context"
	"log"
	"strconv"
	"time"

	"depositguard/internal/models"
	"depositguard/internal/services/ancillary"
	"depositguard/internal/services/district"
	"depositguard/internal/services/market"

	"golang.org/x/sync/errgroup"
)

// Ancillary lookup names used in logs and metrics.
const (
	lookupLien      = "lien"
	lookupIncidents = "incidents"
)

// Engine runs the full scoring pipeline for one request at a time. It holds
// no per-request state and is safe for concurrent use.
type Engine struct {
	provider market.Provider
	source   ancillary.Source
	resolver *district.Resolver
	metrics  MetricsCollector
	pageSize int
	now      func() time.Time
}

type Option func(*Engine)

func WithMetrics(m MetricsCollector) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithPageSize sets how many registry rows a request fetches.
func WithPageSize(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.pageSize = n
		}
	}
}

// WithClock overrides the time source used for the reporting year.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func NewEngine(provider market.Provider, source ancillary.Source, resolver *district.Resolver, opts ...Option) *Engine {
	if provider == nil {
		panic("market provider is required")
	}
	if source == nil {
		panic("ancillary source is required")
	}
	if resolver == nil {
		panic("district resolver is required")
	}

	e := &Engine{
		provider: provider,
		source:   source,
		resolver: resolver,
		metrics:  &NoopMetricsCollector{},
		pageSize: market.DefaultPageSize,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Assess scores a lease of deposit (10,000-won units) at address. Deposits
// outside (0, market.MaxDeposit] are rejected with ErrInvalidDeposit. The
// registry fetch and both ancillary lookups run concurrently; failures in
// any of them degrade the result rather than fail it.
func (e *Engine) Assess(ctx context.Context, address string, deposit int64) (*models.RiskAssessment, error) {
	if deposit <= 0 || deposit > market.MaxDeposit {
		e.metrics.RecordInvalidInput()
		return nil, ErrInvalidDeposit
	}

	start := e.now()
	addr := district.NormalizeAddress(address)
	name := e.resolver.Resolve(addr)
	year := strconv.Itoa(start.Year())

	var (
		batch     *market.Batch
		fetchErr  error
		lien      models.LienProfile
		lienErr   error
		incidents int
		incErr    error
	)

	var g errgroup.Group
	g.Go(func() error {
		batch, fetchErr = e.provider.Fetch(ctx, market.Query{
			DistrictCode: e.resolver.Code(name),
			DistrictName: name,
			Year:         year,
			Start:        1,
			End:          e.pageSize,
		})
		return nil
	})
	g.Go(func() error {
		lien, lienErr = e.source.LienProfile(ctx, addr)
		return nil
	})
	g.Go(func() error {
		incidents, incErr = e.source.NearbyIncidentCount(ctx, addr)
		return nil
	})
	_ = g.Wait()

	snap := e.snapshot(deposit, name, year, batch, fetchErr)

	if lienErr != nil {
		log.Printf("lien lookup failed district=%s: %v", name, lienErr)
		e.metrics.RecordAncillaryDegraded(lookupLien)
		lien = models.LienProfile{}
	}
	if incErr != nil {
		log.Printf("incident lookup failed district=%s: %v", name, incErr)
		e.metrics.RecordAncillaryDegraded(lookupIncidents)
		incidents = 0
	}

	a := Compose(deposit, snap, lien, incidents)
	e.metrics.RecordAssessment(a.Tier.Level, snap.DataSource, e.now().Sub(start))
	return &a, nil
}

func (e *Engine) snapshot(deposit int64, name, year string, batch *market.Batch, fetchErr error) models.MarketSnapshot {
	if fetchErr != nil || batch == nil {
		log.Printf("market data unavailable district=%s, using estimate: %v", name, fetchErr)
		e.metrics.RecordUpstreamUnavailable()
		return market.EstimatedSnapshot(deposit, name)
	}

	if batch.Skipped > 0 {
		e.metrics.RecordSkippedRows(batch.Skipped)
	}

	snap, ok := market.BuildSnapshot(deposit, name, batch.Transactions, year)
	if !ok {
		log.Printf("no usable transactions district=%s rows=%d, using estimate", name, len(batch.Transactions))
		return market.EstimatedSnapshot(deposit, name)
	}
	return snap
}
