package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"depositguard/internal/config"
	"depositguard/internal/models"
	"depositguard/internal/repositories"
	"depositguard/internal/services/district"
	"depositguard/internal/utils/cache"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

var loadFlags struct {
	file string
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Upsert liens and insert incidents from a YAML file",
	RunE:  runLoad,
}

func init() {
	loadCmd.Flags().StringVarP(&loadFlags.file, "file", "f", "", "Seed file path (required)")
	_ = loadCmd.MarkFlagRequired("file")
}

type seedFile struct {
	Liens     []seedLien     `yaml:"liens"`
	Incidents []seedIncident `yaml:"incidents"`
}

type seedLien struct {
	Address            string `yaml:"address"`
	ArrearsAmount      int64  `yaml:"arrears_amount"`
	SeniorLienRatioPct int    `yaml:"senior_lien_ratio_pct"`
	ArrearsCategory    string `yaml:"arrears_category"`
}

type seedIncident struct {
	Address     string    `yaml:"address"`
	Description string    `yaml:"description"`
	ReportedAt  time.Time `yaml:"reported_at"`
}

func parseSeed(data []byte) (*seedFile, error) {
	var s seedFile
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	var errs []error
	for i, l := range s.Liens {
		if district.NormalizeAddress(l.Address) == "" {
			errs = append(errs, fmt.Errorf("liens[%d]: address is required", i))
		}
		if l.ArrearsAmount < 0 {
			errs = append(errs, fmt.Errorf("liens[%d]: arrears_amount must be >= 0", i))
		}
		if l.SeniorLienRatioPct < 0 || l.SeniorLienRatioPct > 100 {
			errs = append(errs, fmt.Errorf("liens[%d]: senior_lien_ratio_pct must be within 0-100", i))
		}
	}
	for i, inc := range s.Incidents {
		if district.NormalizeAddress(inc.Address) == "" {
			errs = append(errs, fmt.Errorf("incidents[%d]: address is required", i))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &s, nil
}

// seedResult counts what a seed stored and lists the cache keys it made stale.
type seedResult struct {
	Liens     int
	Incidents int
	Keys      []string
}

// applySeed writes the seed through repo.
func applySeed(ctx context.Context, repo repositories.LienRepository, resolver *district.Resolver, s *seedFile, now time.Time) (seedResult, error) {
	var res seedResult
	seen := make(map[string]bool)
	touch := func(key string) {
		if !seen[key] {
			seen[key] = true
			res.Keys = append(res.Keys, key)
		}
	}

	for _, l := range s.Liens {
		addr := district.NormalizeAddress(l.Address)
		rec := &models.LienRecord{
			District:           resolver.Resolve(addr),
			Address:            addr,
			ArrearsAmount:      l.ArrearsAmount,
			SeniorLienRatioPct: l.SeniorLienRatioPct,
		}
		if l.ArrearsAmount > 0 {
			rec.ArrearsCategory = l.ArrearsCategory
		}
		if err := repo.UpsertLien(ctx, rec); err != nil {
			return res, fmt.Errorf("lien %q: %w", addr, err)
		}
		res.Liens++
		touch(cache.AddressKey(cache.EntityLien, addr))
	}

	for _, inc := range s.Incidents {
		addr := district.NormalizeAddress(inc.Address)
		reported := inc.ReportedAt
		if reported.IsZero() {
			reported = now
		}
		rec := &models.IncidentRecord{
			District:     resolver.Resolve(addr),
			Neighborhood: district.Neighborhood(addr),
			Address:      addr,
			Description:  inc.Description,
			ReportedAt:   reported,
		}
		if err := repo.CreateIncident(ctx, rec); err != nil {
			return res, fmt.Errorf("incident %q: %w", addr, err)
		}
		res.Incidents++
		touch(cache.IncidentKey(rec.District, rec.Neighborhood, addr))
	}
	return res, nil
}

// txFunc runs fn against a repository bound to one transaction. An error
// from fn rolls the transaction back.
type txFunc func(ctx context.Context, fn func(repositories.LienRepository) error) error

type invalidator interface {
	Delete(ctx context.Context, keys ...string) error
}

// loadSeed applies the seed atomically and then drops the cache entries it
// made stale. inv may be nil.
func loadSeed(ctx context.Context, inTx txFunc, inv invalidator, resolver *district.Resolver, s *seedFile, now time.Time) (seedResult, error) {
	var res seedResult
	err := inTx(ctx, func(repo repositories.LienRepository) error {
		var err error
		res, err = applySeed(ctx, repo, resolver, s, now)
		return err
	})
	if err != nil {
		return seedResult{}, err
	}

	if inv != nil && len(res.Keys) > 0 {
		if err := inv.Delete(ctx, res.Keys...); err != nil {
			log.Printf("⚠️ Cache invalidation failed for %d keys: %v", len(res.Keys), err)
		}
	}
	return res, nil
}

func runLoad(cmd *cobra.Command, _ []string) error {
	config.LoadEnv()

	data, err := os.ReadFile(loadFlags.file)
	if err != nil {
		return fmt.Errorf("read seed file: %w", err)
	}
	seed, err := parseSeed(data)
	if err != nil {
		return err
	}

	if err := repositories.InitDB(); err != nil {
		return err
	}
	defer repositories.Close()

	inTx := func(ctx context.Context, fn func(repositories.LienRepository) error) error {
		return repositories.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(repositories.NewLienRepository(tx))
		})
	}
	var inv invalidator
	if repositories.CacheService != nil {
		inv = repositories.CacheService
	}

	res, err := loadSeed(cmd.Context(), inTx, inv, district.NewResolver(config.Districts()), seed, time.Now())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Loaded %d liens and %d incidents\n", res.Liens, res.Incidents)
	return nil
}
