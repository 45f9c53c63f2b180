// Package service provides firmographic enrichment with a Redis-backed cache.
// Lookups are keyed by company domain; a hit skips the provider entirely.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

const cacheKeyPrefix = "enrichment:domain:"

// Provider fetches enrichment data for a company domain.
type Provider interface {
	Lookup(ctx context.Context, companyDomain string, contactEmail *string) (*domain.Record, error)
}

// Service handles enrichment lookups with caching. A nil redis client
// disables the cache and every lookup goes to the provider.
type Service struct {
	provider Provider
	cache    *redis.Client
	cacheTTL time.Duration
	log      *logger.Logger
}

// New creates an enrichment service.
func New(provider Provider, cache *redis.Client, cacheTTL time.Duration, log *logger.Logger) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
		log:      log,
	}
}

// cachedLookup distinguishes "provider knows nothing about this domain" from
// a cache miss, so negative results are cached too.
type cachedLookup struct {
	Found  bool           `json:"found"`
	Record *domain.Record `json:"record,omitempty"`
}

// Enrich returns the enrichment record for a company domain, consulting the
// cache first. Returns nil when the provider has no data for the domain.
func (s *Service) Enrich(ctx context.Context, companyDomain string, contactEmail *string) (*domain.Record, error) {
	if companyDomain == "" {
		return nil, nil
	}

	if cached, hit := s.getFromCache(ctx, companyDomain); hit {
		return cached, nil
	}

	record, err := s.provider.Lookup(ctx, companyDomain, contactEmail)
	if err != nil {
		s.log.EnrichmentError(companyDomain, err)
		return nil, err
	}

	s.storeInCache(ctx, companyDomain, record)
	return record, nil
}

func (s *Service) getFromCache(ctx context.Context, companyDomain string) (*domain.Record, bool) {
	if s.cache == nil {
		return nil, false
	}

	raw, err := s.cache.Get(ctx, cacheKeyPrefix+companyDomain).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("enrichment cache read failed", "company_domain", companyDomain, "error", err)
		}
		return nil, false
	}

	var entry cachedLookup
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, false
	}
	if !entry.Found {
		return nil, true
	}
	return entry.Record, true
}

func (s *Service) storeInCache(ctx context.Context, companyDomain string, record *domain.Record) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(cachedLookup{Found: record != nil, Record: record})
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKeyPrefix+companyDomain, raw, s.cacheTTL).Err(); err != nil {
		s.log.Warn("enrichment cache write failed", "company_domain", companyDomain, "error", err)
	}
}
