// Package enrichment provides the firmographic enrichment bounded context.
package enrichment

import (
	"time"

	"leadscore_backend/internal/enrichment/client"
	"leadscore_backend/internal/enrichment/service"
	"leadscore_backend/platform/logger"

	"github.com/redis/go-redis/v9"
)

// Module bundles the enrichment client and caching service.
type Module struct {
	service *service.Service
}

// NewModule creates the enrichment module. cache may be nil when Redis is not
// configured; lookups then always hit the provider.
func NewModule(baseURL, apiKey string, cache *redis.Client, cacheTTL time.Duration, log *logger.Logger) *Module {
	c := client.New(baseURL, apiKey, log)
	return &Module{service: service.New(c, cache, cacheTTL, log)}
}

// Service exposes the enrichment service for cross-module wiring.
func (m *Module) Service() *service.Service {
	return m.service
}
