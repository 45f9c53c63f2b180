// Package leads provides the lead ingestion and scoring bounded context.
package leads

import (
	apphttp "leadscore_backend/internal/http"
	"leadscore_backend/internal/leads/handler"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/service"
	"leadscore_backend/internal/scheduler"
	"leadscore_backend/platform/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the leads module. Optional collaborators
// (enricher, queue, notifier, tenant reader) are wired afterwards via the
// setters on Service.
func NewModule(pool *pgxpool.Pool, configs service.ConfigProvider, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, configs, log)
	h := handler.New(svc, log)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service exposes the leads service for cross-module wiring.
func (m *Module) Service() *service.Service {
	return m.service
}

// SetEnricher wires the enrichment provider into the pipeline.
func (m *Module) SetEnricher(enricher service.Enricher) {
	m.service.SetEnricher(enricher)
}

// SetQueue wires the background task queue used after ingest.
func (m *Module) SetQueue(queue scheduler.EnrichScheduler) {
	m.service.SetQueue(queue)
}

// SetNotifier wires the hot-lead notifier.
func (m *Module) SetNotifier(notifier service.HotLeadNotifier) {
	m.service.SetNotifier(notifier)
}

// SetTenantReader wires tenant lookups for notification addresses.
func (m *Module) SetTenantReader(tenants service.TenantReader) {
	m.service.SetTenantReader(tenants)
}

// RegisterRoutes mounts lead routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Webhook-style ingest gets its own, tighter per-client rate limit.
	ingestGroup := ctx.V1.Group("/ingest")
	ingestGroup.Use(ctx.IngestRateLimiter.RateLimit())
	ingestGroup.Use(ctx.APIKeyMiddleware)
	ingestGroup.POST("/leads", m.handler.Ingest)

	leadsGroup := ctx.Protected.Group("/leads")
	leadsGroup.POST("/score", m.handler.Score)
	leadsGroup.GET("", m.handler.List)
	leadsGroup.GET("/:id", m.handler.Get)
	leadsGroup.GET("/:id/score", m.handler.GetScore)
	leadsGroup.POST("/:id/rescore", m.handler.Rescore)
}
