// Package tenants provides the tenant and API key bounded context module.
package tenants

import (
	apphttp "leadscore_backend/internal/http"
	"leadscore_backend/internal/tenants/handler"
	"leadscore_backend/internal/tenants/repository"
	"leadscore_backend/internal/tenants/service"
	"leadscore_backend/platform/logger"
	"leadscore_backend/platform/validator"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Module is the tenants bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the tenants module with all its dependencies.
func NewModule(pool *pgxpool.Pool, val *validator.Validator, log *logger.Logger) *Module {
	repo := repository.New(pool)
	svc := service.New(repo, log)
	h := handler.New(svc, val, log)

	return &Module{handler: h, service: svc}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "tenants"
}

// Service exposes the tenants service for cross-module wiring.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts tenant routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	// Admin endpoints guarded by the shared admin secret.
	ctx.Admin.POST("/tenants", m.handler.CreateTenant)
	ctx.Admin.POST("/tenants/:tenantId/api-keys", m.handler.CreateAPIKey)
	ctx.Admin.GET("/tenants/:tenantId/api-keys", m.handler.ListAPIKeys)
	ctx.Admin.DELETE("/tenants/:tenantId/api-keys/:id", m.handler.RevokeAPIKey)

	// Tenant self-service endpoints authenticated by API key.
	cfg := ctx.Protected.Group("/scoring-config")
	cfg.GET("", m.handler.GetScoringConfig)
	cfg.PUT("", m.handler.UpdateScoringConfig)

	keys := ctx.Protected.Group("/api-keys")
	keys.POST("", m.handler.CreateAPIKey)
	keys.GET("", m.handler.ListAPIKeys)
	keys.DELETE("/:id", m.handler.RevokeAPIKey)
}
