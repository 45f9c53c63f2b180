// Package handler exposes tenant management over HTTP.
package handler

import (
	"leadscore_backend/platform/logger"
	"net/http"

	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/internal/tenants/service"
	"leadscore_backend/internal/tenants/transport"
	"leadscore_backend/platform/httpkit"
	"leadscore_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler serves the tenant admin and self-service endpoints.
type Handler struct {
	svc       *service.Service
	validator *validator.Validator
	logger    *logger.Logger
}

// New creates a tenants handler.
func New(svc *service.Service, v *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, validator: v, logger: log}
}

// CreateTenant provisions a tenant and returns its first API key. The key is
// only shown in this response.
func (h *Handler) CreateTenant(c *gin.Context) {
	var req transport.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	created, err := h.svc.CreateTenant(c.Request.Context(), req.Name, req.NotifyEmail)
	if httpkit.HandleError(c, err) {
		return
	}

	httpkit.Created(c, transport.CreateTenantResponse{
		Tenant: transport.ToTenantResponse(created.Tenant),
		APIKey: created.PlaintextKey,
	})
}

// GetScoringConfig returns the authenticated tenant's effective scoring
// config, defaults included.
func (h *Handler) GetScoringConfig(c *gin.Context) {
	tenantID, ok := httpkit.TenantID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing tenant context", nil)
		return
	}

	cfg, err := h.svc.GetScoringConfig(c.Request.Context(), tenantID)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ScoringConfigResponse{Config: cfg})
}

// UpdateScoringConfig replaces the tenant's scoring config override.
func (h *Handler) UpdateScoringConfig(c *gin.Context) {
	tenantID, ok := httpkit.TenantID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing tenant context", nil)
		return
	}

	var cfg scoring.Config
	if err := c.ShouldBindJSON(&cfg); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	stored, err := h.svc.UpdateScoringConfig(c.Request.Context(), tenantID, cfg)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ScoringConfigResponse{Config: stored})
}

// keyScope resolves the tenant whose keys are being managed: the path param
// on admin routes, the authenticated tenant otherwise.
func keyScope(c *gin.Context) (uuid.UUID, bool) {
	if raw := c.Param("tenantId"); raw != "" {
		tenantID, err := uuid.Parse(raw)
		if err != nil {
			httpkit.Error(c, http.StatusBadRequest, "invalid tenant id", nil)
			return uuid.Nil, false
		}
		return tenantID, true
	}

	tenantID, ok := httpkit.TenantID(c)
	if !ok {
		httpkit.Error(c, http.StatusUnauthorized, "missing tenant context", nil)
		return uuid.Nil, false
	}
	return tenantID, true
}

// CreateAPIKey issues an additional API key for the resolved tenant.
func (h *Handler) CreateAPIKey(c *gin.Context) {
	tenantID, ok := keyScope(c)
	if !ok {
		return
	}

	var req transport.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if err := h.validator.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}

	key, plaintext, err := h.svc.CreateAPIKey(c.Request.Context(), tenantID, req.Name)
	if httpkit.HandleError(c, err) {
		return
	}

	resp := transport.ToAPIKeyResponse(key)
	resp.Key = plaintext
	httpkit.Created(c, resp)
}

// ListAPIKeys lists the tenant's API keys without plaintext material.
func (h *Handler) ListAPIKeys(c *gin.Context) {
	tenantID, ok := keyScope(c)
	if !ok {
		return
	}

	keys, err := h.svc.ListAPIKeys(c.Request.Context(), tenantID)
	if httpkit.HandleError(c, err) {
		return
	}

	resp := make([]transport.APIKeyResponse, 0, len(keys))
	for _, key := range keys {
		resp = append(resp, transport.ToAPIKeyResponse(key))
	}
	httpkit.OK(c, gin.H{"api_keys": resp})
}

// RevokeAPIKey deactivates one of the tenant's API keys.
func (h *Handler) RevokeAPIKey(c *gin.Context) {
	tenantID, ok := keyScope(c)
	if !ok {
		return
	}

	keyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid key id", nil)
		return
	}

	if err := h.svc.RevokeAPIKey(c.Request.Context(), keyID, tenantID); httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, gin.H{"status": "revoked"})
}
