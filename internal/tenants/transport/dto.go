// Package transport defines the request and response shapes for the tenants
// HTTP API.
package transport

import (
	"time"

	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/internal/tenants/repository"

	"github.com/google/uuid"
)

// CreateTenantRequest is the admin payload for provisioning a tenant.
type CreateTenantRequest struct {
	Name        string  `json:"name" validate:"required,min=2,max=120"`
	NotifyEmail *string `json:"notify_email,omitempty" validate:"omitempty,email"`
}

// TenantResponse is the public view of a tenant.
type TenantResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	NotifyEmail *string   `json:"notify_email,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateTenantResponse includes the one-time plaintext API key.
type CreateTenantResponse struct {
	Tenant TenantResponse `json:"tenant"`
	APIKey string         `json:"api_key"`
}

// CreateAPIKeyRequest names a new API key.
type CreateAPIKeyRequest struct {
	Name string `json:"name" validate:"required,min=2,max=80"`
}

// APIKeyResponse is the stored view of an API key. The plaintext Key field is
// only set at creation time.
type APIKeyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	KeyPrefix string    `json:"key_prefix"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	Key       string    `json:"key,omitempty"`
}

// ScoringConfigResponse wraps the tenant's effective scoring config.
type ScoringConfigResponse struct {
	Config scoring.Config `json:"config"`
}

// ToTenantResponse maps a repository tenant to its API shape.
func ToTenantResponse(t repository.Tenant) TenantResponse {
	return TenantResponse{
		ID:          t.ID,
		Name:        t.Name,
		NotifyEmail: t.NotifyEmail,
		CreatedAt:   t.CreatedAt,
	}
}

// ToAPIKeyResponse maps a repository API key to its API shape.
func ToAPIKeyResponse(k repository.APIKey) APIKeyResponse {
	return APIKeyResponse{
		ID:        k.ID,
		Name:      k.Name,
		KeyPrefix: k.KeyPrefix,
		IsActive:  k.IsActive,
		CreatedAt: k.CreatedAt,
	}
}
