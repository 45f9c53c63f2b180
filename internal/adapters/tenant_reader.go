// Package adapters bridges bounded contexts without creating import cycles.
package adapters

import (
	"context"

	leadsvc "leadscore_backend/internal/leads/service"
	tenantsvc "leadscore_backend/internal/tenants/service"

	"github.com/google/uuid"
)

// TenantReaderAdapter adapts the tenants service for the leads pipeline.
type TenantReaderAdapter struct {
	svc *tenantsvc.Service
}

// NewTenantReaderAdapter creates an adapter over the tenants service.
// Returns nil if the service is nil (disabled).
func NewTenantReaderAdapter(svc *tenantsvc.Service) *TenantReaderAdapter {
	if svc == nil {
		return nil
	}
	return &TenantReaderAdapter{svc: svc}
}

// GetTenant fetches the tenant fields the leads pipeline needs.
func (a *TenantReaderAdapter) GetTenant(ctx context.Context, id uuid.UUID) (leadsvc.TenantInfo, error) {
	if a == nil || a.svc == nil {
		return leadsvc.TenantInfo{}, nil
	}
	tenant, err := a.svc.GetTenant(ctx, id)
	if err != nil {
		return leadsvc.TenantInfo{}, err
	}
	return leadsvc.TenantInfo{ID: tenant.ID, NotifyEmail: tenant.NotifyEmail}, nil
}

// Compile-time check.
var _ leadsvc.TenantReader = (*TenantReaderAdapter)(nil)
