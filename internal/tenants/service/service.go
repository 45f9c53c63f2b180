// Package service implements tenant management operations.
package service

import (
	"context"
	"leadscore_backend/platform/logger"

	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/internal/tenants/repository"
	"leadscore_backend/platform/apperr"

	"github.com/google/uuid"
)

// Service coordinates tenant and API key management.
type Service struct {
	repo   *repository.Repository
	logger *logger.Logger
}

// New creates a tenants service.
func New(repo *repository.Repository, log *logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// CreatedTenant bundles a new tenant with its first API key. The plaintext
// key is only available here.
type CreatedTenant struct {
	Tenant       repository.Tenant
	APIKey       repository.APIKey
	PlaintextKey string
}

// CreateTenant provisions a tenant together with an initial API key.
func (s *Service) CreateTenant(ctx context.Context, name string, notifyEmail *string) (CreatedTenant, error) {
	const op = "tenants.CreateTenant"

	tenant, err := s.repo.CreateTenant(ctx, name, notifyEmail)
	if err != nil {
		return CreatedTenant{}, apperr.Wrap(apperr.KindInternal, "failed to create tenant", err).WithOp(op)
	}

	plaintext, hash, prefix, err := repository.GenerateAPIKey()
	if err != nil {
		return CreatedTenant{}, apperr.Wrap(apperr.KindInternal, "failed to generate API key", err).WithOp(op)
	}

	key, err := s.repo.CreateAPIKey(ctx, tenant.ID, "default", hash, prefix)
	if err != nil {
		return CreatedTenant{}, apperr.Wrap(apperr.KindInternal, "failed to store API key", err).WithOp(op)
	}

	s.logger.Info("tenant created", "tenant_id", tenant.ID, "name", tenant.Name)

	return CreatedTenant{Tenant: tenant, APIKey: key, PlaintextKey: plaintext}, nil
}

// GetTenant fetches a tenant by id.
func (s *Service) GetTenant(ctx context.Context, id uuid.UUID) (repository.Tenant, error) {
	return s.repo.GetTenant(ctx, id)
}

// GetScoringConfig returns the tenant's effective scoring config.
func (s *Service) GetScoringConfig(ctx context.Context, tenantID uuid.UUID) (scoring.Config, error) {
	return s.repo.GetScoringConfig(ctx, tenantID)
}

// UpdateScoringConfig validates and stores a scoring config override. Missing
// weights and thresholds are filled with defaults before storage.
func (s *Service) UpdateScoringConfig(ctx context.Context, tenantID uuid.UUID, cfg scoring.Config) (scoring.Config, error) {
	const op = "tenants.UpdateScoringConfig"

	normalized := cfg.Normalize()
	if normalized.WarmThreshold > normalized.HotThreshold {
		return scoring.Config{}, apperr.Validation("warm threshold must not exceed hot threshold").WithOp(op)
	}
	for key, weight := range normalized.WeightOverrides {
		if weight < 0 {
			return scoring.Config{}, apperr.Validation("weight for " + key + " must not be negative").WithOp(op)
		}
	}

	if err := s.repo.UpdateScoringConfig(ctx, tenantID, normalized); err != nil {
		return scoring.Config{}, err
	}

	s.logger.Info("scoring config updated", "tenant_id", tenantID)
	return normalized, nil
}

// CreateAPIKey issues an additional API key for a tenant.
func (s *Service) CreateAPIKey(ctx context.Context, tenantID uuid.UUID, name string) (repository.APIKey, string, error) {
	const op = "tenants.CreateAPIKey"

	if _, err := s.repo.GetTenant(ctx, tenantID); err != nil {
		return repository.APIKey{}, "", err
	}

	plaintext, hash, prefix, err := repository.GenerateAPIKey()
	if err != nil {
		return repository.APIKey{}, "", apperr.Wrap(apperr.KindInternal, "failed to generate API key", err).WithOp(op)
	}

	key, err := s.repo.CreateAPIKey(ctx, tenantID, name, hash, prefix)
	if err != nil {
		return repository.APIKey{}, "", apperr.Wrap(apperr.KindInternal, "failed to store API key", err).WithOp(op)
	}
	return key, plaintext, nil
}

// ListAPIKeys returns a tenant's API keys.
func (s *Service) ListAPIKeys(ctx context.Context, tenantID uuid.UUID) ([]repository.APIKey, error) {
	return s.repo.ListAPIKeys(ctx, tenantID)
}

// RevokeAPIKey deactivates an API key.
func (s *Service) RevokeAPIKey(ctx context.Context, keyID uuid.UUID, tenantID uuid.UUID) error {
	return s.repo.RevokeAPIKey(ctx, keyID, tenantID)
}

// Authenticate resolves a plaintext API key to its tenant.
func (s *Service) Authenticate(ctx context.Context, plaintext string) (repository.APIKey, error) {
	return s.repo.GetAPIKeyByHash(ctx, repository.HashKey(plaintext))
}
