// Package repository provides data access for tenants, their scoring
// configuration, and their API keys.
package repository

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Tenant is a customer account with an optional scoring config override and
// an optional address for hot-lead notifications.
type Tenant struct {
	ID          uuid.UUID
	Name        string
	NotifyEmail *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// APIKey is a hashed ingest credential. The plaintext is shown once at
// creation; only the hash is stored.
type APIKey struct {
	ID        uuid.UUID
	TenantID  uuid.UUID
	Name      string
	KeyHash   string
	KeyPrefix string
	IsActive  bool
	CreatedAt time.Time
}

// Repository provides tenant persistence backed by Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new tenants repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// GenerateAPIKey creates a new random API key and returns the plaintext key
// and its hash. The plaintext is returned only once; only the hash is stored.
func GenerateAPIKey() (plaintext string, hash string, prefix string, err error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", "", "", err
	}
	plaintext = "lsk_" + hex.EncodeToString(bytes)
	h := sha256.Sum256([]byte(plaintext))
	hash = hex.EncodeToString(h[:])
	prefix = plaintext[:12] // "lsk_" + 8 hex chars
	return plaintext, hash, prefix, nil
}

// HashKey hashes a plaintext API key for lookup.
func HashKey(plaintext string) string {
	h := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(h[:])
}

// CreateTenant inserts a tenant.
func (r *Repository) CreateTenant(ctx context.Context, name string, notifyEmail *string) (Tenant, error) {
	var tenant Tenant
	err := r.pool.QueryRow(ctx, `
		INSERT INTO tenants (name, notify_email)
		VALUES ($1, $2)
		RETURNING id, name, notify_email, created_at, updated_at
	`, name, notifyEmail).Scan(
		&tenant.ID, &tenant.Name, &tenant.NotifyEmail, &tenant.CreatedAt, &tenant.UpdatedAt,
	)
	return tenant, err
}

// GetTenant fetches a tenant by id.
func (r *Repository) GetTenant(ctx context.Context, id uuid.UUID) (Tenant, error) {
	var tenant Tenant
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, notify_email, created_at, updated_at
		FROM tenants
		WHERE id = $1
	`, id).Scan(&tenant.ID, &tenant.Name, &tenant.NotifyEmail, &tenant.CreatedAt, &tenant.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Tenant{}, apperr.NotFound("tenant not found")
	}
	return tenant, err
}

// GetScoringConfig returns the tenant's scoring config, falling back to the
// documented defaults when none was stored.
func (r *Repository) GetScoringConfig(ctx context.Context, tenantID uuid.UUID) (scoring.Config, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `
		SELECT scoring_config FROM tenants WHERE id = $1
	`, tenantID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return scoring.Config{}, apperr.NotFound("tenant not found")
	}
	if err != nil {
		return scoring.Config{}, err
	}

	if len(raw) == 0 {
		return scoring.DefaultConfig(), nil
	}

	var cfg scoring.Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return scoring.Config{}, err
	}
	return cfg.Normalize(), nil
}

// UpdateScoringConfig stores a tenant's scoring config.
func (r *Repository) UpdateScoringConfig(ctx context.Context, tenantID uuid.UUID, cfg scoring.Config) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE tenants SET scoring_config = $2, updated_at = now() WHERE id = $1
	`, tenantID, raw)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("tenant not found")
	}
	return nil
}

// CreateAPIKey creates a new API key record.
func (r *Repository) CreateAPIKey(ctx context.Context, tenantID uuid.UUID, name string, keyHash string, keyPrefix string) (APIKey, error) {
	var key APIKey
	err := r.pool.QueryRow(ctx, `
		INSERT INTO api_keys (tenant_id, name, key_hash, key_prefix)
		VALUES ($1, $2, $3, $4)
		RETURNING id, tenant_id, name, key_hash, key_prefix, is_active, created_at
	`, tenantID, name, keyHash, keyPrefix).Scan(
		&key.ID, &key.TenantID, &key.Name, &key.KeyHash, &key.KeyPrefix, &key.IsActive, &key.CreatedAt,
	)
	return key, err
}

// GetAPIKeyByHash retrieves an active API key by its hash.
func (r *Repository) GetAPIKeyByHash(ctx context.Context, keyHash string) (APIKey, error) {
	var key APIKey
	err := r.pool.QueryRow(ctx, `
		SELECT id, tenant_id, name, key_hash, key_prefix, is_active, created_at
		FROM api_keys
		WHERE key_hash = $1 AND is_active = true
	`, keyHash).Scan(
		&key.ID, &key.TenantID, &key.Name, &key.KeyHash, &key.KeyPrefix, &key.IsActive, &key.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return APIKey{}, apperr.Unauthorized("invalid API key")
	}
	return key, err
}

// ListAPIKeys returns all API keys for a tenant.
func (r *Repository) ListAPIKeys(ctx context.Context, tenantID uuid.UUID) ([]APIKey, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, tenant_id, name, key_hash, key_prefix, is_active, created_at
		FROM api_keys
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []APIKey
	for rows.Next() {
		var key APIKey
		if err := rows.Scan(
			&key.ID, &key.TenantID, &key.Name, &key.KeyHash, &key.KeyPrefix, &key.IsActive, &key.CreatedAt,
		); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

// RevokeAPIKey deactivates an API key.
func (r *Repository) RevokeAPIKey(ctx context.Context, keyID uuid.UUID, tenantID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE api_keys SET is_active = false WHERE id = $1 AND tenant_id = $2
	`, keyID, tenantID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("API key not found")
	}
	return nil
}
