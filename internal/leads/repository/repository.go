// Package repository provides data access for leads and their scoring runs.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Lead is a persisted lead: the original payload, the detected source, and
// the canonical snapshots on both sides of enrichment.
type Lead struct {
	ID             uuid.UUID
	TenantID       uuid.UUID
	Source         string
	ExternalID     *string
	RawPayload     []byte
	RawRecord      domain.Record
	EnrichedRecord *domain.Record
	Score          *int
	Tier           *string
	EnrichedAt     *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ListFilter narrows List results.
type ListFilter struct {
	Tier   *string
	Source *string
	Limit  int
	Offset int
}

// Repository provides lead persistence backed by Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

// New creates a new leads repository.
func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new lead with its raw snapshot and initial raw-phase score.
func (r *Repository) Create(ctx context.Context, lead Lead) (Lead, error) {
	rawRecord, err := json.Marshal(lead.RawRecord)
	if err != nil {
		return Lead{}, err
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO leads (tenant_id, source, external_id, raw_payload, raw_record, score, tier)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, lead.TenantID, lead.Source, lead.ExternalID, lead.RawPayload, rawRecord, lead.Score, lead.Tier).Scan(
		&lead.ID, &lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		return Lead{}, err
	}
	return lead, nil
}

// GetByID fetches a lead scoped to a tenant.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID, tenantID uuid.UUID) (Lead, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, tenant_id, source, external_id, raw_payload, raw_record, enriched_record,
		       score, tier, enriched_at, created_at, updated_at
		FROM leads
		WHERE id = $1 AND tenant_id = $2
	`, id, tenantID)

	lead, err := scanLead(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Lead{}, apperr.NotFound("lead not found")
	}
	return lead, err
}

// List returns a page of a tenant's leads, newest first.
func (r *Repository) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]Lead, error) {
	limit := filter.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, `
		SELECT id, tenant_id, source, external_id, raw_payload, raw_record, enriched_record,
		       score, tier, enriched_at, created_at, updated_at
		FROM leads
		WHERE tenant_id = $1
		  AND ($2::text IS NULL OR tier = $2)
		  AND ($3::text IS NULL OR source = $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4 OFFSET $5
	`, tenantID, filter.Tier, filter.Source, limit, filter.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// ListPage is one cursor page of leads across a tenant, ordered by creation
// time then id. Used by the rescore backfill.
func (r *Repository) ListPage(ctx context.Context, tenantID uuid.UUID, afterCreated time.Time, afterID uuid.UUID, limit int) ([]Lead, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, tenant_id, source, external_id, raw_payload, raw_record, enriched_record,
		       score, tier, enriched_at, created_at, updated_at
		FROM leads
		WHERE tenant_id = $1 AND (created_at, id) > ($2, $3)
		ORDER BY created_at ASC, id ASC
		LIMIT $4
	`, tenantID, afterCreated, afterID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

// UpdateEnrichment stores the post-merge record and the enriched score/tier.
func (r *Repository) UpdateEnrichment(ctx context.Context, id uuid.UUID, tenantID uuid.UUID, enriched domain.Record, score int, tier scoring.Tier) error {
	enrichedJSON, err := json.Marshal(enriched)
	if err != nil {
		return err
	}

	tag, err := r.pool.Exec(ctx, `
		UPDATE leads
		SET enriched_record = $3, score = $4, tier = $5, enriched_at = now(), updated_at = now()
		WHERE id = $1 AND tenant_id = $2
	`, id, tenantID, enrichedJSON, score, string(tier))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("lead not found")
	}
	return nil
}

// UpdateScore stores a recomputed score/tier without touching the snapshots.
func (r *Repository) UpdateScore(ctx context.Context, id uuid.UUID, tenantID uuid.UUID, score int, tier scoring.Tier) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE leads
		SET score = $3, tier = $4, updated_at = now()
		WHERE id = $1 AND tenant_id = $2
	`, id, tenantID, score, string(tier))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("lead not found")
	}
	return nil
}

func scanLead(row pgx.Row) (Lead, error) {
	var lead Lead
	var rawRecord []byte
	var enrichedRecord []byte

	err := row.Scan(
		&lead.ID, &lead.TenantID, &lead.Source, &lead.ExternalID, &lead.RawPayload,
		&rawRecord, &enrichedRecord, &lead.Score, &lead.Tier, &lead.EnrichedAt,
		&lead.CreatedAt, &lead.UpdatedAt,
	)
	if err != nil {
		return Lead{}, err
	}

	if err := json.Unmarshal(rawRecord, &lead.RawRecord); err != nil {
		return Lead{}, err
	}
	if len(enrichedRecord) > 0 {
		var rec domain.Record
		if err := json.Unmarshal(enrichedRecord, &rec); err != nil {
			return Lead{}, err
		}
		lead.EnrichedRecord = &rec
	}
	return lead, nil
}
