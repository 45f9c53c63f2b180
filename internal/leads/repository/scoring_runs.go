package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/platform/apperr"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ScoringRun is one audited scoring computation: the full result plus a
// snapshot of the tenant config it was computed with, so any run can be
// replayed exactly.
type ScoringRun struct {
	ID        uuid.UUID
	LeadID    uuid.UUID
	TenantID  uuid.UUID
	Trigger   string
	Result    scoring.Result
	Config    scoring.Config
	CreatedAt time.Time
}

// Run triggers.
const (
	TriggerIngest     = "ingest"
	TriggerEnrichment = "enrichment"
	TriggerRescore    = "rescore"
	TriggerBackfill   = "backfill"
)

// InsertScoringRun records an audit row for a completed scoring computation.
func (r *Repository) InsertScoringRun(ctx context.Context, run ScoringRun) (ScoringRun, error) {
	resultJSON, err := json.Marshal(run.Result)
	if err != nil {
		return ScoringRun{}, err
	}
	configJSON, err := json.Marshal(run.Config)
	if err != nil {
		return ScoringRun{}, err
	}

	err = r.pool.QueryRow(ctx, `
		INSERT INTO scoring_runs (lead_id, tenant_id, trigger, result, config)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, run.LeadID, run.TenantID, run.Trigger, resultJSON, configJSON).Scan(&run.ID, &run.CreatedAt)
	if err != nil {
		return ScoringRun{}, err
	}
	return run, nil
}

// GetLatestScoringRun fetches the most recent run for a lead.
func (r *Repository) GetLatestScoringRun(ctx context.Context, leadID uuid.UUID, tenantID uuid.UUID) (ScoringRun, error) {
	var run ScoringRun
	var resultJSON, configJSON []byte

	err := r.pool.QueryRow(ctx, `
		SELECT id, lead_id, tenant_id, trigger, result, config, created_at
		FROM scoring_runs
		WHERE lead_id = $1 AND tenant_id = $2
		ORDER BY created_at DESC
		LIMIT 1
	`, leadID, tenantID).Scan(
		&run.ID, &run.LeadID, &run.TenantID, &run.Trigger, &resultJSON, &configJSON, &run.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return ScoringRun{}, apperr.NotFound("no scoring run for lead")
	}
	if err != nil {
		return ScoringRun{}, err
	}

	if err := json.Unmarshal(resultJSON, &run.Result); err != nil {
		return ScoringRun{}, err
	}
	if err := json.Unmarshal(configJSON, &run.Config); err != nil {
		return ScoringRun{}, err
	}
	return run, nil
}
