// Package transport defines the request and response shapes for the leads
// HTTP API.
package transport

import (
	"time"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/scoring"

	"github.com/google/uuid"
)

// ScoreRequest is the stateless scoring payload. Exactly one of Payload or
// Record must be set: Payload goes through source classification first,
// Record is scored as-is. Enrichment, when present, is fill-gaps merged into
// the raw record before the dual pass. EnrichedRecord instead supplies the
// post-enrichment snapshot verbatim, skipping the merge; it wins over
// Enrichment when both are set.
type ScoreRequest struct {
	Payload        map[string]any `json:"payload,omitempty"`
	Record         *domain.Record `json:"record,omitempty"`
	Source         string         `json:"source,omitempty"`
	Enrichment     *domain.Record `json:"enrichment,omitempty"`
	EnrichedRecord *domain.Record `json:"enriched_record,omitempty"`
}

// ScoreResponse carries the scoring outcome plus the records it was computed
// from.
type ScoreResponse struct {
	Source         string         `json:"source,omitempty"`
	Record         domain.Record  `json:"record"`
	EnrichedRecord *domain.Record `json:"enriched_record,omitempty"`
	Result         scoring.Result `json:"result"`
}

// IngestResponse is returned after a payload is classified, scored, and
// stored.
type IngestResponse struct {
	LeadID     uuid.UUID      `json:"lead_id"`
	Source     string         `json:"source"`
	ExternalID *string        `json:"external_id,omitempty"`
	Record     domain.Record  `json:"record"`
	Result     scoring.Result `json:"result"`
}

// LeadResponse is the stored view of a lead.
type LeadResponse struct {
	ID             uuid.UUID      `json:"id"`
	Source         string         `json:"source"`
	ExternalID     *string        `json:"external_id,omitempty"`
	Record         domain.Record  `json:"record"`
	EnrichedRecord *domain.Record `json:"enriched_record,omitempty"`
	Score          *int           `json:"score,omitempty"`
	Tier           *string        `json:"tier,omitempty"`
	EnrichedAt     *time.Time     `json:"enriched_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// ScoringRunResponse is the stored view of a scoring run.
type ScoringRunResponse struct {
	ID        uuid.UUID      `json:"id"`
	LeadID    uuid.UUID      `json:"lead_id"`
	Trigger   string         `json:"trigger"`
	Result    scoring.Result `json:"result"`
	Config    scoring.Config `json:"config"`
	CreatedAt time.Time      `json:"created_at"`
}

// ToLeadResponse maps a repository lead to its API shape.
func ToLeadResponse(lead repository.Lead) LeadResponse {
	return LeadResponse{
		ID:             lead.ID,
		Source:         lead.Source,
		ExternalID:     lead.ExternalID,
		Record:         lead.RawRecord,
		EnrichedRecord: lead.EnrichedRecord,
		Score:          lead.Score,
		Tier:           lead.Tier,
		EnrichedAt:     lead.EnrichedAt,
		CreatedAt:      lead.CreatedAt,
		UpdatedAt:      lead.UpdatedAt,
	}
}

// ToScoringRunResponse maps a repository scoring run to its API shape.
func ToScoringRunResponse(run repository.ScoringRun) ScoringRunResponse {
	return ScoringRunResponse{
		ID:        run.ID,
		LeadID:    run.LeadID,
		Trigger:   run.Trigger,
		Result:    run.Result,
		Config:    run.Config,
		CreatedAt: run.CreatedAt,
	}
}
