// Package service orchestrates the lead pipeline: payload ingestion, raw
// scoring, queued enrichment, rescoring, and hot-lead alerts.
package service

import (
	"context"
	"encoding/json"
	"time"

	"leadscore_backend/internal/ingest"
	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/internal/leads/repository"
	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/internal/scheduler"
	"leadscore_backend/platform/apperr"
	"leadscore_backend/platform/logger"

	"github.com/google/uuid"
)

// Enricher resolves firmographic data for a company domain.
type Enricher interface {
	Enrich(ctx context.Context, companyDomain string, contactEmail *string) (*domain.Record, error)
}

// ConfigProvider returns the tenant's effective scoring config.
type ConfigProvider interface {
	GetScoringConfig(ctx context.Context, tenantID uuid.UUID) (scoring.Config, error)
}

// TenantInfo carries the tenant fields the pipeline needs.
type TenantInfo struct {
	ID          uuid.UUID
	NotifyEmail *string
}

// TenantReader exposes tenant lookups without importing the tenants module.
type TenantReader interface {
	GetTenant(ctx context.Context, id uuid.UUID) (TenantInfo, error)
}

// HotLeadNotifier alerts a tenant inbox about a hot lead.
type HotLeadNotifier interface {
	NotifyHotLead(ctx context.Context, toEmail string, record domain.Record, result scoring.Result)
}

// Service implements the lead pipeline operations.
type Service struct {
	repo     *repository.Repository
	configs  ConfigProvider
	enricher Enricher
	queue    scheduler.EnrichScheduler
	notifier HotLeadNotifier
	tenants  TenantReader
	log      *logger.Logger
}

// New creates the leads service. queue, enricher, notifier, and tenants may
// be nil in reduced deployments; the pipeline degrades gracefully.
func New(repo *repository.Repository, configs ConfigProvider, log *logger.Logger) *Service {
	return &Service{repo: repo, configs: configs, log: log}
}

// SetEnricher wires the enrichment provider.
func (s *Service) SetEnricher(enricher Enricher) { s.enricher = enricher }

// SetQueue wires the background task queue used after ingest.
func (s *Service) SetQueue(queue scheduler.EnrichScheduler) { s.queue = queue }

// SetNotifier wires the hot-lead notifier.
func (s *Service) SetNotifier(notifier HotLeadNotifier) { s.notifier = notifier }

// SetTenantReader wires tenant lookups for notification addresses.
func (s *Service) SetTenantReader(tenants TenantReader) { s.tenants = tenants }

// IngestResult is returned from Ingest: the stored lead plus its raw-phase
// scoring outcome.
type IngestResult struct {
	Lead   repository.Lead
	Result scoring.Result
}

// Ingest classifies a CRM payload, derives the canonical record, scores it
// raw, persists everything, and queues enrichment.
func (s *Service) Ingest(ctx context.Context, tenantID uuid.UUID, payload map[string]any, sourceHint string) (IngestResult, error) {
	const op = "leads.Ingest"

	source, record, externalID, err := ingest.ClassifyAndMap(payload, sourceHint)
	if err != nil {
		return IngestResult{}, err
	}

	cfg, err := s.configs.GetScoringConfig(ctx, tenantID)
	if err != nil {
		return IngestResult{}, err
	}

	result := scoring.ScoreSingle(record, cfg)

	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return IngestResult{}, apperr.Wrap(apperr.KindInternal, "failed to encode payload", err).WithOp(op)
	}

	score := result.Score
	tier := string(result.Tier)
	lead, err := s.repo.Create(ctx, repository.Lead{
		TenantID:   tenantID,
		Source:     source,
		ExternalID: externalID,
		RawPayload: rawPayload,
		RawRecord:  record,
		Score:      &score,
		Tier:       &tier,
	})
	if err != nil {
		s.log.DatabaseError(op, err)
		return IngestResult{}, apperr.Wrap(apperr.KindInternal, "failed to store lead", err).WithOp(op)
	}

	if _, err := s.repo.InsertScoringRun(ctx, repository.ScoringRun{
		LeadID:   lead.ID,
		TenantID: tenantID,
		Trigger:  repository.TriggerIngest,
		Result:   result,
		Config:   cfg,
	}); err != nil {
		s.log.DatabaseError(op, err)
	}

	s.log.ScoringRun(lead.ID.String(), tenantID.String(), string(scoring.PhaseRaw), result.Score, string(result.Tier), result.Lift)

	if s.queue != nil {
		if err := s.queue.ScheduleLeadEnrichment(ctx, lead.ID, tenantID); err != nil {
			s.log.Error("failed to queue enrichment", "error", err, "lead_id", lead.ID)
		}
	}

	return IngestResult{Lead: lead, Result: result}, nil
}

// ApplyEnrichment fetches enrichment for a stored lead, merges it into the
// canonical record, rescores both phases, and persists the outcome. Called
// from the background worker.
func (s *Service) ApplyEnrichment(ctx context.Context, leadID, tenantID uuid.UUID) error {
	const op = "leads.ApplyEnrichment"

	lead, err := s.repo.GetByID(ctx, leadID, tenantID)
	if err != nil {
		return err
	}

	var enrichment *domain.Record
	if s.enricher != nil {
		enrichment, err = s.enricher.Enrich(ctx, lead.RawRecord.CompanyDomain, lead.RawRecord.ContactEmail)
		if err != nil {
			return err
		}
	}

	enriched := lead.RawRecord
	if enrichment != nil {
		enriched = domain.MergeEnrichment(lead.RawRecord, *enrichment)
	}

	cfg, err := s.configs.GetScoringConfig(ctx, tenantID)
	if err != nil {
		return err
	}

	result := scoring.ScoreDual(lead.RawRecord, enriched, cfg)

	if err := s.repo.UpdateEnrichment(ctx, leadID, tenantID, enriched, result.Score, result.Tier); err != nil {
		s.log.DatabaseError(op, err)
		return err
	}

	if _, err := s.repo.InsertScoringRun(ctx, repository.ScoringRun{
		LeadID:   leadID,
		TenantID: tenantID,
		Trigger:  repository.TriggerEnrichment,
		Result:   result,
		Config:   cfg,
	}); err != nil {
		s.log.DatabaseError(op, err)
	}

	s.log.ScoringRun(leadID.String(), tenantID.String(), string(scoring.PhaseEnriched), result.Score, string(result.Tier), result.Lift)

	s.notifyIfHot(ctx, tenantID, enriched, result)
	return nil
}

// Rescore recomputes a lead's score with the tenant's current config. Leads
// that were never enriched go through the single-record path.
func (s *Service) Rescore(ctx context.Context, leadID, tenantID uuid.UUID, trigger string) (scoring.Result, error) {
	const op = "leads.Rescore"

	lead, err := s.repo.GetByID(ctx, leadID, tenantID)
	if err != nil {
		return scoring.Result{}, err
	}

	cfg, err := s.configs.GetScoringConfig(ctx, tenantID)
	if err != nil {
		return scoring.Result{}, err
	}

	var result scoring.Result
	if lead.EnrichedRecord != nil {
		result = scoring.ScoreDual(lead.RawRecord, *lead.EnrichedRecord, cfg)
	} else {
		result = scoring.ScoreSingle(lead.RawRecord, cfg)
	}

	if err := s.repo.UpdateScore(ctx, leadID, tenantID, result.Score, result.Tier); err != nil {
		s.log.DatabaseError(op, err)
		return scoring.Result{}, err
	}

	if trigger == "" {
		trigger = repository.TriggerRescore
	}
	if _, err := s.repo.InsertScoringRun(ctx, repository.ScoringRun{
		LeadID:   leadID,
		TenantID: tenantID,
		Trigger:  trigger,
		Result:   result,
		Config:   cfg,
	}); err != nil {
		s.log.DatabaseError(op, err)
	}

	return result, nil
}

// Score runs the stateless dual-scoring pipeline over caller-provided
// records, without touching storage.
func (s *Service) Score(ctx context.Context, tenantID uuid.UUID, raw domain.Record, enrichment *domain.Record) (scoring.Result, error) {
	cfg, err := s.configs.GetScoringConfig(ctx, tenantID)
	if err != nil {
		return scoring.Result{}, err
	}

	if enrichment == nil {
		return scoring.ScoreSingle(raw, cfg), nil
	}
	enriched := domain.MergeEnrichment(raw, *enrichment)
	return scoring.ScoreDual(raw, enriched, cfg), nil
}

// ScoreRecords dual-scores caller-provided raw and enriched snapshots as-is,
// without merging. Callers holding both sides of an enrichment use this to
// replay exactly what they have.
func (s *Service) ScoreRecords(ctx context.Context, tenantID uuid.UUID, raw, enriched domain.Record) (scoring.Result, error) {
	cfg, err := s.configs.GetScoringConfig(ctx, tenantID)
	if err != nil {
		return scoring.Result{}, err
	}
	return scoring.ScoreDual(raw, enriched, cfg), nil
}

// Get fetches a lead scoped to a tenant.
func (s *Service) Get(ctx context.Context, leadID, tenantID uuid.UUID) (repository.Lead, error) {
	return s.repo.GetByID(ctx, leadID, tenantID)
}

// List returns a tenant's leads, newest first.
func (s *Service) List(ctx context.Context, tenantID uuid.UUID, filter repository.ListFilter) ([]repository.Lead, error) {
	return s.repo.List(ctx, tenantID, filter)
}

// GetLatestRun returns the most recent scoring run for a lead.
func (s *Service) GetLatestRun(ctx context.Context, leadID, tenantID uuid.UUID) (repository.ScoringRun, error) {
	return s.repo.GetLatestScoringRun(ctx, leadID, tenantID)
}

// ListPage pages through a tenant's leads in insertion order. Used by the
// rescore backfill.
func (s *Service) ListPage(ctx context.Context, tenantID uuid.UUID, afterCreated time.Time, afterID uuid.UUID, limit int) ([]repository.Lead, error) {
	return s.repo.ListPage(ctx, tenantID, afterCreated, afterID, limit)
}

func (s *Service) notifyIfHot(ctx context.Context, tenantID uuid.UUID, record domain.Record, result scoring.Result) {
	if s.notifier == nil || s.tenants == nil || result.Tier != scoring.TierHot {
		return
	}

	tenant, err := s.tenants.GetTenant(ctx, tenantID)
	if err != nil || tenant.NotifyEmail == nil {
		return
	}
	s.notifier.NotifyHotLead(ctx, *tenant.NotifyEmail, record, result)
}
