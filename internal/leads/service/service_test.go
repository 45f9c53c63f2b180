package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"leadscore_backend/internal/leads/domain"
	"leadscore_backend/internal/leads/scoring"
	"leadscore_backend/platform/logger"
)

type stubConfigs struct {
	cfg scoring.Config
	err error
}

func (s stubConfigs) GetScoringConfig(_ context.Context, _ uuid.UUID) (scoring.Config, error) {
	return s.cfg, s.err
}

func TestScore_WithoutEnrichmentHasZeroLift(t *testing.T) {
	svc := New(nil, stubConfigs{cfg: scoring.DefaultConfig()}, logger.New("test"))

	raw := domain.Record{
		CompanyDomain: "acme.com",
		ContactEmail:  domain.StringPtr("john@acme.com"),
	}

	result, err := svc.Score(context.Background(), uuid.New(), raw, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Lift != 0 {
		t.Fatalf("expected lift 0 without enrichment, got %d", result.Lift)
	}
	if result.RawScore != result.EnrichedScore {
		t.Fatalf("expected equal phase scores, got %d and %d", result.RawScore, result.EnrichedScore)
	}
}

func TestScore_MergesEnrichmentBeforeDualScoring(t *testing.T) {
	svc := New(nil, stubConfigs{cfg: scoring.DefaultConfig()}, logger.New("test"))

	raw := domain.Record{
		CompanyDomain: "acme.com",
		ContactEmail:  domain.StringPtr("john@acme.com"),
	}
	employees := domain.Employees1000Plus
	revenue := domain.Revenue250MPlus
	enrichment := domain.Record{
		CompanyEmployeeBand: &employees,
		CompanyRevenueBand:  &revenue,
	}

	result, err := svc.Score(context.Background(), uuid.New(), raw, &enrichment)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RawScore != 15 {
		t.Fatalf("expected raw score 15, got %d", result.RawScore)
	}
	if result.EnrichedScore != 65 {
		t.Fatalf("expected enriched score 65, got %d", result.EnrichedScore)
	}
	if result.Lift != 50 {
		t.Fatalf("expected lift 50, got %d", result.Lift)
	}
}

func TestScoreRecords_UsesEnrichedSnapshotVerbatim(t *testing.T) {
	svc := New(nil, stubConfigs{cfg: scoring.DefaultConfig()}, logger.New("test"))

	raw := domain.Record{
		CompanyDomain: "acme.com",
		ContactEmail:  domain.StringPtr("john@acme.com"),
		UseCase:       domain.StringPtr("billing automation"),
	}
	// The enriched snapshot dropped the use case. A fill-gaps merge would
	// carry it over; scoring the snapshots as-is must not.
	enriched := domain.Record{
		CompanyDomain: "acme.com",
		ContactEmail:  domain.StringPtr("john@acme.com"),
	}

	result, err := svc.ScoreRecords(context.Background(), uuid.New(), raw, enriched)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RawScore != 20 {
		t.Fatalf("expected raw score 20, got %d", result.RawScore)
	}
	if result.EnrichedScore != 15 {
		t.Fatalf("expected enriched score 15, got %d", result.EnrichedScore)
	}
	if result.Lift != -5 {
		t.Fatalf("expected lift -5, got %d", result.Lift)
	}

	merged, err := svc.Score(context.Background(), uuid.New(), raw, &enriched)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged.Lift != 0 {
		t.Fatalf("expected zero lift on the merging path, got %d", merged.Lift)
	}
}

func TestScore_ConfigErrorPropagates(t *testing.T) {
	svc := New(nil, stubConfigs{err: errors.New("config store down")}, logger.New("test"))

	_, err := svc.Score(context.Background(), uuid.New(), domain.Record{CompanyDomain: "acme.com"}, nil)
	if err == nil {
		t.Fatal("expected error from config provider")
	}
}
