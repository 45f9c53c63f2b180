package scoring

import (
	"testing"

	"leadscore_backend/internal/leads/domain"
)

func TestComputeDimensions_NormalizesAgainstFixedMaxima(t *testing.T) {
	breakdown := map[string]int{
		SignalEmailDomain: 15,
		SignalCompanySize: 20,
		SignalLeadSource:  15,
		SignalUseCase:     5,
		SignalUrgency:     20,
	}

	dims := ComputeDimensions(breakdown)

	// fit: 35/95, intent: 20/35, timing: 20/20.
	if dims.Fit != 37 {
		t.Fatalf("expected fit 37, got %d", dims.Fit)
	}
	if dims.Intent != 57 {
		t.Fatalf("expected intent 57, got %d", dims.Intent)
	}
	if dims.Timing != 100 {
		t.Fatalf("expected timing 100, got %d", dims.Timing)
	}
}

func TestComputeDimensions_NegativeFitClampsToZero(t *testing.T) {
	dims := ComputeDimensions(map[string]int{SignalRegionPenalty: -20})

	if dims.Fit != 0 {
		t.Fatalf("expected fit clamped to 0, got %d", dims.Fit)
	}
	if dims.Intent != 0 || dims.Timing != 0 {
		t.Fatalf("expected zero intent and timing, got %d and %d", dims.Intent, dims.Timing)
	}
}

func TestComputeDimensions_WeightedSumsClampAt100(t *testing.T) {
	dims := ComputeDimensions(map[string]int{
		SignalSeniority:   60,
		SignalCompanySize: 50,
	})

	if dims.Fit != 100 {
		t.Fatalf("expected fit capped at 100, got %d", dims.Fit)
	}
}

func TestComputeDimensions_EmptyBreakdown(t *testing.T) {
	dims := ComputeDimensions(map[string]int{})

	if dims.Fit != 0 || dims.Intent != 0 || dims.Timing != 0 {
		t.Fatalf("expected all-zero dimensions, got %+v", dims)
	}
}

func TestComputeDimensions_IgnoresUnknownSignals(t *testing.T) {
	dims := ComputeDimensions(map[string]int{"mystery": 90, SignalUrgency: 10})

	if dims.Fit != 0 || dims.Intent != 0 {
		t.Fatalf("expected unknown signal ignored, got %+v", dims)
	}
	if dims.Timing != 50 {
		t.Fatalf("expected timing 50, got %d", dims.Timing)
	}
}

func TestScoreDual_DimensionsComeFromEnrichedBreakdown(t *testing.T) {
	raw := domain.Record{CompanyDomain: "acme.com"}
	urgency := domain.UrgencyThisMonth
	enriched := raw
	enriched.UrgencyBand = &urgency

	result := ScoreDual(raw, enriched, DefaultConfig())

	if result.Dimensions.Timing != 100 {
		t.Fatalf("expected timing 100 from the enriched breakdown, got %d", result.Dimensions.Timing)
	}
	if result.Dimensions.Fit != 0 || result.Dimensions.Intent != 0 {
		t.Fatalf("expected zero fit and intent, got %+v", result.Dimensions)
	}
}
