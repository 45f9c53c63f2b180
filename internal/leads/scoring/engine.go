// Package scoring computes deterministic, explainable lead quality scores.
// Every function here is a pure transformation: the same record and config
// always produce the same result, so runs can be replayed from audit data.
package scoring

import (
	"math"

	"leadscore_backend/internal/leads/domain"
)

// Tier is the final categorical classification of a score.
type Tier string

const (
	TierHot  Tier = "Hot"
	TierWarm Tier = "Warm"
	TierCold Tier = "Cold"
)

// Phase names the two scoring passes of a dual run.
type Phase string

const (
	PhaseRaw      Phase = "raw"
	PhaseEnriched Phase = "enriched"
)

// PhaseResult is the outcome of scoring one record in one phase.
type PhaseResult struct {
	Score     int
	Tier      Tier
	Breakdown map[string]int
	Reasons   []string
}

// Result is the combined outcome of a dual scoring run.
// Score and Tier alias the enriched values for callers predating dual scoring.
type Result struct {
	Score          int            `json:"score"`
	Tier           Tier           `json:"tier"`
	RawScore       int            `json:"raw_score"`
	RawTier        Tier           `json:"raw_tier"`
	EnrichedScore  int            `json:"enriched_score"`
	EnrichedTier   Tier           `json:"enriched_tier"`
	Lift           int            `json:"lift"`
	ScoringVersion string         `json:"scoring_version"`
	ScoreBreakdown map[string]int `json:"score_breakdown"`
	RawBreakdown   map[string]int `json:"raw_breakdown"`
	Dimensions     Dimensions     `json:"dimensions"`
	Reasons        []string       `json:"reasons"`
}

// ComputeScore runs every signal scorer against the record, applies tenant
// weight overrides, and clamps the total to 0-100. Weighted points are
// rounded per signal before summation, and only non-zero contributions enter
// the breakdown. Reasons are collected only for the enriched phase; raw-phase
// point values still land in the breakdown.
func ComputeScore(rec domain.Record, cfg Config, phase Phase) PhaseResult {
	cfg = cfg.Normalize()

	breakdown := make(map[string]int)
	var reasons []string
	total := 0

	for _, signal := range signalOrder {
		points, reason := signal.score(rec, cfg)
		if points == 0 {
			continue
		}

		weighted := points
		if signal.weighted {
			weighted = int(math.Round(float64(points) * cfg.weight(signal.key)))
		}
		if weighted == 0 {
			continue
		}

		breakdown[signal.key] = weighted
		total += weighted

		if phase == PhaseEnriched && reason != "" {
			reasons = append(reasons, reason)
		}
	}

	score := clampScore(total)
	return PhaseResult{
		Score:     score,
		Tier:      classifyTier(score, cfg),
		Breakdown: breakdown,
		Reasons:   reasons,
	}
}

// ScoreDual scores the pre-enrichment and post-enrichment snapshots of a lead
// and derives the lift enrichment added. Lift may be negative, e.g. when
// enrichment reveals an excluded region.
func ScoreDual(raw domain.Record, enriched domain.Record, cfg Config) Result {
	cfg = cfg.Normalize()

	rawResult := ComputeScore(raw, cfg, PhaseRaw)
	enrichedResult := ComputeScore(enriched, cfg, PhaseEnriched)

	return Result{
		Score:          enrichedResult.Score,
		Tier:           enrichedResult.Tier,
		RawScore:       rawResult.Score,
		RawTier:        rawResult.Tier,
		EnrichedScore:  enrichedResult.Score,
		EnrichedTier:   enrichedResult.Tier,
		Lift:           enrichedResult.Score - rawResult.Score,
		ScoringVersion: cfg.ScoringVersion,
		ScoreBreakdown: enrichedResult.Breakdown,
		RawBreakdown:   rawResult.Breakdown,
		Dimensions:     ComputeDimensions(enrichedResult.Breakdown),
		Reasons:        enrichedResult.Reasons,
	}
}

// ScoreSingle scores one record as both the raw and enriched snapshot.
// Lift is zero by construction.
func ScoreSingle(rec domain.Record, cfg Config) Result {
	return ScoreDual(rec, rec, cfg)
}

// classifyTier applies the two ordered thresholds. Exactly one tier is always
// produced; inverted thresholds are the caller's contract to avoid.
func classifyTier(score int, cfg Config) Tier {
	switch {
	case score >= cfg.HotThreshold:
		return TierHot
	case score >= cfg.WarmThreshold:
		return TierWarm
	default:
		return TierCold
	}
}

func clampScore(value int) int {
	if value < 0 {
		return 0
	}
	if value > 100 {
		return 100
	}
	return value
}
