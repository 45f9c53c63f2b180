package scoring

import (
	"strings"
	"testing"

	"leadscore_backend/internal/leads/domain"
)

func strPtr(s string) *string { return &s }

func TestScoreDual_EnrichmentLift(t *testing.T) {
	raw := domain.Record{
		CompanyDomain:   "acme.com",
		ContactEmail:    strPtr("john@acme.com"),
		ContactTitleRaw: strPtr("Sales Manager"),
	}
	employees := domain.Employees201To1000
	revenue := domain.Revenue50To250M
	urgency := domain.UrgencyThisQuarter
	enriched := raw
	enriched.CompanyEmployeeBand = &employees
	enriched.CompanyRevenueBand = &revenue
	enriched.UrgencyBand = &urgency

	result := ScoreDual(raw, enriched, DefaultConfig())

	if result.RawScore != 25 {
		t.Fatalf("expected raw score 25, got %d", result.RawScore)
	}
	if result.EnrichedScore != 75 {
		t.Fatalf("expected enriched score 75, got %d", result.EnrichedScore)
	}
	if result.Lift != 50 {
		t.Fatalf("expected lift 50, got %d", result.Lift)
	}
	if result.RawTier != TierCold {
		t.Fatalf("expected raw tier Cold, got %s", result.RawTier)
	}
	if result.EnrichedTier != TierHot {
		t.Fatalf("expected enriched tier Hot, got %s", result.EnrichedTier)
	}
	if result.Score != result.EnrichedScore || result.Tier != result.EnrichedTier {
		t.Fatalf("expected score/tier aliases to equal enriched values, got %d/%s", result.Score, result.Tier)
	}
	if len(result.Reasons) == 0 {
		t.Fatal("expected reasons for the enriched pass")
	}
	if result.Reasons[0] != "business email domain acme.com" {
		t.Fatalf("expected email reason first, got %q", result.Reasons[0])
	}
}

func TestScoreDual_IdenticalRecordsHaveZeroLift(t *testing.T) {
	band := domain.Employees51To200
	rec := domain.Record{
		CompanyDomain:       "acme.com",
		ContactEmail:        strPtr("john@acme.com"),
		CompanyEmployeeBand: &band,
	}

	result := ScoreDual(rec, rec, DefaultConfig())

	if result.RawScore != result.EnrichedScore {
		t.Fatalf("expected equal scores, got raw %d enriched %d", result.RawScore, result.EnrichedScore)
	}
	if result.Lift != 0 {
		t.Fatalf("expected lift 0, got %d", result.Lift)
	}
}

func TestScoreSingle_TreatsOneRecordAsBothPhases(t *testing.T) {
	rec := domain.Record{
		CompanyDomain: "acme.com",
		ContactEmail:  strPtr("john@acme.com"),
	}

	result := ScoreSingle(rec, DefaultConfig())

	if result.Lift != 0 {
		t.Fatalf("expected lift 0, got %d", result.Lift)
	}
	if result.RawScore != result.EnrichedScore {
		t.Fatalf("expected identical phase scores, got %d and %d", result.RawScore, result.EnrichedScore)
	}
	if result.ScoringVersion == "" {
		t.Fatal("expected a scoring version on the result")
	}
}

func TestComputeScore_FreeEmailDomainEarnsNothing(t *testing.T) {
	rec := domain.Record{
		CompanyDomain: "gmail.com",
		ContactEmail:  strPtr("john@gmail.com"),
	}

	result := ComputeScore(rec, DefaultConfig(), PhaseEnriched)

	if _, ok := result.Breakdown[SignalEmailDomain]; ok {
		t.Fatal("expected no email_domain entry for a consumer mail domain")
	}
	if result.Score != 0 {
		t.Fatalf("expected score 0, got %d", result.Score)
	}
}

func TestComputeScore_RegionPenaltyIsNeverWeighted(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExcludedRegions = []string{"germany"}
	cfg.WeightOverrides = map[string]float64{SignalRegionPenalty: 3.0}

	rec := domain.Record{
		CompanyDomain: "acme.de",
		ContactEmail:  strPtr("hans@acme.de"),
		CompanyRegion: strPtr("Berlin, Germany"),
	}

	result := ComputeScore(rec, cfg, PhaseEnriched)

	if result.Breakdown[SignalRegionPenalty] != -20 {
		t.Fatalf("expected region penalty -20, got %d", result.Breakdown[SignalRegionPenalty])
	}
	found := false
	for _, reason := range result.Reasons {
		if strings.Contains(reason, "excluded region match: germany") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an excluded-region reason, got %v", result.Reasons)
	}
}

func TestComputeScore_RegionPenaltyChecksContactGeo(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExcludedRegions = []string{"russia"}

	rec := domain.Record{
		CompanyDomain: "acme.com",
		ContactGeo:    strPtr("Moscow, Russia"),
	}

	result := ComputeScore(rec, cfg, PhaseEnriched)

	if result.Breakdown[SignalRegionPenalty] != -20 {
		t.Fatalf("expected region penalty from contact geo, got breakdown %v", result.Breakdown)
	}
	if result.Score != 0 {
		t.Fatalf("expected negative total clamped to 0, got %d", result.Score)
	}
}

func TestComputeScore_PriorityIndustryOverridesStaticLists(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PriorityIndustries = []string{"fintech"}

	rec := domain.Record{
		CompanyDomain:   "acme.com",
		CompanyIndustry: strPtr("Fintech Solutions"),
	}

	result := ComputeScore(rec, cfg, PhaseEnriched)
	if result.Breakdown[SignalIndustry] != 20 {
		t.Fatalf("expected priority industry 20, got %d", result.Breakdown[SignalIndustry])
	}

	// Same industry without the priority entry falls to the high-value list.
	result = ComputeScore(rec, DefaultConfig(), PhaseEnriched)
	if result.Breakdown[SignalIndustry] != 15 {
		t.Fatalf("expected high-value industry 15, got %d", result.Breakdown[SignalIndustry])
	}

	rec.CompanyIndustry = strPtr("Retail")
	result = ComputeScore(rec, DefaultConfig(), PhaseEnriched)
	if result.Breakdown[SignalIndustry] != 8 {
		t.Fatalf("expected medium-value industry 8, got %d", result.Breakdown[SignalIndustry])
	}
}

func TestComputeScore_WeightOverridesRoundPerSignal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeightOverrides = map[string]float64{SignalCompanySize: 1.5}

	band := domain.Employees51To200
	rec := domain.Record{
		CompanyDomain:       "acme.com",
		CompanyEmployeeBand: &band,
	}

	result := ComputeScore(rec, cfg, PhaseEnriched)
	if result.Breakdown[SignalCompanySize] != 23 {
		t.Fatalf("expected 15 * 1.5 rounded to 23, got %d", result.Breakdown[SignalCompanySize])
	}
}

func TestComputeScore_WeightRoundingToZeroDropsSignal(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WeightOverrides = map[string]float64{SignalCompanySize: 0.01}

	band := domain.Employees51To200
	rec := domain.Record{
		CompanyDomain:       "acme.com",
		CompanyEmployeeBand: &band,
	}

	result := ComputeScore(rec, cfg, PhaseEnriched)
	if _, ok := result.Breakdown[SignalCompanySize]; ok {
		t.Fatal("expected signal rounded to zero to be omitted from the breakdown")
	}
}

func TestComputeScore_TitleKeywordsFillInForMissingSeniority(t *testing.T) {
	cases := []struct {
		title string
		want  int
	}{
		{"Chief Technology Officer", 30},
		{"Co-Founder", 30},
		{"President & COO", 30},
		{"Head of Growth", 20},
		{"VP Sales", 20},
		{"Vice President of Sales", 20},
		{"Director of Marketing", 15},
		{"Creative Director", 15},
		{"Senior Software Engineer", 10},
		{"Team Lead", 10},
		{"Intern", 0},
		{"Doctor of Philosophy", 0},
	}
	for _, tc := range cases {
		rec := domain.Record{
			CompanyDomain:   "acme.com",
			ContactTitleRaw: strPtr(tc.title),
		}
		result := ComputeScore(rec, DefaultConfig(), PhaseEnriched)
		if result.Breakdown[SignalSeniority] != tc.want {
			t.Fatalf("title %q: expected seniority %d, got %d", tc.title, tc.want, result.Breakdown[SignalSeniority])
		}
	}
}

func TestComputeScore_ExplicitSeniorityBeatsTitleKeywords(t *testing.T) {
	seniority := domain.SeniorityIC
	rec := domain.Record{
		CompanyDomain:    "acme.com",
		ContactSeniority: &seniority,
		ContactTitleRaw:  strPtr("CEO"),
	}

	result := ComputeScore(rec, DefaultConfig(), PhaseEnriched)
	if result.Breakdown[SignalSeniority] != 5 {
		t.Fatalf("expected explicit IC band to win with 5 points, got %d", result.Breakdown[SignalSeniority])
	}
}

func TestComputeScore_MaximalRecordClampsAt100(t *testing.T) {
	employees := domain.Employees1000Plus
	revenue := domain.Revenue250MPlus
	seniority := domain.SeniorityCLevel
	deal := domain.DealEnterprise
	urgency := domain.UrgencyThisMonth
	rec := domain.Record{
		CompanyDomain:       "acme.com",
		ContactEmail:        strPtr("ceo@acme.com"),
		CompanyEmployeeBand: &employees,
		CompanyRevenueBand:  &revenue,
		ContactSeniority:    &seniority,
		CompanyIndustry:     strPtr("Software"),
		LeadSource:          strPtr("Referral"),
		UseCase:             strPtr("platform migration"),
		DealBand:            &deal,
		UrgencyBand:         &urgency,
	}

	result := ComputeScore(rec, DefaultConfig(), PhaseEnriched)

	if result.Score != 100 {
		t.Fatalf("expected clamp at 100, got %d", result.Score)
	}
	if result.Tier != TierHot {
		t.Fatalf("expected tier Hot, got %s", result.Tier)
	}

	sum := 0
	for _, points := range result.Breakdown {
		sum += points
	}
	if sum <= 100 {
		t.Fatalf("expected unclamped breakdown sum above 100, got %d", sum)
	}
}

func TestComputeScore_RawPhaseSuppressesReasonsButKeepsBreakdown(t *testing.T) {
	rec := domain.Record{
		CompanyDomain: "acme.com",
		ContactEmail:  strPtr("john@acme.com"),
	}

	result := ComputeScore(rec, DefaultConfig(), PhaseRaw)

	if len(result.Reasons) != 0 {
		t.Fatalf("expected no reasons for the raw phase, got %v", result.Reasons)
	}
	if result.Breakdown[SignalEmailDomain] != 15 {
		t.Fatalf("expected raw breakdown to keep point values, got %v", result.Breakdown)
	}
}

func TestComputeScore_EmptyRecordScoresZeroCold(t *testing.T) {
	rec := domain.Record{CompanyDomain: "acme.com"}

	result := ComputeScore(rec, DefaultConfig(), PhaseEnriched)

	if result.Score != 0 {
		t.Fatalf("expected score 0, got %d", result.Score)
	}
	if result.Tier != TierCold {
		t.Fatalf("expected tier Cold, got %s", result.Tier)
	}
	if len(result.Breakdown) != 0 {
		t.Fatalf("expected empty breakdown, got %v", result.Breakdown)
	}
}

func TestScoreDual_EnrichmentCanLowerTheScore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ExcludedRegions = []string{"germany"}

	raw := domain.Record{
		CompanyDomain: "acme.com",
		ContactEmail:  strPtr("john@acme.com"),
	}
	enriched := raw
	enriched.CompanyRegion = strPtr("Germany")

	result := ScoreDual(raw, enriched, cfg)

	if result.RawScore != 15 {
		t.Fatalf("expected raw score 15, got %d", result.RawScore)
	}
	if result.EnrichedScore != 0 {
		t.Fatalf("expected enriched score clamped to 0, got %d", result.EnrichedScore)
	}
	if result.Lift != -15 {
		t.Fatalf("expected negative lift -15, got %d", result.Lift)
	}
}

func TestClassifyTier_CustomThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.HotThreshold = 50
	cfg.WarmThreshold = 20

	seniority := domain.SeniorityCLevel
	rec := domain.Record{
		CompanyDomain:    "acme.com",
		ContactEmail:     strPtr("ceo@acme.com"),
		ContactSeniority: &seniority,
	}

	// 15 email + 30 seniority = 45: warm under the custom thresholds.
	result := ComputeScore(rec, cfg, PhaseEnriched)
	if result.Score != 45 {
		t.Fatalf("expected score 45, got %d", result.Score)
	}
	if result.Tier != TierWarm {
		t.Fatalf("expected tier Warm, got %s", result.Tier)
	}

	urgency := domain.UrgencyExploring
	rec.UrgencyBand = &urgency
	result = ComputeScore(rec, cfg, PhaseEnriched)
	if result.Score != 50 || result.Tier != TierHot {
		t.Fatalf("expected 50/Hot at the threshold boundary, got %d/%s", result.Score, result.Tier)
	}
}

func TestComputeScore_UseCaseCredits(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PriorityUseCases = []string{"migration"}

	rec := domain.Record{
		CompanyDomain: "acme.com",
		UseCase:       strPtr("Data Center Migration"),
	}
	result := ComputeScore(rec, cfg, PhaseEnriched)
	if result.Breakdown[SignalUseCase] != 15 {
		t.Fatalf("expected priority use case 15, got %d", result.Breakdown[SignalUseCase])
	}

	result = ComputeScore(rec, DefaultConfig(), PhaseEnriched)
	if result.Breakdown[SignalUseCase] != 5 {
		t.Fatalf("expected stated use case 5, got %d", result.Breakdown[SignalUseCase])
	}
}
