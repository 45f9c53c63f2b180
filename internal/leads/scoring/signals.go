package scoring

import (
	"fmt"
	"strings"

	"leadscore_backend/internal/leads/domain"
)

// Signal keys. These are the names used in breakdown maps, weight overrides,
// and the dimension mapping.
const (
	SignalEmailDomain   = "email_domain"
	SignalCompanySize   = "company_size"
	SignalRevenue       = "revenue"
	SignalSeniority     = "seniority"
	SignalIndustry      = "industry"
	SignalLeadSource    = "lead_source"
	SignalUseCase       = "use_case"
	SignalUrgency       = "urgency"
	SignalDealBand      = "deal_band"
	SignalRegionPenalty = "region_penalty"
)

// A signalFunc evaluates one scoring signal against a canonical record.
// It returns the unweighted base points and a human-readable reason; both are
// zero-valued when the signal does not apply.
type signalFunc func(rec domain.Record, cfg Config) (points int, reason string)

// signalOrder fixes the evaluation order of all signals. Breakdown maps are
// unordered, but reasons follow this order.
var signalOrder = []struct {
	key      string
	score    signalFunc
	weighted bool
}{
	{SignalEmailDomain, scoreEmailDomain, true},
	{SignalCompanySize, scoreCompanySize, true},
	{SignalRevenue, scoreRevenue, true},
	{SignalSeniority, scoreSeniority, true},
	{SignalIndustry, scoreIndustry, true},
	{SignalLeadSource, scoreLeadSource, true},
	{SignalUseCase, scoreUseCase, true},
	{SignalUrgency, scoreUrgency, true},
	{SignalDealBand, scoreDealBand, true},
	{SignalRegionPenalty, scoreRegionPenalty, false},
}

// scoreEmailDomain rewards a contact email on a non-consumer mail domain.
func scoreEmailDomain(rec domain.Record, _ Config) (int, string) {
	if rec.ContactEmail == nil {
		return 0, ""
	}
	emailDomain := emailDomainOf(*rec.ContactEmail)
	if emailDomain == "" {
		return 0, ""
	}
	if _, free := freeEmailDomains[emailDomain]; free {
		return 0, ""
	}
	return 15, fmt.Sprintf("business email domain %s", emailDomain)
}

func scoreCompanySize(rec domain.Record, _ Config) (int, string) {
	if rec.CompanyEmployeeBand == nil {
		return 0, ""
	}
	points, ok := employeeBandPoints[*rec.CompanyEmployeeBand]
	if !ok {
		return 0, ""
	}
	return points, fmt.Sprintf("company size %s employees", *rec.CompanyEmployeeBand)
}

func scoreRevenue(rec domain.Record, _ Config) (int, string) {
	if rec.CompanyRevenueBand == nil {
		return 0, ""
	}
	points, ok := revenueBandPoints[*rec.CompanyRevenueBand]
	if !ok {
		return 0, ""
	}
	return points, fmt.Sprintf("annual revenue %s", *rec.CompanyRevenueBand)
}

// scoreSeniority uses the explicit seniority band when present and otherwise
// falls back to keyword-matching the raw job title.
func scoreSeniority(rec domain.Record, _ Config) (int, string) {
	if rec.ContactSeniority != nil {
		if points, ok := seniorityBandPoints[*rec.ContactSeniority]; ok {
			return points, fmt.Sprintf("seniority %s", *rec.ContactSeniority)
		}
	}
	if rec.ContactTitleRaw == nil {
		return 0, ""
	}
	title := normalizeTitle(*rec.ContactTitleRaw)
	if title == "" {
		return 0, ""
	}
	for _, entry := range titleKeywordTable {
		if titleMatchesAny(title, entry.keywords) {
			return entry.points, fmt.Sprintf("title %q indicates seniority", *rec.ContactTitleRaw)
		}
	}
	return 0, ""
}

// normalizeTitle lowercases a job title and collapses punctuation to single
// spaces so keyword terms can be matched on word boundaries.
func normalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// titleMatchesAny matches keyword terms against a normalized title on word
// boundaries. Short terms like "cto" or "vp" must appear as whole words so
// they never fire inside words like "director". A bare "president" is
// C-suite; "vice president" belongs to the next tier down.
func titleMatchesAny(title string, keywords []string) bool {
	padded := " " + title + " "
	for _, kw := range keywords {
		if kw == "president" && strings.Contains(padded, " vice president ") {
			continue
		}
		if strings.Contains(padded, " "+kw+" ") {
			return true
		}
	}
	return false
}

// scoreIndustry checks tenant priority industries first, then the static
// high- and medium-value lists.
func scoreIndustry(rec domain.Record, cfg Config) (int, string) {
	if rec.CompanyIndustry == nil {
		return 0, ""
	}
	industry := strings.ToLower(*rec.CompanyIndustry)
	if industry == "" {
		return 0, ""
	}
	if match := matchSubstring(industry, cfg.PriorityIndustries); match != "" {
		return 20, fmt.Sprintf("priority industry match: %s", match)
	}
	if containsAny(industry, highValueIndustries) {
		return 15, fmt.Sprintf("high-value industry %s", *rec.CompanyIndustry)
	}
	if containsAny(industry, mediumValueIndustries) {
		return 8, fmt.Sprintf("medium-value industry %s", *rec.CompanyIndustry)
	}
	return 0, ""
}

func scoreLeadSource(rec domain.Record, _ Config) (int, string) {
	if rec.LeadSource == nil {
		return 0, ""
	}
	source := strings.ToLower(*rec.LeadSource)
	if source == "" {
		return 0, ""
	}
	if containsAny(source, highQualitySources) {
		return 15, fmt.Sprintf("high-quality lead source %s", *rec.LeadSource)
	}
	if containsAny(source, mediumQualitySources) {
		return 8, fmt.Sprintf("medium-quality lead source %s", *rec.LeadSource)
	}
	return 0, ""
}

// scoreUseCase rewards a tenant priority use case, and gives a small credit
// for any stated use case at all.
func scoreUseCase(rec domain.Record, cfg Config) (int, string) {
	if rec.UseCase == nil {
		return 0, ""
	}
	useCase := strings.ToLower(*rec.UseCase)
	if useCase == "" {
		return 0, ""
	}
	if match := matchSubstring(useCase, cfg.PriorityUseCases); match != "" {
		return 15, fmt.Sprintf("priority use case match: %s", match)
	}
	return 5, "use case stated"
}

func scoreUrgency(rec domain.Record, _ Config) (int, string) {
	if rec.UrgencyBand == nil {
		return 0, ""
	}
	points, ok := urgencyBandPoints[*rec.UrgencyBand]
	if !ok {
		return 0, ""
	}
	return points, fmt.Sprintf("urgency %s", *rec.UrgencyBand)
}

func scoreDealBand(rec domain.Record, _ Config) (int, string) {
	if rec.DealBand == nil {
		return 0, ""
	}
	points, ok := dealBandPoints[*rec.DealBand]
	if !ok {
		return 0, ""
	}
	return points, fmt.Sprintf("deal band %s", *rec.DealBand)
}

// scoreRegionPenalty checks company region and contact geo against the
// tenant's excluded regions. The penalty is fixed and never weighted.
func scoreRegionPenalty(rec domain.Record, cfg Config) (int, string) {
	if len(cfg.ExcludedRegions) == 0 {
		return 0, ""
	}
	for _, field := range []*string{rec.CompanyRegion, rec.ContactGeo} {
		if field == nil {
			continue
		}
		region := strings.ToLower(*field)
		if region == "" {
			continue
		}
		if match := matchSubstring(region, cfg.ExcludedRegions); match != "" {
			return -20, fmt.Sprintf("excluded region match: %s", match)
		}
	}
	return 0, ""
}

// matchSubstring returns the first entry that case-insensitively occurs in
// value, or "" when none match.
func matchSubstring(value string, entries []string) string {
	for _, entry := range entries {
		needle := strings.ToLower(strings.TrimSpace(entry))
		if needle == "" {
			continue
		}
		if strings.Contains(value, needle) {
			return entry
		}
	}
	return ""
}

// containsAny checks if s contains any of the keywords.
func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// emailDomainOf extracts the lowercase domain part of an email address.
func emailDomainOf(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(email[at+1:]))
}
