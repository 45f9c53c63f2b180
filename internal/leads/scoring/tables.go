package scoring

import (
	"leadscore_backend/internal/leads/domain"
)

// Static lookup data for the signal scorers. These are configuration
// constants loaded once at process start; nothing mutates them.

// freeEmailDomains are consumer mail providers. A contact email on any of
// these earns no business-email points.
var freeEmailDomains = map[string]struct{}{
	"gmail.com":      {},
	"yahoo.com":      {},
	"hotmail.com":    {},
	"outlook.com":    {},
	"aol.com":        {},
	"icloud.com":     {},
	"me.com":         {},
	"live.com":       {},
	"msn.com":        {},
	"protonmail.com": {},
	"proton.me":      {},
	"gmx.com":        {},
	"mail.com":       {},
	"yandex.com":     {},
	"zoho.com":       {},
}

// employeeBandPoints maps company size bands to their point values.
var employeeBandPoints = map[domain.EmployeeBand]int{
	domain.Employees1To10:     5,
	domain.Employees11To50:    10,
	domain.Employees51To200:   15,
	domain.Employees201To1000: 20,
	domain.Employees1000Plus:  25,
}

// revenueBandPoints maps revenue bands to their point values.
var revenueBandPoints = map[domain.RevenueBand]int{
	domain.RevenueUnder1M:  5,
	domain.Revenue1To10M:   10,
	domain.Revenue10To50M:  15,
	domain.Revenue50To250M: 20,
	domain.Revenue250MPlus: 25,
}

// seniorityBandPoints maps explicit seniority bands to their point values.
var seniorityBandPoints = map[domain.SeniorityBand]int{
	domain.SeniorityIC:       5,
	domain.SeniorityManager:  10,
	domain.SeniorityDirector: 15,
	domain.SeniorityVP:       20,
	domain.SeniorityCLevel:   30,
}

// urgencyBandPoints maps urgency bands to their point values.
var urgencyBandPoints = map[domain.UrgencyBand]int{
	domain.UrgencyExploring:   5,
	domain.UrgencyThisQuarter: 10,
	domain.UrgencyThisMonth:   20,
}

// dealBandPoints maps deal bands to their point values.
var dealBandPoints = map[domain.DealBand]int{
	domain.DealSmall:      5,
	domain.DealMid:        10,
	domain.DealEnterprise: 15,
}

// titleKeywordTable maps job-title keywords to seniority points when no
// explicit seniority band is present. Terms are matched as whole words
// against the punctuation-normalized title. Order matters: first match wins,
// so the most senior keyword sets come first.
var titleKeywordTable = []struct {
	keywords []string
	points   int
}{
	{[]string{"ceo", "cto", "cfo", "coo", "cio", "cmo", "chief", "founder", "co founder", "owner", "president"}, 30},
	{[]string{"vp", "vice president", "head of"}, 20},
	{[]string{"director"}, 15},
	{[]string{"manager", "lead", "senior"}, 10},
}

// highValueIndustries earn 15 industry points unless a tenant priority
// industry matched first.
var highValueIndustries = []string{
	"software",
	"saas",
	"technology",
	"fintech",
	"financial services",
	"banking",
	"insurance",
	"healthcare",
	"biotech",
	"pharmaceutical",
}

// mediumValueIndustries earn 8 industry points.
var mediumValueIndustries = []string{
	"manufacturing",
	"retail",
	"e-commerce",
	"ecommerce",
	"logistics",
	"telecom",
	"education",
	"real estate",
	"consulting",
	"professional services",
	"media",
}

// highQualitySources earn 15 lead-source points; mediumQualitySources earn 8.
var highQualitySources = []string{
	"referral",
	"demo",
	"demo request",
	"inbound",
	"contact form",
	"partner",
}

var mediumQualitySources = []string{
	"webinar",
	"event",
	"conference",
	"content",
	"newsletter",
	"organic",
	"website",
}
